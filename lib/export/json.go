package export

import (
	"encoding/json"
	"io"

	"leopardweb-catalog/lib/scrapers/leopardweb"
)

type rawEnvelope struct {
	Term       string            `json:"term"`
	TotalCount int               `json:"total_count"`
	Courses    []json.RawMessage `json:"courses"`
}

// writeJSON emits the raw dump: term and count as envelope metadata,
// each course passed through exactly as the remote service sent it —
// fields the typed view never reads included. Records built without a
// raw form (tests, mostly) fall back to their typed encoding.
func writeJSON(catalog leopardweb.Catalog, w io.Writer) error {
	envelope := rawEnvelope{
		Term:       catalog.Term,
		TotalCount: catalog.TotalCount,
		Courses:    make([]json.RawMessage, 0, len(catalog.Courses)),
	}
	for _, course := range catalog.Courses {
		raw := course.Raw
		if raw == nil {
			var err error
			raw, err = json.Marshal(course)
			if err != nil {
				return err
			}
		}
		envelope.Courses = append(envelope.Courses, raw)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(envelope)
}
