package export

import (
	"encoding/csv"
	"io"

	"leopardweb-catalog/lib/scrapers/leopardweb"
)

func writeCSV(catalog leopardweb.Catalog, w io.Writer) error {
	out := csv.NewWriter(w)

	err := out.Write(Headers)
	if err != nil {
		return err
	}
	for _, course := range catalog.Courses {
		err = out.Write(Flatten(course))
		if err != nil {
			return err
		}
	}

	out.Flush()
	return out.Error()
}
