package leopardweb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// MeetingTimes fetches the meeting-time and faculty detail for one
// course. The fmt entries carry both sub-records, so this is the only
// detail request the enrichment pass needs.
func (c *Client) MeetingTimes(ctx context.Context, term, crn string) ([]Meeting, error) {
	ctx, span := tracer.Start(ctx, "client:MeetingTimes")
	defer span.End()
	span.SetAttributes(attribute.String("crn", crn))

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"term":                  term,
			"courseReferenceNumber": crn,
		}).
		Get("/searchResults/getFacultyMeetingTimes")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "detail request failed")
		return nil, &FetchError{Op: "details", Term: term, CRN: crn, Err: err}
	}
	if res.IsError() {
		err := fmt.Errorf("detail returned status %d", res.StatusCode())
		span.SetStatus(codes.Error, err.Error())
		return nil, &FetchError{Op: "details", Term: term, CRN: crn, Err: err}
	}

	var envelope meetingTimesEnvelope
	err = json.Unmarshal(res.Body(), &envelope)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to decode detail")
		return nil, &FetchError{Op: "details", Term: term, CRN: crn, Err: err}
	}
	return envelope.Fmt, nil
}

type EnrichOptions struct {
	// Progress, if set, is called after each course is processed.
	Progress func(done, total int)
}

// Enrich replaces every course's meeting entries (and faculty list,
// when the detail carries one) with the per-course detail data.
// Courses are processed one at a time; the remote service is not
// under our control and does not tolerate fan-out.
//
// A failed detail fetch keeps the course in its listing-only form and
// moves on. This is the only stage where partial degradation is
// tolerated — cancellation is not degradation, so a dead context
// stops the pass and is returned to the caller instead of being
// logged away once per remaining course.
func (c *Client) Enrich(ctx context.Context, catalog *Catalog, opts EnrichOptions) error {
	ctx, span := tracer.Start(ctx, "client:Enrich")
	defer span.End()
	span.SetAttributes(attribute.Int("courses", len(catalog.Courses)))

	for i := range catalog.Courses {
		if err := ctx.Err(); err != nil {
			span.SetStatus(codes.Error, "enrichment cancelled")
			return err
		}
		course := &catalog.Courses[i]

		meetings, err := c.MeetingTimes(ctx, catalog.Term, course.CRN)
		if err != nil {
			slog.WarnContext(ctx, "keeping listing-only course, detail fetch failed",
				"crn", course.CRN, "err", err)
		} else if len(meetings) > 0 {
			course.Meetings = meetings
			if faculty := detailFaculty(meetings); len(faculty) > 0 {
				course.Faculty = faculty
			}
			course.Raw = mergeRawDetail(course.Raw, course.Meetings, course.Faculty)
		}

		if opts.Progress != nil {
			opts.Progress(i+1, len(catalog.Courses))
		}
	}
	return nil
}

// mergeRawDetail folds the enriched meeting and faculty data into the
// raw listing record so the raw dump reflects what was fetched. All
// other remote fields pass through untouched.
func mergeRawDetail(raw json.RawMessage, meetings []Meeting, faculty []Faculty) json.RawMessage {
	if raw == nil {
		return nil
	}
	var record map[string]any
	err := json.Unmarshal(raw, &record)
	if err != nil {
		return raw
	}
	record["meetingsFaculty"] = meetings
	if len(faculty) > 0 {
		record["faculty"] = faculty
	}
	merged, err := json.Marshal(record)
	if err != nil {
		return raw
	}
	return merged
}

// detailFaculty collects the distinct instructors named across the
// detail entries, preserving first-seen order.
func detailFaculty(meetings []Meeting) []Faculty {
	var out []Faculty
	seen := map[string]bool{}
	for _, m := range meetings {
		for _, f := range m.Faculty {
			if f.DisplayName == "" || seen[f.DisplayName] {
				continue
			}
			seen[f.DisplayName] = true
			out = append(out, f)
		}
	}
	return out
}
