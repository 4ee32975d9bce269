package leopardweb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/mazen160/go-random"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const DefaultPageSize = 500

// uniqueSessionID mimics the id the self-service frontend generates
// for every search: "sess", a short random tag, then a millisecond
// timestamp. A failed random read just leaves the tag out, the
// timestamp alone keeps the id unique enough per request.
func uniqueSessionID() string {
	tag, err := random.String(5)
	if err != nil {
		tag = ""
	}
	return "sess" + strings.ToLower(tag) + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// FetchPage requests one page of the course listing for a term.
// InitSession must have succeeded first.
func (c *Client) FetchPage(ctx context.Context, term string, offset, pageSize int) (total int, courses []Course, err error) {
	ctx, span := tracer.Start(ctx, "client:FetchPage")
	defer span.End()
	span.SetAttributes(
		attribute.String("term", term),
		attribute.Int("offset", offset),
	)

	if c.sessionID == "" {
		err := fmt.Errorf("session not initialized")
		span.SetStatus(codes.Error, err.Error())
		return 0, nil, &FetchError{Op: "page", Term: term, Err: err}
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"txt_term":        term,
			"startDatepicker": "",
			"endDatepicker":   "",
			"uniqueSessionId": uniqueSessionID(),
			"pageOffset":      strconv.Itoa(offset),
			"pageMaxSize":     strconv.Itoa(pageSize),
			"sortColumn":      "subjectDescription",
			"sortDirection":   "asc",
		}).
		SetHeader("Accept", "application/json, text/javascript, */*; q=0.01").
		SetHeader("X-Requested-With", "XMLHttpRequest").
		Get("/searchResults/searchResults")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "listing request failed")
		return 0, nil, &FetchError{Op: "page", Term: term, Err: err}
	}
	if res.IsError() {
		err := fmt.Errorf("listing returned status %d", res.StatusCode())
		span.SetStatus(codes.Error, err.Error())
		return 0, nil, &FetchError{Op: "page", Term: term, Err: err}
	}

	var envelope searchEnvelope
	err = json.Unmarshal(res.Body(), &envelope)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to decode listing page")
		return 0, nil, &FetchError{Op: "page", Term: term, Err: err}
	}

	courses = make([]Course, 0, len(envelope.Data))
	for _, raw := range envelope.Data {
		var course Course
		err = json.Unmarshal(raw, &course)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to decode course record")
			return 0, nil, &FetchError{Op: "page", Term: term, Err: err}
		}
		course.Raw = raw
		courses = append(courses, course)
	}
	return envelope.TotalCount, courses, nil
}

type FetchOptions struct {
	// PageSize defaults to DefaultPageSize.
	PageSize int
	// Progress, if set, is called after every page with the running
	// record count and the total the service declared (0 if it
	// declared none).
	Progress func(fetched, total int)
}

// FetchCatalog establishes a session for the term and pages through
// the listing until it is exhausted, preserving the service's order.
//
// A short or empty page always ends the loop; the totalCount from the
// first envelope only ends it early once reached, so a wrong declared
// count cannot cause an endless loop. Any page failure aborts the
// whole fetch, there is no partial catalog.
func (c *Client) FetchCatalog(ctx context.Context, term string, opts FetchOptions) (Catalog, error) {
	ctx, span := tracer.Start(ctx, "client:FetchCatalog")
	defer span.End()
	span.SetAttributes(attribute.String("term", term))

	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}

	err := c.InitSession(ctx, term)
	if err != nil {
		span.SetStatus(codes.Error, "session init failed")
		return Catalog{}, err
	}
	slog.DebugContext(ctx, "search session established", "term", term, "jsessionid", c.sessionID)

	var all []Course
	total := 0
	for offset := 0; ; offset += opts.PageSize {
		pageTotal, page, err := c.FetchPage(ctx, term, offset, opts.PageSize)
		if err != nil {
			span.SetStatus(codes.Error, "page fetch failed")
			return Catalog{}, err
		}
		if offset == 0 {
			total = pageTotal
		}

		all = append(all, page...)
		if opts.Progress != nil {
			opts.Progress(len(all), total)
		}

		if len(page) < opts.PageSize {
			break
		}
		if total > 0 && len(all) >= total {
			break
		}
	}

	return Catalog{
		Term:       term,
		TotalCount: len(all),
		Courses:    all,
	}, nil
}
