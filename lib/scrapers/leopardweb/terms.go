package leopardweb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.opentelemetry.io/otel/codes"
)

// Terms lists the academic terms the service currently publishes, in
// the order the service returns them (most recent first). Requires no
// session.
func (c *Client) Terms(ctx context.Context) ([]Term, error) {
	ctx, span := tracer.Start(ctx, "client:Terms")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"searchTerm": "",
			"offset":     "1",
			"max":        "50",
		}).
		Get("/classSearch/getTerms")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "term list request failed")
		return nil, &FetchError{Op: "terms", Err: err}
	}
	if res.IsError() {
		err := fmt.Errorf("term list returned status %d", res.StatusCode())
		span.SetStatus(codes.Error, err.Error())
		return nil, &FetchError{Op: "terms", Err: err}
	}

	var terms []Term
	err = json.Unmarshal(res.Body(), &terms)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to decode term list")
		return nil, &FetchError{Op: "terms", Err: err}
	}
	return terms, nil
}
