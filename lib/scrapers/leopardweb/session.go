package leopardweb

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/codes"
)

// InitSession binds the remote search context to a term by posting a
// term selection, which makes the service hand out a JSESSIONID
// cookie. Every listing request afterwards rides on that cookie. One
// round trip, no retry; failure is fatal to the run.
func (c *Client) InitSession(ctx context.Context, term string) error {
	ctx, span := tracer.Start(ctx, "client:InitSession")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("mode", "search").
		SetFormData(map[string]string{"term": term}).
		Post("/term/search")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "term selection request failed")
		return &SessionError{Term: term, Err: err}
	}
	if res.IsError() {
		err := fmt.Errorf("term selection returned status %d", res.StatusCode())
		span.SetStatus(codes.Error, err.Error())
		return &SessionError{Term: term, Err: err}
	}

	for _, cookie := range res.Cookies() {
		if cookie.Name == "JSESSIONID" && cookie.Value != "" {
			c.sessionID = cookie.Value
			return nil
		}
	}

	err = fmt.Errorf("response carried no JSESSIONID cookie")
	span.SetStatus(codes.Error, err.Error())
	return &SessionError{Term: term, Err: err}
}
