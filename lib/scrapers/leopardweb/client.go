package leopardweb

import (
	"net/http/cookiejar"
	"time"

	"leopardweb-catalog/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/leopardweb")

const DefaultBaseURL = "https://selfservice.wit.edu/StudentRegistrationSsb/ssb"

// Client talks to the LeopardWeb (Banner self-service) registration
// endpoints. The session cookie lives in the client's jar; sessionID
// records the JSESSIONID value once InitSession has run so callers
// can tell whether a search context exists.
type Client struct {
	http      *resty.Client
	sessionID string
}

type ClientOptions struct {
	// BaseUrl defaults to DefaultBaseURL.
	BaseUrl string
	// Timeout defaults to 30s per request.
	Timeout time.Duration
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseURL
	}
	if opts.Timeout == 0 {
		opts.Timeout = time.Second * 30
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(opts.Timeout)

	telemetry.InstrumentResty(client, "scrapers/leopardweb/http")

	return &Client{http: client}, nil
}

// SessionID returns the JSESSIONID of the current search session, or
// "" before InitSession has succeeded.
func (c *Client) SessionID() string {
	return c.sessionID
}
