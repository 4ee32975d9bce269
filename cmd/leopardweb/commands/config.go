package commands

import (
	"os"
	"time"

	"leopardweb-catalog/lib/configutil"
	"leopardweb-catalog/lib/scrapers/leopardweb"
	"leopardweb-catalog/lib/util/serviceutil"
)

// Config is the optional leopardweb.json5 sitting next to the
// invocation (or merged with a .local.json5 override). Everything has
// a compiled default so no config file is needed.
type Config struct {
	BaseUrl        string `json:"base_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	PageSize       int    `json:"page_size"`
}

func loadConfig() Config {
	cfg, err := configutil.ReadConfig[Config]("leopardweb.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config", err)
	}
	return cfg
}

func newClient(cfg Config) *leopardweb.Client {
	client, err := leopardweb.NewClient(leopardweb.ClientOptions{
		BaseUrl: cfg.BaseUrl,
		Timeout: time.Second * time.Duration(cfg.TimeoutSeconds),
	})
	if err != nil {
		serviceutil.Fatal("failed to initialize client", err)
	}
	return client
}
