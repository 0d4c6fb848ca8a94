package app

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the storefront configuration, loadable from environment
// variables (STORE_ prefix), flags, or YAML config files.
type Config struct {
	// CatalogPath points at a catalog definition JSON file. When empty the
	// built-in demo catalog is used.
	CatalogPath string `default:"" usage:"Path to a catalog definition JSON file (empty = built-in demo catalog)" flag:"catalog"`
}

// LoadConfig loads configuration from environment variables, flags, and YAML
// config files.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "STORE",
		Files:     []string{"config.yaml", "/etc/storefront/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	return &cfg, nil
}
