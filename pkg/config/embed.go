package config

import (
	_ "embed"

	"github.com/arthur-debert/karabuild/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// DefaultsContent returns the embedded defaults.toml.
func DefaultsContent() string {
	return string(defaultConfig)
}

// rawBytesProvider feeds in-memory TOML to koanf
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }

func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "rawBytesProvider only supports ReadBytes")
}
