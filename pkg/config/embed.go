package config

import (
	_ "embed"
	"errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// DefaultConfigContent returns the embedded defaults, used by `config show`
// style commands and as the first koanf layer
func DefaultConfigContent() string {
	return string(defaultConfig)
}

// BytesProvider implements the koanf provider interface over raw bytes,
// for embedded documents
type BytesProvider struct{ bytes []byte }

// NewBytesProvider wraps b as a koanf provider
func NewBytesProvider(b []byte) *BytesProvider { return &BytesProvider{bytes: b} }

func (r *BytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *BytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
