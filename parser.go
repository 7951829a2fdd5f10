package mdfences

import (
	"fmt"
	"strings"

	"github.com/robworks/go-mdfences/internal/yamlutil"
)

// configParser parses a fence body into a configuration mapping.
type configParser interface {
	Parse(body string) (map[string]any, error)
}

// yamlConfigParser parses fence bodies as YAML.
type yamlConfigParser struct{}

// Parse returns the body's YAML mapping. A body that is empty, only
// whitespace, or only comments yields an empty mapping. A body that is not
// valid YAML, or whose YAML is not a mapping, returns ErrConfigParse.
func (yamlConfigParser) Parse(body string) (map[string]any, error) {
	if strings.TrimSpace(body) == "" {
		return map[string]any{}, nil
	}

	var cfg map[string]any
	if err := yamlutil.Unmarshal([]byte(body), &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if cfg == nil {
		// Comment-only bodies and explicit nulls parse to nothing.
		cfg = map[string]any{}
	}
	return cfg, nil
}
