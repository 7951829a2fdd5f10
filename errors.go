package mdfences

import "errors"

// Sentinel errors for library operations.
var (
	// ErrConfigParse indicates a fence body that is not valid YAML or does
	// not describe a mapping. Recovered per fence: the offending fence is
	// rendered as a warning admonition and the rest of the page proceeds.
	ErrConfigParse = errors.New("invalid fence configuration")
)
