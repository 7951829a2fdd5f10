// Package pipeline renders transformed markdown pages to standalone HTML.
//
// This is the preview path of the mdfences CLI: it converts the full page
// with Goldmark (GFM, syntax highlighting, interactive fence conversion via
// the mdfences extension) and wraps the fragment in an HTML5 document, so
// authors can check component markup without running the whole docs build.
// The production docs build consumes the filtered markdown instead and
// renders it with its own stack.
package pipeline
