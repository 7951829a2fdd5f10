// Package mdfences converts interactive fenced blocks in markdown pages to
// HTML container elements for client-side components.
//
// Documentation authors write fenced blocks typed quiz, terminal,
// command-builder, exercise, or code-walkthrough, with a YAML body:
//
//	```quiz
//	question: What does -r do?
//	options:
//	  - Recurse into directories
//	  - Reverse the sort order
//	answer: 0
//	```
//
// Run before the markdown-to-HTML stage of a docs build, Transform replaces
// each such block with a div carrying the parsed configuration as an
// HTML-attribute-escaped JSON data attribute, plus a noscript fallback:
//
//	out := mdfences.Transform(pageMarkdown)
//
// Everything outside recognized fences, including ordinary code fences and
// malformed or unterminated interactive fences, passes through byte for
// byte. A fence whose YAML body does not parse becomes a visible warning
// admonition naming the fence type, so one broken block never fails a page.
//
// # Delimiters
//
// Openers use three or more backticks followed immediately by the type
// name; the closer must repeat exactly the opener's backtick count. The
// first line satisfying the closer rule ends the fence: bodies cannot nest
// same-length fences.
//
// # Goldmark integration
//
// Pipelines that render with goldmark can skip the text filter and register
// the Extender extension instead, which performs the same conversion on
// goldmark's AST:
//
//	md := goldmark.New(goldmark.WithExtensions(&mdfences.Extender{}))
package mdfences
