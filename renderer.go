package mdfences

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"strings"
)

// Markup emitted for each fence. The fence type is interpolated verbatim:
// it is drawn from the fixed recognized set, never from page content.
const (
	fragmentFormat = `<div class="interactive-%s" data-config="%s">` +
		`<noscript><p><strong>%s</strong> (requires JavaScript)</p></noscript>` +
		`</div>`
	warningFormat = `<div class="admonition warning">` +
		`<p>Invalid interactive component configuration (%s)</p>` +
		`</div>`
)

// attrEscaper escapes JSON text for embedding in a double-quoted HTML
// attribute. A single-pass Replacer never rescans its own output, so the
// ampersands introduced by &#39; and &quot; are not escaped again.
var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"'", "&#39;",
	`"`, "&quot;",
)

// renderFragment produces the container div for a parsed fence: the
// configuration as an escaped JSON attribute plus a noscript fallback
// naming the component.
func renderFragment(fenceType string, cfg map[string]any) string {
	configJSON, err := marshalConfig(cfg)
	if err != nil {
		// YAML-derived values are always JSON-marshalable; kept as a
		// warning rather than a panic in case that ever changes.
		return renderWarning(fenceType)
	}

	title := displayTitle(fenceType, cfg)
	return fmt.Sprintf(fragmentFormat, fenceType, attrEscaper.Replace(configJSON), html.EscapeString(title))
}

// renderWarning produces the visible admonition shown in place of a fence
// whose configuration did not parse.
func renderWarning(fenceType string) string {
	return fmt.Sprintf(warningFormat, fenceType)
}

// marshalConfig serializes the configuration to compact JSON. HTML escaping
// is disabled so &, <, > and non-ASCII text stay literal; attribute safety
// is attrEscaper's job.
func marshalConfig(cfg map[string]any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(cfg); err != nil {
		return "", err
	}
	// Encode appends a newline after the value.
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// displayTitle picks the noscript title: the configuration's title field,
// else its question field, else the humanized fence type.
func displayTitle(fenceType string, cfg map[string]any) string {
	for _, key := range []string{"title", "question"} {
		v, ok := cfg[key]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return humanizeFenceType(fenceType)
}

// humanizeFenceType turns a fence type name into a readable title:
// "command-builder" becomes "Command Builder".
func humanizeFenceType(fenceType string) string {
	words := strings.Split(fenceType, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
