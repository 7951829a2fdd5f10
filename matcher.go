package mdfences

import "strings"

// Fence grammar constants.
const (
	fenceMarker  = '`'
	minMarkerLen = 3
)

// fenceMatch is one recognized interactive fence in a document.
// start and end are byte offsets: start points at the first backtick of the
// opening delimiter (leading indentation stays outside the match), end points
// one past the last byte of the closing delimiter line, excluding its
// trailing newline.
type fenceMatch struct {
	start     int
	end       int
	fenceType string
	body      string
}

// findFences scans the whole document in one pass and returns every
// non-overlapping interactive fence in document order.
//
// A fence opens on a line holding a run of three or more backticks followed
// immediately by a recognized type name, and closes on the first later line
// holding a backtick run of exactly the opener's length and nothing else.
// Both delimiter lines tolerate horizontal whitespace around the run.
// Delimiter-length discipline rules out a regexp here: RE2 has no
// backreferences, so the closer check is a line scan.
//
// Anything that fails the grammar (unknown type names, an opener with no
// matching closer, a closer of the wrong length) is not a match and the
// text passes through untouched.
func findFences(content string) []fenceMatch {
	var matches []fenceMatch

	pos := 0
	for pos < len(content) {
		line, lineEnd, next := nextLine(content, pos)

		fenceType, markerLen, indent, ok := parseOpener(line)
		if !ok || lineEnd == len(content) {
			// Not an opener, or an opener with no line break after it.
			pos = next
			continue
		}

		bodyEnd, matchEnd, resume, found := scanCloser(content, next, markerLen)
		if !found {
			// Unterminated: skip only the opener line so an inner fence
			// can still match on its own.
			pos = next
			continue
		}

		matches = append(matches, fenceMatch{
			start:     pos + indent,
			end:       matchEnd,
			fenceType: fenceType,
			body:      content[next:bodyEnd],
		})
		pos = resume
	}

	return matches
}

// nextLine returns the line starting at pos, the offset of its end
// (exclusive, before any newline), and the offset of the following line.
// For the final line next is len(content)+1, which ends any line loop.
func nextLine(content string, pos int) (line string, end, next int) {
	if i := strings.IndexByte(content[pos:], '\n'); i >= 0 {
		return content[pos : pos+i], pos + i, pos + i + 1
	}
	return content[pos:], len(content), len(content) + 1
}

// parseOpener checks whether line is an opening delimiter and returns the
// fence type, the backtick run length, and the byte width of the leading
// indentation.
func parseOpener(line string) (fenceType string, markerLen, indent int, ok bool) {
	i := skipIndent(line)
	j := i
	for j < len(line) && line[j] == fenceMarker {
		j++
	}
	if j-i < minMarkerLen {
		return "", 0, 0, false
	}

	// The type name must follow the backticks immediately; only trailing
	// horizontal whitespace may come after it.
	name := strings.TrimRight(line[j:], " \t")
	if !fenceTypeSet[name] {
		return "", 0, 0, false
	}
	return name, j - i, i, true
}

// isCloser reports whether line is a closing delimiter for an opener of
// markerLen backticks. The run length must match exactly; a longer or
// shorter run never closes the fence.
func isCloser(line string, markerLen int) bool {
	i := skipIndent(line)
	j := i
	for j < len(line) && line[j] == fenceMarker {
		j++
	}
	if j-i != markerLen {
		return false
	}
	return strings.TrimRight(line[j:], " \t") == ""
}

// scanCloser looks for the first closing delimiter line at or after
// bodyStart. The line directly after the opener is always body, since a
// closer needs its own preceding newline, so the search starts one line in.
//
// bodyEnd is the offset of the newline before the closer line, matchEnd the
// end of the closer line (newline excluded), resume the offset to continue
// scanning from.
func scanCloser(content string, bodyStart, markerLen int) (bodyEnd, matchEnd, resume int, found bool) {
	first := true
	pos := bodyStart
	for pos <= len(content) {
		line, lineEnd, next := nextLine(content, pos)
		if !first && isCloser(line, markerLen) {
			return pos - 1, lineEnd, next, true
		}
		first = false
		pos = next
	}
	return 0, 0, 0, false
}

// skipIndent returns the offset of the first byte in line that is not a
// space or tab.
func skipIndent(line string) int {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return i
}
