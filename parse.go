package envplus

import (
	"fmt"
	"strings"
)

// MalformedLineError reports a data line that has no delimiter left after
// comment stripping. It aborts the whole load: Activate panics with it rather
// than skipping the line.
type MalformedLineError struct {
	// Line is the 1-based position of the offending line in the file.
	Line int
	// Content is the raw line as read, before any stripping.
	Content string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d with content '%s' does not appear to be formatted properly", e.Line, e.Content)
}

// parseLine turns one raw line into a key/value pair. Blank lines and comment
// lines yield ok=false and no error. Keys and values are literal substrings:
// no whitespace trimming, no quote stripping, no escapes.
func parseLine(line, comment, delimiter string, lineNo int) (key, value string, ok bool, err error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, comment) {
		return "", "", false, nil
	}

	// Inline comments: keep only the part before the first marker.
	data := line
	if i := strings.Index(line, comment); i >= 0 {
		data = line[:i]
	}

	i := strings.Index(data, delimiter)
	if i < 0 {
		return "", "", false, &MalformedLineError{Line: lineNo, Content: line}
	}
	return data[:i], data[i+len(delimiter):], true, nil
}
