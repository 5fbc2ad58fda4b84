// Package envfile reads env files fully into memory and splits them into
// lines. Reading is a single blocking call; the file handle is released
// before any line reaches a caller.
package envfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadLines reads the whole file at path and returns its lines in order.
// UTF-8 is assumed; a UTF-8 BOM is stripped and a UTF-16 BOM (either order)
// causes the content to be transcoded. Content that is not valid UTF-8 after
// that is an encoding error, reported the same way as an unreadable file.
func ReadLines(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	content, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return SplitLines(content), nil
}

func decode(raw []byte) (string, error) {
	if hasUTF16BOM(raw) {
		out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
		if err != nil {
			return "", fmt.Errorf("decode utf-16: %w", err)
		}
		return string(out), nil
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if !utf8.Valid(raw) {
		return "", errors.New("content is not valid utf-8")
	}
	return string(raw), nil
}

func hasUTF16BOM(b []byte) bool {
	return len(b) >= 2 && ((b[0] == 0xFE && b[1] == 0xFF) || (b[0] == 0xFF && b[1] == 0xFE))
}

// SplitLines splits content on '\n', tolerating '\r\n' line endings. A final
// trailing newline does not produce a phantom empty line; interior blank
// lines are kept so that line numbers stay meaningful.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
