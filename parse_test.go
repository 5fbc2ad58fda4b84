package envplus

import (
	"errors"
	"testing"
)

func TestParseLine_SplitsOnFirstDelimiter(t *testing.T) {
	key, value, ok, err := parseLine("SECRET=a=b=c", "//", "=", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected a pair")
	}
	if key != "SECRET" || value != "a=b=c" {
		t.Fatalf("got %q=%q, want SECRET=a=b=c", key, value)
	}
}

func TestParseLine_PreservesWhitespaceVerbatim(t *testing.T) {
	key, value, ok, err := parseLine("  KEY = value ", "//", "=", 1)
	if err != nil || !ok {
		t.Fatalf("unexpected result: ok=%v err=%v", ok, err)
	}
	if key != "  KEY " || value != " value " {
		t.Fatalf("whitespace must be kept literally, got %q=%q", key, value)
	}
}

func TestParseLine_SkipsBlankAndCommentLines(t *testing.T) {
	for _, line := range []string{"", "   ", "\t", "// whole line comment", "   // indented comment"} {
		_, _, ok, err := parseLine(line, "//", "=", 1)
		if err != nil {
			t.Fatalf("line %q: unexpected error: %v", line, err)
		}
		if ok {
			t.Fatalf("line %q should be skipped", line)
		}
	}
}

func TestParseLine_StripsInlineComment(t *testing.T) {
	key, value, ok, err := parseLine("OTHER=1 // trailing # not this marker", "//", "=", 1)
	if err != nil || !ok {
		t.Fatalf("unexpected result: ok=%v err=%v", ok, err)
	}
	if key != "OTHER" {
		t.Fatalf("got key %q, want OTHER", key)
	}
	// Everything from the marker onward goes; the space before it stays.
	if value != "1 " {
		t.Fatalf("got value %q, want \"1 \"", value)
	}
}

func TestParseLine_MultiCharacterMarkerAndDelimiter(t *testing.T) {
	key, value, ok, err := parseLine("SECRET||YOUR_SECRET @ note", "@", "||", 1)
	if err != nil || !ok {
		t.Fatalf("unexpected result: ok=%v err=%v", ok, err)
	}
	if key != "SECRET" || value != "YOUR_SECRET " {
		t.Fatalf("got %q=%q", key, value)
	}
}

func TestParseLine_EmptyKeyAndEmptyValueAreValid(t *testing.T) {
	key, value, ok, err := parseLine("=only-value", "//", "=", 1)
	if err != nil || !ok {
		t.Fatalf("unexpected result: ok=%v err=%v", ok, err)
	}
	if key != "" || value != "only-value" {
		t.Fatalf("got %q=%q", key, value)
	}

	key, value, ok, err = parseLine("only-key=", "//", "=", 1)
	if err != nil || !ok {
		t.Fatalf("unexpected result: ok=%v err=%v", ok, err)
	}
	if key != "only-key" || value != "" {
		t.Fatalf("got %q=%q", key, value)
	}
}

func TestParseLine_MissingDelimiterIsMalformed(t *testing.T) {
	_, _, _, err := parseLine("NOT A PAIR", "//", "=", 7)
	if err == nil {
		t.Fatalf("expected a malformed line error")
	}
	var malformed *MalformedLineError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected *MalformedLineError, got %T", err)
	}
	if malformed.Line != 7 {
		t.Fatalf("expected 1-based line 7, got %d", malformed.Line)
	}
	if malformed.Content != "NOT A PAIR" {
		t.Fatalf("expected raw content in error, got %q", malformed.Content)
	}
}

func TestParseLine_DelimiterOnlyInsideComment(t *testing.T) {
	// The delimiter exists on the line but only after the comment marker, so
	// the data portion has none left.
	_, _, _, err := parseLine("BROKEN // was=here", "//", "=", 3)
	var malformed *MalformedLineError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected *MalformedLineError, got %v", err)
	}
}

func TestParseLine_EmptyCommentMarkerSkipsEverything(t *testing.T) {
	// An empty marker prefixes every line, so nothing survives.
	_, _, ok, err := parseLine("KEY=VALUE", "", "=", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected the line to be treated as a comment")
	}
}

func TestParseLine_EmptyDelimiterSplitsAtStart(t *testing.T) {
	// Implementation-defined: an empty delimiter matches at offset zero.
	key, value, ok, err := parseLine("abc", "//", "", 1)
	if err != nil || !ok {
		t.Fatalf("unexpected result: ok=%v err=%v", ok, err)
	}
	if key != "" || value != "abc" {
		t.Fatalf("got %q=%q", key, value)
	}
}
