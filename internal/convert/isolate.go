package convert

import (
	"regexp"
	"strings"
)

// A zero-indent line closing the callback and the call around it
var terminatorPattern = regexp.MustCompile(`(?m)^\}\);`)

// Span locates the initialization callback inside the source, in byte offsets
type Span struct {
	MarkerStart   int
	BodyStart     int
	BodyEnd       int
	TerminatorEnd int
}

// Isolate returns the text strictly between the end of marker and the start
// of the first closing-call line that follows it.
func Isolate(source, marker string) (string, Span, error) {
	if marker == "" {
		return "", Span{}, &IsolationError{Reason: "empty marker"}
	}

	start := strings.Index(source, marker)
	if start < 0 {
		return "", Span{}, &IsolationError{Marker: marker, Reason: "marker not found"}
	}

	bodyStart := start + len(marker)
	rest := source[bodyStart:]

	for _, loc := range terminatorPattern.FindAllStringIndex(rest, -1) {
		// ^ also matches at the start of rest, which is only a line start
		// when the marker ended a line
		if loc[0] == 0 && source[bodyStart-1] != '\n' {
			continue
		}

		span := Span{
			MarkerStart:   start,
			BodyStart:     bodyStart,
			BodyEnd:       bodyStart + loc[0],
			TerminatorEnd: bodyStart + loc[1],
		}
		return source[span.BodyStart:span.BodyEnd], span, nil
	}

	return "", Span{}, &IsolationError{Marker: marker, Reason: "no closing `});` line after marker"}
}
