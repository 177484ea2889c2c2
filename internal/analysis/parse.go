package analysis

import (
	"encoding/json"
	"errors"
	"io"
	"regexp"
	"strings"
)

const fence = "```"

var openingFence = regexp.MustCompile("^```[A-Za-z]*[ \t]*\n?")

// StripFences removes markdown code fences (``` or ```json) wrapping s and
// trims surrounding whitespace. Applying it twice gives the same result as
// applying it once.
func StripFences(s string) string {
	for {
		out := stripOnce(s)
		if out == s {
			return out
		}
		s = out
	}
}

func stripOnce(s string) string {
	s = openingFence.ReplaceAllString(strings.TrimSpace(s), "")
	s = strings.TrimSuffix(strings.TrimSpace(s), fence)
	return strings.TrimSpace(s)
}

// Parse strips fences from raw, decodes it, and validates the result.
// Any failure returns a *MalformedResponseError carrying raw.
func Parse(raw string) (*BrandAnalysis, error) {
	dec := json.NewDecoder(strings.NewReader(StripFences(raw)))

	var a BrandAnalysis
	if err := dec.Decode(&a); err != nil {
		return nil, &MalformedResponseError{Raw: raw, Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &MalformedResponseError{Raw: raw, Err: errors.New("trailing data after JSON object")}
	}
	if err := a.Validate(); err != nil {
		return nil, &MalformedResponseError{Raw: raw, Err: err}
	}
	return &a, nil
}
