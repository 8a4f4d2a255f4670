package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseValue converts raw text to a typed key: int64 when the text is an
// integer, float64 when it is a number, otherwise the trimmed string.
func ParseValue(text string) any {
	s := strings.TrimSpace(text)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}

	return s
}

// parseAs converts text according to kind (auto, int, float or string).
func parseAs(kind, text string) (any, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, fmt.Errorf("empty value")
	}

	switch kind {
	case "", "auto":
		return ParseValue(s), nil
	case "int":
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", s)
		}
		return i, nil
	case "float":
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", s)
		}
		return f, nil
	case "string":
		return s, nil
	default:
		return nil, fmt.Errorf("unknown value kind %q", kind)
	}
}

// parseRange splits "lo:hi" into two raw bounds.
func parseRange(spec string) (string, string, error) {
	lo, hi, ok := strings.Cut(spec, ":")
	if !ok || strings.TrimSpace(lo) == "" || strings.TrimSpace(hi) == "" {
		return "", "", fmt.Errorf("range %q must look like low:high", spec)
	}

	return lo, hi, nil
}
