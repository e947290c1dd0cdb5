package repository

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrCorruptAmount reports a stored decimal that no longer parses.
var ErrCorruptAmount = errors.New("corrupt stored amount")

func tableNameOrDefault(name, def string) string {
	if v := strings.TrimSpace(name); v != "" {
		return v
	}
	return def
}

// Decimal amounts are stored as strings to keep their exact text.
func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseFloat reads a stored decimal. An empty attribute is 0.
func parseFloat(field, v string) (float64, error) {
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrCorruptAmount, field, v)
	}
	return f, nil
}

// floatReader parses several decimals of one item and keeps the first error.
type floatReader struct {
	err error
}

func (r *floatReader) parse(field, v string) float64 {
	f, err := parseFloat(field, v)
	if err != nil && r.err == nil {
		r.err = err
	}
	return f
}
