package tools

import (
	"math"
	"strconv"
	"strings"

	"github.com/PixPMusic/koii-mcp/internal/errs"
	"github.com/pkg/errors"
)

// Args wraps the decoded JSON arguments of a tool call. Numbers arrive as
// float64 from JSON but ints and numeric strings are accepted too.
type Args map[string]any

// Has reports whether key is present and not null.
func (a Args) Has(key string) bool {
	v, ok := a[key]
	return ok && v != nil
}

// String returns the value of key as text, or def when absent.
func (a Args) String(key, def string) (string, error) {
	if !a.Has(key) {
		return def, nil
	}
	switch v := a[key].(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(v), nil
	}
	return "", errors.Wrapf(errs.ErrInvalidReference, "%s must be a string", key)
}

// RequireString is String for a mandatory, non-empty argument.
func (a Args) RequireString(key string) (string, error) {
	s, err := a.String(key, "")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(s) == "" {
		return "", errors.Wrapf(errs.ErrInvalidReference, "%s is required", key)
	}
	return s, nil
}

// Float returns the value of key as a number, or def when absent.
func (a Args) Float(key string, def float64) (float64, error) {
	if !a.Has(key) {
		return def, nil
	}
	return toFloat(key, a[key])
}

// Int returns the value of key as a whole number, or def when absent.
func (a Args) Int(key string, def int) (int, error) {
	if !a.Has(key) {
		return def, nil
	}
	return toInt(key, a[key])
}

// OptionalInt is Int that returns nil when the key is absent.
func (a Args) OptionalInt(key string) (*int, error) {
	if !a.Has(key) {
		return nil, nil
	}
	n, err := toInt(key, a[key])
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Ints returns the value of key as a list of whole numbers.
func (a Args) Ints(key string) ([]int, error) {
	if !a.Has(key) {
		return nil, errors.Wrapf(errs.ErrInvalidReference, "%s is required", key)
	}
	list, ok := a[key].([]any)
	if !ok {
		if ints, ok := a[key].([]int); ok {
			return ints, nil
		}
		return nil, errors.Wrapf(errs.ErrInvalidReference, "%s must be a list of numbers", key)
	}
	out := make([]int, 0, len(list))
	for i, v := range list {
		n, err := toInt(key+"["+strconv.Itoa(i)+"]", v)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Objects returns the value of key as a list of argument maps.
func (a Args) Objects(key string) ([]Args, error) {
	if !a.Has(key) {
		return nil, errors.Wrapf(errs.ErrInvalidReference, "%s is required", key)
	}
	list, ok := a[key].([]any)
	if !ok {
		return nil, errors.Wrapf(errs.ErrInvalidReference, "%s must be a list of objects", key)
	}
	out := make([]Args, 0, len(list))
	for i, v := range list {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, errors.Wrapf(errs.ErrInvalidReference, "%s[%d] must be an object", key, i)
		}
		out = append(out, Args(m))
	}
	return out, nil
}

func toFloat(key string, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err == nil {
			return f, nil
		}
	}
	return 0, errors.Wrapf(errs.ErrInvalidReference, "%s must be a number", key)
}

func toInt(key string, v any) (int, error) {
	f, err := toFloat(key, v)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, errors.Wrapf(errs.ErrInvalidReference, "%s must be a whole number", key)
	}
	return int(f), nil
}
