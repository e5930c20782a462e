package tools

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/samber/lo"
)

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

func oneOf(field, value string, allowed []string) error {
	if !lo.Contains(allowed, value) {
		return fmt.Errorf("%s must be one of %s, got %q", field, strings.Join(allowed, ", "), value)
	}
	return nil
}

// optionalOneOf is oneOf for fields that may be left empty.
func optionalOneOf(field, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	return oneOf(field, value, allowed)
}

func inRange(field string, value, min, max int) error {
	if value < min || value > max {
		return fmt.Errorf("%s must be between %d and %d, got %d", field, min, max, value)
	}
	return nil
}

// optionalRange is inRange for fields where zero means "use the default".
func optionalRange(field string, value, min, max int) error {
	if value == 0 {
		return nil
	}
	return inRange(field, value, min, max)
}

func httpURL(field, value string) error {
	if err := required(field, value); err != nil {
		return err
	}
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) URL", field)
	}
	return nil
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

var errNoValue = errors.New("value is required")
