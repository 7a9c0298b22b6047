package validation

import (
	"errors"
	"strings"
)

// ValidateTitle validates a user-supplied title (tasks, goals, time blocks)
func ValidateTitle(title string) error {
	trimmed := strings.TrimSpace(title)

	if trimmed == "" {
		return errors.New("title is required")
	}

	if len(trimmed) > 200 {
		return errors.New("title is too long (max 200 characters)")
	}

	return nil
}

// ValidateName validates a habit name
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		return errors.New("name is required")
	}

	if len(trimmed) > 100 {
		return errors.New("name is too long (max 100 characters)")
	}

	return nil
}
