package validator

import (
	"fmt"
	"strings"
)

// InList validates that a value is one of the allowed choices.
func InList[T comparable](field string, value T, allowed []T) Rule {
	return Rule{
		Check: func() bool {
			for _, choice := range allowed {
				if value == choice {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("Must be one of: %s", joinChoices(allowed)),
		},
	}
}

func joinChoices[T comparable](allowed []T) string {
	parts := make([]string, 0, len(allowed))
	for _, choice := range allowed {
		parts = append(parts, fmt.Sprintf("%v", choice))
	}
	return strings.Join(parts, ", ")
}
