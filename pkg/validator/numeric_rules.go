package validator

import "fmt"

// MinNum validates that a numeric value is at least min.
func MinNum[T Numeric](field string, value, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("Must be at least %v", min),
		},
	}
}

// MaxNum validates that a numeric value is at most max.
func MaxNum[T Numeric](field string, value, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("Must be at most %v", max),
		},
	}
}

// PositiveAmount validates that an amount is strictly greater than zero.
func PositiveAmount[T Numeric](field string, value T) Rule {
	return Rule{
		Check: func() bool {
			return value > 0
		},
		Error: ValidationError{
			Field:   field,
			Message: "Must be greater than zero",
		},
	}
}

// NonNegativeAmount validates that an amount is zero or greater.
func NonNegativeAmount[T Numeric](field string, value T) Rule {
	return Rule{
		Check: func() bool {
			return value >= 0
		},
		Error: ValidationError{
			Field:   field,
			Message: "Must not be negative",
		},
	}
}
