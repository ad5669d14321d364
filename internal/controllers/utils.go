package controllers

import "fmt"

// ValidateRequiredFields returns an error naming the first empty field
// in the given name→value map.
func ValidateRequiredFields(fields map[string]string) error {
	for name, value := range fields {
		if value == "" {
			return fmt.Errorf("%s must be set in config", name)
		}
	}
	return nil
}
