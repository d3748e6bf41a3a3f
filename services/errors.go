package services

import "fmt"

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// LookupError is returned when calories were omitted and the food is not in
// the reference table.
type LookupError struct {
	FoodName string
}

func (e *LookupError) Error() string {
	return "food name not found, calories must be provided manually"
}

type NotFoundError struct {
	ID uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("entry %d not found", e.ID)
}
