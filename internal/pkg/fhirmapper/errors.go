package fhirmapper

import "fmt"

// MissingPrimaryValueError aborts a conversion whose record carries no
// measured value; a clinical resource without one must not be transmitted.
type MissingPrimaryValueError struct {
	ResourceType string
}

func (e *MissingPrimaryValueError) Error() string {
	return fmt.Sprintf("%s conversion aborted: record has no primary clinical value", e.ResourceType)
}

// InvalidResourceError reports a produced resource that is missing a field
// its resource-type contract requires.
type InvalidResourceError struct {
	ResourceType string
	Field        string
}

func (e *InvalidResourceError) Error() string {
	return fmt.Sprintf("%s is missing required field %q", e.ResourceType, e.Field)
}
