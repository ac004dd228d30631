package profile

import "strings"

// MissingFieldMessage is shown to the user when any form field is blank.
const MissingFieldMessage = "Please fill in all fields"

// MissingFieldError lists the blank fields of a Request in form order.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return MissingFieldMessage
}

// Detail includes the field names, for logs and the CLI.
func (e *MissingFieldError) Detail() string {
	return MissingFieldMessage + " (missing: " + strings.Join(e.Fields, ", ") + ")"
}
