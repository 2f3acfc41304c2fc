package domain

// FormState holds the pending input fields of the task being composed.
type FormState struct {
	Title        string
	Priority     Priority
	DeadlineText string
}

// Reset clears all pending fields.
func (f *FormState) Reset() {
	*f = FormState{}
}

// IsEmpty returns true if no field has been filled in.
func (f FormState) IsEmpty() bool {
	return f.Title == "" && f.Priority == PriorityUnset && f.DeadlineText == ""
}
