package usecase

import (
	"context"

	"github.com/runoshun/task-tracker/internal/domain"
)

// SubmitFormInput contains the form to submit.
type SubmitFormInput struct {
	Form *domain.FormState // Pending fields; reset after a task is created
}

// SubmitForm is the use case for turning the pending form into a task.
type SubmitForm struct {
	add *AddTask
}

// NewSubmitForm creates a new SubmitForm use case.
func NewSubmitForm(add *AddTask) *SubmitForm {
	return &SubmitForm{add: add}
}

// Execute adds a task from the form fields.
// The form is cleared only when a task was created; on a blank title or a
// validation error the pending input is kept so it can be corrected.
func (uc *SubmitForm) Execute(ctx context.Context, in SubmitFormInput) (*AddTaskOutput, error) {
	out, err := uc.add.Execute(ctx, AddTaskInput{
		Title:    in.Form.Title,
		Priority: string(in.Form.Priority),
		Deadline: in.Form.DeadlineText,
	})
	if err != nil {
		return nil, err
	}
	if out.Created() {
		in.Form.Reset()
	}
	return out, nil
}
