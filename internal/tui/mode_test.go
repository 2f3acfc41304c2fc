package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeNormal, "normal"},
		{ModeInputTitle, "input_title"},
		{ModeInputPriority, "input_priority"},
		{ModeInputDeadline, "input_deadline"},
		{ModeHelp, "help"},
		{ModeDetail, "detail"},
		{Mode(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.mode.String())
	}
}

func TestMode_FormFields(t *testing.T) {
	assert.True(t, ModeInputPriority.IsFormMode())
	assert.False(t, ModeInputPriority.IsInputMode())
	assert.True(t, ModeInputDeadline.IsInputMode())
	assert.False(t, ModeDetail.IsFormMode())

	m := ModeInputTitle
	for range 3 {
		m = m.nextField()
	}
	assert.Equal(t, ModeInputTitle, m)
	assert.Equal(t, ModeInputDeadline, ModeInputTitle.prevField())
	assert.Equal(t, ModeInputTitle, ModeInputPriority.prevField())
}
