package domain

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleTasks() []*Task {
	return []*Task{
		{ID: 1, Title: "A", Priority: PriorityLow},
		{ID: 2, Title: "B", Priority: PriorityHigh, Completed: true},
		{ID: 3, Title: "C", Priority: PriorityHigh},
		{ID: 4, Title: "D", Priority: PriorityUnset},
		{ID: 5, Title: "E", Priority: PriorityMedium, Completed: true},
	}
}

func ids(seq []*Task) []int {
	var out []int
	for _, t := range seq {
		out = append(out, t.ID)
	}
	return out
}

func TestVisibleTasks(t *testing.T) {
	tests := []struct {
		name   string
		filter FilterState
		want   []int
	}{
		{"zero value", FilterState{}, []int{1, 3, 4}},
		{"show completed", FilterState{ShowCompleted: true}, []int{1, 2, 3, 4, 5}},
		{"high", FilterState{Priority: FilterHigh}, []int{3}},
		{"high and completed", FilterState{Priority: FilterHigh, ShowCompleted: true}, []int{2, 3}},
		{"medium", FilterState{Priority: FilterMedium}, nil},
		{"low", FilterState{Priority: FilterLow, ShowCompleted: true}, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(VisibleTasks(sampleTasks(), tt.filter))
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestVisibleTasks_Invariants(t *testing.T) {
	tasks := sampleTasks()
	for _, show := range []bool{false, true} {
		for _, pf := range []PriorityFilter{FilterAny, FilterLow, FilterMedium, FilterHigh} {
			f := FilterState{ShowCompleted: show, Priority: pf}
			for task := range VisibleTasks(tasks, f) {
				if !show {
					assert.False(t, task.Completed, "completed task %d visible with %+v", task.ID, f)
				}
				if pf != FilterAny {
					assert.Equal(t, Priority(pf), task.Priority)
				}
			}
		}
	}
}

func TestVisibleTasks_Restartable(t *testing.T) {
	seq := VisibleTasks(sampleTasks(), FilterState{ShowCompleted: true})

	first := slices.Collect(seq)
	second := slices.Collect(seq)

	assert.Equal(t, ids(first), ids(second))
}

func TestVisibleTasks_EarlyStop(t *testing.T) {
	seq := VisibleTasks(sampleTasks(), FilterState{ShowCompleted: true})

	var got []int
	for task := range seq {
		got = append(got, task.ID)
		if len(got) == 2 {
			break
		}
	}

	assert.Equal(t, []int{1, 2}, got)
}

func TestVisibleTasks_Pure(t *testing.T) {
	tasks := sampleTasks()
	_ = slices.Collect(VisibleTasks(tasks, FilterState{Priority: FilterHigh}))

	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(tasks))
	assert.True(t, tasks[1].Completed)
}
