package domain

import "iter"

// FilterState holds the view filters applied when rendering the task list.
// The zero value shows open tasks of every priority.
type FilterState struct {
	Priority      PriorityFilter
	ShowCompleted bool
}

// Includes returns true if the task passes both filters.
func (f FilterState) Includes(t *Task) bool {
	return (!t.Completed || f.ShowCompleted) && f.Priority.Matches(t.Priority)
}

// VisibleTasks returns the tasks passing the filter, in their original order.
// The sequence is lazy and can be ranged over more than once.
func VisibleTasks(tasks []*Task, f FilterState) iter.Seq[*Task] {
	return func(yield func(*Task) bool) {
		for _, t := range tasks {
			if !f.Includes(t) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}
