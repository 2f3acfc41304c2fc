package domain

import (
	"fmt"
	"strings"
)

// Priority represents the importance of a task.
// The zero value is an explicit "unset" priority.
type Priority string

const (
	PriorityUnset  Priority = ""       // No priority selected
	PriorityLow    Priority = "low"    // Low priority
	PriorityMedium Priority = "medium" // Medium priority
	PriorityHigh   Priority = "high"   // High priority
)

// AllPriorities returns all priority values in select order.
func AllPriorities() []Priority {
	return []Priority{PriorityUnset, PriorityLow, PriorityMedium, PriorityHigh}
}

// ParsePriority parses a priority string.
// Empty, "none" and "unset" map to PriorityUnset.
func ParsePriority(s string) (Priority, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "none" || v == "unset" {
		return PriorityUnset, nil
	}
	if p := Priority(v); p.IsValid() {
		return p, nil
	}
	return PriorityUnset, fmt.Errorf("%w: %q", ErrInvalidPriority, s)
}

// IsValid returns true if the priority is a known value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityUnset, PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Next returns the next priority in select order, wrapping around.
func (p Priority) Next() Priority {
	all := AllPriorities()
	for i, v := range all {
		if v == p {
			return all[(i+1)%len(all)]
		}
	}
	return PriorityUnset
}

// Prev returns the previous priority in select order, wrapping around.
func (p Priority) Prev() Priority {
	all := AllPriorities()
	for i, v := range all {
		if v == p {
			return all[(i+len(all)-1)%len(all)]
		}
	}
	return PriorityUnset
}

// Display returns a human-readable representation of the priority.
func (p Priority) Display() string {
	switch p {
	case PriorityUnset:
		return "None"
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return string(p)
	}
}

// PriorityFilter restricts the visible tasks to one priority.
// The zero value matches every priority.
type PriorityFilter string

const (
	FilterAny    PriorityFilter = ""
	FilterLow    PriorityFilter = PriorityFilter(PriorityLow)
	FilterMedium PriorityFilter = PriorityFilter(PriorityMedium)
	FilterHigh   PriorityFilter = PriorityFilter(PriorityHigh)
)

var priorityFilterOrder = []PriorityFilter{FilterAny, FilterLow, FilterMedium, FilterHigh}

// ParsePriorityFilter parses a priority filter string.
// Empty and "any" map to FilterAny.
func ParsePriorityFilter(s string) (PriorityFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any", "all":
		return FilterAny, nil
	case "low":
		return FilterLow, nil
	case "medium":
		return FilterMedium, nil
	case "high":
		return FilterHigh, nil
	}
	return FilterAny, fmt.Errorf("%w: %q", ErrInvalidPriorityFilter, s)
}

// Matches returns true if a task with the given priority passes the filter.
func (f PriorityFilter) Matches(p Priority) bool {
	return f == FilterAny || Priority(f) == p
}

// Next returns the next filter value (any → low → medium → high → any).
func (f PriorityFilter) Next() PriorityFilter {
	for i, v := range priorityFilterOrder {
		if v == f {
			return priorityFilterOrder[(i+1)%len(priorityFilterOrder)]
		}
	}
	return FilterAny
}

// String returns the config/flag representation of the filter.
func (f PriorityFilter) String() string {
	if f == FilterAny {
		return "any"
	}
	return string(f)
}

// Display returns a human-readable representation of the filter.
func (f PriorityFilter) Display() string {
	if f == FilterAny {
		return "Any"
	}
	return Priority(f).Display()
}
