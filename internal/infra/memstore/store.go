// Package memstore provides an in-memory implementation of TaskRepository.
// Tasks live only for the lifetime of the process.
package memstore

import (
	"slices"
	"sync"

	"github.com/runoshun/task-tracker/internal/domain"
)

// Ensure Store implements domain.TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)

// storeData holds the ordered task list and ID counter.
// Fields are ordered to minimize memory padding.
type storeData struct {
	tasks      []*domain.Task // Insertion order
	nextTaskID int
}

// Store implements domain.TaskRepository in memory.
// Slices are never modified in place; every write installs a fresh slice,
// so a List result stays stable while the store changes.
type Store struct {
	data storeData
	mu   sync.RWMutex
}

// New creates an empty Store whose first ID is 1.
func New() *Store {
	return &Store{
		data: storeData{nextTaskID: 1},
	}
}

// Get retrieves a copy of the task with the given ID, or nil if absent.
func (s *Store) Get(id int) (*domain.Task, error) {
	var task *domain.Task
	s.withLock(func(data *storeData) {
		if i := indexOf(data.tasks, id); i >= 0 {
			task = data.tasks[i].Clone()
		}
	})
	return task, nil
}

// List retrieves copies of all tasks in insertion order.
func (s *Store) List() ([]*domain.Task, error) {
	var tasks []*domain.Task
	s.withLock(func(data *storeData) {
		tasks = make([]*domain.Task, 0, len(data.tasks))
		for _, t := range data.tasks {
			tasks = append(tasks, t.Clone())
		}
	})
	return tasks, nil
}

// Save appends a new task, or replaces the task with the same ID in place.
func (s *Store) Save(task *domain.Task) error {
	stored := task.Clone()
	s.withLockWrite(func(data *storeData) {
		next := slices.Clone(data.tasks)
		if i := indexOf(next, task.ID); i >= 0 {
			next[i] = stored
		} else {
			next = append(next, stored)
		}
		data.tasks = next
		if task.ID >= data.nextTaskID {
			data.nextTaskID = task.ID + 1
		}
	})
	return nil
}

// Delete removes the task with the given ID. Missing IDs are ignored.
func (s *Store) Delete(id int) error {
	s.withLockWrite(func(data *storeData) {
		if indexOf(data.tasks, id) < 0 {
			return
		}
		data.tasks = slices.DeleteFunc(slices.Clone(data.tasks), func(t *domain.Task) bool {
			return t.ID == id
		})
	})
	return nil
}

// NextID reserves and returns the next task ID.
// IDs are never reused, even after deletes.
func (s *Store) NextID() (int, error) {
	var id int
	s.withLockWrite(func(data *storeData) {
		id = data.nextTaskID
		data.nextTaskID++
	})
	return id, nil
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	var n int
	s.withLock(func(data *storeData) {
		n = len(data.tasks)
	})
	return n
}

func (s *Store) withLock(fn func(data *storeData)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.data)
}

func (s *Store) withLockWrite(fn func(data *storeData)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.data)
}

func indexOf(tasks []*domain.Task, id int) int {
	return slices.IndexFunc(tasks, func(t *domain.Task) bool {
		return t.ID == id
	})
}
