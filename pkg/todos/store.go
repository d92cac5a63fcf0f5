// Package todos holds the demo application's todo list: an in-memory
// store shared by the rendered pages and the JSON API.
package todos

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

// ErrNotFound is returned when a todo ID does not exist.
var ErrNotFound = errors.New("todos: not found")

// ErrEmptyTitle is returned when a todo is created or renamed with a
// blank title.
var ErrEmptyTitle = errors.New("todos: empty title")

// Todo is one todo list entry.
type Todo struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// Store is an in-memory todo store, safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	nextID int
	items  map[int]Todo
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{items: make(map[int]Todo)}
}

// NewSeededStore creates a store pre-populated with a few entries, for
// demos and tests.
func NewSeededStore() *Store {
	s := NewStore()
	s.Add("Learn the hook engine")
	s.Add("Wire up the differ")
	s.Add("Ship the thin client")
	return s
}

// List returns all todos ordered by ID.
func (s *Store) List() []Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Todo, 0, len(s.items))
	for _, t := range s.items {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Get returns the todo with the given ID.
func (s *Store) Get(id int) (Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.items[id]
	if !ok {
		return Todo{}, ErrNotFound
	}
	return t, nil
}

// Add creates a todo with the given title and returns it.
func (s *Store) Add(title string) (Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Todo{}, ErrEmptyTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	t := Todo{ID: s.nextID, Title: title}
	s.items[t.ID] = t
	return t, nil
}

// Rename changes a todo's title.
func (s *Store) Rename(id int, title string) (Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Todo{}, ErrEmptyTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.items[id]
	if !ok {
		return Todo{}, ErrNotFound
	}
	t.Title = title
	s.items[id] = t
	return t, nil
}

// Toggle flips a todo's done state and returns the updated entry.
func (s *Store) Toggle(id int) (Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.items[id]
	if !ok {
		return Todo{}, ErrNotFound
	}
	t.Done = !t.Done
	s.items[id] = t
	return t, nil
}

// Delete removes a todo.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	return nil
}

// Len returns the number of todos.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
