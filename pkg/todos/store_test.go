package todos

import (
	"errors"
	"testing"
)

func TestAddAssignsSequentialIDs(t *testing.T) {
	s := NewStore()

	a, err := s.Add("first")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	b, _ := s.Add("second")

	if a.ID != 1 || b.ID != 2 {
		t.Errorf("IDs = %d, %d, want 1, 2", a.ID, b.ID)
	}
}

func TestAddRejectsBlankTitle(t *testing.T) {
	s := NewStore()

	for _, title := range []string{"", "   ", "\t\n"} {
		if _, err := s.Add(title); !errors.Is(err, ErrEmptyTitle) {
			t.Errorf("Add(%q) err = %v, want ErrEmptyTitle", title, err)
		}
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestListOrderedByID(t *testing.T) {
	s := NewSeededStore()

	list := s.List()
	if len(list) != 3 {
		t.Fatalf("Len = %d, want 3", len(list))
	}
	for i, todo := range list {
		if todo.ID != i+1 {
			t.Errorf("list[%d].ID = %d, want %d", i, todo.ID, i+1)
		}
	}
}

func TestToggleFlipsDone(t *testing.T) {
	s := NewStore()
	a, _ := s.Add("x")

	got, err := s.Toggle(a.ID)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !got.Done {
		t.Error("Done = false after toggle, want true")
	}

	got, _ = s.Toggle(a.ID)
	if got.Done {
		t.Error("Done = true after second toggle, want false")
	}
}

func TestRename(t *testing.T) {
	s := NewStore()
	a, _ := s.Add("old")

	got, err := s.Rename(a.ID, "new")
	if err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if got.Title != "new" {
		t.Errorf("Title = %q, want new", got.Title)
	}

	if _, err := s.Rename(a.ID, " "); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("blank rename err = %v, want ErrEmptyTitle", err)
	}
}

func TestDelete(t *testing.T) {
	s := NewStore()
	a, _ := s.Add("x")

	if err := s.Delete(a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(a.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete err = %v, want ErrNotFound", err)
	}
	if err := s.Delete(a.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestMissingIDErrors(t *testing.T) {
	s := NewStore()

	if _, err := s.Get(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get err = %v, want ErrNotFound", err)
	}
	if _, err := s.Toggle(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("Toggle err = %v, want ErrNotFound", err)
	}
	if _, err := s.Rename(42, "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Rename err = %v, want ErrNotFound", err)
	}
}
