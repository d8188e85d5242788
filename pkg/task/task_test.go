package task

import (
	"errors"
	"testing"
)

func TestNewTask(t *testing.T) {
	task := New("buy milk")

	if task.Status != StatusPending {
		t.Errorf("expected Status 'pending', got '%s'", task.Status)
	}
	if task.Description != "buy milk" {
		t.Errorf("expected Description 'buy milk', got '%s'", task.Description)
	}
	if task.String() != "[pending] buy milk" {
		t.Errorf("unexpected record text: %q", task.String())
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusComplete} {
		if !s.IsValid() {
			t.Errorf("expected %s to be valid", s)
		}
	}

	invalid := Status("bogus")
	if invalid.IsValid() {
		t.Error("expected 'bogus' to be invalid")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantErr  bool
		wantStat Status
		wantDesc string
	}{
		{"pending", "[pending] buy milk", false, StatusPending, "buy milk"},
		{"complete", "[complete] buy milk", false, StatusComplete, "buy milk"},
		{"empty description", "[pending] ", false, StatusPending, ""},
		{"bare tag", "[complete]", false, StatusComplete, ""},
		{"tag text in description", "[pending] [complete] odd", false, StatusPending, "[complete] odd"},
		{"no tag", "buy milk", true, "", ""},
		{"blank line", "", true, "", ""},
		{"unknown tag", "[done] buy milk", true, "", ""},
		{"tag without space", "[pending]buy milk", true, "", ""},
		{"unclosed tag", "[pending buy milk", true, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := Parse(tt.line)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedRecord) {
					t.Errorf("expected ErrMalformedRecord, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if task.Status != tt.wantStat {
				t.Errorf("Status: got %q, want %q", task.Status, tt.wantStat)
			}
			if task.Description != tt.wantDesc {
				t.Errorf("Description: got %q, want %q", task.Description, tt.wantDesc)
			}
		})
	}
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"0", 0, false},
		{"+1", 1, false},
		{" 1", 0, true},
		{"1 ", 0, true},
		{"+", 0, true},
		{"++1", 0, true},
		{"abc", 0, true},
		{"-1", 0, true},
		{"1.5", 0, true},
		{"", 0, true},
		{"99999999999999999999999", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := ParseIndex(tt.arg)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidIndex) {
					t.Errorf("expected ErrInvalidIndex, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func sampleList() List {
	return List{
		New("first"),
		{Status: StatusComplete, Description: "second"},
		New("third"),
	}
}

func TestListComplete(t *testing.T) {
	list := sampleList()

	updated, done, err := list.Complete(1)
	if err != nil {
		t.Fatalf("failed to complete: %v", err)
	}
	if done.String() != "[complete] first" {
		t.Errorf("unexpected completed task: %q", done)
	}
	if len(updated) != len(list) {
		t.Fatalf("expected %d tasks, got %d", len(list), len(updated))
	}
	for i := 1; i < len(list); i++ {
		if updated[i] != list[i] {
			t.Errorf("task %d changed: %q -> %q", i+1, list[i], updated[i])
		}
	}
	if list[0].Status != StatusPending {
		t.Error("expected original list to be left untouched")
	}
}

func TestListCompleteIsIdempotent(t *testing.T) {
	list := List{New("[pending] literal tag")}

	once, _, err := list.Complete(1)
	if err != nil {
		t.Fatalf("failed to complete: %v", err)
	}
	twice, _, err := once.Complete(1)
	if err != nil {
		t.Fatalf("failed to complete again: %v", err)
	}
	if once[0] != twice[0] {
		t.Errorf("expected repeated complete to be a no-op: %q vs %q", once[0], twice[0])
	}
	if twice[0].String() != "[complete] [pending] literal tag" {
		t.Errorf("description not preserved: %q", twice[0])
	}
}

func TestListRemove(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  []string
	}{
		{"first", 1, []string{"[complete] second", "[pending] third"}},
		{"middle", 2, []string{"[pending] first", "[pending] third"}},
		{"last", 3, []string{"[pending] first", "[complete] second"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := sampleList()
			updated, removed, err := list.Remove(tt.index)
			if err != nil {
				t.Fatalf("failed to remove: %v", err)
			}
			if removed != list[tt.index-1] {
				t.Errorf("removed %q, want %q", removed, list[tt.index-1])
			}
			if len(updated) != len(tt.want) {
				t.Fatalf("expected %d tasks, got %d", len(tt.want), len(updated))
			}
			for i, want := range tt.want {
				if updated[i].String() != want {
					t.Errorf("task %d: got %q, want %q", i+1, updated[i], want)
				}
			}
			if len(list) != 3 {
				t.Error("expected original list to be left untouched")
			}
		})
	}
}

func TestListIndexOutOfRange(t *testing.T) {
	list := sampleList()

	for _, i := range []int{0, len(list) + 1, -1} {
		if _, _, err := list.Complete(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Complete(%d): expected ErrIndexOutOfRange, got %v", i, err)
		}
		if _, _, err := list.Remove(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Remove(%d): expected ErrIndexOutOfRange, got %v", i, err)
		}
		if _, err := list.Get(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Get(%d): expected ErrIndexOutOfRange, got %v", i, err)
		}
	}

	if _, _, err := (List{}).Remove(1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange on empty list, got %v", err)
	}
}

func TestIsValidationError(t *testing.T) {
	if !IsValidationError(ErrInvalidIndex) {
		t.Error("expected ErrInvalidIndex to be a validation error")
	}
	if _, err := ParseIndex("x"); !IsValidationError(err) {
		t.Error("expected wrapped ErrInvalidIndex to be a validation error")
	}
	if IsValidationError(ErrMalformedRecord) {
		t.Error("expected ErrMalformedRecord not to be a validation error")
	}
	if IsValidationError(errors.New("disk full")) {
		t.Error("expected arbitrary error not to be a validation error")
	}
}
