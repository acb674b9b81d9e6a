package db

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeDataFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "student_age.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write data file: %v", err)
	}
	return path
}

func TestFileStore_GetAllStudents_ReturnsSortedRecords(t *testing.T) {
	path := writeDataFile(t, `{"student_age": {"bob": "13", "alice": "12", "carol": "20"}}`)
	store := NewFileStore(path)

	students, err := store.GetAllStudents()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(students) != 3 {
		t.Fatalf("expected 3 records, got %d", len(students))
	}

	wantNames := []string{"alice", "bob", "carol"}
	wantAges := []string{"12", "13", "20"}
	for i, s := range students {
		if s.Name != wantNames[i] {
			t.Errorf("record %d: expected name %q, got %q", i, wantNames[i], s.Name)
		}
		if s.Age != wantAges[i] {
			t.Errorf("record %d: expected age %q, got %q", i, wantAges[i], s.Age)
		}
	}
}

func TestFileStore_GetAllStudents_MissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))

	_, err := store.GetAllStudents()
	if err == nil {
		t.Fatal("expected error for missing data file, got nil")
	}
	if !errors.Is(err, ErrRosterUnavailable) {
		t.Errorf("expected ErrRosterUnavailable, got %v", err)
	}
}

func TestFileStore_GetAllStudents_MalformedFile(t *testing.T) {
	path := writeDataFile(t, `{"student_age": [not json`)
	store := NewFileStore(path)

	_, err := store.GetAllStudents()
	if !errors.Is(err, ErrRosterUnavailable) {
		t.Errorf("expected ErrRosterUnavailable for malformed file, got %v", err)
	}
}

func TestFileStore_GetAllStudents_MissingStudentAgeKey(t *testing.T) {
	path := writeDataFile(t, `{"other": {}}`)
	store := NewFileStore(path)

	if _, err := store.GetAllStudents(); !errors.Is(err, ErrRosterUnavailable) {
		t.Errorf("expected ErrRosterUnavailable for missing student_age object, got %v", err)
	}
}

func TestFileStore_FailedLoadIsRetried(t *testing.T) {
	path := filepath.Join(t.TempDir(), "student_age.json")
	store := NewFileStore(path)

	if _, err := store.GetAllStudents(); err == nil {
		t.Fatal("expected error before the data file exists")
	}

	if err := os.WriteFile(path, []byte(`{"student_age": {"alice": "12"}}`), 0o644); err != nil {
		t.Fatalf("failed to write data file: %v", err)
	}

	students, err := store.GetAllStudents()
	if err != nil {
		t.Fatalf("expected the store to recover once the file exists, got %v", err)
	}
	if len(students) != 1 || students[0].Name != "alice" {
		t.Errorf("unexpected records after recovery: %+v", students)
	}
}

func TestFileStore_CachedCollectionIsImmutable(t *testing.T) {
	path := writeDataFile(t, `{"student_age": {"alice": "12"}}`)
	store := NewFileStore(path)

	first, err := store.GetAllStudents()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first[0].Name = "mallory"

	second, err := store.GetAllStudents()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second[0].Name != "alice" {
		t.Errorf("caller mutation leaked into the cached collection: %+v", second)
	}
}
