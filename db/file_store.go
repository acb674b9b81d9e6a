package db

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"sync"

	"github.com/goccy/go-json"

	"github.com/faresmergui/docker-student-stack/models"
)

// ErrRosterUnavailable is returned when the data file is missing or cannot be
// parsed. Handlers map it to HTTP 500 without leaking the underlying detail.
var ErrRosterUnavailable = errors.New("student roster unavailable")

// FileStore serves the student roster from a read-only JSON data file.
// The collection is loaded lazily on first use and cached for the lifetime of
// the process; a failed load is never cached, so a file that appears later is
// picked up on the next request.
type FileStore struct {
	path string

	mu       sync.Mutex
	students []models.Student
	loaded   bool
}

// NewFileStore creates a FileStore backed by the data file at path.
// The file is not touched until the first read.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// GetAllStudents returns every student record, sorted by name.
func (s *FileStore) GetAllStudents() ([]models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		students, err := loadRoster(s.path)
		if err != nil {
			log.Printf("Error loading roster from %s: %v", s.path, err)
			return nil, fmt.Errorf("%w: %v", ErrRosterUnavailable, err)
		}
		s.students = students
		s.loaded = true
		log.Printf("Loaded %d student records from %s", len(students), s.path)
	}

	// Copy so callers cannot mutate the cached collection.
	out := make([]models.Student, len(s.students))
	copy(out, s.students)
	return out, nil
}

func loadRoster(path string) ([]models.Student, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var doc models.RosterDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse data file: %w", err)
	}
	if doc.StudentAge == nil {
		return nil, errors.New("data file has no student_age object")
	}

	students := make([]models.Student, 0, len(doc.StudentAge))
	for name, age := range doc.StudentAge {
		students = append(students, models.Student{Name: name, Age: age})
	}
	sort.Slice(students, func(i, j int) bool {
		return students[i].Name < students[j].Name
	})
	return students, nil
}
