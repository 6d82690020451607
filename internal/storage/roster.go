// Package storage provides file-backed read models for the console, such as
// the employee roster snapshot used by assignment pickers.
package storage

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Employee is one roster entry.
type Employee struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Role string `yaml:"role"`
}

// RosterFile is the top-level structure of roster.yaml.
type RosterFile struct {
	Version   string     `yaml:"version"`
	Employees []Employee `yaml:"employees"`
}

// RosterStore defines read-only access to the employee roster. The roster is
// loaded once per session and treated as an immutable snapshot; there is no
// save path from the console.
type RosterStore interface {
	Load() error
	GetAll() []Employee
	Get(employeeID string) (*Employee, error)
	ByRole(role string) []Employee
}

type fileRosterStore struct {
	path string
	data RosterFile
}

// NewRosterStore creates a RosterStore backed by the YAML file at path.
func NewRosterStore(path string) RosterStore {
	return &fileRosterStore{path: path}
}

// Load reads the roster file. A missing file yields an empty roster rather
// than an error so the console still starts without one.
func (s *fileRosterStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.data = RosterFile{Version: "1.0"}
			return nil
		}
		return fmt.Errorf("reading roster %s: %w", s.path, err)
	}

	var file RosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing roster %s: %w", s.path, err)
	}
	s.data = file
	return nil
}

// GetAll returns all roster entries sorted by name.
func (s *fileRosterStore) GetAll() []Employee {
	out := make([]Employee, len(s.data.Employees))
	copy(out, s.data.Employees)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Get returns the roster entry with the given employee ID.
func (s *fileRosterStore) Get(employeeID string) (*Employee, error) {
	for i := range s.data.Employees {
		if s.data.Employees[i].ID == employeeID {
			e := s.data.Employees[i]
			return &e, nil
		}
	}
	return nil, fmt.Errorf("employee %s not found in roster", employeeID)
}

// ByRole returns the roster entries with the given role, sorted by name.
func (s *fileRosterStore) ByRole(role string) []Employee {
	var out []Employee
	for _, e := range s.data.Employees {
		if e.Role == role {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
