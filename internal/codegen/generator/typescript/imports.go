package typescript

import (
	"slices"
	"strings"
)

// ImportSet collects imported symbols per module path.
// Paths and names keep their first-seen order; repeated names are dropped.
type ImportSet struct {
	paths []string
	names map[string][]string
}

// Add registers names as imported from path.
func (s *ImportSet) Add(path string, names ...string) {
	if s.names == nil {
		s.names = make(map[string][]string)
	}
	list, ok := s.names[path]
	if !ok {
		s.paths = append(s.paths, path)
	}
	for _, name := range names {
		if !slices.Contains(list, name) {
			list = append(list, name)
		}
	}
	s.names[path] = list
}

// Paths returns the module paths in first-seen order.
func (s *ImportSet) Paths() []string { return slices.Clone(s.paths) }

// Names returns the symbols imported from path.
func (s *ImportSet) Names(path string) []string { return slices.Clone(s.names[path]) }

// Lines renders one import statement per path.
func (s *ImportSet) Lines() []string {
	lines := make([]string, 0, len(s.paths))
	for _, path := range s.paths {
		names := s.names[path]
		if len(names) == 0 {
			continue
		}
		lines = append(lines, "import { "+strings.Join(names, ", ")+" } from "+quoteString(path)+";")
	}
	return lines
}
