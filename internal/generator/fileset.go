// Package generator materializes rendered artifacts onto a filesystem. A
// plan (ordered path to content mapping) is computed fully up front, then
// directories are created and files written in plan order. Writing
// overwrites without merging, so repeated runs converge to the same tree.
package generator

import "path"

// File is one planned artifact: a slash-separated relative path and its
// fully rendered content.
type File struct {
	Path    string
	Content string
}

// FileSet is an ordered path-to-content mapping. Order is construction
// order and carries no meaning beyond reproducible writes and logs.
type FileSet struct {
	files []File
	index map[string]int
}

// NewFileSet returns an empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{index: make(map[string]int)}
}

// Add appends a file to the set. Adding a path twice replaces the content
// in place; the original position is kept.
func (s *FileSet) Add(p, content string) {
	if i, ok := s.index[p]; ok {
		s.files[i].Content = content
		return
	}
	s.index[p] = len(s.files)
	s.files = append(s.files, File{Path: p, Content: content})
}

// Files returns the planned files in construction order.
func (s *FileSet) Files() []File {
	out := make([]File, len(s.files))
	copy(out, s.files)
	return out
}

// Paths returns the planned paths in construction order.
func (s *FileSet) Paths() []string {
	out := make([]string, 0, len(s.files))
	for _, f := range s.files {
		out = append(out, f.Path)
	}
	return out
}

// Dirs returns the unique parent directories of every planned file, in
// first-seen order.
func (s *FileSet) Dirs() []string {
	seen := make(map[string]bool)
	var out []string
	for _, f := range s.files {
		d := path.Dir(f.Path)
		if d == "." || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}

// Len returns the number of planned files.
func (s *FileSet) Len() int {
	return len(s.files)
}
