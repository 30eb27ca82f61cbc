package session

import (
	"os"
	"path/filepath"
)

// FilePort persists session entries as plain files inside dir,
// one file per name.
type FilePort struct {
	dir string
}

// NewFilePort creates a file-backed port rooted at dir.
func NewFilePort(dir string) *FilePort {
	return &FilePort{dir: dir}
}

// Dir returns the directory the port writes into.
func (p *FilePort) Dir() string { return p.dir }

func (p *FilePort) Read(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(p.dir, name))
	if os.IsNotExist(err) {
		return nil, nil
	}
	return data, err
}

func (p *FilePort) Write(name string, data []byte) error {
	if err := os.MkdirAll(p.dir, 0o700); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(p.dir, name), data, 0o600)
}

func (p *FilePort) Clear(names ...string) error {
	for _, name := range names {
		if err := os.Remove(filepath.Join(p.dir, name)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// MemPort is an in-memory Port for tests.
type MemPort struct {
	entries map[string][]byte
}

// NewMemPort creates an empty in-memory port.
func NewMemPort() *MemPort {
	return &MemPort{entries: make(map[string][]byte)}
}

func (p *MemPort) Read(name string) ([]byte, error) {
	return p.entries[name], nil
}

func (p *MemPort) Write(name string, data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	p.entries[name] = cp
	return nil
}

func (p *MemPort) Clear(names ...string) error {
	for _, name := range names {
		delete(p.entries, name)
	}
	return nil
}
