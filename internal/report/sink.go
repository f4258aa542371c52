package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sink persists a composed report under a name. Analytical code never calls
// a sink; only the composer's explicit WriteReport does.
type Sink interface {
	Write(name string, payload any) error
}

// FileSink writes reports as JSON files under a directory.
type FileSink struct {
	dir string
}

func NewFileSink(dir string) *FileSink {
	return &FileSink{dir: dir}
}

func (s *FileSink) Write(name string, payload any) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create reports directory: %w", err)
	}
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	if err := Encode(f, payload); err != nil {
		return fmt.Errorf("encode report %s: %w", name, err)
	}
	return nil
}
