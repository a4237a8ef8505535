package agex

import (
	"context"
	"strings"

	"github.com/Abraxas-365/agepipe/pkg/fsx"
)

// LineSource supplies the raw roster lines.
type LineSource interface {
	ReadLines(ctx context.Context) ([]string, error)
}

// LineSink persists the serialized roster lines.
type LineSink interface {
	WriteLines(ctx context.Context, lines []string) error
}

// RosterStore reads and writes the roster file through an fsx.FileSystem.
// It implements both LineSource and LineSink: the pipeline reads from and
// writes back to the same file.
type RosterStore struct {
	fs   fsx.FileSystem
	path string
}

// NewRosterStore creates a store for the roster at path.
func NewRosterStore(fs fsx.FileSystem, path string) *RosterStore {
	return &RosterStore{
		fs:   fs,
		path: path,
	}
}

// Path returns the roster file path.
func (s *RosterStore) Path() string {
	return s.path
}

// ReadLines loads the roster file and splits it into lines. Trailing
// newlines are tolerated on read even though WriteLines never emits one.
// An empty file yields zero lines.
func (s *RosterStore) ReadLines(ctx context.Context) ([]string, error) {
	data, err := s.fs.ReadFile(ctx, s.path)
	if err != nil {
		return nil, err
	}

	content := strings.TrimRight(string(data), "\n")
	if content == "" {
		return []string{}, nil
	}
	return strings.Split(content, "\n"), nil
}

// WriteLines overwrites the roster file with the given lines joined by a
// single newline. No trailing newline is written; zero lines produce an
// empty file.
func (s *RosterStore) WriteLines(ctx context.Context, lines []string) error {
	return s.fs.WriteFile(ctx, s.path, []byte(strings.Join(lines, "\n")))
}

var (
	_ LineSource = (*RosterStore)(nil)
	_ LineSink   = (*RosterStore)(nil)
)
