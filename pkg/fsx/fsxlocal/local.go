package fsxlocal

import (
	"context"
	"os"
	"path/filepath"

	"github.com/Abraxas-365/agepipe/pkg/fsx"
)

// LocalFileSystem implements fsx.FileSystem using local disk
type LocalFileSystem struct {
	basePath string // Root directory for all files
}

// NewLocalFileSystem creates a new local file system
// basePath: root directory (e.g., "./data" or "/tmp/agepipe")
func NewLocalFileSystem(basePath string) (*LocalFileSystem, error) {
	// Create base directory if it doesn't exist
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fsx.Registry().NewWithCause(fsx.ErrWriteFailed, err).WithDetail("path", basePath)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fsx.Registry().NewWithCause(fsx.ErrStatFailed, err).WithDetail("path", basePath)
	}

	return &LocalFileSystem{
		basePath: absPath,
	}, nil
}

// ============================================================================
// FileReader Implementation
// ============================================================================

func (fs *LocalFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	fullPath := fs.fullPath(path)
	data, err := os.ReadFile(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fsx.Registry().New(fsx.ErrNotFound).WithDetail("path", path)
		}
		return nil, fsx.Registry().NewWithCause(fsx.ErrReadFailed, err).WithDetail("path", path)
	}
	return data, nil
}

func (fs *LocalFileSystem) Stat(ctx context.Context, path string) (fsx.FileInfo, error) {
	fullPath := fs.fullPath(path)
	info, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fsx.FileInfo{}, fsx.Registry().New(fsx.ErrNotFound).WithDetail("path", path)
		}
		return fsx.FileInfo{}, fsx.Registry().NewWithCause(fsx.ErrStatFailed, err).WithDetail("path", path)
	}

	return fsx.FileInfo{
		Name:    info.Name(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
		IsDir:   info.IsDir(),
	}, nil
}

func (fs *LocalFileSystem) Exists(ctx context.Context, path string) (bool, error) {
	fullPath := fs.fullPath(path)
	_, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fsx.Registry().NewWithCause(fsx.ErrStatFailed, err).WithDetail("path", path)
	}
	return true, nil
}

// ============================================================================
// FileWriter Implementation
// ============================================================================

func (fs *LocalFileSystem) WriteFile(ctx context.Context, path string, data []byte) error {
	fullPath := fs.fullPath(path)

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fsx.Registry().NewWithCause(fsx.ErrWriteFailed, err).WithDetail("path", path)
	}

	// Write file
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return fsx.Registry().NewWithCause(fsx.ErrWriteFailed, err).WithDetail("path", path)
	}

	return nil
}

// ============================================================================
// PathOperations Implementation
// ============================================================================

func (fs *LocalFileSystem) Join(elem ...string) string {
	return filepath.Join(elem...)
}

// ============================================================================
// Helper Methods
// ============================================================================

// fullPath converts a relative path to absolute path
func (fs *LocalFileSystem) fullPath(path string) string {
	return filepath.Join(fs.basePath, path)
}

// GetBasePath returns the base path
func (fs *LocalFileSystem) GetBasePath() string {
	return fs.basePath
}

var _ fsx.FileSystem = (*LocalFileSystem)(nil)
