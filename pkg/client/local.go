package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/junaifcp/swift-resume/pkg/resume"
)

// FileFallback persists the resume list as one JSON blob on disk. It backs
// unauthenticated sessions and the degraded path when the remote API is
// unreachable.
type FileFallback struct {
	Path string
}

// NewFileFallback stores the blob under the user config directory.
func NewFileFallback() (*FileFallback, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}
	return &FileFallback{Path: filepath.Join(dir, "swift-resume", "resumes.json")}, nil
}

// Load reads the saved list. A missing file is an empty list, not an error.
func (f *FileFallback) Load() ([]resume.Resume, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return []resume.Resume{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read fallback: %w", err)
	}

	var resumes []resume.Resume
	if err := json.Unmarshal(data, &resumes); err != nil {
		return nil, fmt.Errorf("decode fallback: %w", err)
	}
	return resumes, nil
}

// Save writes the whole list atomically (temp file + rename), so a crash
// mid-write never corrupts the previous blob.
func (f *FileFallback) Save(resumes []resume.Resume) error {
	data, err := json.Marshal(resumes)
	if err != nil {
		return fmt.Errorf("encode fallback: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return fmt.Errorf("create fallback dir: %w", err)
	}

	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write fallback: %w", err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		return fmt.Errorf("replace fallback: %w", err)
	}
	return nil
}
