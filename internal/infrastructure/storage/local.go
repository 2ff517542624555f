package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

const publicPrefix = "/uploads/news/"

// MaxUploadBytes is the default image size cap.
const MaxUploadBytes = 5 << 20

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// LocalStore keeps uploaded news images on the local filesystem and
// serves them under /uploads/news/.
type LocalStore struct {
	dir      string
	maxBytes int64
	now      func() time.Time
}

func NewLocalStore(dir string, maxBytes int64) (*LocalStore, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if maxBytes <= 0 {
		maxBytes = MaxUploadBytes
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory %s: %w", dir, err)
	}

	return &LocalStore{
		dir:      dir,
		maxBytes: maxBytes,
		now:      time.Now,
	}, nil
}

// Dir reports the directory backing the store, for the file server.
func (s *LocalStore) Dir() string {
	return s.dir
}

// Save writes the image under a collision-free generated name and
// returns its public path.
func (s *LocalStore) Save(_ context.Context, originalName string, data []byte) (string, error) {
	if int64(len(data)) > s.maxBytes {
		return "", fmt.Errorf("image exceeds %d bytes", s.maxBytes)
	}

	ext := strings.ToLower(path.Ext(originalName))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("unsupported image extension %q", ext)
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("read random bytes for file name: %w", err)
	}
	name := fmt.Sprintf("%d-%s%s", s.now().UnixMilli(), hex.EncodeToString(suffix), ext)

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write image %s: %w", name, err)
	}

	return publicPrefix + name, nil
}

// Delete removes a stored image by its public path. Paths outside
// /uploads/news/ are rejected so callers cannot reach other files.
func (s *LocalStore) Delete(_ context.Context, publicPath string) error {
	name, ok := strings.CutPrefix(publicPath, publicPrefix)
	if !ok || name == "" || strings.Contains(name, "/") || strings.Contains(name, "..") {
		return fmt.Errorf("refusing to delete path outside upload directory: %s", publicPath)
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("remove image %s: %w", name, err)
	}
	return nil
}

// ListFiles reports the public paths of every stored image.
func (s *LocalStore) ListFiles(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read upload directory %s: %w", s.dir, err)
	}

	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		out = append(out, publicPrefix+entry.Name())
	}
	return out, nil
}
