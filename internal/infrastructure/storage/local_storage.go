package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalStorage implements the DocumentStorage collaborator on the
// local filesystem. Files live under dir/<ownerID>/<docType>-<ts>; the
// storage ref is the path relative to dir.
type LocalStorage struct {
	dir     string
	baseURL string
}

func NewLocalStorage(dir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &LocalStorage{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *LocalStorage) Put(ctx context.Context, ownerID uuid.UUID, docType string, data []byte) (string, error) {
	ownerDir := filepath.Join(s.dir, ownerID.String())
	if err := os.MkdirAll(ownerDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create owner dir: %w", err)
	}

	name := fmt.Sprintf("%s-%d", sanitize(docType), time.Now().UnixNano())
	path := filepath.Join(ownerDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write document: %w", err)
	}

	return filepath.Join(ownerID.String(), name), nil
}

func (s *LocalStorage) URL(storageRef string) string {
	return s.baseURL + "/files/" + filepath.ToSlash(storageRef)
}

func (s *LocalStorage) Delete(ctx context.Context, storageRef string) error {
	return os.Remove(filepath.Join(s.dir, filepath.FromSlash(storageRef)))
}

// Dir returns the storage root, used to mount the static file route.
func (s *LocalStorage) Dir() string {
	return s.dir
}

func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, name)
}
