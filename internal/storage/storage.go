// Package storage manages the on-disk upload tree served under /uploads.
package storage

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Subdirectories mirror the public /uploads URL layout.
var subdirs = []string{"images", "documents", "media", "profiles", "books"}

var allowedTypes = map[string]bool{
	// images
	"image/jpeg": true, "image/jpg": true, "image/png": true,
	"image/gif": true, "image/webp": true,
	// documents
	"application/pdf": true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":       true,
	"text/plain": true,
	// audio/video
	"video/mp4": true, "video/mpeg": true, "audio/mpeg": true, "audio/wav": true,
}

type Storage struct {
	root    string
	maxSize int64
}

// New creates the upload tree under root and returns the store.
func New(root string, maxSize int64) (*Storage, error) {
	for _, dir := range subdirs {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
		}
	}
	return &Storage{root: root, maxSize: maxSize}, nil
}

func (s *Storage) Root() string { return s.root }

func (s *Storage) MaxSize() int64 { return s.maxSize }

// Allowed reports whether the MIME type may be uploaded.
func (s *Storage) Allowed(mimeType string) bool {
	return allowedTypes[mimeType]
}

// CategoryDir routes a MIME type to its subdirectory.
func CategoryDir(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return "images"
	case strings.HasPrefix(mimeType, "video/"), strings.HasPrefix(mimeType, "audio/"):
		return "media"
	default:
		return "documents"
	}
}

// UniqueName sanitizes the original filename and appends a collision-proof
// suffix, preserving the extension.
func UniqueName(original string) string {
	ext := filepath.Ext(original)
	base := strings.TrimSuffix(filepath.Base(original), ext)
	var b strings.Builder
	for _, r := range base {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	suffix := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
	return b.String() + "_" + suffix + ext
}

// PathFor returns the relative on-disk path a new upload should be saved to.
func (s *Storage) PathFor(mimeType, original string) string {
	return filepath.Join(s.root, CategoryDir(mimeType), UniqueName(original))
}

// PublicURL maps a stored path to its /uploads URL.
func (s *Storage) PublicURL(path string) string {
	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	return "/uploads/" + filepath.ToSlash(rel)
}

// Remove deletes a stored file. Failures are logged and swallowed: the
// database row deletion proceeds regardless, accepting an orphaned file
// over a failed request.
func (s *Storage) Remove(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		slog.Error("failed to delete stored file", "module", "storage", "path", path, "error", err)
	}
}
