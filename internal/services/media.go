package services

import (
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Media buckets mirror the upload folders of each image-bearing entity.
var mediaBuckets = map[string]bool{
	"profile":      true,
	"services":     true,
	"projects":     true,
	"testimonials": true,
	"clients":      true,
	"blog":         true,
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

func EnsureStoragePath(base string, bucket string) (string, error) {
	dir := filepath.Join(base, bucket)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// SaveMedia writes an uploaded image under base/bucket and returns its storage path
// relative to base, e.g. "projects/<uuid>.png". That path is what entities store.
func SaveMedia(basePath, bucket, filename string, body io.Reader) (string, error) {
	if !mediaBuckets[bucket] {
		return "", ErrNotFound("Unknown media bucket")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !imageExtensions[ext] {
		return "", ErrBadRequest("Upload a valid image. The file you uploaded was either not an image or a corrupted image.")
	}
	bucketPath, err := EnsureStoragePath(basePath, bucket)
	if err != nil {
		return "", err
	}
	storageKey := uuid.NewString() + ext
	targetPath := filepath.Join(bucketPath, storageKey)

	file, err := os.Create(targetPath)
	if err != nil {
		return "", err
	}
	size, err := io.Copy(file, body)
	_ = file.Close()
	if err != nil {
		_ = os.Remove(targetPath)
		return "", err
	}
	if size == 0 {
		_ = os.Remove(targetPath)
		return "", ErrBadRequest("The submitted file is empty.")
	}
	return path.Join(bucket, storageKey), nil
}

// MediaURL renders a stored media path under the public media prefix.
// Absolute or already prefixed URLs are returned untouched; an empty path renders as nil.
func MediaURL(prefix, stored string) *string {
	stored = strings.TrimSpace(stored)
	if stored == "" {
		return nil
	}
	if strings.HasPrefix(stored, "http://") || strings.HasPrefix(stored, "https://") || strings.HasPrefix(stored, prefix) {
		return &stored
	}
	url := prefix + strings.TrimPrefix(stored, "/")
	return &url
}
