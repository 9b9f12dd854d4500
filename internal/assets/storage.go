package assets

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Storage writes uploaded files under root (the storage/app/public
// directory) and hands back the bare storage/... path that gets persisted
// on documents. ResolveImageURL expands that path again on reads.
type Storage struct {
	root string
}

func NewStorage(root string) (*Storage, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("storage root is empty")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &Storage{root: root}, nil
}

// Save stores the upload under a random name, keeping the original
// extension, and returns the document path ("storage/<name>").
func (s *Storage) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	defer file.Close()

	name, err := randomName(header.Filename)
	if err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(s.root, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return "storage/" + name, nil
}

// Dir is the filesystem directory served at /storage/app/public.
func (s *Storage) Dir() string {
	return s.root
}

func randomName(original string) (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	ext := strings.ToLower(path.Ext(path.Base(original)))
	if len(ext) > 8 {
		ext = ""
	}
	return hex.EncodeToString(buf) + ext, nil
}
