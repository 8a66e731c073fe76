package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStorage writes uploads below Root and serves them under URLPrefix.
type LocalStorage struct {
	Root      string
	URLPrefix string
}

func NewLocalStorage(root, urlPrefix string) *LocalStorage {
	return &LocalStorage{Root: root, URLPrefix: strings.TrimRight(urlPrefix, "/")}
}

func (s *LocalStorage) Save(_ context.Context, file *multipart.FileHeader, folder string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dir := filepath.Join(s.Root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := uuid.New().String() + "_" + filepath.Base(file.Filename)
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return path.Join(s.URLPrefix, folder, name), nil
}

func (s *LocalStorage) Delete(_ context.Context, ref string) error {
	if !strings.HasPrefix(ref, s.URLPrefix+"/") {
		return nil
	}
	rel := strings.TrimPrefix(ref, s.URLPrefix+"/")
	err := os.Remove(filepath.Join(s.Root, filepath.FromSlash(rel)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
