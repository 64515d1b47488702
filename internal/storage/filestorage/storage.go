package filestorage

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

// AssetStore — хранилище загруженных файлов. Save возвращает постоянный
// публичный URL; именно он попадает в запись работы.
type AssetStore interface {
	Save(ctx context.Context, file *multipart.FileHeader, subPath string) (assetURL string, fileSize int64, err error)
	Delete(ctx context.Context, assetURL string) error
	BaseURL() string
}

// LocalAssetStore хранит файлы на локальном диске и раздаёт их по baseURL
type LocalAssetStore struct {
	baseDir string // каталог на диске, например "./uploads"
	baseURL string // URL-префикс, например "http://localhost:8080/uploads"
	maxSize int64  // максимальный размер файла в байтах, 0 — без ограничения
}

func NewLocalAssetStore(baseDir, baseURL string, maxSize int64) (*LocalAssetStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}

	return &LocalAssetStore{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
		maxSize: maxSize,
	}, nil
}

// Save кладёт файл под уникальным именем и возвращает его публичный URL.
// Имя файла не берётся у клиента, чтобы загрузки не перетирали друг друга.
func (s *LocalAssetStore) Save(ctx context.Context, file *multipart.FileHeader, subPath string) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	if s.maxSize > 0 && file.Size > s.maxSize {
		return "", 0, fmt.Errorf("file too large: %d bytes (max %d)", file.Size, s.maxSize)
	}

	relPath := path.Join(subPath, uuid.NewString()+sanitizeExt(file.Filename))
	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", 0, fmt.Errorf("failed to create directories: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", 0, fmt.Errorf("failed to open source file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	done := make(chan struct{})
	var size int64
	var copyErr error

	go func() {
		size, copyErr = io.Copy(dst, src)
		close(done)
	}()

	select {
	case <-done:
		if copyErr != nil {
			_ = os.Remove(fullPath)
			return "", 0, fmt.Errorf("failed to copy file: %w", copyErr)
		}
	case <-ctx.Done():
		_ = os.Remove(fullPath)
		return "", 0, ctx.Err()
	}

	return s.baseURL + "/" + relPath, size, nil
}

// Delete удаляет файл по его публичному URL
func (s *LocalAssetStore) Delete(ctx context.Context, assetURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	relPath, ok := strings.CutPrefix(assetURL, s.baseURL+"/")
	if !ok {
		return fmt.Errorf("asset url %q does not belong to this store", assetURL)
	}

	return os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(relPath)))
}

// BaseURL возвращает URL-префикс хранилища
func (s *LocalAssetStore) BaseURL() string {
	return s.baseURL
}

func sanitizeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, r := range ext {
		if r != '.' && (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
