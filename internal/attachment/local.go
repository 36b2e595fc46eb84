package attachment

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/report_intake/internal/models"
)

var (
	ErrUnsupportedType   = errors.New("only image attachments are accepted")
	ErrForeignAttachment = errors.New("attachment was not uploaded to this gateway")
)

var imageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".heic": "image/heic",
}

// LocalStore сохраняет загруженные фото на диск шлюза до отправки заявления
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve attachment dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create attachment dir: %w", err)
	}
	return &LocalStore{dir: abs}, nil
}

// Save записывает файл под случайным именем и возвращает вложение с file:// ссылкой
func (s *LocalStore) Save(filename, contentType string, r io.Reader) (models.Attachment, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	mimeType := detectType(ext, contentType)
	if !strings.HasPrefix(mimeType, "image/") {
		return models.Attachment{}, ErrUnsupportedType
	}

	path := filepath.Join(s.dir, uuid.NewString()+ext)
	f, err := os.Create(path)
	if err != nil {
		return models.Attachment{}, fmt.Errorf("failed to create attachment file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(path)
		return models.Attachment{}, fmt.Errorf("failed to write attachment: %w", err)
	}
	if err := f.Close(); err != nil {
		return models.Attachment{}, fmt.Errorf("failed to close attachment: %w", err)
	}

	return models.Attachment{
		LocalURI: "file://" + filepath.ToSlash(path),
		MimeType: mimeType,
		Filename: filepath.Base(filename),
	}, nil
}

// name возвращает имя файла вложения внутри каталога хранилища.
// Принимаются только ссылки, выданные Save: file://<dir>/<имя> без вложенных путей.
func (s *LocalStore) name(a models.Attachment) (string, error) {
	raw, ok := strings.CutPrefix(a.LocalURI, "file://")
	if !ok || raw == "" || strings.Contains(raw, "..") {
		return "", ErrForeignAttachment
	}
	path := filepath.FromSlash(raw)
	if filepath.Clean(path) != path || filepath.Dir(path) != s.dir {
		return "", ErrForeignAttachment
	}
	return filepath.Base(path), nil
}

// Verify проверяет, что вложение выдано этим хранилищем и файл на месте
func (s *LocalStore) Verify(a models.Attachment) error {
	name, err := s.name(a)
	if err != nil {
		return err
	}
	root, err := os.OpenRoot(s.dir)
	if err != nil {
		return fmt.Errorf("failed to open attachment dir: %w", err)
	}
	defer root.Close()
	if _, err := root.Stat(name); err != nil {
		return fmt.Errorf("%w: %v", ErrForeignAttachment, err)
	}
	return nil
}

// Open читает вложение. Файлы вне каталога хранилища недоступны.
func (s *LocalStore) Open(a models.Attachment) (io.ReadCloser, error) {
	name, err := s.name(a)
	if err != nil {
		return nil, err
	}
	return os.OpenInRoot(s.dir, name)
}

// Remove удаляет файл вложения. Уже удаленный файл ошибкой не считается.
func (s *LocalStore) Remove(a models.Attachment) error {
	name, err := s.name(a)
	if err != nil {
		return err
	}
	root, err := os.OpenRoot(s.dir)
	if err != nil {
		return fmt.Errorf("failed to open attachment dir: %w", err)
	}
	defer root.Close()
	if err := root.Remove(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove attachment: %w", err)
	}
	return nil
}

func detectType(ext, contentType string) string {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil && mediaType != "application/octet-stream" {
		return mediaType
	}
	if t, ok := imageTypes[ext]; ok {
		return t
	}
	return "application/octet-stream"
}
