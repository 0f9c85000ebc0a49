package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"accounthub-backend/pkg/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// MaxFileSize caps attachment uploads at 10MB.
const MaxFileSize = 10 << 20

var (
	ErrFileTooLarge        = errors.New("file size cannot exceed 10MB")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrInvalidKey          = errors.New("invalid object key")
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// UploadUsecase pushes user attachments to the object store.
type UploadUsecase interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (*UploadResult, error)
	Delete(ctx context.Context, key string) error
}

type UploadResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type uploadUsecase struct {
	store storage.ObjectStore
}

func NewUploadUsecase(store storage.ObjectStore) UploadUsecase {
	return &uploadUsecase{store: store}
}

func (u *uploadUsecase) Upload(ctx context.Context, filename, contentType string, data []byte) (*UploadResult, error) {
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return nil, ErrUnsupportedFileType
	}

	key := "user_uploads/" + uuid.New().String() + ext
	url, err := u.store.Put(ctx, key, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("upload attachment: %w", err)
	}

	log.Info().Str("key", key).Int("bytes", len(data)).Msg("attachment uploaded")
	return &UploadResult{Key: key, URL: url}, nil
}

func (u *uploadUsecase) Delete(ctx context.Context, key string) error {
	if key == "" || !strings.HasPrefix(key, "user_uploads/") {
		return ErrInvalidKey
	}
	if err := u.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete attachment: %w", err)
	}
	return nil
}
