package utils

import (
	"crypto/rand"
	"errors"
	"mime/multipart"
	"time"

	"github.com/oklog/ulid/v2"
)

var ErrFileTooLarge = errors.New("file size exceeds limit")

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	ValidateImageFile(file *multipart.FileHeader) error
}

type utils struct {
	maxFileSize int64
}

func New() IUtils {
	return &utils{
		maxFileSize: 10 * 1024 * 1024,
	}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// ValidateImageFile is a cheap size pre-check on the multipart header; the
// uploaded bytes are only trusted once the decode succeeds, so the part's
// Content-Type is ignored. Clients routinely send application/octet-stream
// for perfectly valid scans.
func (u *utils) ValidateImageFile(file *multipart.FileHeader) error {
	if file == nil {
		return errors.New("no file uploaded")
	}

	if file.Size > u.maxFileSize {
		return ErrFileTooLarge
	}

	return nil
}
