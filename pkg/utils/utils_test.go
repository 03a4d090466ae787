package utils

import (
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()

	first, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	require.Len(t, first, 26)

	second, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func header(size int64, contentType string) *multipart.FileHeader {
	h := make(textproto.MIMEHeader)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &multipart.FileHeader{Filename: "scan.png", Size: size, Header: h}
}

func TestValidateImageFile(t *testing.T) {
	u := New()

	require.NoError(t, u.ValidateImageFile(header(1024, "image/png")))
	require.NoError(t, u.ValidateImageFile(header(1024, "")))

	// Only the decode decides whether the bytes are an image; the part's
	// Content-Type must not matter here.
	require.NoError(t, u.ValidateImageFile(header(1024, "application/octet-stream")))
	require.NoError(t, u.ValidateImageFile(header(1024, "application/pdf")))

	require.ErrorIs(t, u.ValidateImageFile(header(11*1024*1024, "image/png")), ErrFileTooLarge)
	require.Error(t, u.ValidateImageFile(nil))
}
