package upload

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
	}
}

func TestValidate_AcceptedTypes(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		ok          bool
	}{
		{"jpeg", "image/jpeg", true},
		{"png", "image/png", true},
		{"gif", "image/gif", true},
		{"webp", "image/webp", true},
		{"mp4", "video/mp4", true},
		{"mov", "video/mov", true},
		{"avi", "video/avi", true},
		{"quicktime", "video/quicktime", true},
		{"pdf", "application/pdf", false},
		{"svg", "image/svg+xml", false},
		{"missing", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, errs := Validate([]*multipart.FileHeader{fileHeader("f."+tt.name, tt.contentType, 1024)})
			if tt.ok {
				assert.Len(t, valid, 1)
				assert.Empty(t, errs)
			} else {
				assert.Empty(t, valid)
				assert.Len(t, errs, 1)
				assert.Contains(t, errs[0], "Unsupported file type")
			}
		})
	}
}

func TestValidate_SizeLimit(t *testing.T) {
	valid, errs := Validate([]*multipart.FileHeader{fileHeader("big.jpg", "image/jpeg", MaxFileSize+1)})
	assert.Empty(t, valid)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "File too large (max 10MB)")

	valid, errs = Validate([]*multipart.FileHeader{fileHeader("ok.jpg", "image/jpeg", MaxFileSize)})
	assert.Len(t, valid, 1)
	assert.Empty(t, errs)
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	files := []*multipart.FileHeader{
		fileHeader("a.jpg", "image/jpeg", 1024),
		fileHeader("b.pdf", "application/pdf", 1024),
		fileHeader("c.mp4", "video/mp4", MaxFileSize+1),
	}

	valid, errs := Validate(files)
	assert.Empty(t, valid, "nothing is accepted while violations exist")
	assert.Len(t, errs, 2)
	assert.Contains(t, errs[0], "b.pdf")
	assert.Contains(t, errs[1], "c.mp4")
}

func TestClassification(t *testing.T) {
	assert.True(t, IsImage("image/png"))
	assert.False(t, IsImage("video/mp4"))
	assert.True(t, IsVideo("video/quicktime"))
	assert.False(t, IsVideo("image/gif"))
}
