// Package upload implements the client-side media validation rules applied
// before a submission is forwarded upstream.
package upload

import (
	"fmt"
	"mime/multipart"
)

// MaxFileSize is the per-file limit for submission attachments.
const MaxFileSize = 10 << 20 // 10MB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var allowedVideoTypes = map[string]bool{
	"video/mp4":       true,
	"video/mov":       true,
	"video/avi":       true,
	"video/quicktime": true,
}

// IsImage reports whether contentType is an accepted image type.
func IsImage(contentType string) bool {
	return allowedImageTypes[contentType]
}

// IsVideo reports whether contentType is an accepted video type.
func IsVideo(contentType string) bool {
	return allowedVideoTypes[contentType]
}

// Validate checks every file against the accepted media types and the size
// limit. All violations are collected so the caller can present the full
// list at once; nothing is accepted when errs is non-empty.
func Validate(files []*multipart.FileHeader) (valid []*multipart.FileHeader, errs []string) {
	for _, fh := range files {
		contentType := fh.Header.Get("Content-Type")
		switch {
		case !IsImage(contentType) && !IsVideo(contentType):
			errs = append(errs, fmt.Sprintf("%s: Unsupported file type", fh.Filename))
		case fh.Size > MaxFileSize:
			errs = append(errs, fmt.Sprintf("%s: File too large (max 10MB)", fh.Filename))
		default:
			valid = append(valid, fh)
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return valid, nil
}
