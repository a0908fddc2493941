package ingress

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/moodlens/moodlens/internal/domain"

	// Register decoders for the allowed formats.
	_ "image/jpeg"
	_ "image/png"
)

// filenameLayout is second-resolution; a uuid token guards against
// same-second collisions between concurrent submissions.
const filenameLayout = "20060102_150405"

var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
}

// Normalizer turns an ImageSubmission into exactly one file under the
// upload directory.
type Normalizer struct {
	uploadDir string
	maxBytes  int64
	now       func() time.Time
}

// NewNormalizer creates the upload directory if absent. Safe to call on
// every process start.
func NewNormalizer(uploadDir string, maxBytes int64) (*Normalizer, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", uploadDir, err)
	}

	return &Normalizer{
		uploadDir: uploadDir,
		maxBytes:  maxBytes,
		now:       time.Now,
	}, nil
}

// WithClock overrides the timestamp source, for tests.
func (n *Normalizer) WithClock(now func() time.Time) *Normalizer {
	n.now = now
	return n
}

// Normalize validates the submission and writes its image to disk. All
// validation happens before any file I/O; a failed call leaves no file
// behind.
func (n *Normalizer) Normalize(sub domain.ImageSubmission) (*domain.StoredImage, error) {
	var (
		data     []byte
		filename string
		err      error
	)

	switch sub.Source {
	case domain.SourceUpload:
		data, filename, err = n.fromUpload(sub)
	case domain.SourceWebcam:
		data, filename, err = n.fromWebcam(sub)
	default:
		return nil, domain.ErrInvalidSource
	}
	if err != nil {
		return nil, err
	}

	if n.maxBytes > 0 && int64(len(data)) > n.maxBytes {
		return nil, domain.ErrPayloadTooLarge
	}

	path := filepath.Join(n.uploadDir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, domain.ErrInternal.WithError(fmt.Errorf("write image %s: %w", path, err))
	}

	return &domain.StoredImage{Filename: filename, Path: path}, nil
}

func (n *Normalizer) fromUpload(sub domain.ImageSubmission) ([]byte, string, error) {
	if strings.TrimSpace(sub.Filename) == "" {
		return nil, "", domain.ErrInvalidFile.WithError(errors.New("filename is empty"))
	}
	if !AllowedFilename(sub.Filename) {
		return nil, "", domain.ErrInvalidFile.WithError(fmt.Errorf("extension not allowed: %s", sub.Filename))
	}
	if len(sub.FileData) == 0 {
		return nil, "", domain.ErrInvalidFile.WithError(errors.New("file is empty"))
	}

	filename := fmt.Sprintf("%s_%s_%s",
		n.now().Format(filenameLayout),
		shortToken(),
		sanitizeFilename(sub.Filename),
	)
	return sub.FileData, filename, nil
}

func (n *Normalizer) fromWebcam(sub domain.ImageSubmission) ([]byte, string, error) {
	payload := sub.DataURL

	// Data URL prefix: "data:<mime>;base64,<payload>". Split on the first
	// comma; a bare base64 string without the prefix is rejected.
	idx := strings.Index(payload, ",")
	if idx < 0 {
		return nil, "", domain.ErrDecodeFailed.WithError(errors.New("missing data URL separator"))
	}
	payload = payload[idx+1:]

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", domain.ErrDecodeFailed.WithError(fmt.Errorf("decode base64: %w", err))
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", domain.ErrDecodeFailed.WithError(fmt.Errorf("decode image: %w", err))
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, "", domain.ErrDecodeFailed.WithError(errors.New("image has no pixels"))
	}

	ext := format
	if ext == "jpeg" {
		ext = "jpg"
	}

	filename := fmt.Sprintf("%s_webcam_%s.%s", n.now().Format(filenameLayout), shortToken(), ext)
	return data, filename, nil
}

// AllowedFilename checks the final dot-delimited suffix, case-insensitively.
func AllowedFilename(filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return false
	}
	return allowedExtensions[strings.ToLower(filename[idx+1:])]
}

// sanitizeFilename strips anything that could escape the upload directory:
// path separators, NUL bytes, and any character outside [A-Za-z0-9._-].
// The basename is taken first so "../../etc/passwd.png" cannot traverse.
func sanitizeFilename(filename string) string {
	filename = filepath.Base(filepath.Clean(filename))
	if filename == "/" || filename == "." {
		filename = ""
	}

	var b strings.Builder
	for _, r := range filename {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	out := strings.TrimLeft(b.String(), ".")
	if out == "" {
		out = "image"
	}
	return out
}

func shortToken() string {
	return uuid.New().String()[:8]
}
