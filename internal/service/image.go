package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/r8r-one/platform/internal/domain"
	"github.com/r8r-one/platform/internal/store"
)

var (
	ErrImageNotFound = errors.New("image not found")
	ErrImageEmpty    = errors.New("no image data provided")
	ErrNotAnImage    = errors.New("invalid file type, only images are allowed")
)

var imageContentTypes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"webp": "image/webp",
}

// ImageService stores and serves rating photos.
type ImageService struct {
	images domain.ImageStore
}

func NewImageService(images domain.ImageStore) *ImageService {
	return &ImageService{images: images}
}

type UploadResult struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// Upload validates and stores an image under a unique filename derived
// from the upload time and a random suffix.
func (s *ImageService) Upload(ctx context.Context, tenantID, originalName, contentType string, data []byte) (*UploadResult, error) {
	if len(data) == 0 {
		return nil, ErrImageEmpty
	}

	ext := strings.ToLower(strings.TrimPrefix(extension(originalName), "."))
	if contentType == "" {
		contentType = imageContentTypes[ext]
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotAnImage
	}

	filename := fmt.Sprintf("%d-%s.%s", time.Now().UnixMilli(), randomSuffix(), ext)

	img := &domain.Image{
		Filename:    filename,
		TenantID:    tenantID,
		ContentType: contentType,
		Data:        data,
	}
	if err := s.images.Put(ctx, img); err != nil {
		return nil, err
	}

	return &UploadResult{
		Filename: filename,
		URL:      "/images/" + filename,
	}, nil
}

// Get returns a stored image by filename.
func (s *ImageService) Get(ctx context.Context, filename string) (*domain.Image, error) {
	img, err := s.images.Get(ctx, filename)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrImageNotFound
		}
		return nil, err
	}
	return img, nil
}

// ContentTypeForFilename infers a content type from a filename extension.
func ContentTypeForFilename(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(extension(filename), "."))
	if ct, ok := imageContentTypes[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}

func extension(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i:]
	}
	return ""
}

func randomSuffix() string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return "000000000000"
	}
	return hex.EncodeToString(b)
}
