package commands

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/ports"
	"shipment/internal/pkg/errs"
	"shipment/internal/pkg/guard"
)

// MaxImageSize is the largest accepted evidence image (2048 KiB).
const MaxImageSize int64 = 2048 * 1024

var ErrImageUploadIsNotConstructed = errors.New("ImageUpload must be created via NewImageUpload constructor")

var imageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

// ImageUpload is an image received from a caller and not stored yet.
type ImageUpload struct {
	ext         string
	contentType string
	size        int64
	body        io.Reader
	guard       guard.ConstructorGuard
}

// NewImageUpload accepts jpeg, png and gif images up to MaxImageSize. The
// extension of filename decides the type; a declared content type must agree.
func NewImageUpload(filename, contentType string, size int64, body io.Reader) (ImageUpload, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	want, ok := imageTypes[ext]

	var typeErr, sizeErr, bodyErr error
	switch {
	case !ok:
		typeErr = errs.NewValueIsInvalidErrorWithCause("image",
			fmt.Errorf("%q is not a jpeg, jpg, png or gif file", filename))
	case contentType != "" && !strings.EqualFold(strings.Split(contentType, ";")[0], want):
		typeErr = errs.NewValueIsInvalidErrorWithCause("image",
			fmt.Errorf("content type %s does not match %s", contentType, ext))
	}
	if size <= 0 || size > MaxImageSize {
		sizeErr = errs.NewValueIsOutOfRangeError("image size", size, 1, MaxImageSize)
	}
	if body == nil {
		bodyErr = errs.NewValueIsRequiredError("image body")
	}
	if err := errors.Join(typeErr, sizeErr, bodyErr); err != nil {
		return ImageUpload{}, err
	}

	return ImageUpload{
		ext:         ext,
		contentType: want,
		size:        size,
		body:        body,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (u ImageUpload) Validate() error {
	return u.guard.Validate(ErrImageUploadIsNotConstructed)
}

func (u ImageUpload) ContentType() string {
	return u.contentType
}

func (u ImageUpload) Size() int64 {
	return u.size
}

// blob names the upload {prefix}-{owner}-{yyyyMMddHHmmss}-{random}{ext}.
func (u ImageUpload) blob(prefix string, owner kernel.UUID, at time.Time) ports.Blob {
	return ports.Blob{
		Key:         fmt.Sprintf("%s-%s-%s-%s%s", prefix, owner, at.UTC().Format("20060102150405"), uniqueSuffix(), u.ext),
		ContentType: u.contentType,
		Size:        u.size,
		Body:        u.body,
	}
}

func uniqueSuffix() string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return kernel.NewUUID().String()[:12]
	}
	return hex.EncodeToString(b)
}

// discardBlob removes an image whose owning write did not commit. It runs
// after the request may have been cancelled, and its error is dropped: a
// leftover object is never referenced.
func discardBlob(ctx context.Context, blobs ports.BlobStorage, ref string) {
	if ref == "" {
		return
	}
	_ = blobs.Delete(context.WithoutCancel(ctx), ref)
}
