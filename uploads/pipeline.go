package uploads

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

// Width caps for the two derived variants. Images narrower than the cap
// are never upscaled.
const (
	LargeWidth = 1200
	ThumbWidth = 400

	largeSuffix = "_lg"
	thumbSuffix = "_thumb"
)

// Store writes uploads and their derived variants into a single
// web-servable directory.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("uploads: create dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// SaveRaw stores the uploaded bytes under a timestamped name derived from
// the original filename and returns the stored filename. Two uploads with
// the same name in the same millisecond collide; accepted.
func (s *Store) SaveRaw(originalName string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), filepath.Base(originalName))
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("uploads: create %s: %w", name, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("uploads: write %s: %w", name, err)
	}
	return name, nil
}

// DeriveVariants decodes the stored raw upload once and writes the large
// and thumbnail variants next to it. The pipeline per variant is
// decode -> orient -> resize -> encode; each step is pure, so a failure
// leaves at most already-complete variant files behind.
func (s *Store) DeriveVariants(rawName string) (largeName, thumbName string, err error) {
	img, err := s.decode(rawName)
	if err != nil {
		return "", "", err
	}

	largeName = variantName(rawName, largeSuffix)
	if err := s.encode(fitWidth(img, LargeWidth), largeName); err != nil {
		return "", "", err
	}

	thumbName = variantName(rawName, thumbSuffix)
	if err := s.encode(fitWidth(img, ThumbWidth), thumbName); err != nil {
		return "", "", err
	}

	return largeName, thumbName, nil
}

// Remove deletes a stored file by name.
func (s *Store) Remove(name string) error {
	return os.Remove(filepath.Join(s.dir, name))
}

// decode reads an image and applies its stored EXIF rotation so every
// downstream step sees upright pixels.
func (s *Store) decode(name string) (image.Image, error) {
	img, err := imaging.Open(filepath.Join(s.dir, name), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("uploads: decode %s: %w", name, err)
	}
	return img, nil
}

func (s *Store) encode(img image.Image, name string) error {
	if err := imaging.Save(img, filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("uploads: encode %s: %w", name, err)
	}
	return nil
}

// fitWidth scales the image down to maxWidth preserving aspect ratio.
// Images already narrow enough pass through untouched.
func fitWidth(img image.Image, maxWidth int) image.Image {
	if img.Bounds().Dx() <= maxWidth {
		return img
	}
	return imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
}

// variantName inserts a suffix before the file extension:
// "123_photo.jpg" + "_lg" -> "123_photo_lg.jpg".
func variantName(name, suffix string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + suffix + ext
}
