package uploads

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func pngBytes(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return &buf
}

// jpegBytesRotated encodes a JPEG and splices in a minimal EXIF APP1
// segment whose Orientation tag is 6, i.e. the pixels are stored rotated
// 90 degrees and a viewer must rotate them back to display upright.
func jpegBytesRotated(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var encoded bytes.Buffer
	if err := jpeg.Encode(&encoded, img, nil); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}

	// APP1 segment: Exif header, little-endian TIFF, one IFD entry
	// (tag 0x0112 Orientation, SHORT, value 6).
	app1 := []byte{
		0xff, 0xe1, // APP1 marker
		0x00, 0x22, // segment length
		'E', 'x', 'i', 'f', 0x00, 0x00,
		'I', 'I', 0x2a, 0x00, // TIFF header, little-endian
		0x08, 0x00, 0x00, 0x00, // IFD0 offset
		0x01, 0x00, // entry count
		0x12, 0x01, // Orientation tag
		0x03, 0x00, // type SHORT
		0x01, 0x00, 0x00, 0x00, // count
		0x06, 0x00, 0x00, 0x00, // value 6
		0x00, 0x00, 0x00, 0x00, // no next IFD
	}

	raw := encoded.Bytes()
	var buf bytes.Buffer
	buf.Write(raw[:2]) // SOI
	buf.Write(app1)
	buf.Write(raw[2:])
	return &buf
}

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}
	return store
}

func TestSaveRawEmbedsOriginalName(t *testing.T) {
	store := newTestStore(t)

	name, err := store.SaveRaw("photo.png", pngBytes(t, 10, 10))
	if err != nil {
		t.Fatalf("SaveRaw returned error: %v", err)
	}

	if filepath.Ext(name) != ".png" {
		t.Fatalf("expected stored name to keep the extension, got %q", name)
	}
	if _, err := os.Stat(filepath.Join(store.Dir(), name)); err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
}

func TestDeriveVariantsDownscalesLargeImage(t *testing.T) {
	store := newTestStore(t)

	rawName, err := store.SaveRaw("big.png", pngBytes(t, 2000, 2000))
	if err != nil {
		t.Fatalf("SaveRaw returned error: %v", err)
	}

	largeName, thumbName, err := store.DeriveVariants(rawName)
	if err != nil {
		t.Fatalf("DeriveVariants returned error: %v", err)
	}

	large, err := imaging.Open(filepath.Join(store.Dir(), largeName))
	if err != nil {
		t.Fatalf("failed to open large variant: %v", err)
	}
	if got := large.Bounds().Dx(); got != LargeWidth {
		t.Fatalf("expected large variant width %d, got %d", LargeWidth, got)
	}
	// Square source stays square
	if got := large.Bounds().Dy(); got != LargeWidth {
		t.Fatalf("expected large variant to preserve aspect ratio, height %d", got)
	}

	thumb, err := imaging.Open(filepath.Join(store.Dir(), thumbName))
	if err != nil {
		t.Fatalf("failed to open thumbnail variant: %v", err)
	}
	if got := thumb.Bounds().Dx(); got != ThumbWidth {
		t.Fatalf("expected thumbnail width %d, got %d", ThumbWidth, got)
	}
	if got := thumb.Bounds().Dy(); got != ThumbWidth {
		t.Fatalf("expected thumbnail to preserve aspect ratio, height %d", got)
	}
}

func TestDeriveVariantsNeverUpscales(t *testing.T) {
	store := newTestStore(t)

	rawName, err := store.SaveRaw("small.png", pngBytes(t, 300, 300))
	if err != nil {
		t.Fatalf("SaveRaw returned error: %v", err)
	}

	largeName, thumbName, err := store.DeriveVariants(rawName)
	if err != nil {
		t.Fatalf("DeriveVariants returned error: %v", err)
	}

	large, err := imaging.Open(filepath.Join(store.Dir(), largeName))
	if err != nil {
		t.Fatalf("failed to open large variant: %v", err)
	}
	if got := large.Bounds().Dx(); got != 300 {
		t.Fatalf("expected large variant to keep source width 300, got %d", got)
	}

	thumb, err := imaging.Open(filepath.Join(store.Dir(), thumbName))
	if err != nil {
		t.Fatalf("failed to open thumbnail variant: %v", err)
	}
	if got := thumb.Bounds().Dx(); got != 300 {
		t.Fatalf("expected thumbnail to keep source width 300, got %d", got)
	}
}

func TestDeriveVariantsUprightExifRotatedJpeg(t *testing.T) {
	store := newTestStore(t)

	// Stored pixels are 400x200; Orientation=6 means the upright image
	// is 200x400. Both variants must come out upright.
	rawName, err := store.SaveRaw("sideways.jpg", jpegBytesRotated(t, 400, 200))
	if err != nil {
		t.Fatalf("SaveRaw returned error: %v", err)
	}

	largeName, thumbName, err := store.DeriveVariants(rawName)
	if err != nil {
		t.Fatalf("DeriveVariants returned error: %v", err)
	}

	large, err := imaging.Open(filepath.Join(store.Dir(), largeName))
	if err != nil {
		t.Fatalf("failed to open large variant: %v", err)
	}
	if got := large.Bounds().Dx(); got != 200 {
		t.Fatalf("expected upright large variant width 200, got %d", got)
	}
	if got := large.Bounds().Dy(); got != 400 {
		t.Fatalf("expected upright large variant height 400, got %d", got)
	}

	thumb, err := imaging.Open(filepath.Join(store.Dir(), thumbName))
	if err != nil {
		t.Fatalf("failed to open thumbnail variant: %v", err)
	}
	if got := thumb.Bounds().Dx(); got != 200 {
		t.Fatalf("expected upright thumbnail width 200, got %d", got)
	}
	if got := thumb.Bounds().Dy(); got != 400 {
		t.Fatalf("expected upright thumbnail height 400, got %d", got)
	}
}

func TestDeriveVariantsRejectsNonImage(t *testing.T) {
	store := newTestStore(t)

	rawName, err := store.SaveRaw("not-an-image.png", bytes.NewBufferString("definitely not a png"))
	if err != nil {
		t.Fatalf("SaveRaw returned error: %v", err)
	}

	if _, _, err := store.DeriveVariants(rawName); err == nil {
		t.Fatal("expected an error decoding a non-image upload")
	}
}

func TestVariantName(t *testing.T) {
	cases := []struct {
		name, suffix, want string
	}{
		{"123_photo.jpg", "_lg", "123_photo_lg.jpg"},
		{"123_photo.jpg", "_thumb", "123_photo_thumb.jpg"},
		{"noext", "_lg", "noext_lg"},
		{"archive.tar.png", "_thumb", "archive.tar_thumb.png"},
	}

	for _, tc := range cases {
		if got := variantName(tc.name, tc.suffix); got != tc.want {
			t.Errorf("variantName(%q, %q) = %q, want %q", tc.name, tc.suffix, got, tc.want)
		}
	}
}
