package vcard

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

// testImage renders a solid PNG of the given size.
func testImage(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return &buf
}

func TestAttachPhoto(t *testing.T) {
	c := &Contact{FirstName: "Ada"}

	if err := c.AttachPhoto(testImage(t, 64, 64)); err != nil {
		t.Fatalf("AttachPhoto failed: %v", err)
	}
	if len(c.Photo) == 0 {
		t.Fatal("photo not stored on contact")
	}

	// Stored bytes must be JPEG (SOI marker).
	if c.Photo[0] != 0xff || c.Photo[1] != 0xd8 {
		t.Errorf("photo is not JPEG encoded: % x", c.Photo[:2])
	}
}

func TestAttachPhotoResizesLargeImages(t *testing.T) {
	c := &Contact{}
	if err := c.AttachPhoto(testImage(t, 1024, 512)); err != nil {
		t.Fatalf("AttachPhoto failed: %v", err)
	}

	cfg, err := decodeJPEGConfig(c.Photo)
	if err != nil {
		t.Fatalf("failed to read stored photo: %v", err)
	}
	if cfg.Width > photoMaxDim || cfg.Height > photoMaxDim {
		t.Errorf("photo not resized: %dx%d", cfg.Width, cfg.Height)
	}
	// Aspect ratio preserved: 1024x512 fits to 256x128.
	if cfg.Width != 256 || cfg.Height != 128 {
		t.Errorf("unexpected fit dimensions: %dx%d, want 256x128", cfg.Width, cfg.Height)
	}
}

func TestAttachPhotoRejectsGarbage(t *testing.T) {
	c := &Contact{}
	err := c.AttachPhoto(strings.NewReader("this is not an image"))
	if err == nil {
		t.Fatal("expected error for non-image data")
	}
	if len(c.Photo) != 0 {
		t.Error("contact photo set despite decode failure")
	}
}

func TestPhotoLine(t *testing.T) {
	photo := []byte{0xff, 0xd8, 0xff}

	v3 := photoLine(photo, Version3)
	if !strings.HasPrefix(v3, "PHOTO;ENCODING=b;TYPE=JPEG:") {
		t.Errorf("unexpected 3.0 photo line: %q", v3)
	}

	v4 := photoLine(photo, Version4)
	if !strings.HasPrefix(v4, "PHOTO:data:image/jpeg;base64,") {
		t.Errorf("unexpected 4.0 photo line: %q", v4)
	}
}

func TestBuildWithPhotoFoldsLongLine(t *testing.T) {
	c := &Contact{FirstName: "Ada"}
	if err := c.AttachPhoto(testImage(t, 200, 200)); err != nil {
		t.Fatalf("AttachPhoto failed: %v", err)
	}

	out := Build(c, Version3)
	for i, line := range strings.Split(out, "\r\n") {
		if len(line) > maxLineOctets {
			t.Errorf("line %d is %d octets, over the fold limit", i, len(line))
		}
	}
}

func decodeJPEGConfig(data []byte) (image.Config, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	return cfg, err
}
