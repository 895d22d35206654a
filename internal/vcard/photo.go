package vcard

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/jpeg"
	"io"

	"github.com/disintegration/imaging"
)

const (
	// photoMaxDim bounds the longest photo edge before embedding.
	// Phone contact apps ignore anything larger anyway, and vCard QR
	// payloads need to stay small.
	photoMaxDim = 256

	// photoJPEGQuality is the re-encode quality for embedded photos.
	photoJPEGQuality = 85
)

// AttachPhoto decodes an uploaded image, scales it down to at most
// 256px on the longest edge, and stores it on the contact as JPEG for
// later embedding. Unsupported or corrupt image data is an error; the
// contact is left unchanged in that case.
func (c *Contact) AttachPhoto(r io.Reader) error {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("failed to decode photo: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > photoMaxDim || bounds.Dy() > photoMaxDim {
		img = imaging.Fit(img, photoMaxDim, photoMaxDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: photoJPEGQuality}); err != nil {
		return fmt.Errorf("failed to encode photo: %w", err)
	}

	c.Photo = buf.Bytes()
	return nil
}

// photoLine builds the PHOTO content line for the given version. The
// 3.0 form uses inline base64 with ENCODING=b; 4.0 uses a data: URI.
func photoLine(photo []byte, version Version) string {
	encoded := base64.StdEncoding.EncodeToString(photo)
	if version == Version4 {
		return "PHOTO:data:image/jpeg;base64," + encoded
	}
	return "PHOTO;ENCODING=b;TYPE=JPEG:" + encoded
}
