package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"time"
)

// File is a single artifact inside a bundle.
type File struct {
	Name string
	Data []byte
}

// Bundle is one row's worth of generated artifacts, written to the
// archive under a shared directory prefix.
type Bundle struct {
	// Name is the directory name inside the archive.
	Name string
	// Files are the artifacts belonging to this bundle.
	Files []File
}

// WriteZip streams bundles into w as a ZIP archive. Each bundle
// becomes a directory holding its files; bundles are written in slice
// order so the archive layout is deterministic.
func WriteZip(w io.Writer, bundles []Bundle) error {
	zw := zip.NewWriter(w)
	now := time.Now()

	for _, bundle := range bundles {
		for _, file := range bundle.Files {
			header := &zip.FileHeader{
				Name:     bundle.Name + "/" + file.Name,
				Method:   zip.Deflate,
				Modified: now,
			}
			fw, err := zw.CreateHeader(header)
			if err != nil {
				return fmt.Errorf("failed to create archive entry %s: %w", header.Name, err)
			}
			if _, err := fw.Write(file.Data); err != nil {
				return fmt.Errorf("failed to write archive entry %s: %w", header.Name, err)
			}
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	return nil
}
