package batch

import (
	"context"
	"fmt"
	"io"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"codecard/internal/archive"
	"codecard/internal/encode"
	"codecard/internal/formats"
	"codecard/internal/metrics"
	"codecard/internal/vcard"
)

// Options controls batch generation.
type Options struct {
	// Version selects the vCard dialect for the generated .vcf files.
	Version vcard.Version
	// Size is the QR image edge length in pixels; zero uses the default.
	Size int
	// Level is the QR error correction level.
	Level qrcode.RecoveryLevel
	// Format selects PNG or SVG for the QR images.
	Format formats.ImageFormat
	// NumWorkers overrides the pool size; zero picks automatically.
	NumWorkers int
}

// DefaultOptions returns the options used when a request specifies
// nothing.
func DefaultOptions() Options {
	return Options{
		Version: vcard.Version3,
		Size:    encode.DefaultImageSize,
		Level:   qrcode.Medium,
		Format:  formats.FormatPNG,
	}
}

// Result summarizes one processed batch.
type Result struct {
	Bundles  []archive.Bundle
	RowCount int
	Errors   int
}

// Process reads a contact spreadsheet and generates one bundle per row,
// each holding the row's vCard file and its QR image. A row that cannot
// be generated yields a bundle with an error.txt instead of aborting the
// batch, so the output always has exactly one bundle per input row.
func Process(ctx context.Context, r io.Reader, filename string, opts Options) (*Result, error) {
	start := time.Now()

	contacts, err := ReadContacts(r, filename)
	if err != nil {
		metrics.BatchJobsTotal.WithLabelValues("failed").Inc()
		return nil, err
	}

	if opts.Size == 0 {
		opts.Size = encode.DefaultImageSize
	}
	if opts.Version == "" {
		opts.Version = vcard.Version3
	}
	if opts.Format == "" {
		opts.Format = formats.FormatPNG
	}

	g := newGenerator(opts)
	bundles := g.run(ctx, contacts)

	if err := ctx.Err(); err != nil {
		metrics.BatchJobsTotal.WithLabelValues("failed").Inc()
		return nil, err
	}

	metrics.BatchJobsTotal.WithLabelValues("completed").Inc()
	metrics.BatchJobDuration.Observe(time.Since(start).Seconds())

	return &Result{
		Bundles:  bundles,
		RowCount: len(contacts),
		Errors:   int(g.rowErrors.Load()),
	}, nil
}

// buildBundle generates the artifact set for one contact row.
func buildBundle(c *vcard.Contact, index int, opts Options) (archive.Bundle, error) {
	if c.IsEmpty() {
		return archive.Bundle{}, fmt.Errorf("row %d is empty", index+1)
	}

	card := vcard.Build(c, opts.Version)

	image, err := encode.QR(card, opts.Size, opts.Level, opts.Format)
	if err != nil {
		return archive.Bundle{}, fmt.Errorf("row %d: %w", index+1, err)
	}

	return archive.Bundle{
		Name: bundleName(c, index),
		Files: []archive.File{
			{Name: "contact.vcf", Data: []byte(card)},
			{Name: "qr-code" + opts.Format.Extension(), Data: image},
		},
	}, nil
}

// errorBundle stands in for a row that failed, preserving the
// one-bundle-per-row shape of the output archive.
func errorBundle(c *vcard.Contact, index int, genErr error) archive.Bundle {
	return archive.Bundle{
		Name: bundleName(c, index),
		Files: []archive.File{
			{Name: "error.txt", Data: []byte(genErr.Error() + "\n")},
		},
	}
}

// bundleName builds a stable directory name for a row. The numeric
// prefix keeps archive entries in spreadsheet order even under
// lexicographic listing.
func bundleName(c *vcard.Contact, index int) string {
	name := formats.SanitizeFilename(c.DisplayName(), "contact")
	return fmt.Sprintf("%03d-%s", index+1, name)
}
