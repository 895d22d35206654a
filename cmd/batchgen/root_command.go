package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"codecard/internal/archive"
	"codecard/internal/batch"
	"codecard/internal/encode"
	"codecard/internal/formats"
	"codecard/internal/vcard"
)

type rootOptions struct {
	output  string
	version string
	size    int
	level   string
	format  string
	workers int
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "batchgen <spreadsheet>",
		Short: "Generate vCard and QR bundles from a contact spreadsheet",
		Long: `batchgen reads an XLSX or CSV contact spreadsheet and writes a ZIP
archive containing one bundle per row: the row's vCard file and a QR
image of it. Rows that cannot be generated yield a bundle with an
error.txt so the archive always matches the spreadsheet row for row.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "output ZIP path (default: input name with .zip)")
	cmd.Flags().StringVar(&opts.version, "vcard-version", "3.0", "vCard version (3.0 or 4.0)")
	cmd.Flags().IntVar(&opts.size, "size", encode.DefaultImageSize, "QR image size in pixels")
	cmd.Flags().StringVar(&opts.level, "level", "M", "QR error correction level (L, M, Q, H)")
	cmd.Flags().StringVar(&opts.format, "format", "png", "QR image format (png or svg)")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "worker count (0 = auto)")

	return cmd
}

func run(cmd *cobra.Command, input string, opts *rootOptions) error {
	absPath, err := filepath.Abs(input)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("file does not exist: %s", absPath)
		}
		return fmt.Errorf("inspect file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", absPath)
	}

	batchOpts, err := buildOptions(opts)
	if err != nil {
		return err
	}

	file, err := os.Open(absPath)
	if err != nil {
		return fmt.Errorf("open spreadsheet: %w", err)
	}
	defer file.Close()

	result, err := batch.Process(cmd.Context(), file, filepath.Base(absPath), batchOpts)
	if err != nil {
		return fmt.Errorf("process spreadsheet: %w", err)
	}

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(absPath, filepath.Ext(absPath)) + ".zip"
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	if err := archive.WriteZip(out, result.Bundles); err != nil {
		out.Close()
		return fmt.Errorf("write archive: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s: %d bundles from %d rows (%d row errors)\n",
		output, len(result.Bundles), result.RowCount, result.Errors)
	return nil
}

func buildOptions(opts *rootOptions) (batch.Options, error) {
	batchOpts := batch.DefaultOptions()

	version, ok := vcard.ParseVersion(opts.version)
	if !ok {
		return batchOpts, fmt.Errorf("unsupported vCard version %q", opts.version)
	}
	batchOpts.Version = version

	level, ok := encode.ParseRecoveryLevel(opts.level)
	if !ok {
		return batchOpts, fmt.Errorf("unsupported error correction level %q", opts.level)
	}
	batchOpts.Level = level

	format, ok := formats.ParseImageFormat(opts.format)
	if !ok {
		return batchOpts, fmt.Errorf("unsupported image format %q", opts.format)
	}
	batchOpts.Format = format

	batchOpts.Size = encode.ClampSize(opts.size)
	batchOpts.NumWorkers = opts.workers

	return batchOpts, nil
}
