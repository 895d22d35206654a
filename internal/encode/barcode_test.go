package encode

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"codecard/internal/formats"
)

func TestClampBarcodeScale(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		{0, DefaultBarcodeScale},
		{-3, MinBarcodeScale},
		{1, 1},
		{4, 4},
		{100, MaxBarcodeScale},
	}

	for _, tt := range tests {
		if got := ClampBarcodeScale(tt.input); got != tt.expected {
			t.Errorf("ClampBarcodeScale(%d) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}

func TestBarcodeCode128(t *testing.T) {
	data, err := Barcode("HELLO-12345", formats.SymbologyCode128, 2)
	if err != nil {
		t.Fatalf("Barcode() error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}

	// Image must include the label strip below the bars.
	if img.Bounds().Dy() != barcodeHeight+labelStripHeight {
		t.Errorf("image height = %d, want %d", img.Bounds().Dy(), barcodeHeight+labelStripHeight)
	}
}

func TestBarcodeEAN13(t *testing.T) {
	// 13th digit is the checksum for the first twelve.
	data, err := Barcode("4006381333931", formats.SymbologyEAN13, 1)
	if err != nil {
		t.Fatalf("Barcode() error: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
}

func TestBarcodeEAN13RejectsBadInput(t *testing.T) {
	tests := []string{
		"not-digits",
		"123",           // too short
		"4006381333932", // wrong checksum
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if _, err := Barcode(input, formats.SymbologyEAN13, 1); err == nil {
				t.Errorf("expected error for %q", input)
			}
		})
	}
}

func TestBarcodeEmptyText(t *testing.T) {
	_, err := Barcode("", formats.SymbologyCode128, 1)
	if !errors.Is(err, ErrEmptyBarcodeText) {
		t.Errorf("expected ErrEmptyBarcodeText, got %v", err)
	}
}
