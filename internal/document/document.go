package document

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"strings"
)

func (d *implDocument) PageCount() int {
	return d.doc.NumPage()
}

// ExtractPage renders one page to a PNG file and extracts its text.
func (d *implDocument) ExtractPage(ctx context.Context, index int, imagePath string) (Page, error) {
	select {
	case <-ctx.Done():
		return Page{}, ctx.Err()
	default:
	}

	if index < 0 || index >= d.doc.NumPage() {
		return Page{}, fmt.Errorf("page index %d out of range [0, %d)", index, d.doc.NumPage())
	}

	img, err := d.doc.Image(index)
	if err != nil {
		return Page{}, fmt.Errorf("render page %d: %w", index, err)
	}

	out, err := os.Create(imagePath)
	if err != nil {
		return Page{}, fmt.Errorf("create page image %s: %w", imagePath, err)
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return Page{}, fmt.Errorf("encode page %d image: %w", index, err)
	}
	if err := out.Close(); err != nil {
		return Page{}, fmt.Errorf("close page image %s: %w", imagePath, err)
	}

	text, err := d.doc.Text(index)
	if err != nil {
		return Page{}, fmt.Errorf("extract page %d text: %w", index, err)
	}

	return Page{
		Index:     index,
		ImagePath: imagePath,
		Text:      strings.TrimSpace(text),
	}, nil
}

func (d *implDocument) Close() error {
	return d.doc.Close()
}
