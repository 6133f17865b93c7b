// Package qrgen renders QR code rasters. The catalog only consumes the
// produced bytes; rendering stays behind an interface so tests can stub it.
package qrgen

import (
	"fmt"

	"github.com/dmitrijs2005/qrkeeper/internal/common"
	qrcode "github.com/skip2/go-qrcode"
)

// defaultSize is the rendered image edge in pixels.
const defaultSize = 512

// ImageGenerator produces an encoded QR raster from arbitrary text.
type ImageGenerator interface {
	Render(content string) ([]byte, error)
}

// PNGGenerator renders PNG images with high error correction.
type PNGGenerator struct {
	Size int
}

func NewPNGGenerator() *PNGGenerator {
	return &PNGGenerator{Size: defaultSize}
}

func (g *PNGGenerator) Render(content string) ([]byte, error) {
	if content == "" {
		return nil, common.ErrorEmptyContent
	}

	size := g.Size
	if size <= 0 {
		size = defaultSize
	}

	data, err := qrcode.Encode(content, qrcode.High, size)
	if err != nil {
		return nil, fmt.Errorf("failed to render qr code: %w", err)
	}
	return data, nil
}
