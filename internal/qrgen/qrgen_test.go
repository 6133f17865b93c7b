package qrgen

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/dmitrijs2005/qrkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPNGGenerator_RendersDecodablePNG(t *testing.T) {
	g := NewPNGGenerator()

	data, err := g.Render("https://example.com")
	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 512, img.Bounds().Dx())
	assert.Equal(t, 512, img.Bounds().Dy())
}

func TestPNGGenerator_CustomSize(t *testing.T) {
	g := &PNGGenerator{Size: 128}

	data, err := g.Render("hello")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestPNGGenerator_RejectsEmptyContent(t *testing.T) {
	g := NewPNGGenerator()

	_, err := g.Render("")
	assert.ErrorIs(t, err, common.ErrorEmptyContent)
}
