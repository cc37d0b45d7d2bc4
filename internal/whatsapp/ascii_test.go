// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package whatsapp

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniform(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestRenderASCII_Dimensions(t *testing.T) {
	// 200x100 at 80 columns: 100/200 * 80 * 0.55 = 22 rows
	art := RenderASCII(uniform(200, 100, color.White), 80)

	rows := strings.Split(art, "\n")
	require.Len(t, rows, 22)
	for _, row := range rows {
		assert.Len(t, row, 80)
	}
}

func TestRenderASCII_Ramp(t *testing.T) {
	black := RenderASCII(uniform(10, 10, color.Black), 4)
	white := RenderASCII(uniform(10, 10, color.White), 4)

	assert.Equal(t, "@@@@\n@@@@", black)
	// 255/25 = 10, the last ramp character
	assert.Equal(t, "....\n....", white)
}

func TestRenderASCII_MinimumOneRow(t *testing.T) {
	art := RenderASCII(uniform(1000, 1, color.Black), 10)
	assert.Equal(t, "@@@@@@@@@@", art)
}

func TestRenderASCII_EmptyImage(t *testing.T) {
	assert.Equal(t, "", RenderASCII(image.NewGray(image.Rect(0, 0, 0, 0)), 80))
}

func TestImageToASCII_WritesFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "name.png")

	f, err := os.Create(src)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, uniform(40, 40, color.Gray{Y: 128})))
	require.NoError(t, f.Close())

	out := filepath.Join(dir, "ascii")
	art, err := ImageToASCII(src, out, 8)
	require.NoError(t, err)

	got, err := os.ReadFile(out + ".txt")
	require.NoError(t, err)
	assert.Equal(t, art, string(got))

	// 128/25 = 5
	assert.Equal(t, strings.Repeat("*", 8), strings.Split(art, "\n")[0])
}

func TestImageToASCII_MissingImage(t *testing.T) {
	_, err := ImageToASCII(filepath.Join(t.TempDir(), "nope.jpeg"), "ascii", 80)
	assert.Error(t, err)
}

func TestImageToASCII_NotAnImage(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "fake.jpeg")
	require.NoError(t, os.WriteFile(src, []byte("not an image"), 0644))

	_, err := ImageToASCII(src, filepath.Join(dir, "ascii"), 80)
	assert.ErrorIs(t, err, image.ErrFormat)
}
