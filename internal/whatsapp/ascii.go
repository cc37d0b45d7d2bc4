// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package whatsapp

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/jeranaias/localbot/internal/util"
)

const (
	// DefaultASCIIWidth is the number of characters per row.
	DefaultASCIIWidth = 80

	// asciiRamp maps luma/25 (0..10) to a character, darkest first.
	asciiRamp = "@#S%?*+;:,."

	// rowScale compensates for terminal cells being taller than wide.
	rowScale = 0.55
)

// RenderASCII converts img to rows of width characters.
func RenderASCII(img image.Image, width int) string {
	if width <= 0 {
		width = DefaultASCIIWidth
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return ""
	}

	height := int(float64(b.Dy()) / float64(b.Dx()) * float64(width) * rowScale)
	if height < 1 {
		height = 1
	}

	gray := image.NewGray(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(gray, gray.Bounds(), img, b, draw.Src, nil)

	var sb strings.Builder
	sb.Grow((width + 1) * height)
	for y := 0; y < height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := gray.Pix[y*gray.Stride : y*gray.Stride+width]
		for _, luma := range row {
			sb.WriteByte(asciiRamp[int(luma)/25])
		}
	}
	return sb.String()
}

// ImageToASCII renders the image at imagePath, writes it to
// outputName + ".txt" and returns the text.
func ImageToASCII(imagePath, outputName string, width int) (string, error) {
	f, err := os.Open(imagePath)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("decode image %s: %w", imagePath, err)
	}

	art := RenderASCII(img, width)
	out := outputName + ".txt"
	if err := util.AtomicWriteFile(out, []byte(art), 0644); err != nil {
		return "", fmt.Errorf("write ascii art: %w", err)
	}
	log.Printf("ASCII_WRITTEN | src=%s format=%s out=%s", imagePath, format, out)
	return art, nil
}
