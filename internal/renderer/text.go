package renderer

import (
	"image"
	"image/color"

	"github.com/golang/freetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// measureText returns the width and actual bounds of rendered text
// Returns width, and the bounds rectangle (Min.Y is negative for ascent, Max.Y is positive for descent)
func measureText(face font.Face, text string) (int, fixed.Rectangle26_6) {
	d := &font.Drawer{Face: face}
	bounds, _ := d.BoundString(text)
	width := (bounds.Max.X - bounds.Min.X).Ceil()
	return width, bounds
}

// lineHeight returns ascent + descent of face in pixels
func lineHeight(face font.Face) int {
	m := face.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

// drawText draws text with its baseline starting at (x, baselineY)
func drawText(img draw.Image, face font.Face, col color.Color, text string, x, baselineY int) {
	if text == "" {
		return
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  freetype.Pt(x, baselineY),
	}
	d.DrawString(text)
}

// drawTextCentered draws text horizontally centred on centerX
func drawTextCentered(img draw.Image, face font.Face, col color.Color, text string, centerX, baselineY int) {
	width := font.MeasureString(face, text).Ceil()
	drawText(img, face, col, text, centerX-width/2, baselineY)
}

// drawTextRight draws text so that it ends at rightX
func drawTextRight(img draw.Image, face font.Face, col color.Color, text string, rightX, baselineY int) {
	width := font.MeasureString(face, text).Ceil()
	drawText(img, face, col, text, rightX-width, baselineY)
}

// rotateText renders text onto a transparent image rotated 90 degrees
// counter-clockwise, so it reads bottom to top.
// The result is lineHeight(face) wide and as tall as the text is long.
func rotateText(face font.Face, col color.Color, text string) *image.RGBA {
	width := font.MeasureString(face, text).Ceil()
	height := lineHeight(face)
	if width == 0 || height == 0 {
		return image.NewRGBA(image.Rectangle{})
	}

	// Draw upright first
	tempImg := image.NewRGBA(image.Rect(0, 0, width, height))
	drawText(tempImg, face, col, text, 0, face.Metrics().Ascent.Ceil())

	// Map source (x, y) to (y, width - x)
	m := f64.Aff3{
		0, 1, 0,
		-1, 0, float64(width),
	}

	rotatedImg := image.NewRGBA(image.Rect(0, 0, height, width))
	draw.NearestNeighbor.Transform(rotatedImg, m, tempImg, tempImg.Bounds(), draw.Src, nil)
	return rotatedImg
}

// drawRotatedTextCentered composites rotated text with its left edge at x,
// vertically centred on centerY.
func drawRotatedTextCentered(img draw.Image, face font.Face, col color.Color, text string, x, centerY int) {
	rotated := rotateText(face, col, text)
	size := rotated.Bounds().Size()
	if size.X == 0 || size.Y == 0 {
		return
	}

	y := centerY - size.Y/2
	destRect := image.Rect(x, y, x+size.X, y+size.Y)
	draw.Draw(img, destRect, rotated, image.Point{}, draw.Over)
}
