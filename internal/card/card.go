package card

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ErrRender is returned when the card image cannot be encoded.
var ErrRender error = errors.New("card render failed")

const (
	Width  = 600
	Height = 200

	title   = "FomoFrog Purchase Verified"
	marginX = 20
)

var (
	background = color.RGBA{R: 25, G: 25, B: 112, A: 255}
	foreground = color.White

	// baselines of the title, buyer, amount and hash lines
	lineY = [4]int{30, 70, 100, 130}
)

// Renderer draws purchase receipt cards. Output depends only on its inputs.
type Renderer struct {
	face font.Face
}

func NewRenderer() *Renderer {
	return &Renderer{
		face: basicfont.Face7x13,
	}
}

// Render returns a PNG receipt card for the purchase.
func (r *Renderer) Render(buyer, amount, txHash string) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	lines := [4]string{
		title,
		"Buyer: " + buyer,
		"Amount: " + amount,
		"Tx: " + txHash,
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(foreground),
		Face: r.face,
	}
	for i, line := range lines {
		d.Dot = fixed.P(marginX, lineY[i])
		d.DrawString(line)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: encode png: %w", ErrRender, err)
	}
	return buf.Bytes(), nil
}

// Describe is the text counterpart of the card.
func (r *Renderer) Describe(buyer, amount, txHash string) string {
	return fmt.Sprintf("Buyer: `%s`\nAmount: `%s`\nTx: `%s`", buyer, amount, txHash)
}
