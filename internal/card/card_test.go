package card_test

import (
	"bytes"
	"image/color"
	"image/png"

	"buybot/internal/card"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Renderer", func() {
	const (
		buyer  = "0x52908400098527886E0F7030069857D2E4169EE7"
		amount = "2.5"
		txHash = "0x9f3c1a2b4d5e6f708192a3b4c5d6e7f8091a2b3c4d5e6f708192a3b4c5d6e7f8"
	)

	var renderer *card.Renderer

	BeforeEach(func() {
		renderer = card.NewRenderer()
	})

	Describe("Render", func() {
		var (
			data []byte
			err  error
		)

		JustBeforeEach(func() {
			data, err = renderer.Render(buyer, amount, txHash)
		})

		It("should produce a 600x200 png", func() {
			Expect(err).NotTo(HaveOccurred())

			img, err := png.Decode(bytes.NewReader(data))
			Expect(err).NotTo(HaveOccurred())
			Expect(img.Bounds().Dx()).To(Equal(card.Width))
			Expect(img.Bounds().Dy()).To(Equal(card.Height))

			r, g, b, a := img.At(0, 0).RGBA()
			wr, wg, wb, wa := color.RGBA{R: 25, G: 25, B: 112, A: 255}.RGBA()
			Expect([]uint32{r, g, b, a}).To(Equal([]uint32{wr, wg, wb, wa}))
		})

		It("should draw text onto the background", func() {
			img, err := png.Decode(bytes.NewReader(data))
			Expect(err).NotTo(HaveOccurred())

			bg := color.RGBAModel.Convert(img.At(0, 0))
			lit := 0
			for x := 0; x < card.Width; x++ {
				for y := 17; y < 32; y++ {
					if color.RGBAModel.Convert(img.At(x, y)) != bg {
						lit++
					}
				}
			}
			Expect(lit).To(BeNumerically(">", 0))
		})

		It("should be deterministic", func() {
			again, err := renderer.Render(buyer, amount, txHash)
			Expect(err).NotTo(HaveOccurred())
			Expect(again).To(Equal(data))

			other, err := renderer.Render(buyer, "3", txHash)
			Expect(err).NotTo(HaveOccurred())
			Expect(other).NotTo(Equal(data))
		})
	})

	Describe("Describe", func() {
		It("should list buyer, amount and hash on separate lines", func() {
			Expect(renderer.Describe(buyer, amount, txHash)).To(Equal(
				"Buyer: `" + buyer + "`\nAmount: `" + amount + "`\nTx: `" + txHash + "`",
			))
		})
	})
})
