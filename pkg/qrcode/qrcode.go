package qr

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	"github.com/skip2/go-qrcode"
)

type Config struct {
	Content         string
	LogoPath        string
	Size            int
	LogoScale       float64
	Smoothing       float64 // Controls the overall smoothness of the QR code
	Background      color.Color
	Foreground      color.Color
	CornerRadius    float64 // Controls individual dot roundness
	RecoveryLevel   int
	QuietZone       int     // Size of quiet zone around QR code
	LogoBackground  color.Color
	LogoBorderWidth float64 // Width of logo border
	LogoFade        float64 // Logo fade effect
}

// WithContent returns a copy of the config encoding content.
func (c Config) WithContent(content string) Config {
	c.Content = content
	return c
}

// Generate renders the QR code of c.Content as a PNG.
func (c *Config) Generate() ([]byte, error) {
	if c.Content == "" {
		return nil, errors.New("qr: empty content")
	}

	qr, err := qrcode.New(c.Content, qrcode.RecoveryLevel(c.RecoveryLevel))
	if err != nil {
		return nil, err
	}

	totalSize := c.Size + 2*max(c.QuietZone, 0)
	quietZoneOffset := float64(max(c.QuietZone, 0))

	// render bigger than needed and scale the dots down for smoother edges
	tempSize := int(float64(c.Size) * (1 + c.Smoothing))
	qrImage := qr.Image(tempSize)
	matrixSize := len(qr.Bitmap())

	var (
		logo     image.Image
		logoSize int
		logoMask *gg.Context
	)
	if c.LogoPath != "" {
		logo, err = gg.LoadImage(c.LogoPath)
		if err != nil {
			return nil, err
		}
		logoSize = int(float64(c.Size) * c.LogoScale)
		logoMask = c.logoMask(totalSize, logoSize)
	}

	dc := gg.NewContext(totalSize, totalSize)
	dc.SetColor(c.Background)
	dc.Clear()

	fg := color.RGBAModel.Convert(c.Foreground).(color.RGBA)
	scale := float64(c.Size) / float64(tempSize)
	dotSize := float64(c.Size) * c.CornerRadius
	bounds := qrImage.Bounds()

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			matrixX := int(float64(x) / float64(tempSize) * float64(matrixSize))
			matrixY := int(float64(y) / float64(tempSize) * float64(matrixSize))
			if matrixX >= matrixSize || matrixY >= matrixSize {
				continue
			}

			if r, _, _, _ := qrImage.At(x, y).RGBA(); r != 0 {
				continue
			}

			px := float64(x)*scale + quietZoneOffset
			py := float64(y)*scale + quietZoneOffset

			alpha := 1.0
			if logoMask != nil {
				_, _, _, a := logoMask.Image().At(int(px), int(py)).RGBA()
				alpha = float64(a) / 65535.0
				if alpha == 0 {
					continue
				}
			}

			dc.SetRGBA(float64(fg.R)/255.0, float64(fg.G)/255.0, float64(fg.B)/255.0, alpha)
			dc.DrawCircle(px, py, dotSize)
			dc.Fill()
		}
	}

	if logo != nil {
		offset := (totalSize - logoSize) / 2
		dc.DrawImage(c.circularLogo(logo, logoSize), offset, offset)
	}

	var buf bytes.Buffer
	if err = png.Encode(&buf, dc.Image()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// logoMask is transparent under the logo and fades to opaque over LogoFade radii.
func (c *Config) logoMask(totalSize, logoSize int) *gg.Context {
	mask := gg.NewContext(totalSize, totalSize)
	center := float64(totalSize) / 2
	logoRadius := float64(logoSize) / 2
	fadeRadius := logoRadius * (1 + c.LogoFade)

	for y := 0; y < totalSize; y++ {
		for x := 0; x < totalSize; x++ {
			distance := math.Hypot(float64(x)-center, float64(y)-center)

			alpha := 1.0
			switch {
			case distance < logoRadius:
				alpha = 0
			case distance < fadeRadius:
				alpha = math.Min(1, (distance-logoRadius)/(fadeRadius-logoRadius))
			}
			mask.SetRGBA(0, 0, 0, alpha)
			mask.SetPixel(x, y)
		}
	}
	return mask
}

func (c *Config) circularLogo(logo image.Image, logoSize int) image.Image {
	half := float64(logoSize) / 2

	ctx := gg.NewContext(logoSize, logoSize)
	ctx.SetColor(c.LogoBackground)
	ctx.DrawCircle(half, half, half-math.Max(c.LogoBorderWidth, 0))
	ctx.Fill()

	ctx.DrawCircle(half, half, half)
	ctx.Clip()
	ctx.DrawImage(resize.Resize(uint(logoSize), uint(logoSize), logo, resize.Lanczos3), 0, 0)
	ctx.ResetClip()

	return ctx.Image()
}
