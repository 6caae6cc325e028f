package service

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/fogleman/gg"

	"github.com/icykcyber/genbot/internal/domain/configurator"
)

const (
	previewWidth    = 640
	previewHeight   = 360
	previewPadding  = 40.0
	previewBoxSize  = 240.0
	previewSwatchR  = 18.0
	previewTileGap  = 6.0
	canvasColor     = "#141414"
	emptyBackground = "#2A2A2A"
	inactiveTile    = "#3C3C3C"
	activeTile      = "#E6E6E6"
)

// PreviewService draws a summary card of a configuration: the aspect box
// filled with the background color, the requested image tiles and the
// accent color swatches.
type PreviewService struct{}

func NewPreviewService() *PreviewService {
	return &PreviewService{}
}

// Render returns the card as a PNG.
func (s *PreviewService) Render(cfg *configurator.Configuration) ([]byte, error) {
	dims, err := configurator.PreviewDimensions(cfg.AspectIndex(), previewBoxSize)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(previewWidth, previewHeight)
	dc.SetHexColor(canvasColor)
	dc.Clear()

	boxX := previewPadding + (previewBoxSize-dims.Width)/2
	boxY := (previewHeight - dims.Height) / 2

	if bg, ok := cfg.Background(); ok {
		dc.SetHexColor("#" + bg)
	} else {
		dc.SetHexColor(emptyBackground)
	}
	dc.DrawRectangle(boxX, boxY, dims.Width, dims.Height)
	dc.Fill()

	drawTiles(dc, boxX, boxY, dims, cfg.ImageCount())

	infoX := previewPadding*2 + previewBoxSize
	dc.SetHexColor(activeTile)
	dc.DrawString(fmt.Sprintf("%s  x%d", cfg.Aspect(), cfg.ImageCount()), infoX, previewPadding*2)

	for i, hex := range cfg.Colors() {
		cx := infoX + previewSwatchR + float64(i)*(previewSwatchR*2+previewTileGap*2)
		cy := previewPadding*2 + previewSwatchR*2
		dc.SetHexColor("#" + hex)
		dc.DrawCircle(cx, cy, previewSwatchR)
		dc.Fill()
	}

	var buf bytes.Buffer
	if err = png.Encode(&buf, dc.Image()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawTiles splits the box into a 2x2 grid and highlights the first count tiles.
func drawTiles(dc *gg.Context, x, y float64, dims configurator.Dimensions, count int) {
	tileW := (dims.Width - previewTileGap*3) / 2
	tileH := (dims.Height - previewTileGap*3) / 2

	for i := 0; i < configurator.MaxImageCount; i++ {
		col, row := float64(i%2), float64(i/2)
		if i < count {
			dc.SetHexColor(activeTile)
		} else {
			dc.SetHexColor(inactiveTile)
		}
		dc.DrawRoundedRectangle(
			x+previewTileGap+col*(tileW+previewTileGap),
			y+previewTileGap+row*(tileH+previewTileGap),
			tileW, tileH, 4,
		)
		dc.Stroke()
	}
}
