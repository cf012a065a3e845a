// Package rankcard composes the rank card image: avatar, progress bar and
// level/XP text on a 900x250 canvas.
package rankcard

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"log"
	"strconv"
	"strings"
	"sync"

	_ "image/jpeg"
	_ "image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/sync/semaphore"
)

const (
	cardWidth  = 900
	cardHeight = 250
	avatarSize = 180
	padding    = 30
	barHeight  = 30
)

var (
	defaultBG = color.NRGBA{R: 44, G: 47, B: 51, A: 255}
	barBG     = color.NRGBA{R: 32, G: 34, B: 37, A: 255}
	barFill   = color.NRGBA{R: 88, G: 101, B: 242, A: 255} // blurple
	mutedGray = color.NRGBA{R: 180, G: 180, B: 180, A: 255}
)

// RenderError wraps any decode/encode failure; no partial card is produced.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string { return fmt.Sprintf("render rank card: %v", e.Err) }
func (e *RenderError) Unwrap() error { return e.Err }

// Fetcher retrieves remote bytes for the avatar and background. A nil slice
// or an error both mean "absent"; the renderer proceeds without the image.
type Fetcher interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

// Request carries the precomputed numbers and URLs for one card.
type Request struct {
	DisplayName   string
	AvatarURL     string
	BackgroundURL string
	TextColor     string // "#RRGGBB"
	XP            uint64 // XP within the current level
	XPNeeded      uint64
	Level         uint32
	TotalXP       uint64
	Rank          int
}

// Renderer draws rank cards. Drawing is gated through a semaphore so a
// burst of requests never monopolizes the event-handling goroutines.
type Renderer struct {
	fetcher Fetcher
	sem     *semaphore.Weighted

	faceLarge  font.Face
	faceMedium font.Face
	faceSmall  font.Face
}

// New creates a Renderer. workers bounds how many cards draw at once.
func New(fetcher Fetcher, fontsDir string, workers int) (*Renderer, error) {
	if workers < 1 {
		workers = 1
	}

	f, err := loadFont(fontsDir)
	if err != nil {
		return nil, fmt.Errorf("load card font: %w", err)
	}

	return &Renderer{
		fetcher:    fetcher,
		sem:        semaphore.NewWeighted(int64(workers)),
		faceLarge:  newFace(f, 40),
		faceMedium: newFace(f, 30),
		faceSmall:  newFace(f, 20),
	}, nil
}

// Render fetches the avatar and background concurrently, then composes the
// card. Fetch failures degrade gracefully; decode/encode failures return a
// RenderError.
func (r *Renderer) Render(ctx context.Context, req Request) ([]byte, error) {
	var (
		wg         sync.WaitGroup
		avatarData []byte
		bgData     []byte
	)

	if req.AvatarURL != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := r.fetcher.FetchBytes(ctx, req.AvatarURL)
			if err != nil {
				log.Printf("[WARN] Avatar fetch failed: %v", err)
				return
			}
			avatarData = data
		}()
	}
	if req.BackgroundURL != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := r.fetcher.FetchBytes(ctx, req.BackgroundURL)
			if err != nil {
				log.Printf("[WARN] Background fetch failed: %v", err)
				return
			}
			bgData = data
		}()
	}
	wg.Wait()

	if err := r.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer r.sem.Release(1)

	return r.compose(req, avatarData, bgData)
}

// compose is the synchronous drawing step.
func (r *Renderer) compose(req Request, avatarData, bgData []byte) ([]byte, error) {
	dc := gg.NewContext(cardWidth, cardHeight)

	if bgData != nil {
		bg, _, err := image.Decode(bytes.NewReader(bgData))
		if err != nil {
			return nil, &RenderError{Err: fmt.Errorf("decode background: %w", err)}
		}
		dc.DrawImage(coverFit(bg, cardWidth, cardHeight), 0, 0)

		// Dark overlay for text contrast
		dc.SetRGBA(0, 0, 0, 0.6)
		dc.DrawRectangle(0, 0, cardWidth, cardHeight)
		dc.Fill()
	} else {
		dc.SetColor(defaultBG)
		dc.Clear()
	}

	textColor := parseHexColor(req.TextColor)

	barX := float64(avatarSize + 2*padding)
	barWidth := float64(cardWidth - (avatarSize + 3*padding) - 100)
	barY := float64(cardHeight - 2*padding - barHeight)

	// Bar background
	dc.SetColor(barBG)
	dc.DrawRoundedRectangle(barX, barY, barWidth, barHeight, barHeight/2)
	dc.Fill()

	// Bar fill, proportional to progress within the level
	progress := 0.0
	if req.XPNeeded > 0 {
		progress = float64(req.XP) / float64(req.XPNeeded)
	}
	if progress > 1 {
		progress = 1
	}
	if fillWidth := barWidth * progress; fillWidth > 0 {
		dc.SetColor(barFill)
		dc.DrawRoundedRectangle(barX, barY, fillWidth, barHeight, barHeight/2)
		dc.Fill()
	}

	// Display name, top-left next to the avatar
	dc.SetFontFace(r.faceLarge)
	dc.SetColor(textColor)
	dc.DrawString(req.DisplayName, barX, padding+40)

	// LEVEL, top-right
	levelText := fmt.Sprintf("LEVEL %d", req.Level)
	w, _ := dc.MeasureString(levelText)
	dc.DrawString(levelText, cardWidth-padding-w, padding+40)

	// RANK, below the level
	dc.SetFontFace(r.faceMedium)
	dc.SetColor(mutedGray)
	rankText := fmt.Sprintf("RANK #%d", req.Rank)
	w, _ = dc.MeasureString(rankText)
	dc.DrawString(rankText, cardWidth-padding-w, padding+80)

	// XP numbers above the bar
	dc.SetFontFace(r.faceSmall)
	dc.SetColor(textColor)
	dc.DrawString(fmt.Sprintf("%s / %s XP", formatNumber(req.XP), formatNumber(req.XPNeeded)), barX, barY-10)

	// Lifetime XP below the bar
	dc.SetColor(mutedGray)
	dc.DrawString("Total XP: "+formatNumber(req.TotalXP), barX, barY+barHeight+25)

	if avatarData != nil {
		avatar, err := circularAvatar(avatarData, avatarSize)
		if err != nil {
			return nil, &RenderError{Err: err}
		}
		dc.DrawImage(avatar, padding, (cardHeight-avatarSize)/2)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, &RenderError{Err: fmt.Errorf("encode png: %w", err)}
	}
	return buf.Bytes(), nil
}

// circularAvatar decodes, scales and circle-masks the avatar image.
func circularAvatar(data []byte, size int) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode avatar: %w", err)
	}

	scaled := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Over, nil)

	dc := gg.NewContext(size, size)
	dc.DrawCircle(float64(size)/2, float64(size)/2, float64(size)/2)
	dc.Clip()
	dc.DrawImage(scaled, 0, 0)
	return dc.Image(), nil
}

// coverFit scales an image to fill w x h, cropping the overflow around the
// center.
func coverFit(img image.Image, w, h int) image.Image {
	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()

	// Scale factor that covers the whole target
	scale := float64(w) / float64(srcW)
	if s := float64(h) / float64(srcH); s > scale {
		scale = s
	}

	scaledW := int(float64(srcW)*scale + 0.5)
	scaledH := int(float64(srcH)*scale + 0.5)
	scaled := image.NewRGBA(image.Rect(0, 0, scaledW, scaledH))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, b, draw.Over, nil)

	x0 := (scaledW - w) / 2
	y0 := (scaledH - h) / 2
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), scaled, image.Point{X: x0, Y: y0}, draw.Src)
	return out
}

// parseHexColor parses "#RRGGBB", defaulting to white on any malformed
// input.
func parseHexColor(s string) color.NRGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

// formatNumber renders n with thousands separators.
func formatNumber(n uint64) string {
	s := strconv.FormatUint(n, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
