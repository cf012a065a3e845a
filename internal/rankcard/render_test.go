package rankcard

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFetcher serves canned bytes per URL; unknown URLs are absent.
type stubFetcher struct {
	data map[string][]byte
}

func (f *stubFetcher) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	if b, ok := f.data[url]; ok {
		return b, nil
	}
	return nil, errors.New("fetch failed")
}

func pngBytes(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newTestRenderer(t *testing.T, fetcher Fetcher) *Renderer {
	t.Helper()
	r, err := New(fetcher, "", 1)
	require.NoError(t, err)
	return r
}

func decodeCard(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, format, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	return img
}

func baseRequest() Request {
	return Request{
		DisplayName: "tester",
		TextColor:   "#FFFFFF",
		XP:          40,
		XPNeeded:    100,
		Level:       0,
		TotalXP:     40,
		Rank:        3,
	}
}

func TestRenderWithoutRemoteImages(t *testing.T) {
	r := newTestRenderer(t, &stubFetcher{})

	out, err := r.Render(context.Background(), baseRequest())
	require.NoError(t, err)

	img := decodeCard(t, out)
	assert.Equal(t, cardWidth, img.Bounds().Dx())
	assert.Equal(t, cardHeight, img.Bounds().Dy())
}

func TestRenderSucceedsWhenAvatarFetchFails(t *testing.T) {
	r := newTestRenderer(t, &stubFetcher{})

	req := baseRequest()
	req.AvatarURL = "https://cdn.example.com/missing.png"

	out, err := r.Render(context.Background(), req)
	require.NoError(t, err, "absent avatar degrades, not fails")
	decodeCard(t, out)
}

func TestRenderWithAvatarAndBackground(t *testing.T) {
	fetcher := &stubFetcher{data: map[string][]byte{
		"https://cdn.example.com/avatar.png": pngBytes(t, 64, 64, color.NRGBA{R: 200, A: 255}),
		"https://cdn.example.com/bg.png":     pngBytes(t, 1920, 1080, color.NRGBA{B: 200, A: 255}),
	}}
	r := newTestRenderer(t, fetcher)

	req := baseRequest()
	req.AvatarURL = "https://cdn.example.com/avatar.png"
	req.BackgroundURL = "https://cdn.example.com/bg.png"

	out, err := r.Render(context.Background(), req)
	require.NoError(t, err)
	decodeCard(t, out)
}

func TestRenderFailsOnCorruptBackground(t *testing.T) {
	fetcher := &stubFetcher{data: map[string][]byte{
		"https://cdn.example.com/bg.png": []byte("not an image"),
	}}
	r := newTestRenderer(t, fetcher)

	req := baseRequest()
	req.BackgroundURL = "https://cdn.example.com/bg.png"

	_, err := r.Render(context.Background(), req)
	var re *RenderError
	assert.ErrorAs(t, err, &re)
}

func TestRenderZeroXPNeeded(t *testing.T) {
	r := newTestRenderer(t, &stubFetcher{})

	req := baseRequest()
	req.XP = 0
	req.XPNeeded = 0

	out, err := r.Render(context.Background(), req)
	require.NoError(t, err, "zero denominator draws an empty bar")
	decodeCard(t, out)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", formatNumber(0))
	assert.Equal(t, "999", formatNumber(999))
	assert.Equal(t, "1,000", formatNumber(1000))
	assert.Equal(t, "1,234,567", formatNumber(1234567))
}

func TestParseHexColorFallsBackToWhite(t *testing.T) {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	assert.Equal(t, white, parseHexColor("nonsense"))
	assert.Equal(t, white, parseHexColor("#FFF"))
	assert.Equal(t, color.NRGBA{R: 0x1A, G: 0x2B, B: 0x3C, A: 255}, parseHexColor("#1a2b3c"))
}
