// Package graphic supplies the square pixel buffers blitted onto card
// fronts: a QR encoder for deck-list URLs and an HTTP fetcher for
// pre-rendered images.
package graphic

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/skip2/go-qrcode"
	xdraw "golang.org/x/image/draw"
)

// encodeSize is the pixel size QR codes are generated at before resizing.
const encodeSize = 256

// Source produces a graphic for a target URL at its natural size. Callers
// resize to the configured card size with Scale.
type Source interface {
	Graphic(url string) (image.Image, error)
}

// QRCoder encodes the URL itself as a QR code.
type QRCoder struct {
	Level qrcode.RecoveryLevel
}

func NewQRCoder() *QRCoder {
	return &QRCoder{Level: qrcode.Medium}
}

func (q *QRCoder) Graphic(url string) (image.Image, error) {
	pngBytes, err := qrcode.Encode(url, q.Level, encodeSize)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}
	img, err := png.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decode qr code png: %w", err)
	}
	return img, nil
}

// Fetcher downloads a pre-rendered graphic from the URL.
type Fetcher struct {
	client *retryablehttp.Client
}

func NewFetcher() *Fetcher {
	client := retryablehttp.NewClient()
	client.RetryMax = 5
	client.Logger = nil
	client.HTTPClient.Timeout = 15 * time.Second
	return &Fetcher{client: client}
}

func (f *Fetcher) Graphic(url string) (image.Image, error) {
	resp, err := f.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch graphic: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch graphic: status code %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode graphic: %w", err)
	}
	return img, nil
}

// Scale resizes a graphic to a size x size square with Catmull-Rom
// resampling.
func Scale(img image.Image, size int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
