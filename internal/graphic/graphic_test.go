package graphic

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestQRCoder_Graphic(t *testing.T) {
	q := NewQRCoder()
	img, err := q.Graphic("https://example.com/deck")
	if err != nil {
		t.Fatalf("Graphic: %v", err)
	}

	b := img.Bounds()
	if b.Dx() != b.Dy() {
		t.Errorf("qr code is %dx%d, want square", b.Dx(), b.Dy())
	}
	if b.Dx() < encodeSize {
		t.Errorf("qr code is %dpx, want at least %d", b.Dx(), encodeSize)
	}
}

func TestScale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 256, 256))
	got := Scale(src, 600)
	if b := got.Bounds(); b.Dx() != 600 || b.Dy() != 600 {
		t.Errorf("scaled to %dx%d, want 600x600", b.Dx(), b.Dy())
	}
}

func TestFetcher_Graphic(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			src.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("png encode: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(buf.Bytes())
	}))
	defer srv.Close()

	f := NewFetcher()
	img, err := f.Graphic(srv.URL)
	if err != nil {
		t.Fatalf("Graphic: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 10 {
		t.Errorf("fetched %dx%d, want 10x10", b.Dx(), b.Dy())
	}
}

func TestFetcher_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := NewFetcher()
	f.client.RetryMax = 0
	if _, err := f.Graphic(srv.URL); err == nil {
		t.Error("expected an error for a 404 response")
	}
}
