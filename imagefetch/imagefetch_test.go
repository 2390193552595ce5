package imagefetch

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func TestFetchSniffsMIMEFromContent(t *testing.T) {
	payload := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0x00}, 64)...)

	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Deliberately wrong header, the sniffer should win.
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(payload)
	}))
	defer testServer.Close()

	img, err := New(0).Fetch(testServer.URL)
	if err != nil {
		t.Fatalf("Failed to fetch image due to %s", err.Error())
	}

	if !bytes.Equal(img.Data, payload) {
		t.Errorf("got %d bytes, want %d", len(img.Data), len(payload))
	}

	if img.MIMEType != "image/png" {
		t.Errorf("got MIME type %q, want image/png", img.MIMEType)
	}
}

func TestFetchFallsBackToContentTypeHeader(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg; charset=utf-8")
		_, _ = w.Write([]byte("not a real image"))
	}))
	defer testServer.Close()

	img, err := New(0).Fetch(testServer.URL)
	if err != nil {
		t.Fatalf("Failed to fetch image due to %s", err.Error())
	}

	if img.MIMEType != "image/jpeg" {
		t.Errorf("got MIME type %q, want image/jpeg", img.MIMEType)
	}
}

func TestFetchBadStatus(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer testServer.Close()

	_, err := New(0).Fetch(testServer.URL)
	if !errors.Is(err, ErrBadStatus) {
		t.Errorf("got error %v, want ErrBadStatus", err)
	}
}

func TestFetchInvalidURL(t *testing.T) {
	if _, err := New(0).Fetch("not-a-url"); err == nil {
		t.Error("expected an error for an invalid URL")
	}
}
