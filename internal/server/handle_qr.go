package server

import (
	"net/http"
	"strings"

	"github.com/skip2/go-qrcode"
)

const qrSize = 320

// handleQR renders a PNG QR code pointing at the room's URL so a phone
// can join by scanning.
func handleQR() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}

		// The route is /api/{room}/qr; the shareable URL is the room page.
		path := strings.TrimSuffix(r.URL.Path, "/qr")
		path = strings.TrimPrefix(path, "/api")
		url := scheme + "://" + r.Host + path

		png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "qr generation failed")
			return
		}

		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	}
}
