package handlers

import (
	"log"
	"net/http"
	"strconv"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	qrDefaultSize = 256
	qrMinSize     = 64
	qrMaxSize     = 1024
)

// HandleQR renders the table link as a PNG so a second screen can join
func (ctx *Context) HandleQR(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	size := qrDefaultSize
	if v := r.URL.Query().Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < qrMinSize || n > qrMaxSize {
			http.Error(w, "Invalid size", http.StatusBadRequest)
			return
		}
		size = n
	}

	png, err := qrcode.Encode(ctx.BaseURL, qrcode.Medium, size)
	if err != nil {
		log.Printf("HandleQR: %v", err)
		http.Error(w, "Could not render QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(png)
}
