// Package qr renders JSON payloads as PNG QR codes.
package qr

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const DefaultSize = 256

// Encoded holds the artefacts stored on a finalized ticket.
type Encoded struct {
	PNG           []byte
	PNGBase64     string
	PayloadBase64 string
}

// Encode marshals payload to JSON and renders that JSON as a QR image.
func Encode(payload any, size int) (Encoded, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Encoded{}, fmt.Errorf("marshal qr payload: %w", err)
	}

	png, err := qrcode.Encode(string(data), qrcode.Medium, size)
	if err != nil {
		return Encoded{}, fmt.Errorf("render qr code: %w", err)
	}

	return Encoded{
		PNG:           png,
		PNGBase64:     base64.StdEncoding.EncodeToString(png),
		PayloadBase64: base64.StdEncoding.EncodeToString(data),
	}, nil
}

// DecodePayload reverses PayloadBase64 into out.
func DecodePayload(encoded string, out any) error {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("decode qr payload: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("unmarshal qr payload: %w", err)
	}
	return nil
}

// DecodeImage returns the PNG bytes of a stored base64 image.
func DecodeImage(encoded string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(encoded)
}
