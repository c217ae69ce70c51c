package cvfolio

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// qrEncoder abstracts QR image generation to enable testing without the
// encoder.
type qrEncoder interface {
	EncodeDataURI(payload string) (string, error)
}

// Compile-time interface check.
var _ qrEncoder = (*pngQREncoder)(nil)

// qrImageSize is the pixel size of the generated QR PNG. The footer scales it
// down; 256px keeps the modules sharp after the 2x supersampling.
const qrImageSize = 256

// pngQREncoder renders a payload string as a PNG data URI.
type pngQREncoder struct{}

// EncodeDataURI encodes the payload as a medium-redundancy QR PNG and wraps
// it in a data URI for inline embedding.
func (pngQREncoder) EncodeDataURI(payload string) (string, error) {
	if payload == "" {
		return "", nil
	}
	png, err := qrcode.Encode(payload, qrcode.Medium, qrImageSize)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrQREncode, err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
