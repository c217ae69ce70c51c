package cvfolio

import (
	"encoding/base64"
	"image/png"
	"strings"
	"testing"
)

func TestPNGQREncoder_EncodeDataURI(t *testing.T) {
	t.Parallel()

	uri, err := pngQREncoder{}.EncodeDataURI("https://cv.example.com/e/acme/v/AB12CD")
	if err != nil {
		t.Fatalf("EncodeDataURI() error = %v", err)
	}

	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("uri does not start with %q", prefix)
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	if err != nil {
		t.Fatalf("decoding base64 payload: %v", err)
	}

	img, err := png.Decode(strings.NewReader(string(raw)))
	if err != nil {
		t.Fatalf("decoding PNG payload: %v", err)
	}
	if got := img.Bounds().Dx(); got != qrImageSize {
		t.Errorf("QR image width = %d, want %d", got, qrImageSize)
	}
}

func TestPNGQREncoder_EmptyPayload(t *testing.T) {
	t.Parallel()

	uri, err := pngQREncoder{}.EncodeDataURI("")
	if err != nil {
		t.Fatalf("EncodeDataURI(\"\") error = %v", err)
	}
	if uri != "" {
		t.Errorf("uri = %q, want empty for empty payload", uri)
	}
}
