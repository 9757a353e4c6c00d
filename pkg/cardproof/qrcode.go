package cardproof

import (
	"encoding/base64"
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRCodeDataURI encodes the given link as a QR code PNG and returns it as a
// data URI suitable for embedding in generated markup. Size 256 is plenty at
// print resolution for the small back-panel code.
func QRCodeDataURI(link string, size int) (string, error) {
	png, err := qrcode.Encode(link, qrcode.Medium, size)
	if err != nil {
		return "", fmt.Errorf("failed to generate QR code: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
