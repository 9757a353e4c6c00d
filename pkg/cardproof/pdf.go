package cardproof

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// ValidatePDF sanity-checks that data is a well-formed PDF. Used on the
// bytes returned by the rendering service before they are streamed to the
// user, so a truncated or HTML error response never ships as a ".pdf".
func ValidatePDF(data []byte) error {
	if err := api.Validate(bytes.NewReader(data), nil); err != nil {
		return fmt.Errorf("rendered document is not a valid PDF: %w", err)
	}
	return nil
}
