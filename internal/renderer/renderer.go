package renderer

import "context"

// Client submits a rendered HTML document to a document-rendering service
// and returns the produced PDF bytes. A non-empty apiKey overrides the
// service's configured credentials for that request.
type Client interface {
	CreateDoc(ctx context.Context, apiKey string, doc Document) ([]byte, error)
}

// PrinceOptions are the Prince renderer options DocRaptor forwards.
type PrinceOptions struct {
	// CSSDPI sets the CSS pixel density; 300 for print quality.
	CSSDPI     int    `json:"css_dpi,omitempty"`
	Profile    string `json:"profile,omitempty"`
	PDFVersion string `json:"pdf_version,omitempty"`
	// ForceIdentityEncoding disabled lets the renderer convert colors to
	// the output intent (CMYK) instead of preserving source encodings.
	ForceIdentityEncoding *bool `json:"force_identity_encoding,omitempty"`
}

// Document is the request body of the DocRaptor document-creation API.
type Document struct {
	Name            string         `json:"name"`
	DocumentType    string         `json:"document_type"`
	DocumentContent string         `json:"document_content"`
	// Test documents are watermarked and free; set for all non-production use.
	Test          bool           `json:"test"`
	PrinceOptions *PrinceOptions `json:"prince_options,omitempty"`
}
