package cardproof

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed "templates"
var templateFS embed.FS

var cardTemplate = template.Must(template.ParseFS(templateFS, "templates/card.tmpl"))

// backPanelQRLink is encoded into the placeholder back panel when the user
// does not supply a back image.
const backPanelQRLink = "https://www.example.com"

// Image is a base64-encoded source image ready for embedding.
type Image struct {
	// Subtype is the MIME image subtype, e.g. "png" or "jpeg".
	Subtype string
	Base64  string
}

func (img Image) dataURI() string {
	return fmt.Sprintf("data:image/%s;base64,%s", img.Subtype, img.Base64)
}

// Images holds the uploaded artwork for one card. Front is required; Back
// and Inside fall back to placeholder content when nil. Inside is only
// meaningful for folded cards, where a single image spans both inside
// panels.
type Images struct {
	Front  Image
	Back   *Image
	Inside *Image
}

type documentData struct {
	PrinceCSS     template.CSS
	PageWidth     float64
	PageHeight    float64
	ContentWidth  float64
	ContentHeight float64
	Bleed         float64
	Marks         string
	Background    string
	FitMode       FitMode
	Spreads       []spreadData
}

type spreadData struct {
	Panels        []panelData
	FoldIndicator bool
}

type panelData struct {
	Label   string
	Style   template.CSS
	Content template.HTML
}

// RenderHTML serializes a computed layout into the HTML/CSS document the
// rendering service consumes. Geometry comes exclusively from the layout;
// settings contribute only pass-through print options and the background.
func RenderHTML(layout *CardLayout, settings Settings, images Images) (string, error) {
	if len(layout.Spreads) == 0 {
		return "", fmt.Errorf("layout has no spreads")
	}

	// Crop marks only. Registration marks are never requested.
	marks := "none"
	if layout.Bleed > 0 {
		marks = "crop"
	}

	first := layout.Spreads[0]
	data := documentData{
		PrinceCSS:     princeCSS(settings),
		PageWidth:     first.Width,
		PageHeight:    first.Height,
		ContentWidth:  first.Width + layout.Bleed*2,
		ContentHeight: first.Height + layout.Bleed*2,
		Bleed:         layout.Bleed,
		Marks:         marks,
		Background:    settings.BackgroundColor,
		FitMode:       settings.FitMode,
	}

	for i, spread := range layout.Spreads {
		sd := spreadData{
			// The fold line is a visual guide only. On the inside spread it
			// is dropped when a user image spans both panels.
			FoldIndicator: layout.CardType == CardTypeFolded && (i == 0 || images.Inside == nil),
		}
		for _, panel := range spread.Panels {
			content, err := panelContent(panel, images)
			if err != nil {
				return "", err
			}
			sd.Panels = append(sd.Panels, panelData{
				Label:   panel.Label,
				Style:   panelStyle(panel, layout.Bleed),
				Content: content,
			})
		}
		data.Spreads = append(data.Spreads, sd)
	}

	var buf bytes.Buffer
	if err := cardTemplate.ExecuteTemplate(&buf, "card", data); err != nil {
		return "", fmt.Errorf("failed to render card markup: %w", err)
	}
	return buf.String(), nil
}

// panelStyle positions the panel's bleed box within the spread content box,
// whose origin sits at (-bleed, -bleed) of the spread trim origin.
func panelStyle(panel Panel, bleed float64) template.CSS {
	return template.CSS(fmt.Sprintf("left: %gin; top: %gin; width: %gin; height: %gin;",
		panel.Bleed.X+bleed, panel.Bleed.Y+bleed, panel.Bleed.Width, panel.Bleed.Height))
}

// panelContent selects the markup for one panel. The front cover always
// carries the uploaded image; back and inside panels use uploaded images
// when provided and simulated print content otherwise.
func panelContent(panel Panel, images Images) (template.HTML, error) {
	switch panel.Label {
	case "front", "panel1":
		return imageTag(images.Front, "Front Cover", ""), nil
	case "back", "panel4":
		if images.Back != nil {
			return imageTag(*images.Back, "Back Cover", ""), nil
		}
		return backPanelPlaceholder()
	case "panel2":
		if images.Inside != nil {
			// Left half of the spanning inside image.
			return imageTag(*images.Inside, "Inside Left", "right center"), nil
		}
		return insideLeftPlaceholder, nil
	case "panel3":
		if images.Inside != nil {
			return imageTag(*images.Inside, "Inside Right", "left center"), nil
		}
		return insideRightPlaceholder, nil
	default:
		return "", fmt.Errorf("no content mapping for panel %q", panel.Label)
	}
}

// imageTag builds an <img> for a base64-embedded upload. The source is
// server-assembled from an enumerated subtype and base64 payload, never raw
// user markup.
func imageTag(img Image, alt, objectPosition string) template.HTML {
	style := ""
	if objectPosition != "" {
		style = fmt.Sprintf(` style="object-position: %s;"`, objectPosition)
	}
	return template.HTML(fmt.Sprintf(`<img class="image" src="%s" alt="%s"%s>`, img.dataURI(), alt, style))
}

// princeCSS assembles the @prince-pdf block for the requested print
// options. Returns an empty block-free string when nothing is set.
func princeCSS(s Settings) template.CSS {
	var rules []string

	if s.PDFProfile != "" {
		rules = append(rules, fmt.Sprintf("prince-pdf-profile: %q;", s.PDFProfile))
	}

	var colorOptions []string
	if s.UseTrueBlack {
		colorOptions = append(colorOptions, "use-true-black")
	}
	if s.UseCMYKColors {
		colorOptions = append(colorOptions, "use-cmyk-colors")
	}
	if len(colorOptions) > 0 {
		rules = append(rules, fmt.Sprintf("prince-pdf-color-options: %s;", strings.Join(colorOptions, " ")))
	}

	// Output intent is required for PDF/X compliance. The profile is
	// embedded as a base64 data URI, the most reliable delivery method.
	if s.ICCBase64 != "" {
		rules = append(rules, fmt.Sprintf(`prince-pdf-output-intent: url("data:application/vnd.iccprofile;base64,%s");`, s.ICCBase64))
	}

	if len(rules) == 0 {
		return ""
	}
	return template.CSS(fmt.Sprintf("@prince-pdf {\n            %s\n        }", strings.Join(rules, "\n            ")))
}

// backPanelPlaceholder simulates printed back-cover content, including a QR
// code in place of a real barcode.
func backPanelPlaceholder() (template.HTML, error) {
	qr, err := QRCodeDataURI(backPanelQRLink, 256)
	if err != nil {
		return "", err
	}

	return template.HTML(fmt.Sprintf(`<div class="back-content">
    <div class="logo-placeholder">&#10022;</div>
    <h2>Premium Greeting Card</h2>
    <p class="tagline">Crafted with care, delivered with love</p>
    <div class="details">
        <p>Made in USA &#8226; Recycled Paper</p>
        <p>www.example.com</p>
    </div>
    <div class="qr-placeholder">
        <img class="qr" src="%s" alt="QR code">
        <span>1234567890</span>
    </div>
</div>`, qr)), nil
}

const insideLeftPlaceholder = template.HTML(`<div class="inside-content inside-left">
    <p class="small-text">Panel 2 - Inside Left</p>
</div>`)

const insideRightPlaceholder = template.HTML(`<div class="inside-content inside-right">
    <div class="message-area">
        <p class="preprinted-message">Wishing you all the best on your special day!</p>
        <div class="signature-line">
            <span>With love,</span>
            <div class="line"></div>
        </div>
    </div>
    <p class="small-text">Panel 3 - Inside Right</p>
</div>`)
