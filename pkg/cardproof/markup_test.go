package cardproof

import (
	"strings"
	"testing"
)

// tiny valid base64 payload standing in for a real upload
const testImageBase64 = "iVBORw0KGgo="

func testImages() Images {
	return Images{Front: Image{Subtype: "png", Base64: testImageBase64}}
}

func renderForTest(t *testing.T, cardType CardType, bleed bool, settings Settings, images Images) string {
	t.Helper()
	layout := mustLayout(t, cardType, bleed, settings.FitMode)
	html, err := RenderHTML(layout, settings, images)
	if err != nil {
		t.Fatalf("RenderHTML returned error: %v", err)
	}
	return html
}

func TestRenderFlatCardWithBleed(t *testing.T) {
	settings := *NewDefaultSettings()
	settings.BleedEnabled = true

	html := renderForTest(t, CardTypeFlat, true, settings, testImages())

	for _, want := range []string{
		"size: 4.75in 6.75in;",
		"bleed: 0.125in;",
		"marks: crop;",
		"object-fit: cover;",
		`prince-pdf-profile: "PDF/X-4";`,
		"prince-pdf-color-options: use-true-black;",
		// bleed box of a full page: 4.75+0.25 x 6.75+0.25
		"width: 5in; height: 7in;",
		"data:image/png;base64," + testImageBase64,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("flat markup missing %q", want)
		}
	}

	// No back image supplied: back page carries the simulated content with
	// its QR code.
	if !strings.Contains(html, `class="back-content"`) {
		t.Error("expected placeholder back panel content")
	}
	if !strings.Contains(html, `<img class="qr" src="data:image/png;base64,`) {
		t.Error("expected QR code in placeholder back panel")
	}
}

func TestRenderFlatCardWithoutBleed(t *testing.T) {
	settings := *NewDefaultSettings()

	html := renderForTest(t, CardTypeFlat, false, settings, testImages())

	if !strings.Contains(html, "marks: none;") {
		t.Error("expected marks: none with bleed disabled")
	}
	if !strings.Contains(html, "bleed: 0in;") {
		t.Error("expected zero bleed in @page rule")
	}
	if strings.Contains(html, "marks: crop;") {
		t.Error("crop marks must not be requested with bleed disabled")
	}
}

func TestRenderFoldedCard(t *testing.T) {
	settings := *NewDefaultSettings()
	settings.CardType = CardTypeFolded
	settings.FitMode = FitContain
	settings.BleedEnabled = true

	html := renderForTest(t, CardTypeFolded, true, settings, testImages())

	for _, want := range []string{
		"size: 9.5in 6.75in;",
		"object-fit: contain;",
		// right panel of each spread starts at the fold
		"left: 4.875in;",
		`class="panel panel4"`,
		`class="panel panel1"`,
		`class="panel panel2"`,
		`class="panel panel3"`,
		`class="fold-indicator"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("folded markup missing %q", want)
		}
	}

	// Placeholder inside panels when no inside image is supplied.
	if !strings.Contains(html, "Panel 2 - Inside Left") || !strings.Contains(html, "Panel 3 - Inside Right") {
		t.Error("expected placeholder inside panel content")
	}
}

func TestRenderFoldedCardWithInsideImage(t *testing.T) {
	settings := *NewDefaultSettings()
	settings.CardType = CardTypeFolded

	images := testImages()
	images.Inside = &Image{Subtype: "jpeg", Base64: testImageBase64}
	images.Back = &Image{Subtype: "jpeg", Base64: testImageBase64}

	html := renderForTest(t, CardTypeFolded, false, settings, images)

	// A single image spans both inside panels, anchored at the fold.
	if !strings.Contains(html, "object-position: right center;") {
		t.Error("inside-left panel should anchor the spanning image right")
	}
	if !strings.Contains(html, "object-position: left center;") {
		t.Error("inside-right panel should anchor the spanning image left")
	}
	// Custom back image replaces the simulated back panel.
	if strings.Contains(html, `class="back-content"`) {
		t.Error("placeholder back panel should be replaced by the uploaded image")
	}
}

func TestRenderEmbedsICCOutputIntent(t *testing.T) {
	settings := *NewDefaultSettings()
	settings.ICCBase64 = "QUJD"
	settings.UseCMYKColors = true

	html := renderForTest(t, CardTypeFlat, false, settings, testImages())

	if !strings.Contains(html, `prince-pdf-output-intent: url("data:application/vnd.iccprofile;base64,QUJD");`) {
		t.Error("expected embedded ICC output intent")
	}
	if !strings.Contains(html, "prince-pdf-color-options: use-true-black use-cmyk-colors;") {
		t.Error("expected both color options")
	}
}

func TestRenderOmitsPrinceBlockWhenUnconfigured(t *testing.T) {
	settings := Settings{
		FitMode:         FitCover,
		BackgroundColor: "#ffffff",
	}

	html := renderForTest(t, CardTypeFlat, false, settings, testImages())

	if strings.Contains(html, "@prince-pdf") {
		t.Error("expected no @prince-pdf block when no print options are set")
	}
}
