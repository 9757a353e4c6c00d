package cardproof

// PDFProfiles lists the Prince PDF profiles DocRaptor accepts. The empty
// entry selects the renderer default (no profile).
var PDFProfiles = []string{
	"PDF/X-4",
	"PDF/X-1a",
	"PDF/X-3",
	"PDF/A-1a",
	"PDF/A-1b",
	"PDF/A-3a",
	"PDF/A-3b",
	"PDF/UA-1",
	"",
}

// Settings collects the per-request generation options. Everything besides
// CardType, BleedEnabled and FitMode is passed through to the markup
// untouched; it never affects layout geometry.
type Settings struct {
	CardType        CardType
	BleedEnabled    bool
	FitMode         FitMode
	PDFProfile      string
	ICCBase64       string
	UseTrueBlack    bool
	UseCMYKColors   bool
	BackgroundColor string
}

func NewDefaultSettings() *Settings {
	return &Settings{
		CardType:        CardTypeFlat,
		FitMode:         FitCover,
		PDFProfile:      "PDF/X-4",
		UseTrueBlack:    true,
		BackgroundColor: "#ffffff",
	}
}
