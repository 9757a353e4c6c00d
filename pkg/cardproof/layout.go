package cardproof

import (
	"errors"
	"fmt"
)

// CardType selects the imposition of the card.
type CardType string

const (
	CardTypeFlat   CardType = "flat"
	CardTypeFolded CardType = "folded"
)

// FitMode controls how the source image is scaled into its panel. It maps
// directly to the CSS object-fit property and does not affect geometry.
type FitMode string

const (
	FitCover   FitMode = "cover"
	FitContain FitMode = "contain"
	FitFill    FitMode = "fill"
)

// ErrInvalidConfiguration is returned when a card type or fit mode is
// outside its recognized set.
var ErrInvalidConfiguration = errors.New("invalid configuration")

const (
	// Trim size of a single panel.
	PanelWidth  = 4.75
	PanelHeight = 6.75

	// BleedSize is the standard 1/8 inch bleed applied when bleed is enabled.
	BleedSize = 0.125

	// Crop mark dimensions. Marks are offset from the trim corner so they
	// are not visible on the finished piece.
	TrimMarkLength = 0.25
	TrimMarkGap    = 0.125
)

// Panel is one rectangular content area within a card face or spread.
type Panel struct {
	// Label identifies the panel: "front"/"back" for flat cards,
	// "panel1".."panel4" for folded cards.
	Label string `json:"label"`

	// Trim is the panel's nominal bounding box within its spread.
	Trim Rect `json:"trim"`

	// Bleed is the image-rendering box: the trim box grown outward by
	// BleedSize on every edge that lies on an outer spread boundary.
	// Fold-adjacent edges are never bled. Equal to Trim when bleed is off.
	Bleed Rect `json:"bleed"`

	// Fit is passed through to the markup renderer unmodified.
	Fit FitMode `json:"fit"`

	// Marks holds the crop mark strokes for the panel's four trim corners.
	// Empty when bleed is disabled. Registration marks are never produced.
	Marks []Segment `json:"marks,omitempty"`
}

// Spread is one printable area: a full page for flat cards, two panels side
// by side for folded cards.
type Spread struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Panels []Panel `json:"panels"`
}

// CardLayout is the complete set of geometric measurements needed to render
// a card. It is computed fresh per request and never mutated afterwards.
type CardLayout struct {
	CardType CardType `json:"cardType"`
	Bleed    float64  `json:"bleed"`
	Spreads  []Spread `json:"spreads"`
}

// Panels returns all panels across all spreads, in spread order.
func (l *CardLayout) Panels() []Panel {
	var panels []Panel
	for _, s := range l.Spreads {
		panels = append(panels, s.Panels...)
	}
	return panels
}

// ComputeLayout maps a card configuration to its full imposition geometry.
// It is pure and deterministic: identical inputs always produce identical
// layouts.
//
// Flat cards yield two single-panel pages (front, back) of PanelWidth x
// PanelHeight. Folded cards yield two spreads of two panels each, imposed
// as panel4|panel1 (outside) and panel2|panel3 (inside), each spread twice
// the panel width.
func ComputeLayout(cardType CardType, bleedEnabled bool, fit FitMode) (*CardLayout, error) {
	switch fit {
	case FitCover, FitContain, FitFill:
	default:
		return nil, fmt.Errorf("%w: unknown fit mode %q", ErrInvalidConfiguration, fit)
	}

	bleed := 0.0
	if bleedEnabled {
		bleed = BleedSize
	}

	switch cardType {
	case CardTypeFlat:
		return &CardLayout{
			CardType: CardTypeFlat,
			Bleed:    bleed,
			Spreads: []Spread{
				{Width: PanelWidth, Height: PanelHeight, Panels: []Panel{fullPagePanel("front", bleed, fit)}},
				{Width: PanelWidth, Height: PanelHeight, Panels: []Panel{fullPagePanel("back", bleed, fit)}},
			},
		}, nil
	case CardTypeFolded:
		return &CardLayout{
			CardType: CardTypeFolded,
			Bleed:    bleed,
			Spreads: []Spread{
				foldedSpread("panel4", "panel1", bleed, fit),
				foldedSpread("panel2", "panel3", bleed, fit),
			},
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown card type %q", ErrInvalidConfiguration, cardType)
	}
}

// fullPagePanel builds a panel occupying an entire flat-card page, bled on
// all four edges.
func fullPagePanel(label string, bleed float64, fit FitMode) Panel {
	trim := Rect{X: 0, Y: 0, Width: PanelWidth, Height: PanelHeight}
	return Panel{
		Label: label,
		Trim:  trim,
		Bleed: trim.outset(bleed, true, true, true, true),
		Fit:   fit,
		Marks: trimMarks(trim, bleed > 0),
	}
}

// foldedSpread builds one spread of a folded card. The left panel's right
// edge and the right panel's left edge meet at the fold and are not bled.
func foldedSpread(leftLabel, rightLabel string, bleed float64, fit FitMode) Spread {
	leftTrim := Rect{X: 0, Y: 0, Width: PanelWidth, Height: PanelHeight}
	rightTrim := Rect{X: PanelWidth, Y: 0, Width: PanelWidth, Height: PanelHeight}

	return Spread{
		Width:  PanelWidth * 2,
		Height: PanelHeight,
		Panels: []Panel{
			{
				Label: leftLabel,
				Trim:  leftTrim,
				Bleed: leftTrim.outset(bleed, true, true, false, true),
				Fit:   fit,
				Marks: trimMarks(leftTrim, bleed > 0),
			},
			{
				Label: rightLabel,
				Trim:  rightTrim,
				Bleed: rightTrim.outset(bleed, false, true, true, true),
				Fit:   fit,
				Marks: trimMarks(rightTrim, bleed > 0),
			},
		},
	}
}

// trimMarks produces the crop mark strokes for the four corners of a trim
// box. Marks are anchored to the nominal trim geometry, never to the bleed
// box: each corner gets a horizontal and a vertical tick extending outward,
// TrimMarkGap away from the trim edge.
func trimMarks(trim Rect, enabled bool) []Segment {
	if !enabled {
		return nil
	}

	left, top := trim.X, trim.Y
	right, bottom := trim.Right(), trim.Bottom()

	return []Segment{
		// top-left
		{X1: left - TrimMarkGap - TrimMarkLength, Y1: top, X2: left - TrimMarkGap, Y2: top},
		{X1: left, Y1: top - TrimMarkGap - TrimMarkLength, X2: left, Y2: top - TrimMarkGap},
		// top-right
		{X1: right + TrimMarkGap, Y1: top, X2: right + TrimMarkGap + TrimMarkLength, Y2: top},
		{X1: right, Y1: top - TrimMarkGap - TrimMarkLength, X2: right, Y2: top - TrimMarkGap},
		// bottom-left
		{X1: left - TrimMarkGap - TrimMarkLength, Y1: bottom, X2: left - TrimMarkGap, Y2: bottom},
		{X1: left, Y1: bottom + TrimMarkGap, X2: left, Y2: bottom + TrimMarkGap + TrimMarkLength},
		// bottom-right
		{X1: right + TrimMarkGap, Y1: bottom, X2: right + TrimMarkGap + TrimMarkLength, Y2: bottom},
		{X1: right, Y1: bottom + TrimMarkGap, X2: right, Y2: bottom + TrimMarkGap + TrimMarkLength},
	}
}
