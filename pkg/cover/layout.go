package cover

import "math"

// Font describes a text style.
type Font struct {
	Family string
	Style  string // "" regular, "B" bold
	Size   float64
	Color  [3]int
}

// Layout fixes every position on the page, in points.
type Layout struct {
	PageWidth  float64
	PageHeight float64

	NameFont     Font
	NameBaseline float64

	DateFont     Font
	DateBaseline float64

	// LogoBox is the side of the square the logo is fit into.
	LogoBox float64
	// LogoMargin is the distance of the box from the right and bottom edges.
	LogoMargin float64
}

// DefaultLayout is the US Letter portrait cover.
func DefaultLayout() Layout {
	return Layout{
		PageWidth:    612,
		PageHeight:   792,
		NameFont:     Font{Family: "Helvetica", Style: "B", Size: 30, Color: [3]int{33, 37, 41}},
		NameBaseline: 330,
		DateFont:     Font{Family: "Helvetica", Size: 16, Color: [3]int{90, 98, 104}},
		DateBaseline: 366,
		LogoBox:      144,
		LogoMargin:   36,
	}
}

// Rect is a box with its top-left corner at X, Y.
type Rect struct {
	X, Y, W, H float64
}

// TextPlacement is a line of text anchored at its baseline start.
type TextPlacement struct {
	Text string
	Font Font
	X, Y float64
}

// Placement is the computed page content. Nil members are not drawn.
type Placement struct {
	Name *TextPlacement
	Date *TextPlacement
	Logo *Rect
}

// MeasureFunc returns the width of text in points for font.
type MeasureFunc func(font Font, text string) float64

// Plan computes where everything goes. logoW and logoH are the logo's pixel
// dimensions; zero means no logo.
//
// The logo is scaled uniformly by the limiting dimension, up or down, and sits
// flush against the box's bottom-right corner.
func (l Layout) Plan(name, date string, logoW, logoH int, measure MeasureFunc) Placement {
	var p Placement

	if name != "" {
		p.Name = l.centered(name, l.NameFont, l.NameBaseline, measure)
	}
	if date != "" {
		p.Date = l.centered(date, l.DateFont, l.DateBaseline, measure)
	}

	if logoW > 0 && logoH > 0 {
		scale := math.Min(l.LogoBox/float64(logoW), l.LogoBox/float64(logoH))
		w := float64(logoW) * scale
		h := float64(logoH) * scale
		p.Logo = &Rect{
			X: l.PageWidth - l.LogoMargin - w,
			Y: l.PageHeight - l.LogoMargin - h,
			W: w,
			H: h,
		}
	}

	return p
}

func (l Layout) centered(text string, font Font, baseline float64, measure MeasureFunc) *TextPlacement {
	return &TextPlacement{
		Text: text,
		Font: font,
		X:    (l.PageWidth - measure(font, text)) / 2,
		Y:    baseline,
	}
}
