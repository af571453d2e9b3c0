package datagrid

import colorful "github.com/lucasb-eyer/go-colorful"

// Spacing constants for consistent layout (similar to Tailwind spacing scale).
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2  // Extra small
	SpaceSM   float32 = 4  // Small (default cell padding)
	SpaceMD   float32 = 8  // Medium
	SpaceLG   float32 = 12 // Large
	SpaceXL   float32 = 16 // Extra large
)

// Style holds the visual tokens of a grid. The engine never reads colors; it
// copies the style into every render model for the painter.
type Style struct {
	// Text
	TextColor         uint32
	TextDisabledColor uint32 // Custom-rendered (read-only) cells
	ErrorTextColor    uint32 // Inline validation message

	// Cells
	BodyBgColor       uint32
	RowBgAltColor     uint32 // Alternate body row background (0 = use BodyBgColor)
	PinnedBgColor     uint32 // Pinned column background
	CheckedRowBgColor uint32 // Rows checked in a selection column (0 = no highlight)
	HeaderBgColor     uint32
	HeaderTextColor   uint32 // 0 = use TextColor
	BorderColor       uint32

	// Selection and editing
	SelectedBorderColor uint32
	EditingBgColor      uint32
	DropdownBgColor     uint32
	MatchHighlightColor uint32

	// Decorations
	CheckboxColor  uint32
	SortArrowColor uint32

	// Sizing
	FontScale  float32
	CharWidth  float32
	CharHeight float32
	BorderSize float32
}

// DefaultStyle returns the default dark style.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,
		ErrorTextColor:    RGBA(230, 90, 90, 255),

		BodyBgColor:       RGBA(25, 25, 25, 255),
		RowBgAltColor:     RGBA(35, 35, 35, 255),
		PinnedBgColor:     RGBA(32, 32, 38, 255),
		CheckedRowBgColor: Tint(RGBA(25, 25, 25, 255), RGBA(50, 140, 220, 255), 0.25),
		HeaderBgColor:     RGBA(40, 40, 40, 255),
		HeaderTextColor:   0, // Use TextColor
		BorderColor:       RGBA(80, 80, 80, 255),

		SelectedBorderColor: RGBA(50, 140, 220, 255),
		EditingBgColor:      RGBA(40, 40, 50, 255),
		DropdownBgColor:     RGBA(25, 25, 25, 250),
		MatchHighlightColor: RGBA(50, 100, 150, 255),

		CheckboxColor:  RGBA(180, 180, 180, 255),
		SortArrowColor: RGBA(255, 200, 0, 255),

		FontScale:  1.0,
		CharWidth:  8,
		CharHeight: 8,
		BorderSize: 1,
	}
}

// LightStyle returns a light theme.
func LightStyle() Style {
	return Style{
		TextColor:         RGBA(20, 20, 20, 255),
		TextDisabledColor: RGBA(150, 150, 150, 255),
		ErrorTextColor:    RGBA(190, 30, 30, 255),

		BodyBgColor:       ColorWhite,
		RowBgAltColor:     RGBA(247, 247, 247, 255),
		PinnedBgColor:     RGBA(240, 240, 245, 255),
		CheckedRowBgColor: Tint(ColorWhite, RGBA(0, 120, 215, 255), 0.15),
		HeaderBgColor:     RGBA(230, 230, 230, 255),
		HeaderTextColor:   RGBA(20, 20, 20, 255),
		BorderColor:       RGBA(200, 200, 200, 255),

		SelectedBorderColor: RGBA(0, 120, 215, 255),
		EditingBgColor:      RGBA(255, 255, 240, 255),
		DropdownBgColor:     ColorWhite,
		MatchHighlightColor: RGBA(200, 225, 250, 255),

		CheckboxColor:  RGBA(80, 80, 80, 255),
		SortArrowColor: RGBA(0, 100, 200, 255),

		FontScale:  1.0,
		CharWidth:  8,
		CharHeight: 8,
		BorderSize: 1,
	}
}

// CellBackground returns the fill of a cell. Painters share it so every
// backend colors the bands the same way.
func (s Style) CellBackground(c *CellDescriptor) uint32 {
	switch {
	case c.Header:
		return s.HeaderBgColor
	case c.RowChecked && s.CheckedRowBgColor != 0:
		return s.CheckedRowBgColor
	case c.Region == RegionPinnedColumn && s.PinnedBgColor != 0:
		return s.PinnedBgColor
	case c.Row%2 == 1 && s.RowBgAltColor != 0:
		return s.RowBgAltColor
	default:
		return s.BodyBgColor
	}
}

// HeaderText returns the header text color, falling back to TextColor.
func (s Style) HeaderText() uint32 {
	if s.HeaderTextColor != 0 {
		return s.HeaderTextColor
	}
	return s.TextColor
}

// Tint mixes over into base by t (0 keeps base, 1 gives over) in CIE L*a*b*,
// which keeps the perceived lightness step even across hues. The alpha of
// base is kept.
func Tint(base, over uint32, t float64) uint32 {
	br, bg, bb, ba := UnpackRGBA(base)
	or, og, ob, _ := UnpackRGBA(over)
	from := colorful.Color{R: float64(br) / 255, G: float64(bg) / 255, B: float64(bb) / 255}
	to := colorful.Color{R: float64(or) / 255, G: float64(og) / 255, B: float64(ob) / 255}
	r, g, b := from.BlendLab(to, t).Clamped().RGB255()
	return RGBA(r, g, b, ba)
}
