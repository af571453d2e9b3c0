package datagrid

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// TextMeasurer measures rendered text. The grid uses it to size rows to their content.
type TextMeasurer interface {
	// MeasureText returns the size of a single line of text.
	MeasureText(text string) Vec2
	// LineHeight returns the height of one line.
	LineHeight() float32
}

// MonospaceMeasurer measures text on a fixed character grid. East Asian wide
// characters take two cells. With CharWidth and CharHeight of 1 it measures
// in terminal cells.
type MonospaceMeasurer struct {
	CharWidth  float32
	CharHeight float32
}

// MeasureText returns the size of text in pixels.
func (m MonospaceMeasurer) MeasureText(text string) Vec2 {
	return Vec2{X: float32(runewidth.StringWidth(text)) * m.CharWidth, Y: m.CharHeight}
}

// LineHeight returns the character height.
func (m MonospaceMeasurer) LineHeight() float32 {
	return m.CharHeight
}

// Font is the interface for a proportional font that can measure text.
// Backends that rasterize real fonts expose it so row heights follow the glyphs.
type Font interface {
	// MeasureText returns the pixel dimensions of the text at the specified scale.
	MeasureText(text string, scale float32) Vec2

	// LineHeight returns the line height at the specified scale.
	LineHeight(scale float32) float32
}

// FontMeasurer adapts a Font at a fixed scale to TextMeasurer.
type FontMeasurer struct {
	Font  Font
	Scale float32
}

// MeasureText returns the size of text at the measurer's scale.
func (m FontMeasurer) MeasureText(text string) Vec2 {
	return m.Font.MeasureText(text, m.scale())
}

// LineHeight returns the font's line height at the measurer's scale.
func (m FontMeasurer) LineHeight() float32 {
	return m.Font.LineHeight(m.scale())
}

func (m FontMeasurer) scale() float32 {
	if m.Scale <= 0 {
		return 1
	}
	return m.Scale
}

// TextWrapMode specifies how text should be wrapped.
type TextWrapMode int

const (
	// WrapModeWord wraps at word boundaries (default for Latin text).
	WrapModeWord TextWrapMode = iota
	// WrapModeChar wraps at character boundaries (for CJK or dense text).
	WrapModeChar
	// WrapModeAuto detects text type and chooses appropriate mode.
	WrapModeAuto
)

// WrapText wraps text to fit within maxWidth. Hard newlines always break.
// Words wider than maxWidth are broken by character so no line overflows
// unless a single character does.
func WrapText(m TextMeasurer, text string, maxWidth float32, mode TextWrapMode) []string {
	if maxWidth <= 0 {
		return strings.Split(text, "\n")
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		paraMode := mode
		if paraMode == WrapModeAuto {
			paraMode = WrapModeWord
			if containsCJK(para) {
				paraMode = WrapModeChar
			}
		}

		var wrapped []string
		if paraMode == WrapModeChar {
			wrapped = wrapByChar(m, para, maxWidth)
		} else {
			wrapped = wrapByWord(m, para, maxWidth)
		}
		if len(wrapped) == 0 {
			wrapped = []string{""}
		}
		lines = append(lines, wrapped...)
	}
	return lines
}

// wrapByWord wraps text at word boundaries.
func wrapByWord(m TextMeasurer, text string, maxWidth float32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var currentLine string

	for _, word := range words {
		if m.MeasureText(word).X > maxWidth {
			// Flush and hard-break the long word
			if currentLine != "" {
				lines = append(lines, currentLine)
				currentLine = ""
			}
			parts := wrapByChar(m, word, maxWidth)
			lines = append(lines, parts[:len(parts)-1]...)
			currentLine = parts[len(parts)-1]
			continue
		}

		testLine := currentLine
		if testLine != "" {
			testLine += " "
		}
		testLine += word

		if m.MeasureText(testLine).X > maxWidth && currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = word
		} else {
			currentLine = testLine
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}

// wrapByChar wraps text at character boundaries.
func wrapByChar(m TextMeasurer, text string, maxWidth float32) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	var lines []string
	var currentLine []rune

	for _, r := range runes {
		testLine := append(currentLine[:len(currentLine):len(currentLine)], r)
		if m.MeasureText(string(testLine)).X > maxWidth && len(currentLine) > 0 {
			lines = append(lines, string(currentLine))
			currentLine = []rune{r}
		} else {
			currentLine = testLine
		}
	}

	if len(currentLine) > 0 {
		lines = append(lines, string(currentLine))
	}

	return lines
}

// containsCJK returns true if the string contains any CJK characters.
func containsCJK(text string) bool {
	for _, r := range text {
		if isCJKRune(r) {
			return true
		}
	}
	return false
}

// isCJKRune returns true if the rune is a CJK character.
func isCJKRune(r rune) bool {
	return unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) ||
		unicode.Is(unicode.Hangul, r)
}

// MeasureWrappedText returns the size of text when wrapped to maxWidth.
// Empty text still occupies one line.
func MeasureWrappedText(m TextMeasurer, text string, maxWidth float32, mode TextWrapMode) Vec2 {
	lines := WrapText(m, text, maxWidth, mode)
	maxLineWidth := float32(0)
	for _, line := range lines {
		maxLineWidth = maxf(maxLineWidth, m.MeasureText(line).X)
	}
	return Vec2{
		X: maxLineWidth,
		Y: float32(len(lines)) * m.LineHeight(),
	}
}

// TruncateText truncates text to fit within maxWidth, adding ".." if needed.
func TruncateText(m TextMeasurer, text string, maxWidth float32) string {
	const suffix = ".."
	if m.MeasureText(text).X <= maxWidth {
		return text
	}

	runes := []rune(text)
	targetWidth := maxWidth - m.MeasureText(suffix).X
	for len(runes) > 0 {
		if m.MeasureText(string(runes)).X <= targetWidth {
			return string(runes) + suffix
		}
		runes = runes[:len(runes)-1]
	}
	if m.MeasureText(suffix).X <= maxWidth {
		return suffix
	}
	return ""
}
