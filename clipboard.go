package datagrid

import "strings"

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// ClipboardProvider abstracts system clipboard access.
// Implement this interface with platform-specific clipboard APIs.
//
// For GLFW:
//
//	type GLFWClipboard struct {
//	    window *glfw.Window
//	}
//
//	func (c *GLFWClipboard) GetText() string {
//	    return c.window.GetClipboardString()
//	}
//
//	func (c *GLFWClipboard) SetText(text string) {
//	    c.window.SetClipboardString(text)
//	}
type ClipboardProvider interface {
	// GetText retrieves text from the system clipboard.
	// Returns empty string if clipboard is empty or contains non-text data.
	GetText() string

	// SetText copies text to the system clipboard.
	SetText(text string)
}

// WithClipboard connects Copy and Paste to a clipboard.
func WithClipboard(cp ClipboardProvider) Option {
	return func(c *Config) { c.Clipboard = cp }
}

// Copy puts the raw value of the selected cell on the clipboard. It reports
// false when no clipboard is configured.
func (g *Grid) Copy() bool {
	if g.cfg.Clipboard == nil {
		return false
	}
	v, ok := g.Cell(g.selection.Row, g.selection.Col)
	if !ok {
		return false
	}
	g.cfg.Clipboard.SetText(v)
	gridLogger.Debug("copy", "row", g.selection.Row, "col", g.selection.Col)
	return true
}

// Paste appends clipboard text to the open session's working text. Without
// a session it opens one on the selected cell and replaces the working text,
// leaving the submit to the user. Line breaks survive only in multiline
// columns. It reports whether any text was pasted.
func (g *Grid) Paste() bool {
	if g.cfg.Clipboard == nil {
		return false
	}
	text := g.cfg.Clipboard.GetText()
	if text == "" {
		return false
	}
	s := g.session
	if s == nil {
		var ok bool
		if s, ok = g.BeginEdit(g.selection.Row, g.selection.Col); !ok {
			return false
		}
		s.Text = ""
	}
	if s.Input != InputMultiline {
		text = lineBreaks.Replace(strings.TrimRight(text, "\r\n"))
	}
	s.SetText(s.Text + text)
	gridLogger.Debug("paste", "row", s.Row, "col", s.Col, "len", len(text))
	return true
}
