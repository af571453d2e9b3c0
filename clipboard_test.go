package datagrid

import "testing"

type memClipboard struct {
	text string
}

func (c *memClipboard) GetText() string     { return c.text }
func (c *memClipboard) SetText(text string) { c.text = text }

func TestCopySelectedCell(t *testing.T) {
	cb := &memClipboard{}
	rec := &recorder{}
	g := newTestGrid(t, matrix(5, 3), plainColumns(3), rec, WithClipboard(cb))
	g.Select(3, 2)

	press(g, KeyCopy)
	if cb.text != "r3c2" {
		t.Errorf("clipboard = %q, want r3c2", cb.text)
	}
	if g.Editing() || len(rec.calls) != 0 {
		t.Error("copy opened an edit or called the owner")
	}
}

func TestPasteOpensEditor(t *testing.T) {
	cb := &memClipboard{text: "pasted\n"}
	rec := &recorder{}
	g := newTestGrid(t, matrix(5, 3), plainColumns(3), rec, WithClipboard(cb))
	g.Select(2, 1)

	press(g, KeyPaste)
	s := g.EditSession()
	if s == nil || s.Cell() != (CellIndex{Row: 2, Col: 1}) {
		t.Fatalf("session = %+v", s)
	}
	if s.Text != "pasted" {
		t.Errorf("text = %q, want pasted", s.Text)
	}
	if len(rec.calls) != 0 {
		t.Errorf("paste submitted: %+v", rec.calls)
	}
}

func TestPasteIntoOpenSession(t *testing.T) {
	cb := &memClipboard{text: "a\r\nb"}
	columns := plainColumns(3)
	columns[2].Input = InputMultiline
	rec := &recorder{}
	g := newTestGrid(t, matrix(5, 3), columns, rec, WithClipboard(cb))

	s, _ := g.BeginEdit(1, 1)
	press(g, KeyPaste)
	if s.Text != "r1c1a b" {
		t.Errorf("single-line paste = %q", s.Text)
	}

	s, _ = g.BeginEdit(1, 2)
	press(g, KeyPaste)
	if s.Text != "r1c2a\r\nb" {
		t.Errorf("multiline paste = %q", s.Text)
	}
}

func TestClipboardNotConfigured(t *testing.T) {
	rec := &recorder{}
	g := newTestGrid(t, matrix(5, 3), plainColumns(3), rec)
	if g.Copy() || g.Paste() {
		t.Error("Copy or Paste succeeded without a clipboard")
	}
	if g.Editing() {
		t.Error("Paste opened a session")
	}
}
