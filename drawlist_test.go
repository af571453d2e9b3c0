package datagrid

import "testing"

func TestDrawListBatchesByTexture(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, ColorWhite)
	dl.AddRect(10, 0, 10, 10, ColorGray)
	dl.SetTexture(7)
	dl.AddText(0, 20, "ab", ColorWhite, 1, 8, 8)
	dl.SetTexture(7) // no-op
	dl.SetTexture(0)
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("commands = %d, want 2", len(dl.CmdBuffer))
	}
	if c := dl.CmdBuffer[0]; c.TextureID != 0 || c.ElemCount != 12 || c.IndexOffset != 0 {
		t.Errorf("solid command = %+v", c)
	}
	if c := dl.CmdBuffer[1]; c.TextureID != 7 || c.ElemCount != 12 || c.IndexOffset != 12 || c.VertexOffset != 8 {
		t.Errorf("text command = %+v", c)
	}
	if len(dl.VtxBuffer) != 16 || len(dl.IdxBuffer) != 24 {
		t.Errorf("buffers = %d vertices, %d indices", len(dl.VtxBuffer), len(dl.IdxBuffer))
	}
}

func TestDrawListClipStack(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.PushClip(Rect{X: 0, Y: 0, W: 100, H: 50})
	dl.AddRect(0, 0, 5, 5, ColorWhite)
	dl.PushClipRect(10, 10, 20, 20)
	dl.AddRect(10, 10, 5, 5, ColorWhite)
	dl.PopClipRect()
	dl.AddRect(30, 0, 5, 5, ColorWhite)
	dl.PopClipRect()
	dl.Finalize()

	want := [][4]float32{{0, 0, 100, 50}, {10, 10, 20, 20}, {0, 0, 100, 50}}
	if len(dl.CmdBuffer) != len(want) {
		t.Fatalf("commands = %d, want %d", len(dl.CmdBuffer), len(want))
	}
	for i, w := range want {
		if dl.CmdBuffer[i].ClipRect != w || dl.CmdBuffer[i].ElemCount != 6 {
			t.Errorf("command %d = %+v, want clip %v", i, dl.CmdBuffer[i], w)
		}
	}
}

func TestDrawListSkipsInvisible(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, ColorTransparent)
	dl.AddRect(0, 0, 0, 10, ColorWhite)
	dl.AddText(0, 0, "", ColorWhite, 1, 8, 8)
	dl.AddLine(0, 0, 10, 10, ColorTransparent, 1)
	dl.Finalize()
	if len(dl.VtxBuffer) != 0 || len(dl.CmdBuffer) != 0 {
		t.Errorf("drew %d vertices in %d commands", len(dl.VtxBuffer), len(dl.CmdBuffer))
	}
}

func TestAddTextGlyphCoordinates(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	// '▲' falls back to '^' (94): atlas slot 62, column 14, row 3.
	dl.AddText(5, 7, "▲", ColorWhite, 2, 8, 8)
	if len(dl.VtxBuffer) != 4 {
		t.Fatalf("vertices = %d, want 4", len(dl.VtxBuffer))
	}
	v := dl.VtxBuffer
	if v[0].Pos != [2]float32{5, 7} || v[2].Pos != [2]float32{21, 23} {
		t.Errorf("quad = %v .. %v", v[0].Pos, v[2].Pos)
	}
	if !approx(v[0].TexCoord[0], 14.0*8/128) || !approx(v[0].TexCoord[1], 3.0*8/48) {
		t.Errorf("uv = %v", v[0].TexCoord)
	}
}

func TestAcquireClearsReusedList(t *testing.T) {
	dl := AcquireDrawList()
	dl.PushClipRect(0, 0, 1, 1)
	dl.AddRect(0, 0, 1, 1, ColorWhite)
	ReleaseDrawList(dl)

	dl = AcquireDrawList()
	defer ReleaseDrawList(dl)
	if len(dl.VtxBuffer) != 0 || len(dl.CmdBuffer) != 0 || len(dl.IdxBuffer) != 0 {
		t.Error("acquired list is not empty")
	}
}

func TestPaintStaysInsideBands(t *testing.T) {
	const font uint32 = 9
	columns := plainColumns(6)
	columns[0].Selection = &SelectionFlags{}
	columns[1].Sortable = true
	rec := &recorder{}
	g := newTestGrid(t, matrix(20, 6), columns, rec, WithPinned(1, 1))
	g.Tap(center(g, 0, 1))
	g.BeginEdit(2, 2)
	m := g.Render()

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	Paint(dl, m, font)
	dl.Finalize()

	if len(dl.CmdBuffer) == 0 {
		t.Fatal("nothing painted")
	}
	bandClips := map[[4]float32]bool{}
	for _, c := range m.Cells {
		r := c.Clip
		bandClips[[4]float32{r.X, r.Y, r.X + r.W, r.Y + r.H}] = true
	}
	var sawText bool
	for i, cmd := range dl.CmdBuffer {
		if cmd.TextureID != 0 && cmd.TextureID != font {
			t.Errorf("command %d uses texture %d", i, cmd.TextureID)
		}
		sawText = sawText || cmd.TextureID == font
		c := cmd.ClipRect
		if c[0] < 0 || c[1] < 0 || c[2] > 400 || c[3] > 300 {
			t.Errorf("command %d clip %v leaves the viewport", i, c)
		}
	}
	if !sawText {
		t.Error("no text command")
	}
	for clip := range bandClips {
		found := false
		for _, cmd := range dl.CmdBuffer {
			if cmd.ClipRect == clip {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no command clipped to band %v", clip)
		}
	}
	// The edit surface is painted last, with the font texture.
	if last := dl.CmdBuffer[len(dl.CmdBuffer)-1]; last.TextureID != font || last.ClipRect != [4]float32{0, 0, 400, 300} {
		t.Errorf("last command = %+v, want edit text clipped to the viewport", last)
	}
}
