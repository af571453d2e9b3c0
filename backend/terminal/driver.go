package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/datagrid"
)

// wheelRows is how many terminal rows one wheel notch scrolls.
const wheelRows = 3

// Driver feeds tcell events into a datagrid.Grid and draws it on the screen.
type Driver struct {
	screen tcell.Screen
	grid   *datagrid.Grid
	input  *datagrid.InputState
}

// NewDriver sizes grid to screen. The screen must already be initialized,
// with mouse reporting enabled if taps are wanted.
func NewDriver(screen tcell.Screen, grid *datagrid.Grid) *Driver {
	w, h := screen.Size()
	grid.Resize(float32(w), float32(h))
	return &Driver{
		screen: screen,
		grid:   grid,
		input:  datagrid.NewInputState(),
	}
}

// Draw renders the grid and shows the screen.
func (d *Driver) Draw() {
	m := d.grid.Render()
	d.screen.Clear()
	Paint(d.screen, m)
	d.screen.Show()
}

// HandleEvent applies one tcell event to the grid. Events the grid has no
// use for are ignored.
func (d *Driver) HandleEvent(ev tcell.Event) {
	d.input.Reset()

	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		d.grid.Resize(float32(w), float32(h))
		d.screen.Sync()
		return

	case *tcell.EventMouse:
		x, y := ev.Position()
		d.input.SetMousePos(float32(x), float32(y))
		d.input.ModShift = ev.Modifiers()&tcell.ModShift != 0
		buttons := ev.Buttons()
		d.input.SetMouseButton(datagrid.MouseButtonLeft, buttons&tcell.Button1 != 0)
		d.scroll(buttons, datagrid.Vec2{X: float32(x), Y: float32(y)})

	case *tcell.EventKey:
		mods := ev.Modifiers()
		d.input.ModShift = mods&tcell.ModShift != 0
		d.input.ModCtrl = mods&tcell.ModCtrl != 0
		d.input.ModAlt = mods&tcell.ModAlt != 0
		if ev.Key() == tcell.KeyRune {
			d.input.AddInputChar(ev.Rune())
		} else if k := tcellKeyToGridKey(ev.Key()); k != datagrid.KeyNone {
			d.input.PressKey(k)
		} else {
			return
		}

	default:
		return
	}

	d.grid.HandleInput(d.input)
}

// scroll moves the grid by whole rows and columns; the wheel step of
// HandleInput is sized for pixels.
func (d *Driver) scroll(buttons tcell.ButtonMask, at datagrid.Vec2) {
	if !d.grid.Bounds().Contains(at) {
		return
	}
	var dx, dy float32
	switch {
	case buttons&tcell.WheelUp != 0:
		dy = -wheelRows
	case buttons&tcell.WheelDown != 0:
		dy = wheelRows
	case buttons&tcell.WheelLeft != 0:
		dx = -wheelRows
	case buttons&tcell.WheelRight != 0:
		dx = wheelRows
	default:
		return
	}
	if d.input.ModShift && dx == 0 {
		dx, dy = dy, 0
	}
	d.grid.ScrollBy(dx, dy)
}

func tcellKeyToGridKey(key tcell.Key) datagrid.Key {
	switch key {
	case tcell.KeyTab:
		return datagrid.KeyTab
	case tcell.KeyLeft:
		return datagrid.KeyLeft
	case tcell.KeyRight:
		return datagrid.KeyRight
	case tcell.KeyUp:
		return datagrid.KeyUp
	case tcell.KeyDown:
		return datagrid.KeyDown
	case tcell.KeyPgUp:
		return datagrid.KeyPageUp
	case tcell.KeyPgDn:
		return datagrid.KeyPageDown
	case tcell.KeyHome:
		return datagrid.KeyHome
	case tcell.KeyEnd:
		return datagrid.KeyEnd
	case tcell.KeyInsert:
		return datagrid.KeyInsert
	case tcell.KeyDelete:
		return datagrid.KeyDelete
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return datagrid.KeyBackspace
	case tcell.KeyEnter:
		return datagrid.KeyEnter
	case tcell.KeyEscape:
		return datagrid.KeyEscape
	case tcell.KeyF2:
		return datagrid.KeyF2
	default:
		return datagrid.KeyNone
	}
}
