package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/datagrid"
)

// Driver feeds GLFW window input into a datagrid.Grid and keeps the grid
// sized to the window.
type Driver struct {
	window   *glfw.Window
	grid     *datagrid.Grid
	input    *datagrid.InputState
	lastTime float64

	// OnResize, when set, runs after the grid was resized (e.g. to resize the renderer).
	OnResize func(width, height int)
}

// NewDriver installs GLFW callbacks on window that drive grid.
func NewDriver(window *glfw.Window, grid *datagrid.Grid) *Driver {
	d := &Driver{
		window:   window,
		grid:     grid,
		input:    datagrid.NewInputState(),
		lastTime: glfw.GetTime(),
	}

	window.SetKeyCallback(d.keyCallback)
	window.SetCharCallback(d.charCallback)
	window.SetMouseButtonCallback(d.mouseButtonCallback)
	window.SetScrollCallback(d.scrollCallback)
	window.SetCursorPosCallback(d.cursorPosCallback)
	window.SetSizeCallback(d.sizeCallback)

	w, h := window.GetSize()
	grid.Resize(float32(w), float32(h))
	return d
}

// Input returns the input state collected for the current frame.
func (d *Driver) Input() *datagrid.InputState {
	return d.input
}

// BeginFrame clears per-frame input. Call it before glfw.PollEvents.
func (d *Driver) BeginFrame() {
	d.input.Reset()
}

// Apply hands the collected input to the grid. Call it after glfw.PollEvents.
func (d *Driver) Apply() {
	now := glfw.GetTime()
	d.input.UpdateKeyRepeat(float32(now - d.lastTime))
	d.lastTime = now

	x, y := d.window.GetCursorPos()
	d.input.SetMousePos(float32(x), float32(y))
	d.input.ModCtrl = d.pressed(glfw.KeyLeftControl, glfw.KeyRightControl)
	d.input.ModShift = d.pressed(glfw.KeyLeftShift, glfw.KeyRightShift)
	d.input.ModAlt = d.pressed(glfw.KeyLeftAlt, glfw.KeyRightAlt)

	d.grid.HandleInput(d.input)
}

func (d *Driver) pressed(keys ...glfw.Key) bool {
	for _, k := range keys {
		if d.window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

func (d *Driver) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToGridKey(key)
	if mods&glfw.ModControl != 0 {
		k = glfwShortcutToGridKey(key)
	}
	if k == datagrid.KeyNone {
		return
	}
	switch action {
	case glfw.Press, glfw.Repeat:
		d.input.SetKey(k, true)
	case glfw.Release:
		d.input.SetKey(k, false)
	}
}

func (d *Driver) charCallback(w *glfw.Window, char rune) {
	d.input.AddInputChar(char)
}

func (d *Driver) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButtonToGrid(button)
	if b < 0 {
		return
	}
	d.input.SetMouseButton(b, action == glfw.Press)
}

func (d *Driver) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	d.input.SetMouseWheel(d.input.MouseWheelX+float32(xoff), d.input.MouseWheelY+float32(yoff))
}

func (d *Driver) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	d.input.SetMousePos(float32(xpos), float32(ypos))
}

func (d *Driver) sizeCallback(w *glfw.Window, width, height int) {
	d.grid.Resize(float32(width), float32(height))
	if d.OnResize != nil {
		d.OnResize(width, height)
	}
}

// glfwKeyToGridKey maps the GLFW keys the grid reacts to.
func glfwKeyToGridKey(key glfw.Key) datagrid.Key {
	switch key {
	case glfw.KeyTab:
		return datagrid.KeyTab
	case glfw.KeyLeft:
		return datagrid.KeyLeft
	case glfw.KeyRight:
		return datagrid.KeyRight
	case glfw.KeyUp:
		return datagrid.KeyUp
	case glfw.KeyDown:
		return datagrid.KeyDown
	case glfw.KeyPageUp:
		return datagrid.KeyPageUp
	case glfw.KeyPageDown:
		return datagrid.KeyPageDown
	case glfw.KeyHome:
		return datagrid.KeyHome
	case glfw.KeyEnd:
		return datagrid.KeyEnd
	case glfw.KeyInsert:
		return datagrid.KeyInsert
	case glfw.KeyDelete:
		return datagrid.KeyDelete
	case glfw.KeyBackspace:
		return datagrid.KeyBackspace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return datagrid.KeyEnter
	case glfw.KeyEscape:
		return datagrid.KeyEscape
	case glfw.KeyF2:
		return datagrid.KeyF2
	default:
		return datagrid.KeyNone
	}
}

// glfwShortcutToGridKey maps Ctrl chords.
func glfwShortcutToGridKey(key glfw.Key) datagrid.Key {
	switch key {
	case glfw.KeyC:
		return datagrid.KeyCopy
	case glfw.KeyV:
		return datagrid.KeyPaste
	default:
		return datagrid.KeyNone
	}
}

// Clipboard is the window's system clipboard.
type Clipboard struct {
	window *glfw.Window
}

// NewClipboard returns a datagrid.ClipboardProvider backed by window.
func NewClipboard(window *glfw.Window) *Clipboard {
	return &Clipboard{window: window}
}

// GetText returns the clipboard contents.
func (c *Clipboard) GetText() string {
	return c.window.GetClipboardString()
}

// SetText replaces the clipboard contents.
func (c *Clipboard) SetText(text string) {
	c.window.SetClipboardString(text)
}

func glfwMouseButtonToGrid(button glfw.MouseButton) datagrid.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return datagrid.MouseButtonLeft
	case glfw.MouseButtonRight:
		return datagrid.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return datagrid.MouseButtonMiddle
	default:
		return -1
	}
}
