// Command gen renders the demo grid in several states, captures framebuffer
// pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/datagrid"
	"github.com/go-theft-auto/datagrid/backend/opengl"
	"github.com/go-theft-auto/datagrid/example/inventory"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single grid screenshot to capture.
type screenshot struct {
	name   string // filename without extension
	width  int    // viewport width
	height int    // viewport height
	opts   []datagrid.Option
	setup  func(g *datagrid.Grid, inv *inventory.Inventory) // puts the grid in the pictured state
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(900, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(900, 600)
	if err != nil {
		return fmt.Errorf("grid renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Only update the renderer projection; GLFW resizes asynchronously and the
	// hidden window is larger than every screenshot.
	renderer.Resize(s.width, s.height)

	// Fresh data and grid per screenshot so no state leaks between captures.
	inv := inventory.New()
	opts := append([]datagrid.Option{datagrid.WithEditable(inv.Update)}, s.opts...)
	grid, err := datagrid.New(inv.Data(), inv.Columns(), opts...)
	if err != nil {
		return err
	}
	inv.Attach(grid)
	grid.Resize(float32(s.width), float32(s.height))
	if s.setup != nil {
		s.setup(grid, inv)
	}

	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if err := renderer.RenderGrid(grid.Render()); err != nil {
		return err
	}

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns the list of grid screenshots to generate.
func buildScreenshots() []screenshot {
	pinned := []datagrid.Option{
		datagrid.WithPinned(1, 1),
		datagrid.WithPixelWidths(220, 120, 70, 80, 120, 110),
	}

	return []screenshot{
		{name: "grid", width: 760, height: 360, opts: pinned},
		{
			name: "grid_light", width: 760, height: 360,
			opts: append(pinned, datagrid.WithStyle(datagrid.LightStyle())),
		},
		{
			name: "sorted", width: 760, height: 360, opts: pinned,
			setup: func(g *datagrid.Grid, _ *inventory.Inventory) {
				// Ascending then descending by price.
				tapHeader(g, inventory.ColPrice)
				tapHeader(g, inventory.ColPrice)
			},
		},
		{
			name: "scrolled", width: 480, height: 240, opts: pinned,
			setup: func(g *datagrid.Grid, _ *inventory.Inventory) {
				g.Render()
				g.ScrollBy(160, 90)
			},
		},
		{
			name: "selection", width: 760, height: 360, opts: pinned,
			setup: func(_ *datagrid.Grid, inv *inventory.Inventory) {
				inv.Update(1, inventory.ColItem, "true", datagrid.ActionSelect)
				inv.Update(3, inventory.ColItem, "true", datagrid.ActionSelect)
			},
		},
		{
			name: "edit_suggestions", width: 760, height: 360, opts: pinned,
			setup: func(g *datagrid.Grid, _ *inventory.Inventory) {
				if s, ok := g.BeginEdit(2, inventory.ColCategory); ok {
					s.SetText("a")
				}
			},
		},
		{
			name: "edit_rejected", width: 760, height: 360, opts: pinned,
			setup: func(g *datagrid.Grid, _ *inventory.Inventory) {
				if _, ok := g.BeginEdit(3, inventory.ColQty); ok {
					_, _ = g.Submit("lots")
				}
			},
		},
		{
			name: "edit_date", width: 760, height: 360, opts: pinned,
			setup: func(g *datagrid.Grid, _ *inventory.Inventory) {
				g.BeginEdit(4, inventory.ColRestocked)
			},
		},
	}
}

// tapHeader taps the middle of a header cell.
func tapHeader(g *datagrid.Grid, col int) {
	g.Render()
	r := g.ScreenRect(0, col)
	g.Tap(datagrid.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2})
}
