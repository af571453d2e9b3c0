// Example shows an editable inventory grid in a GLFW window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Click a cell or press Enter to edit it, Insert and Delete to add and remove
// rows, and click a header to sort. Ctrl+C and Ctrl+V copy and paste cells. The terminal version lives in
// ./example/terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/datagrid"
	"github.com/go-theft-auto/datagrid/backend/opengl"
	"github.com/go-theft-auto/datagrid/example/inventory"
)

const (
	windowWidth  = 900
	windowHeight = 480
	windowTitle  = "datagrid example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	verbose := flag.Bool("v", false, "log grid events")
	light := flag.Bool("light", false, "use the light style")
	flag.Parse()
	datagrid.SetVerbose(*verbose)

	if err := run(*light); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(light bool) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	// The grid and the renderer both work in window coordinates.
	renderer, err := opengl.NewRenderer(window.GetSize())
	if err != nil {
		return fmt.Errorf("grid renderer: %w", err)
	}
	defer renderer.Delete()

	style := datagrid.DefaultStyle()
	if light {
		style = datagrid.LightStyle()
	}

	inv := inventory.New()
	grid, err := datagrid.New(inv.Data(), inv.Columns(),
		datagrid.WithPinned(1, 1),
		datagrid.WithRatioWidths(0.26, 0.16, 0.1, 0.1, 0.18, 0.2),
		datagrid.WithEditable(inv.Update),
		datagrid.WithMoveNextAfterEdit(true),
		datagrid.WithStyle(style),
		datagrid.WithClipboard(opengl.NewClipboard(window)),
		datagrid.WithOnSelectCell(func(row, col int, refresh bool) {
			window.SetTitle(fmt.Sprintf("%s - row %d, col %d - %s", windowTitle, row, col, inv.Summary()))
		}),
	)
	if err != nil {
		return fmt.Errorf("grid: %w", err)
	}
	inv.Attach(grid)

	driver := opengl.NewDriver(window, grid)
	driver.OnResize = renderer.Resize

	for !window.ShouldClose() {
		driver.BeginFrame()
		glfw.PollEvents()
		driver.Apply()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := renderer.RenderGrid(grid.Render()); err != nil {
			return fmt.Errorf("grid render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
