/*
Package datagrid implements a virtualized, editable spreadsheet-style grid.

# Overview

A Grid wraps a caller-owned [][]string. Only the cells inside the viewport
(plus one row and column of overscan) are laid out on each pass, so the cost
of a frame does not depend on the size of the matrix. Row heights grow to fit
wrapped cell text, measured for the visible window only.

The grid never writes to the matrix. Edits, sorts, checkbox toggles and row
requests are reported through the OnUpdate callback; the owner applies them
and hands the new snapshot back with SetData.

# Quick Start

	grid, err := datagrid.New(data, columns,
	    datagrid.WithPinned(1, 1),
	    datagrid.WithEditable(owner.OnUpdate),
	    datagrid.WithMoveNextAfterEdit(true),
	)
	if err != nil {
	    log.Fatal(err) // *datagrid.ConfigError
	}
	grid.Resize(1280, 720)

	for !window.ShouldClose() {
	    grid.HandleInput(input)
	    model := grid.Render()

	    dl := datagrid.AcquireDrawList()
	    datagrid.Paint(dl, model, renderer.FontTextureID())
	    dl.Finalize()
	    renderer.Render(dl)
	    datagrid.ReleaseDrawList(dl)
	}

# Bands

Rows [0, PinnedRows) form the header band and columns [0, PinnedCols) the
pinned column band. Each band has its own scroll tracker; a Synchronizer
mirrors the body's horizontal offset onto the header band and its vertical
offset onto the pinned column band.

# Keyboard

	Arrows           Move the selection
	PgUp / PgDn      Move the selection by a page
	Home / End       First / last column
	Tab              Next editable cell
	Enter / F2       Open the edit surface
	Insert / Delete  Ask the owner to add / delete a row
	Ctrl+C           Copy the selected cell (needs WithClipboard)
	Ctrl+V           Paste into a new edit surface

While an edit surface is open:

	Enter            Submit
	Shift+Enter      Newline (multiline columns)
	Escape           Cancel
	Tab              Take the first suggestion
	Up / Down        Previous / next day (date columns)

# Backends

backend/opengl renders a DrawList with OpenGL and feeds GLFW input into an
InputState. backend/terminal paints a RenderModel onto a tcell screen, one
pixel per terminal cell.
*/
package datagrid
