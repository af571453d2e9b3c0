// Terminal shows the inventory grid in a terminal.
//
//	go run ./example/terminal/
//
// Arrows move, Enter edits, Escape cancels, Insert and Delete add and remove
// rows, a click on a header sorts. Ctrl+C quits.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/datagrid"
	"github.com/go-theft-auto/datagrid/backend/terminal"
	"github.com/go-theft-auto/datagrid/example/inventory"
)

func main() {
	logPath := flag.String("log", "", "write debug logs to this file")
	flag.Parse()

	if err := run(*logPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(logPath string) error {
	// The screen owns stderr while it runs, so logs go to a file or nowhere.
	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		defer f.Close()
		datagrid.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
		datagrid.SetVerbose(true)
	} else {
		datagrid.SetLogger(slog.New(slog.DiscardHandler))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	inv := inventory.New()
	opts := append(terminal.Options(),
		datagrid.WithPinned(1, 1),
		datagrid.WithPixelWidths(30, 12, 6, 8, 12, 12),
		datagrid.WithEditable(inv.Update),
		datagrid.WithStyle(datagrid.DefaultStyle()),
	)
	grid, err := datagrid.New(inv.Data(), inv.Columns(), opts...)
	if err != nil {
		return fmt.Errorf("grid: %w", err)
	}
	inv.Attach(grid)

	driver := terminal.NewDriver(screen, grid)
	for {
		driver.Draw()
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		if key, ok := ev.(*tcell.EventKey); ok && key.Key() == tcell.KeyCtrlC {
			return nil
		}
		driver.HandleEvent(ev)
	}
}
