package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/pkg/profile"

	"git.sr.ht/~whereswaldon/bottomnav/core"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Suffix is joined to the path for convenience.
func getDataDir(suffix string) (string, error) {
	d, err := app.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, suffix), nil
}

func main() {
	log.SetFlags(log.Flags() | log.Lshortfile)
	var (
		dataDir   string
		profiling bool
		debug     bool
	)

	dataDir, err := getDataDir("bottomnav")
	if err != nil {
		log.Printf("finding application data dir: %v", err)
	}

	flag.StringVar(&dataDir, "data-dir", dataDir, "application state directory")
	flag.BoolVar(&profiling, "profile", false, "write a CPU profile into the data directory")
	flag.BoolVar(&debug, "debug", false, "log navigation bar state changes")
	flag.Parse()

	w := app.NewWindow(app.Title("Bottom Navigation"))
	application, err := core.NewApp(dataDir, w.Invalidate)
	if err != nil {
		log.Fatalf("Failed initializing application: %v", err)
	}
	debug = debug || application.Settings().Debug()

	go func() {
		var p interface{ Stop() }
		if profiling {
			p = profile.Start(profile.CPUProfile, profile.ProfilePath(dataDir), profile.NoShutdownHook)
		}
		err := eventLoop(w, application, debug)
		if p != nil {
			p.Stop()
		}
		if err != nil {
			log.Fatalf("exiting due to error: %v", err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func eventLoop(w *app.Window, application core.App, debug bool) error {
	var (
		ops  op.Ops
		page *Page
	)
	for {
		switch event := (<-w.Events()).(type) {
		case system.DestroyEvent:
			return event.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, event)
			if page == nil {
				slop := gtx.Dp(unit.Dp(application.Settings().TouchSlop()))
				page = NewPage(application, slop, debug)
			}
			paint.Fill(gtx.Ops, application.Theme().Current().Background.Default)
			layout.Inset{
				Top:   event.Insets.Top,
				Left:  event.Insets.Left,
				Right: event.Insets.Right,
			}.Layout(gtx, func(gtx C) D {
				return page.Layout(gtx, event.Insets.Bottom)
			})
			event.Frame(gtx.Ops)
		}
	}
}

type ViewID int

const (
	HomeViewID ViewID = iota
	SearchViewID
	SettingsViewID
)
