package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/gdamore/tcell/v2"

	"rigid-engine/internal/audio"
	"rigid-engine/internal/commands"
	"rigid-engine/internal/debug"
	"rigid-engine/internal/engineconfig"
	"rigid-engine/internal/graphics"
	"rigid-engine/internal/logger"
	"rigid-engine/internal/physics"
	"rigid-engine/internal/scene"
	"rigid-engine/internal/tui"
)

// common flags shared by every simulation command
type common struct {
	config string
	scene  string
	dt     float64
}

func (c *common) bind(fs *flag.FlagSet) {
	fs.StringVar(&c.config, "config", engineconfig.DefaultPath, "config file (.json or .toml)")
	fs.StringVar(&c.scene, "scene", "", "scene file (overrides the config)")
	fs.Float64Var(&c.dt, "dt", 0, "time step in seconds (overrides the config)")
}

// setup loads prefs and builds the world described by the selected scene.
func (c *common) setup() (engineconfig.SimPrefs, *physics.World, *logger.Logger, error) {
	prefs, err := loadPrefs(c.config)
	if err != nil {
		return prefs, nil, nil, err
	}
	if c.dt > 0 {
		prefs.TimeStep = float32(c.dt)
	}
	if c.scene != "" {
		prefs.Scene = c.scene
	}
	log := newLogger(prefs)

	w := physics.NewWorld()
	w.SetLogger(log)
	w.SetGravity(rl.NewVector2(prefs.Gravity[0], prefs.Gravity[1]))
	if prefs.Scene == "" {
		return prefs, nil, nil, fmt.Errorf("no scene given (use -scene or the config's scene)")
	}
	scn, err := scene.LoadFile(prefs.Scene)
	if err != nil {
		return prefs, nil, nil, err
	}
	if _, err := scn.Populate(w); err != nil {
		return prefs, nil, nil, err
	}
	log.Logf("loaded scene %q from %s: %d bodies", scn.Name, prefs.Scene, w.Len())
	return prefs, w, log, nil
}

func registerCommands(reg *commands.Registry) {
	registerRun(reg)
	registerView(reg)
	registerTUI(reg)
	registerConfig(reg)
}

func registerRun(reg *commands.Registry) {
	var c common
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	c.bind(fs)
	steps := fs.Int("steps", 600, "number of steps to simulate")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: sim run [flags]")
		fs.PrintDefaults()
	}
	reg.Register("run", "simulate headless and print the final state", fs, func() error {
		prefs, w, log, err := c.setup()
		if err != nil {
			return err
		}
		for i := 0; i < *steps; i++ {
			w.Step(prefs.TimeStep)
		}
		st := w.Stats()
		log.Logf("run finished: %d steps, %d contacts, %d resolved", st.Steps, st.Contacts, st.Resolved)
		printStates(w.Snapshot())
		fmt.Println(debug.StatsText(st, w.Len()))
		return nil
	})
}

func printStates(states []physics.BodyState) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tGROUP\tSHAPE\tX\tY\tVX\tVY")
	for _, s := range states {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.3f\t%.3f\t%.3f\t%.3f\n",
			s.ID, s.Group, s.Kind, s.Position.X, s.Position.Y, s.Velocity.X, s.Velocity.Y)
	}
	_ = tw.Flush()
}

func registerView(reg *commands.Registry) {
	var c common
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	c.bind(fs)
	reg.Register("view", "open a window and animate the scene", fs, func() error {
		prefs, w, log, err := c.setup()
		if err != nil {
			return err
		}
		clicker := audio.New(prefs.Audio, log)
		defer clicker.Close()
		w.OnContact = func(_, _ *physics.Body) { clicker.Click() }

		view := graphics.View{Scale: prefs.PixelsPerUnit}
		for _, b := range w.Bodies() {
			b.Hooks.Frame = func(b *physics.Body, _ physics.Context) {
				graphics.DrawBody(b, view)
			}
		}

		dbg := debug.New()
		dbg.ShowFPS = prefs.ShowFPS
		dbg.ShowMemAlloc = prefs.ShowMemAlloc
		dbg.ShowStats = prefs.ShowStats

		update := func() { w.Step(prefs.TimeStep) }
		draw := func() {
			w.Draw()
			dbg.Draw(w)
		}
		graphics.Run("rigid-engine: "+prefs.Scene, prefs.WindowWidth, prefs.WindowHeight, prefs.TargetFPS, update, draw)
		log.Logf("view closed after %d steps", w.Stats().Steps)
		return nil
	})
}

func registerTUI(reg *commands.Registry) {
	var c common
	fs := flag.NewFlagSet("tui", flag.ExitOnError)
	c.bind(fs)
	scale := fs.Float64("scale", 1, "world units per terminal row")
	reg.Register("tui", "animate the scene in the terminal", fs, func() error {
		prefs, w, log, err := c.setup()
		if err != nil {
			return err
		}
		clicker := audio.New(prefs.Audio, log)
		defer clicker.Close()
		w.OnContact = func(_, _ *physics.Body) { clicker.Click() }

		screen, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		if err := screen.Init(); err != nil {
			return err
		}
		tui.New(screen, w, prefs.TimeStep, float32(*scale), log).Run()
		return nil
	})
}

func registerConfig(reg *commands.Registry) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	path := fs.String("config", engineconfig.DefaultPath, "config file (.json or .toml)")
	save := fs.String("save", "", "write the effective config to this path")
	reg.Register("config", "print the effective configuration", fs, func() error {
		prefs, err := loadPrefs(*path)
		if err != nil {
			return err
		}
		fmt.Printf("%+v\n", prefs)
		if *save != "" {
			return engineconfig.Save(*save, prefs)
		}
		return nil
	})
}
