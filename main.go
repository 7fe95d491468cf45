package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/gregjohnson2017/xenogl/pkg/app"
	"github.com/gregjohnson2017/xenogl/pkg/config"
	"github.com/gregjohnson2017/xenogl/pkg/log"
	"github.com/gregjohnson2017/xenogl/pkg/perf"
	"github.com/spf13/cobra"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	// GL calls must come from the thread that owns the context
	runtime.LockOSThread()
}

func main() {
	if err := newRootCommand(run).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(runFn func(*config.Config) error) *cobra.Command {
	var (
		configPath string
		logLevel   string
		watch      bool
	)
	cmd := &cobra.Command{
		Use:          "xenogl",
		Short:        "Render the xenogl demo scene",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if cmd.Flags().Changed("watch") {
				cfg.Shaders.Watch = watch
			}
			if err := setupLogging(cfg.Log); err != nil {
				return err
			}
			return runFn(cfg)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "debug, info, warn, error or fatal")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload shader files when they change")
	return cmd
}

func setupLogging(cfg config.Log) error {
	log.SetOutput(os.Stderr)
	log.SetColorized(cfg.Color)
	if err := log.SetLevel(cfg.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	perf.SetMetricsEnabled(cfg.Metrics)
	return nil
}

func initialize() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 3},
		{sdl.GL_CONTEXT_MINOR_VERSION, 3},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_DEPTH_SIZE, 24},
	}
	for _, a := range attrs {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			return err
		}
	}
	return nil
}

func run(cfg *config.Config) error {
	if err := initialize(); err != nil {
		return err
	}

	win, err := sdl.CreateWindow(cfg.Window.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		cfg.Window.ScreenWidth, cfg.Window.ScreenHeight, sdl.WINDOW_HIDDEN|sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return err
	}
	glContext, err := win.GLCreateContext()
	if err != nil {
		win.Destroy()
		sdl.Quit()
		return err
	}
	interval := 0
	if cfg.Window.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		log.Warnf("swap interval: %v", err)
	}

	a, err := app.New(win, glContext, cfg)
	if err != nil {
		sdl.GLDeleteContext(glContext)
		win.Destroy()
		sdl.Quit()
		return err
	}

	a.Start()
	for a.Running() {
		for evt := sdl.PollEvent(); evt != nil; evt = sdl.PollEvent() {
			a.HandleSdlEvent(evt)
		}
		a.PostEventActions()
	}
	a.Quit()
	return nil
}
