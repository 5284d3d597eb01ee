// Package main is an interactive showcase for the glint input engine:
// a few widgets wired through the keymap layers, the frame dispatcher,
// and the hover and focus routers.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/glint/internal/config"
	"github.com/dshills/glint/internal/input/action"
	"github.com/dshills/glint/internal/input/code"
	"github.com/dshills/glint/internal/input/frame"
	"github.com/dshills/glint/internal/input/luabind"
	"github.com/dshills/glint/internal/input/mapping"
	"github.com/dshills/glint/internal/input/route"
	"github.com/dshills/glint/internal/platform/terminal"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

var actQuit = action.MustDeclare("app.quit")

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.LoadFile(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := cfg.ApplyEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.keymapDir != "" {
		cfg.KeymapPaths = append(cfg.KeymapPaths, opts.keymapDir)
	}
	if opts.initScript != "" {
		cfg.InitScript = opts.initScript
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	loader := mapping.NewLoader(action.Default())
	for _, path := range cfg.KeymapPaths {
		loader.AddSearchPath(path)
	}

	// buildMapping assembles the keymap from scratch: defaults, keymap
	// files, then the init script. Rebuilt wholesale on reload.
	buildMapping := func() (*mapping.Mapping, error) {
		m := mapping.Default()
		m.MustBind(actQuit, code.Ctrl, code.Q)
		if err := loader.LoadAndApply(m); err != nil {
			return nil, err
		}
		if cfg.InitScript != "" {
			binder := luabind.New(m, action.Default())
			defer binder.Close()
			if err := binder.RunFile(cfg.InitScript); err != nil {
				return nil, err
			}
		}
		return m, nil
	}

	m, err := buildMapping()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: building keymap: %v\n", err)
		return 1
	}
	dispatcher := frame.New(m)

	// Reload keymap files as they change; the swap happens between
	// frames on the main loop.
	reload := make(chan struct{}, 1)
	watcher, err := mapping.NewWatcher(func(string) {
		select {
		case reload <- struct{}{}:
		default:
		}
	})
	if err == nil {
		defer watcher.Close()
		for _, path := range cfg.KeymapPaths {
			_ = watcher.Watch(path) // missing dirs are fine
		}
	}

	ui := newScene(cfg.ScrollLines)
	hover := route.NewHover(ui,
		route.WithMultiClick(cfg.DoubleClickTime, cfg.DoubleClickDistance))
	focus := route.NewFocus(ui)
	focus.Focus(ui.nodes[0])

	adapter, err := terminal.New(dispatcher, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: creating terminal: %v\n", err)
		return 1
	}

	quit := false
	adapter.SetPointerSink(hover.Deliver)
	adapter.SetKeySink(func(act action.ID, active bool, seq uint64) bool {
		if act == actQuit && active {
			quit = true
			return true
		}
		return focus.Deliver(act, active, seq)
	})
	dispatcher.OnFrame(func(log *frame.Log) {
		if log.Len() > 0 {
			ui.status = fmt.Sprintf("%d unclaimed event(s)", log.Len())
		}
	})

	if err := adapter.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: initializing terminal: %v\n", err)
		return 1
	}
	defer adapter.Fini()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		adapter.Interrupt()
	}()

	ui.draw(adapter.Screen())
	for adapter.NextFrame() {
		select {
		case <-reload:
			if next, err := buildMapping(); err == nil {
				dispatcher.SetMapping(next)
				ui.status = "keymap reloaded"
			} else {
				ui.status = fmt.Sprintf("keymap reload failed: %v", err)
			}
		default:
		}

		hover.Frame(adapter.PointerPosition())
		dispatcher.Resolve()
		if quit {
			break
		}
		ui.draw(adapter.Screen())
	}

	return 0
}

type options struct {
	configPath string
	keymapDir  string
	initScript string
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", defaultConfigPath(), "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", defaultConfigPath(), "Path to configuration file (shorthand)")
	flag.StringVar(&opts.keymapDir, "keymaps", "", "Extra directory of keymap files")
	flag.StringVar(&opts.initScript, "init", "", "Lua init script")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "glint-demo - input engine showcase\n\n")
		fmt.Fprintf(os.Stderr, "Usage: glint-demo [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys: tab/shift+tab move focus, alt+arrows move it\n")
		fmt.Fprintf(os.Stderr, "spatially, enter activates, ctrl+q quits. The mouse\n")
		fmt.Fprintf(os.Stderr, "clicks, hovers, and scrolls the gauge.\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("glint-demo %s (%s)\n", version, commit)
		os.Exit(0)
	}

	return opts
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return dir + "/glint/glint.toml"
}
