package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"love-museum/internal/app"
	"love-museum/internal/engineconfig"
	"love-museum/internal/env"
	"love-museum/internal/graphics"
	"love-museum/internal/input"
	"love-museum/internal/layout"
	"love-museum/internal/logger"
)

type flags struct {
	configPath string
	layoutPath string
	envPath    string
	cssPath    string
	font       string
	windowed   bool
	fps        bool
	position   bool
	watch      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:          "museum",
		Short:        "Walk through The Love Museum",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", engineconfig.DefaultPath, "preferences file (JSON)")
	pf.StringVar(&f.envPath, "env", ".env", "environment file")
	root.Flags().StringVar(&f.layoutPath, "layout", "", "museum layout file (YAML); built-in museum when empty")
	root.Flags().StringVar(&f.cssPath, "css", "", "HUD stylesheet replacing the built-in one")
	root.Flags().StringVar(&f.font, "font", "", "font family for overlay text, searched in <asset_dir>/fonts and assets/fonts")
	root.Flags().BoolVar(&f.windowed, "windowed", false, "run in a window even if fullscreen is configured")
	root.Flags().BoolVar(&f.fps, "fps", false, "show the FPS counter")
	root.Flags().BoolVar(&f.position, "position", false, "show the viewpoint position and mode")
	root.Flags().BoolVar(&f.watch, "watch", false, "rebuild the museum whenever the layout file is saved")

	root.AddCommand(newExportLayoutCmd(), newInitConfigCmd(f))
	return root
}

// loadPrefs reads the preferences file, then the .env file and MUSEUM_* overrides.
func loadPrefs(f *flags) (engineconfig.Prefs, []error) {
	var warnings []error
	prefs, err := engineconfig.Load(f.configPath)
	if err != nil {
		warnings = append(warnings, err)
	}
	if err := env.Load(f.envPath); err != nil {
		warnings = append(warnings, fmt.Errorf("load %s: %w", f.envPath, err))
	}
	return env.Apply(prefs), warnings
}

func run(f *flags) error {
	prefs, warnings := loadPrefs(f)
	if f.windowed {
		prefs.Fullscreen = false
	}
	prefs.ShowFPS = prefs.ShowFPS || f.fps
	prefs.ShowPosition = prefs.ShowPosition || f.position

	logCfg := logger.DefaultConfig()
	logCfg.Level = prefs.LogLevel
	log, err := logger.New(logCfg)
	if err != nil {
		return err
	}
	defer log.Sync()
	for _, w := range warnings {
		log.Warn("using default preferences", zap.Error(w))
	}

	lay := layout.Default()
	path := f.layoutPath
	if path == "" {
		path = prefs.Layout
	}
	if path != "" {
		lay, err = layout.Load(path)
		if err != nil {
			log.Error("layout rejected", zap.String("path", path), zap.Error(err))
			return err
		}
		log.Info("layout loaded", zap.String("path", path))
	}

	var reload <-chan layout.Layout
	if f.watch {
		if path == "" {
			log.Warn("--watch needs a layout file, ignoring")
		} else if w, err := layout.Watch(path, log.Named("layout")); err != nil {
			log.Warn("layout not watched", zap.Error(err))
		} else {
			defer w.Close()
			reload = w.Changes()
		}
	}

	game := app.New(app.Options{
		Prefs:   prefs,
		Layout:  lay,
		Log:     log.Named("museum"),
		CSSPath: f.cssPath,
		Font:    f.font,
		Seed:    uint64(os.Getpid()),
		Reload:  reload,
	}, input.Raylib{}, app.RaylibPointer)

	win := graphics.DefaultWindow(lay.Title)
	win.Fullscreen = prefs.Fullscreen
	log.Info("starting", zap.Bool("fullscreen", win.Fullscreen), zap.String("asset_dir", prefs.AssetDir), zap.Float32("fov", prefs.FOV))
	graphics.Run(win, game.Setup, game.Update, game.Background, game.Draw, game.Teardown)
	return nil
}

func newExportLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export-layout <file>",
		Short: "Write the built-in museum layout as YAML, as a starting point for your own",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := layout.Save(args[0], layout.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "layout written to %s\n", args[0])
			return nil
		},
	}
}

func newInitConfigCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "init-config",
		Short: "Write the current preferences (defaults plus environment overrides) to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, warnings := loadPrefs(f)
			for _, w := range warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", w)
			}
			if err := engineconfig.Save(f.configPath, prefs); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "preferences written to %s\n", f.configPath)
			return nil
		},
	}
}
