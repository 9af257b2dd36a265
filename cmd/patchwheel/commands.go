package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/app"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/config"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/constants"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/files"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/locale"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/midi"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/themes"
)

const configFileName = "patchwheel.toml"

// flags are the options shared by every command.
type flags struct {
	configPath string
	root       string
	logLevel   string
	theme      string
	layout     string
	windowed   bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "patchwheel",
		Short: "Browse and send synthesizer patches from a touch screen",
		Long: `Patchwheel shows a folder tree on an inertial scroll wheel. Choosing a .syx
file sends it to the selected MIDI device; folders open, anything else is handed
to the desktop.

Without a subcommand the browser starts fullscreen. Set ENVIRONMENT=DEV to run
in a window sized by WINDOW_WIDTH and WINDOW_HEIGHT.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.load()
			if err != nil {
				return err
			}
			return runBrowser(cmd, cfg)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "Configuration file (default <root>/"+configFileName+")")
	pf.StringVar(&f.root, "root", "", "Folder searched and browsed (default $"+constants.RootEnvVar+" or the working directory)")
	pf.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	pf.StringVar(&f.theme, "theme", "", "Colour theme: "+config.ThemeSolar+" or "+config.ThemeClassic)
	pf.StringVar(&f.layout, "layout", "", "Screen layout: "+config.LayoutCompact+" or "+config.LayoutFull)
	pf.BoolVar(&f.windowed, "windowed", false, "Run in a window instead of fullscreen")

	rootCmd.AddCommand(newDevicesCmd(f), newSearchCmd(f), newConfigCmd(f))
	return rootCmd
}

// load layers the configuration: defaults, file, environment, then flags.
func (f *flags) load() (config.Config, error) {
	root := f.root
	if root == "" {
		root = os.Getenv(constants.RootEnvVar)
	}
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return config.Config{}, fmt.Errorf("working directory: %w", err)
		}
		root = wd
	}

	path := f.configPath
	if path == "" {
		path = filepath.Join(root, configFileName)
	}

	cfg, err := config.Load(path, root)
	if err != nil {
		return cfg, err
	}
	cfg.ApplyEnv()

	if f.root != "" {
		cfg.Paths.Root = f.root
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.theme != "" {
		cfg.UI.Theme = f.theme
	}
	if f.layout != "" {
		cfg.UI.Layout = f.layout
	}
	if f.windowed {
		cfg.UI.Fullscreen = false
	}

	if err := cfg.Resolve(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func newTool(cfg config.Config, logger *slog.Logger) *midi.Tool {
	return &midi.Tool{
		ListCommand:    cfg.MIDI.ListCommand,
		SendCommand:    cfg.MIDI.SendCommand,
		RequestCommand: cfg.MIDI.RequestCommand,
		WorkDir:        cfg.MIDI.WorkDir,
		Timeout:        cfg.MIDITimeout(),
		Logger:         logger,
	}
}

func runBrowser(cmd *cobra.Command, cfg config.Config) error {
	ctx := cmd.Context()

	if cfg.Log.Path != "" {
		patchwheel.SetLogPath(cfg.Log.Path)
	}
	patchwheel.SetRawLogLevel(cfg.Log.Level)
	logger := patchwheel.GetLogger()

	theme, err := themes.FromConfig(cfg.UI)
	if err != nil {
		return err
	}

	catalog, err := locale.NewCatalog()
	if err != nil {
		return err
	}
	localizer := catalog.Localizer(cfg.UI.Language)

	logger.Info("starting", "version", Version, "root", cfg.Paths.Root, "layout", cfg.UI.Layout, "theme", cfg.UI.Theme)

	if err := patchwheel.Init(patchwheel.Options{
		WindowTitle:    "Patchwheel",
		ShowBackground: cfg.UI.Background != "",
		Fullscreen:     cfg.UI.Fullscreen,
		Theme:          &theme,
	}); err != nil {
		return err
	}
	defer patchwheel.Close()

	ctrl := app.New(app.Options{
		Paths:           cfg.Paths,
		ShowHidden:      cfg.UI.ShowHidden,
		PreferredDevice: cfg.MIDI.PreferredPrefix,
		Wheel:           cfg.WheelSettings(),
		MIDI:            newTool(cfg, logger),
		Open:            app.SystemOpener,
		Locale:          localizer,
		Logger:          logger,
	})
	if err := ctrl.Start(ctx); err != nil {
		return err
	}

	err = patchwheel.Run(ctx, ctrl, patchwheel.BrowserSettings{
		Features:        cfg.UI.Features,
		Columns:         cfg.UI.ToolbarColumns,
		ToolbarAtBottom: cfg.UI.Layout == config.LayoutFull,
		Locale:          localizer,
	})
	if err != nil {
		logger.Error("browser stopped", "error", err)
		return err
	}
	logger.Info("exiting")
	return nil
}

func newDevicesCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List MIDI devices",
		Long: `List the MIDI devices reported by the configured list command. The device
patchwheel picks on start is marked with an asterisk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.load()
			if err != nil {
				return err
			}

			devices, err := newTool(cfg, slog.Default()).Devices(cmd.Context())
			if err != nil {
				return err
			}

			preferred, _ := midi.Preferred(devices, cfg.MIDI.PreferredPrefix)
			out := cmd.OutOrStdout()
			for i, d := range devices {
				mark := " "
				if i == preferred {
					mark = "*"
				}
				fmt.Fprintf(out, "%s %s\t%s\n", mark, d.Port, d)
			}
			if len(devices) == 0 {
				fmt.Fprintln(out, midi.ErrNoDevice)
			}
			return nil
		},
	}
}

func newSearchCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Find files under the root folder by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.load()
			if err != nil {
				return err
			}

			results, err := files.Search(cmd.Context(), cfg.Paths.Root, args[0], files.WalkOptions{
				IncludeHidden:  cfg.UI.ShowHidden,
				SkipHiddenDirs: !cfg.UI.ShowHidden,
			})
			if err != nil {
				return err
			}
			for _, e := range results {
				fmt.Fprintln(cmd.OutOrStdout(), e.Path)
			}
			return nil
		},
	}
}

func newConfigCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.load()
			if err != nil {
				return err
			}
			return cfg.Write(cmd.OutOrStdout())
		},
	}
}
