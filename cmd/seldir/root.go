package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	apppkg "github.com/Fabian1409/seldir/internal/app"
	"github.com/Fabian1409/seldir/internal/config"
	"github.com/Fabian1409/seldir/internal/logging"
	renderui "github.com/Fabian1409/seldir/internal/ui/render"
	"github.com/spf13/cobra"
)

// pidResultFile is the value a bare --result-file takes. The NUL byte keeps
// it from colliding with any real path.
const pidResultFile = "\x00pid"

// startBrowser runs a browser session and reports the chosen path.
var startBrowser = func(opts apppkg.Options) (string, bool, error) {
	app, err := apppkg.NewApplication(opts)
	if err != nil {
		return "", false, fmt.Errorf("initialize: %w", err)
	}
	defer func() {
		_ = app.Close()
	}()

	if err := app.Run(); err != nil {
		return "", false, err
	}
	path, ok := app.Result()
	return path, ok, nil
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	v := config.NewViper()

	var (
		configPath string
		resultFile string
		noWatch    bool
	)

	rootCmd := &cobra.Command{
		Use:   "seldir [directory]",
		Short: "Pick a directory in a three-column terminal browser",
		Long: `seldir browses directories in three columns (parent, current, preview)
and prints the directory you pick, so a shell function can cd into it.
Run 'seldir setup' to print that function for your shell.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("no-watch") {
				v.Set("watch", !noWatch)
			}
			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}

			startDir := "."
			if len(args) == 1 {
				startDir = args[0]
			}

			log, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() {
				_ = closer.Close()
			}()

			accent, err := renderui.ParseColor(cfg.AccentColor)
			if err != nil {
				return err
			}

			path, ok, err := startBrowser(apppkg.Options{
				StartDir:   startDir,
				ShowHidden: cfg.ShowHidden,
				Watch:      cfg.Watch,
				Theme:      renderui.NewColorTheme(accent),
				Logger:     log,
			})
			if err != nil {
				log.WithError(err).Error("session failed")
				return err
			}
			if !ok {
				return nil
			}
			return writeResult(cmd.OutOrStdout(), resultFile, path)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/seldir/config.toml)")
	flags.String("accent-color", renderui.DefaultAccent, "accent color name or #rrggbb")
	flags.Bool("show-hidden", false, "start with hidden entries visible")
	flags.BoolVar(&noWatch, "no-watch", false, "do not refresh panes on filesystem changes")
	flags.String("log-file", "", "write logs to this file")
	flags.StringVar(&resultFile, "result-file", "", "write the chosen path to this file instead of stdout")
	flags.Lookup("result-file").NoOptDefVal = pidResultFile

	_ = v.BindPFlag("accent_color", flags.Lookup("accent-color"))
	_ = v.BindPFlag("show_hidden", flags.Lookup("show-hidden"))
	_ = v.BindPFlag("log_file", flags.Lookup("log-file"))

	rootCmd.AddCommand(NewSetupCmd())

	return rootCmd
}

// writeResult hands the chosen path to the caller: on w by default, or in
// a private file for the shell wrapper.
func writeResult(w io.Writer, target, path string) error {
	if target == "" {
		_, err := fmt.Fprintln(w, path)
		return err
	}
	if target == pidResultFile {
		target = defaultResultPath()
	}
	if err := os.WriteFile(target, []byte(path), 0o600); err != nil {
		return fmt.Errorf("write result file: %w", err)
	}
	return nil
}

// defaultResultPath is unique per process so concurrent sessions do not
// clobber each other.
func defaultResultPath() string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("seldir_result_%d.txt", os.Getpid()))
}
