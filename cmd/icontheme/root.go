// Package icontheme implements the icontheme command line.
package icontheme

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/icontheme/internal/version"
	"github.com/arthur-debert/icontheme/pkg/config"
	"github.com/arthur-debert/icontheme/pkg/errors"
	"github.com/arthur-debert/icontheme/pkg/logging"
	"github.com/arthur-debert/icontheme/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// flagKeys maps command line flags to the config keys they override
var flagKeys = map[string]string{
	"format":    config.KeyOutputFormat,
	"no-color":  config.KeyOutputNoColor,
	"extension": config.KeyScanExtension,
	"limit":     config.KeyScanPreviewLimit,
	"icons-dir": config.KeyIconsDir,
	"mappings":  config.KeyMappingsFile,
}

// app carries state shared by all commands of one invocation
type app struct {
	verbosity  int
	configFile string
	format     string
	noColor    bool

	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer
}

// Run executes the command line and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		a.reportError(err)
		return 1
	}
	return 0
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "icontheme",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging based on verbosity
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return a.loadConfig(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.AddCommand(a.newScanCmd())
	rootCmd.AddCommand(a.newExportCmd())
	rootCmd.AddCommand(a.newColorsCmd())
	rootCmd.AddCommand(a.newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// loadConfig resolves settings, letting explicitly set flags win.
func (a *app) loadConfig(flags *pflag.FlagSet) error {
	overrides := make(map[string]interface{})
	for name, key := range flagKeys {
		if f := flags.Lookup(name); f != nil && f.Changed {
			overrides[key] = f.Value.String()
		}
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: a.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// renderer builds the renderer for the resolved output settings. Before
// configuration loads it falls back to the raw flag values.
func (a *app) renderer(w io.Writer, opts ui.Options) (ui.Renderer, error) {
	formatName, noColor := a.format, a.noColor
	if a.cfg != nil {
		formatName, noColor = a.cfg.Output.Format, a.cfg.Output.NoColor
	}

	format, err := ui.ParseFormat(formatName)
	if err != nil {
		format = ui.FormatText
	}
	if file, ok := w.(*os.File); ok {
		format = ui.Resolve(format, noColor, file)
	} else if format == ui.FormatAuto || (noColor && format == ui.FormatTerminal) {
		format = ui.FormatText
	}
	return ui.NewRenderer(format, w, opts)
}

func (a *app) render(result interface{}, opts ui.Options) error {
	r, err := a.renderer(a.stdout, opts)
	if err != nil {
		return err
	}
	return r.RenderResult(result)
}

// reportError renders a failed command. JSON consumers read errors from
// stdout; everything else goes to stderr.
func (a *app) reportError(err error) {
	w := a.stderr
	if a.cfg != nil && a.cfg.Output.Format == ui.FormatJSON.String() {
		w = a.stdout
	}

	r, rerr := a.renderer(w, ui.Options{})
	if rerr == nil {
		rerr = r.RenderError(err)
	}
	if rerr != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
	}
}
