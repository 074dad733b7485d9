package icontheme

import (
	"fmt"

	"github.com/arthur-debert/icontheme/internal/version"
	"github.com/arthur-debert/icontheme/pkg/colors"
	"github.com/arthur-debert/icontheme/pkg/exporter"
	"github.com/arthur-debert/icontheme/pkg/logging"
	"github.com/arthur-debert/icontheme/pkg/mappings"
	"github.com/arthur-debert/icontheme/pkg/scanner"
	"github.com/arthur-debert/icontheme/pkg/types"
	"github.com/arthur-debert/icontheme/pkg/ui"
	"github.com/spf13/cobra"
)

// addScanFlags registers the flags shared by commands that scan
func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().String("extension", types.DefaultExtension, MsgFlagExtension)
	cmd.Flags().Int("limit", scanner.DefaultPreviewLimit, MsgFlagLimit)
}

func (a *app) scan(dir string) (*types.ScanResult, error) {
	s := scanner.NewScanner(scanner.Options{
		Extension:    a.cfg.Scan.Extension,
		PreviewLimit: a.cfg.Scan.PreviewLimit,
	})
	result, err := s.Scan(dir)
	if err != nil {
		return nil, fmt.Errorf(MsgErrScan, dir, err)
	}
	return result, nil
}

func (a *app) newScanCmd() *cobra.Command {
	var showContent bool

	cmd := &cobra.Command{
		Use:     "scan DIR",
		Short:   MsgScanShort,
		Long:    MsgScanLong,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			done := logging.LogOperationStart(logging.GetLogger("cmd.scan"), "scan")
			defer done()

			result, err := a.scan(args[0])
			if err != nil {
				return err
			}
			return a.render(result, ui.Options{ShowContent: showContent})
		},
	}

	addScanFlags(cmd)
	cmd.Flags().BoolVar(&showContent, "content", false, MsgFlagContent)
	return cmd
}

func (a *app) newColorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "colors DIR",
		Short:   MsgColorsShort,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			done := logging.LogOperationStart(logging.GetLogger("cmd.colors"), "colors")
			defer done()

			result, err := a.scan(args[0])
			if err != nil {
				return err
			}
			return a.render(&types.PaletteResult{
				SourceDir: result.SourceDir,
				Colors:    colors.ExtractColorsFromPreviews(result.PreviewItems),
			}, ui.Options{})
		},
	}

	addScanFlags(cmd)
	return cmd
}

func (a *app) newExportCmd() *cobra.Command {
	var pairs []string

	cmd := &cobra.Command{
		Use:     "export DIR THEME",
		Short:   MsgExportShort,
		Long:    MsgExportLong,
		Args:    cobra.ExactArgs(2),
		GroupID: "core",
		Example: "  icontheme export ./icons Breeze-Teal --map '#3daee9=#1abc9c' --map '#232629=#1d1f21'",
		RunE: func(cmd *cobra.Command, args []string) error {
			done := logging.LogOperationStart(logging.GetLogger("cmd.export"), "export")
			defer done()

			mapping, err := mappings.Collect(a.cfg.Export.MappingsFile, pairs)
			if err != nil {
				return err
			}

			result, err := exporter.NewExporter().Export(exporter.Options{
				SourceDir: args[0],
				ThemeName: args[1],
				Mappings:  mapping,
				IconsDir:  a.cfg.Export.IconsDir,
				Extension: a.cfg.Scan.Extension,
			})
			if err != nil {
				return fmt.Errorf(MsgErrExport, args[0], err)
			}
			return a.render(result, ui.Options{})
		},
	}

	cmd.Flags().StringArrayVar(&pairs, "map", nil, MsgFlagMap)
	cmd.Flags().String("mappings", "", MsgFlagMappings)
	cmd.Flags().String("icons-dir", "", MsgFlagIconsDir)
	cmd.Flags().String("extension", types.DefaultExtension, MsgFlagExtension)
	return cmd
}

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.renderer(a.stdout, ui.Options{})
			if err != nil {
				return err
			}
			return r.RenderMessage(fmt.Sprintf(MsgVersionFormat, version.Version, version.Commit, version.Date))
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
