package vimv

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type CLIConfig struct {
	Force      bool
	Editor     string
	Nvim       bool
	Clipboard  bool
	Summary    bool
	Verbosity  int
	Completion string
}

const longHelp = `This utility lets you batch rename files using a text editor.

The list of files to rename will be opened in the editor specified by the
$VISUAL or $EDITOR environment variable, one file per line. Edit the list,
save, and exit. The files will be renamed to the edited filenames.
Directories will be created as required.

Filenames are read from stdin, one per line, when none are given as
arguments. VIMV_FORCE, VIMV_EDITOR, VIMV_NVIM, VIMV_CLIPBOARD and
VIMV_SUMMARY set flag defaults.

Example: ls *.jpg | vimv`

func newRootCmd() *cobra.Command {
	cli := &CLIConfig{}

	cmd := &cobra.Command{
		Use:           "vimv [flags] [files...]",
		Short:         "Batch rename files using a text editor.",
		Long:          longHelp,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			SetupLogger(cli.Verbosity, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cli.Completion != "" {
				return handleCompletion(cmd, cli.Completion)
			}

			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			applyFlags(cmd, cli, cfg)

			app, err := NewApp(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			defer app.Close()

			return run(cmd.Context(), app, cfg, args, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&cli.Force, "force", "f", false, "Force overwrite existing files")
	cmd.Flags().StringVarP(&cli.Editor, "editor", "e", "", "Editor command (default $VISUAL or $EDITOR)")
	cmd.Flags().BoolVar(&cli.Nvim, "nvim", false, "Edit in the Neovim instance vimv runs inside")
	cmd.Flags().BoolVar(&cli.Clipboard, "clipboard", false, "Read filenames from the clipboard")
	cmd.Flags().BoolVarP(&cli.Summary, "summary", "s", false, "Print the renames that were applied")
	cmd.Flags().CountVar(&cli.Verbosity, "verbose", "Increase log verbosity (repeatable)")
	cmd.Flags().StringVar(&cli.Completion, "completion", "", "Generate completion script")

	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	return cmd
}

// applyFlags lets explicitly set flags override values loaded from the
// environment.
func applyFlags(cmd *cobra.Command, cli *CLIConfig, cfg *Config) {
	flags := cmd.Flags()
	if flags.Changed("force") {
		cfg.Force = cli.Force
	}
	if flags.Changed("editor") {
		cfg.Editor = cli.Editor
	}
	if flags.Changed("nvim") {
		cfg.Nvim = cli.Nvim
	}
	if flags.Changed("clipboard") {
		cfg.Clipboard = cli.Clipboard
	}
	if flags.Changed("summary") {
		cfg.Summary = cli.Summary
	}
}

func run(ctx context.Context, app *App, cfg *Config, args []string, out io.Writer) error {
	summary, err := app.Execute(ctx, args)
	if err != nil {
		var de *DetailedError
		if errors.As(err, &de) {
			log.Debug().Bytes("stack", de.Stack).Msg("Recovered panic")
		}
		return err
	}
	if cfg.Summary {
		fmt.Fprint(out, FormatSummary(summary))
	}
	return nil
}

func handleCompletion(cmd *cobra.Command, shell string) error {
	switch shell {
	case "bash":
		return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
	case "zsh":
		return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
	case "fish":
		return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
	case "powershell":
		return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
	default:
		return wrapError(fmt.Errorf("unsupported shell for completion: %s", shell), ErrInvalidInput, shell)
	}
}

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}
