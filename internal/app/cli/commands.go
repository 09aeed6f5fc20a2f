package cli

import (
	"github.com/spf13/cobra"

	"lodestone/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandHelp CommandType = iota
	CommandView
	CommandAttach
	CommandList
	CommandVersion
)

// Options contains the parsed command-line arguments
type Options struct {
	Type     CommandType
	Path     string
	Instance string
	NoUI     bool
	Follow   bool
}

// Parse parses command-line args and returns an Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{Type: CommandHelp}

	root := buildRootCommand(result)
	root.AddCommand(
		buildViewCommand(result),
		buildAttachCommand(result),
		buildListCommand(result),
		buildVersionCommand(result),
	)

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	return result, nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "A terminal viewer for Minecraft instance logs",
		Long: `Lodestone parses and follows Minecraft instance logs, either from a
local log file or live from a running launcher backend.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandHelp
		},
	}

	cmd.PersistentFlags().BoolVar(&result.NoUI, "no-ui", false, "Stream to stdout instead of the TUI")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildViewCommand creates the view subcommand
func buildViewCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "view <file>",
		Aliases: []string{"v"},
		Short:   "View a log file on disk",
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandView
			result.Path = args[0]
		},
	}

	cmd.Flags().BoolVarP(&result.Follow, "follow", "f", false, "Keep following the file for appended lines")

	return cmd
}

// buildAttachCommand creates the attach subcommand
func buildAttachCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "attach [instance]",
		Aliases: []string{"a"},
		Short:   "Attach to an instance through the launcher backend",
		Args:    cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandAttach
			if len(args) > 0 {
				result.Instance = args[0]
			}
		},
	}

	return cmd
}

// buildListCommand creates the list subcommand
func buildListCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List registered instances and their log files",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandList
		},
	}

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}

	return cmd
}
