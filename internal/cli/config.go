package cli

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/yaklabco/ngpatch/internal/configloader"
	"github.com/yaklabco/ngpatch/internal/logging"
	"github.com/yaklabco/ngpatch/pkg/config"
)

func newConfigCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create ngpatch configuration",
	}

	cmd.AddCommand(newConfigInitCommand(), newConfigShowCommand(opts), newConfigEnvCommand())

	return cmd
}

func newConfigInitCommand() *cobra.Command {
	var force bool
	var output string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default " + configloader.ProjectConfigName,
		Long: `Create a configuration file with the default settings in the current
directory. Existing files are kept unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logging.FromContext(cmd.Context())

			absPath, err := filepath.Abs(output)
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}
			if err := configloader.WriteConfig(cmd.Context(), config.NewConfig(), absPath, force); err != nil {
				return err
			}

			logger.Info("created configuration file", logging.FieldPath, output)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	cmd.Flags().StringVarP(&output, "output", "o", configloader.ProjectConfigName, "output file path")

	return cmd
}

func newConfigShowCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			header := "# effective configuration"
			for _, path := range loaded.LoadedFrom {
				header += "\n# from " + path
			}
			content, err := loaded.Config.ToYAMLWithHeader(header)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(content)
			return err
		},
	}
}

func newConfigEnvCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List supported environment variables",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			vars := configloader.ListEnvVars()
			names := make([]string, 0, len(vars))
			for name := range vars {
				names = append(names, name)
			}
			slices.Sort(names)

			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%-32s %s\n", name, vars[name])
			}
		},
	}
}
