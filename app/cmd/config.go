package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newConfigCmd registers subcommands that inspect or mutate the settings file.
func newConfigCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or modify the settings file",
		Args:  noDirectoryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newConfigGetCmd(c), newConfigSetCmd(c))
	return cmd
}

// newConfigGetCmd prints the value referenced by a dotted key.
func newConfigGetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]",
		Short: "Read a setting by dotted key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readConfigMap(c.cfgFile)
			if err != nil {
				return err
			}
			value, ok := getConfigValue(data, args[0])
			if !ok {
				return fmt.Errorf("key %s not found", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), prettyValue(value))
			return nil
		},
	}
}

// newConfigSetCmd updates a dotted key with the provided value.
func newConfigSetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Update a setting; defines takes a comma-separated list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readConfigMap(c.cfgFile)
			if err != nil {
				return err
			}
			if err := setConfigValue(data, args[0], parseValue(args[0], args[1])); err != nil {
				return err
			}
			if err := writeConfigMap(c.cfgFile, data); err != nil {
				return err
			}
			c.logger.Debug("settings written", "path", c.cfgFile, "key", args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s updated\n", args[0])
			return nil
		},
	}
}
