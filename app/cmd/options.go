package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lexcodex/spirvconf/configure"
)

// newOptionsCmd prints the merged cache entries in invocation order.
func newOptionsCmd(c *cli) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "options",
		Short: "Print the cache entries a configure run would pass",
		Args:  noDirectoryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := configure.ParseProfile(flagOrSetting(cmd, "profile", c.profile, c.settings.Profile))
			if err != nil {
				return err
			}
			defs := append(append([]string(nil), c.settings.Defines...), c.defines...)
			opts, err := configure.MergeOptions(profile, defs)
			if err != nil {
				return err
			}
			switch format {
			case "text":
				for _, opt := range opts.Entries() {
					fmt.Fprintln(cmd.OutOrStdout(), opt.String())
				}
				return nil
			case "yaml":
				out, err := yaml.Marshal(optionsNode(opts))
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			return fmt.Errorf("unknown format %q", format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or yaml")
	return cmd
}

// optionsNode keeps insertion order, which a plain map would lose.
func optionsNode(opts *configure.OptionSet) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, opt := range opts.Entries() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: opt.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: opt.Value},
		)
	}
	return node
}
