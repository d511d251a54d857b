package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lexcodex/spirvconf/configure"
)

// runConfigure resolves flags against the settings file and runs cmake.
func (c *cli) runConfigure(cmd *cobra.Command, srcArg, buildArg string) error {
	src, err := filepath.Abs(srcArg)
	if err != nil {
		return err
	}
	build, err := filepath.Abs(buildArg)
	if err != nil {
		return err
	}
	req, err := configure.NewInvocationRequest(c.requestParams(cmd, src, build))
	if err != nil {
		return err
	}

	configurator := configure.NewConfigurator(c.runner, cmd.OutOrStdout(), cmd.ErrOrStderr(), c.logger)
	if c.dryRun {
		_, err := configurator.Plan(req)
		return err
	}
	result, err := configurator.Run(cmd.Context(), req)
	if err != nil {
		return err
	}
	printSummary(cmd.ErrOrStderr(), req, result)
	return nil
}

// requestParams merges flags over settings. The cc/cxx pair is taken as a
// unit so a file-level cxx never pairs with a command-line cc.
func (c *cli) requestParams(cmd *cobra.Command, src, build string) configure.RequestParams {
	s := c.settings
	params := configure.RequestParams{
		Tool:        c.resolveTool(cmd),
		SourceDir:   src,
		BuildDir:    build,
		Generator:   flagOrSetting(cmd, "generator", c.generator, s.Generator),
		CC:          s.CC,
		CXX:         s.CXX,
		Profile:     flagOrSetting(cmd, "profile", c.profile, s.Profile),
		Definitions: append(append([]string(nil), s.Defines...), c.defines...),
		Env:         s.Env,
	}
	if cmd.Flags().Changed("cc") || cmd.Flags().Changed("cxx") {
		params.CC = c.cc
		params.CXX = c.cxx
	}
	return params
}

// resolveTool prefers --cmake, then $SPIRVCONF_CMAKE, then the settings file.
func (c *cli) resolveTool(cmd *cobra.Command) string {
	if cmd.Flags().Changed("cmake") || os.Getenv("SPIRVCONF_CMAKE") != "" {
		return c.tool
	}
	if c.settings.CMake != "" {
		return c.settings.CMake
	}
	return c.tool
}
