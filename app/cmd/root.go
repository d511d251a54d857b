package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lexcodex/spirvconf/configure"
	"github.com/lexcodex/spirvconf/framework"
	"github.com/lexcodex/spirvconf/internal/workspacecfg"
)

// cli carries flag values and per-run state for one command tree.
type cli struct {
	runner framework.CommandRunner

	cfgFile   string
	logLevel  string
	logFormat string
	profile   string
	defines   []string

	generator string
	cc        string
	cxx       string
	tool      string
	dryRun    bool

	settings *workspacecfg.Settings
	logger   *slog.Logger
}

// Execute is the entry point for the CLI.
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd wires the cobra tree against the host's process runner.
func NewRootCmd() *cobra.Command {
	return newRootCmd(framework.NewLocalCommandRunner())
}

func newRootCmd(runner framework.CommandRunner) *cobra.Command {
	c := &cli{runner: runner}
	root := &cobra.Command{
		Use:   "spirvconf [flags] <src-dir> <build-dir>",
		Short: "Configure to generate SPIR-V",
		Long: "Runs the cmake configure step for a SPIR-V enabled compiler tree, " +
			"echoing the assembled command and streaming cmake's output.\n\n" +
			"A source directory named like a subcommand (config, options) must be " +
			"given with a path prefix, e.g. ./config.",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConfigure(cmd, args[0], args[1])
		},
	}

	persistent := root.PersistentFlags()
	persistent.StringVar(&c.cfgFile, "config", "", "Path to settings file (default ./"+workspacecfg.FileName+")")
	persistent.StringVar(&c.profile, "profile", string(configure.ProfileDebug), "Build profile: Debug or Release")
	persistent.StringArrayVarP(&c.defines, "define", "D", nil, "Extra cache entry NAME:TYPE=VALUE (repeatable)")
	persistent.StringVar(&c.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	persistent.StringVar(&c.logFormat, "log-format", "text", "Log format: text or json")

	flags := root.Flags()
	flags.StringVarP(&c.generator, "generator", "G", "", "CMake generator name")
	flags.StringVar(&c.cc, "cc", "", "C compiler path")
	flags.StringVar(&c.cxx, "cxx", "", "C++ compiler path (requires --cc)")
	flags.StringVar(&c.tool, "cmake", envOrDefault("SPIRVCONF_CMAKE", configure.DefaultTool), "Configure tool to invoke")
	flags.BoolVar(&c.dryRun, "dry-run", false, "Print the configure command without running it")

	root.AddCommand(
		newOptionsCmd(c),
		newConfigCmd(c),
	)
	return root
}

// load reads the settings file and builds the logger.
func (c *cli) load(cmd *cobra.Command) error {
	if c.cfgFile == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		c.cfgFile = workspacecfg.DefaultPath(wd)
	}
	settings, err := workspacecfg.Load(c.cfgFile)
	if err != nil {
		return err
	}
	c.settings = settings

	logger, err := newLogger(workspacecfg.LoggingConfig{
		Level:  flagOrSetting(cmd, "log-level", c.logLevel, settings.Logging.Level),
		Format: flagOrSetting(cmd, "log-format", c.logFormat, settings.Logging.Format),
	}, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	c.logger = logger
	c.logger.Debug("settings loaded", "path", c.cfgFile)
	return nil
}
