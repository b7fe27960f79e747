package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gridctl/greet/pkg/config"
	"github.com/gridctl/greet/pkg/greeting"
	"github.com/gridctl/greet/pkg/output"
	"github.com/gridctl/greet/pkg/terminal"

	"github.com/spf13/cobra"
)

var (
	greetConfig  string
	greetUser    string
	greetDelay   time.Duration
	greetColor   string
	greetNoWait  bool
	greetVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "greet",
	Short: "Print a rainbow Hello, World! greeting",
	Long: `Greet clears the terminal and prints a colorful welcome for the current
user with the current UTC time, a message drawn one character at a time in
random rainbow colors, and a bit of ASCII art. It then waits for a keypress.

Settings can come from a YAML file (--config), GREET_* environment
variables, or flags, in increasing order of precedence.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveSettings(cmd)
		if err != nil {
			return err
		}

		diag := output.NewWithWriter(os.Stderr)
		diag.SetDebug(greetVerbose)

		return runGreet(cfg, os.Stdout, os.Stdin, diag)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&greetConfig, "config", "c", "", "Path to a YAML config file")
	rootCmd.Flags().StringVarP(&greetUser, "user", "u", "", "Name to greet instead of the login name")
	rootCmd.Flags().DurationVar(&greetDelay, "delay", config.DefaultDelay, "Pause after each greeting character")
	rootCmd.Flags().StringVar(&greetColor, "color", "", "Color output: auto, always or never")
	rootCmd.Flags().BoolVar(&greetNoWait, "no-wait", false, "Exit without waiting for a keypress")
	rootCmd.Flags().BoolVarP(&greetVerbose, "verbose", "v", false, "Print debug diagnostics to stderr")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(output.NewWithWriter(os.Stderr), err)
		os.Exit(1)
	}
}

// reportError logs a failed run on the diagnostics printer.
func reportError(diag *output.Printer, err error) {
	diag.Error("greet failed", "err", err)
}

// resolveSettings layers file, environment and command-line flags, in that
// order, and validates the result once.
func resolveSettings(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Assemble(greetConfig)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, cfg)
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags overrides cfg with flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("user") {
		cfg.User = greetUser
	}
	if flags.Changed("delay") {
		d := config.Duration(greetDelay)
		cfg.Delay = &d
	}
	if flags.Changed("color") {
		cfg.Color = greetColor
	}
	if flags.Changed("no-wait") {
		wait := !greetNoWait
		cfg.Wait = &wait
	}
}

// runGreet renders the greeting on out, reading the final keypress from in.
func runGreet(cfg *config.Config, out io.Writer, in *os.File, diag *output.Printer) error {
	mode, err := terminal.ParseColorMode(cfg.Color)
	if err != nil {
		return err
	}

	console := terminal.NewWithFiles(out, in, mode)
	diag.Debug("resolved settings",
		"config", greetConfig,
		"delay", cfg.DelayDuration(),
		"wait", cfg.ShouldWait(),
		"color", mode,
		"styled", console.Styled(),
	)

	opts := []greeting.Option{
		greeting.WithKeyReader(console),
		greeting.WithLogger(diag),
		greeting.WithDelay(cfg.DelayDuration()),
		greeting.WithWait(cfg.ShouldWait()),
	}
	if cfg.User != "" {
		user := cfg.User
		opts = append(opts, greeting.WithUser(func() string { return user }))
	}

	if err := greeting.New(console, opts...).Render(); err != nil {
		return fmt.Errorf("rendering greeting: %w", err)
	}
	return nil
}
