package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/phonconv/internal/cli"
	"codeberg.org/snonux/phonconv/internal/logging"
	"codeberg.org/snonux/phonconv/internal/processor"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := newRootCommand(os.Stdout)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCommand wires the cli commands to the processor
func newRootCommand(stdout io.Writer) *cobra.Command {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	rootCmd.SetOut(stdout)

	// Load the config file once flags are parsed
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cli.InitConfig(flags.CfgFile)
	}

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return withProcessor(cmd, flags, stdout, func(p *processor.Processor) error {
			if flags.BatchFile != "" {
				return p.ProcessBatch(cmd.Context())
			}
			if len(args) == 0 {
				return cmd.Help()
			}
			return p.ProcessSingle(cmd.Context(), strings.Join(args, " "))
		})
	}

	tableCmd := cli.CreateTableCommand()
	tableCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return withProcessor(cmd, flags, stdout, func(p *processor.Processor) error {
			return p.PrintCatalog()
		})
	}

	lookupCmd := cli.CreateLookupCommand()
	lookupCmd.RunE = func(cmd *cobra.Command, args []string) error {
		word := ""
		if len(args) > 0 {
			word = args[0]
		}
		return withProcessor(cmd, flags, stdout, func(p *processor.Processor) error {
			return p.Lookup(cmd.Context(), word)
		})
	}

	rootCmd.AddCommand(tableCmd, lookupCmd)
	return rootCmd
}

// withProcessor resolves configuration, sets up logging and the output
// destination, then runs fn
func withProcessor(cmd *cobra.Command, flags *cli.Flags, stdout io.Writer, fn func(*processor.Processor) error) error {
	cli.ApplyConfig(flags)
	logging.Init(flags.LogLevel, flags.LogPretty)

	log := logging.Get()
	if cfg := cli.ConfigFileUsed(); cfg != "" {
		log.Debug().Str("config", cfg).Msg("using config file")
	}
	log.Debug().Str("command", cmd.Name()).Msg("starting")

	p, err := processor.NewProcessor(flags, stdout)
	if err != nil {
		return err
	}

	// Only truncate the output file once the flags are known to be valid
	if flags.OutputFile != "" {
		f, err := os.Create(flags.OutputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		p.SetOutput(f)
	}

	return fn(p)
}
