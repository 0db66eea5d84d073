package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"AOSocial/internal/app"
	"AOSocial/internal/config"
	"AOSocial/internal/logging"
)

const (
	outputText = "text"
	outputJSON = "json"
)

type rootOptions struct {
	configPath string
	output     string
	verbose    bool
}

// NewRootCmd returns the aosocial command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "aosocial",
		Short:         "Post tooling and profile client for the AO social network",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.output != outputText && opts.output != outputJSON {
				return fmt.Errorf("unknown output format %q (want text or json)", opts.output)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file (default $AOSOCIAL_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", outputText, "output format: text|json")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newScanCmd(opts))
	rootCmd.AddCommand(newAnnotateCmd())
	rootCmd.AddCommand(newComposeCmd(opts))
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newAgoCmd())
	rootCmd.AddCommand(newProfileCmd(opts))
	rootCmd.AddCommand(newBalancesCmd(opts))
	rootCmd.AddCommand(newWatchCmd(opts))
	rootCmd.AddCommand(newQueryCmd(opts))

	return rootCmd
}

func (o *rootOptions) loadConfig() config.Config {
	if o.configPath != "" {
		return config.LoadFile(o.configPath)
	}
	return config.Load()
}

// withApp builds the application for the duration of run.
func (o *rootOptions) withApp(cmd *cobra.Command, run func(*app.Application) error) error {
	cfg := o.loadConfig()
	if o.verbose {
		cfg.Logging.Level = "debug"
	}
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)

	application, err := app.New(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := application.Close(); cerr != nil {
			logger.Warn("close application", "error", cerr)
		}
	}()

	return run(application)
}

func (o *rootOptions) json() bool {
	return o.output == outputJSON
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readContent joins args, or reads stdin when there are none or the only arg is "-".
func readContent(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return strings.TrimRight(string(raw), "\r\n"), nil
	}
	return strings.Join(args, " "), nil
}
