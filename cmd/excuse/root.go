package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/phrazzld/excuse-api/internal/api"
	"github.com/phrazzld/excuse-api/internal/bootstrap"
	"github.com/phrazzld/excuse-api/internal/config"
	"github.com/phrazzld/excuse-api/internal/platform/logger"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// statusError carries a non-success Result status out of a command. The
// result body has already been printed when it is returned.
type statusError struct {
	status int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("excuse request failed with status %d", e.status)
}

// exitCode is 2 for caller errors and 1 for everything else.
func (e *statusError) exitCode() int {
	if e.status >= http.StatusBadRequest && e.status < http.StatusInternalServerError {
		return 2
	}
	return 1
}

type rootOptions struct {
	configFile string
	envFile    string
	backend    string
	output     string
	verbose    bool
}

// invokerFactory builds the Invoker for a command run. Tests replace it.
type invokerFactory func(ctx context.Context, opts *rootOptions, stderr io.Writer) (*api.Invoker, error)

func newRootCmd() *cobra.Command {
	return newRootCmdWith(buildInvoker)
}

func newRootCmdWith(factory invokerFactory) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "excuse",
		Short:         "Generate professional, jargon-heavy excuses",
		Long:          `excuse declines a request for your time with a vague, technical-sounding excuse.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.output {
			case "json", "yaml":
				return nil
			default:
				return fmt.Errorf("unsupported output format %q (want json or yaml)", opts.output)
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "config.yaml", "path to a YAML config file")
	flags.StringVar(&opts.envFile, "env-file", ".env", "path to a .env file")
	flags.StringVarP(&opts.backend, "backend", "b", "", "override repository backend (agent or prepopulated)")
	flags.StringVarP(&opts.output, "output", "o", "json", "output format: json or yaml")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log to stderr at debug level")

	root.AddCommand(
		&cobra.Command{
			Use:   "generate <request...>",
			Short: "Generate an excuse for a specific request",
			Args:  cobra.ArbitraryArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				inv, err := factory(cmd.Context(), opts, cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				ev := api.Event{Request: strings.Join(args, " ")}
				return printResult(cmd.OutOrStdout(), opts.output, inv.Invoke(cmd.Context(), ev))
			},
		},
		&cobra.Command{
			Use:   "vague",
			Short: "Generate an excuse without a specific request",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				inv, err := factory(cmd.Context(), opts, cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				return printResult(cmd.OutOrStdout(), opts.output, inv.InvokeVague(cmd.Context()))
			},
		},
	)

	return root
}

// buildInvoker loads configuration and builds the service stack. Logs go to
// stderr so stdout carries only the result.
func buildInvoker(ctx context.Context, opts *rootOptions, stderr io.Writer) (*api.Invoker, error) {
	cfg, err := config.LoadWithOptions(config.Options{EnvFile: opts.envFile, ConfigFile: opts.configFile})
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.backend != "" {
		cfg.Repository.Backend = opts.backend
		if err := config.Validate(cfg); err != nil {
			return nil, err
		}
	}

	level := "error"
	if opts.verbose {
		level = "debug"
	}
	l, err := logger.Setup(config.ServerConfig{LogLevel: level}, logger.WithWriter(stderr))
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	components, err := bootstrap.Build(ctx, cfg, l, nil)
	if err != nil {
		return nil, err
	}
	return components.Invoker, nil
}

// printResult writes the result body in the requested format and returns a
// *statusError for non-success results.
func printResult(w io.Writer, format string, res api.Result) error {
	var err error
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(toPlain(res.Body)); err == nil {
			err = enc.Close()
		}
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(res.Body)
	}
	if err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	if !res.OK() {
		return &statusError{status: res.Status}
	}
	return nil
}

// toPlain round-trips v through JSON so that YAML output uses the same field
// names as the JSON contract.
func toPlain(v interface{}) interface{} {
	b, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out map[string]interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return v
	}
	return out
}
