package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// errUnknownFormat is returned when --format or the config file names a
// storage format the routing table does not know.
var errUnknownFormat = errors.New("unknown format")

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package with values injected via
// ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// configKey is the context key for the resolved Config.
const configKey ctxKey = 1

// withConfig returns a new context with the resolved config attached.
func withConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext retrieves the resolved config from ctx, falling back
// to the built-in defaults.
func configFromContext(ctx context.Context) Config {
	if cfg, ok := ctx.Value(configKey).(Config); ok {
		return cfg
	}
	return defaultConfig()
}

// Execute runs the sparsix CLI and returns an error if any command fails.
//
// The function sets up the root command with the convert and info
// subcommands, configures logging based on the --verbose flag, resolves
// the optional --config file, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "sparsix",
		Short:        "sparsix converts matrices between sparse storage formats",
		Long:         `sparsix reads Matrix Market files and routes them through COO, CSR, DIA, ELL, HYB, or dense storage, exercising the exact conversion pipeline a solver embedding the library would run.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			cmdCtx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(withConfig(cmdCtx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("sparsix %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML file with conversion defaults")

	root.AddCommand(newConvertCmd())
	root.AddCommand(newInfoCmd())

	return root.ExecuteContext(ctx)
}
