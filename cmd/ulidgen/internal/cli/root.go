package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/thalib/ulidgen/cmd/ulidgen/internal/config"
	"github.com/thalib/ulidgen/cmd/ulidgen/internal/constants"
	"github.com/thalib/ulidgen/cmd/ulidgen/internal/logging"
	"github.com/thalib/ulidgen/cmd/ulidgen/internal/timestamp"
	"github.com/thalib/ulidgen/cmd/ulidgen/internal/ulid"
)

// Options carries the capabilities the commands depend on. Zero values fall
// back to the system clock, crypto/rand and the process streams.
type Options struct {
	Now     func() time.Time
	Entropy io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

type app struct {
	opts     Options
	cfg      *config.AppConfig
	logger   *logging.Logger
	resolver *timestamp.Resolver
	encoder  *ulid.Encoder
}

// Execute runs the command line with args (without the program name).
func Execute(ctx context.Context, args []string, opts Options) error {
	root, a := newRootCommand(opts)
	defer a.close()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// newRootCommand builds the ulidgen command tree around a fresh app.
func newRootCommand(opts Options) (*cobra.Command, *app) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	a := &app{
		opts:     opts,
		resolver: timestamp.NewResolver(opts.Now),
		encoder:  ulid.NewEncoder(opts.Entropy),
	}

	root := &cobra.Command{
		Use:     constants.AppName + " [-t TIME]",
		Short:   shortDescription,
		Long:    longDescription,
		Example: examples,
		Version: config.Version(),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageErrorf("unexpected argument %q", args[0])
			}
			return nil
		},
		PersistentPreRunE: a.setup,
		RunE:              a.generate,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(opts.Stdout)
	root.SetErr(opts.Stderr)
	root.SetVersionTemplate("{{.Version}}\n")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	root.Flags().StringP("time", "t", "", "generate the ULID for TIME instead of now")
	root.PersistentFlags().String("config", "", "config file (default $HOME/"+constants.ConfigFileName+")")

	root.AddCommand(newInspectCommand(a))
	return root, a
}

// setup loads configuration and initializes logging before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logging.Init(logging.LoggerConfig{
		Level:       logging.ParseLevel(cfg.Logging.Level),
		Format:      cfg.Logging.Format,
		Output:      a.opts.Stderr,
		FilePath:    cfg.Logging.File,
		ServiceName: constants.AppName,
		Version:     config.Version(),
	})
	a.logger = logging.GetLogger().WithContext(cmd.Context())

	source := cfg.Source
	if source == "" {
		source = "defaults"
	}
	a.logger.WithField("config", source).Info("configuration loaded")
	return nil
}

// close releases the log file opened by setup.
func (a *app) close() {
	if a.logger != nil {
		a.logger.Close()
	}
}

func (a *app) generate(cmd *cobra.Command, _ []string) error {
	var input *string
	if cmd.Flags().Changed("time") {
		v, _ := cmd.Flags().GetString("time")
		input = &v
	}

	logger := a.logger
	var ms uint64
	var err error
	if input == nil {
		ms, err = a.resolver.Resolve(nil)
	} else {
		var kind timestamp.Kind
		ms, kind, err = a.resolver.ResolveString(*input)
		logger = logger.WithFields(map[string]any{
			"input": *input,
			"kind":  kind.String(),
		})
	}
	if err != nil {
		logger.DebugWithErr("timestamp rejected", err)
		return err
	}

	logger = logger.WithField("timestamp_ms", ms)
	logger.Debug("timestamp resolved")

	id, err := a.encoder.EncodeString(ms)
	if err != nil {
		logger.ErrorWithErr("ULID encoding failed", err)
		return err
	}

	if a.cfg.Output.Lowercase {
		id = strings.ToLower(id)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), id)
	return err
}
