package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/getmockd/awsmock/pkg/config"
	"github.com/getmockd/awsmock/pkg/logging"
	"github.com/getmockd/awsmock/pkg/server"
)

// shutdownTimeout is the maximum time to wait for graceful shutdown.
const shutdownTimeout = 10 * time.Second

// serveFlags holds the flag values bound to the serve command.
type serveFlags struct {
	configPath string
	host       string
	port       int
	region     string
	accountID  string
	logLevel   string
	logFormat  string
}

var serveFlagVals serveFlags

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the mock server (foreground)",
	Example: `  # Start with defaults (port 5000, us-east-1 / 123456789012)
  awsmock serve

  # Custom port and partition
  awsmock serve --port 4566 --region eu-west-1 --account-id 999999999999

  # Pre-seed recognizers from a config file
  awsmock serve --config awsmock.yaml`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadServeConfig(serveFlagVals)
		if err != nil {
			return err
		}

		log := logging.New(logging.Config{
			Level:  logging.ParseLevel(cfg.LogLevel),
			Format: logging.ParseFormat(cfg.LogFormat),
		})

		srv := server.New(cfg, server.WithLogger(log))

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
			log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			return <-errCh
		}
	},
}

// loadServeConfig builds the effective config: file first (when given), then
// flag overrides, then defaults for whatever is still unset.
func loadServeConfig(flags serveFlags) (*config.Config, error) {
	cfg := &config.Config{}
	if flags.configPath != "" {
		loaded, err := config.LoadFromFile(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flags.host != "" {
		cfg.Host = flags.host
	}
	if flags.port != 0 {
		cfg.Port = flags.port
	}
	if flags.region != "" {
		cfg.DefaultRegion = flags.region
	}
	if flags.accountID != "" {
		cfg.DefaultAccountID = flags.accountID
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	if flags.logFormat != "" {
		cfg.LogFormat = flags.logFormat
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func init() {
	f := serveCmd.Flags()
	f.StringVarP(&serveFlagVals.configPath, "config", "c", "", "config file (YAML or JSON)")
	f.StringVar(&serveFlagVals.host, "host", "", "listen address (default all interfaces)")
	f.IntVarP(&serveFlagVals.port, "port", "p", 0, "listen port (default 5000)")
	f.StringVar(&serveFlagVals.region, "region", "", "default region (default us-east-1)")
	f.StringVar(&serveFlagVals.accountID, "account-id", "", "mock account id (default 123456789012)")
	f.StringVar(&serveFlagVals.logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.StringVar(&serveFlagVals.logFormat, "log-format", "", "log format: text or json")
}
