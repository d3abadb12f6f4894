package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"appointment-system/internal/client/apiclient"
	"appointment-system/internal/client/clientconfig"
	"appointment-system/internal/client/resilience"
	"appointment-system/internal/client/viewmodel"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

type app struct {
	baseURL string
	debug   bool

	out    io.Writer
	errOut io.Writer

	cfg    clientconfig.Config
	logger *slog.Logger
	client *apiclient.Client
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errCommandFailed) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		stop()
		os.Exit(1)
	}
}

func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "appointments",
		Short:         "Appointment system client",
		Long:          `Command line client for the appointment API. Calls are retried with exponential backoff and guarded by a circuit breaker.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.baseURL, "base-url", "", "API base url (overrides APPOINTMENT_CLIENT_BASE_URL)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newListCommand(a),
		newGetCommand(a),
		newCreateCommand(a),
		newUpdateCommand(a),
		newDeleteCommand(a),
		newExportCommand(a),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := clientconfig.Load()
	if err != nil {
		return err
	}
	if a.baseURL != "" {
		cfg.BaseURL = a.baseURL
	}
	a.cfg = cfg

	level := slog.LevelInfo
	if a.debug || cfg.LogLevel == "debug" {
		level = slog.LevelDebug
	}
	a.logger = slog.New(tint.NewHandler(a.errOut, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))

	transport := resilience.NewTransport(http.DefaultTransport, cfg.Resilience(), resilience.WithLogger(a.logger))
	client, err := apiclient.New(cfg.BaseURL, cfg.APIPrefix,
		apiclient.WithHTTPClient(&http.Client{Transport: transport}),
		apiclient.WithTimeout(cfg.Timeout),
		apiclient.WithLogger(a.logger),
	)
	if err != nil {
		return err
	}
	a.client = client
	return nil
}

func (a *app) program() *viewmodel.Program {
	return viewmodel.NewIdleProgram(viewmodel.NewModel(a.client, time.Now), a.logger)
}
