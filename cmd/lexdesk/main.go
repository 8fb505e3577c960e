package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/deadsycode/lexdesk/internal/cli"
	"github.com/deadsycode/lexdesk/internal/config"
	"github.com/deadsycode/lexdesk/internal/gateway"
	"github.com/deadsycode/lexdesk/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := cfg.Log.SlogLevel()

	// Call and use-case logs go to stderr only when enabled.
	var logOut io.Writer
	var callObserver gateway.Observer = gateway.NoopObserver{}
	if cfg.Log.Calls {
		logOut = os.Stderr
		callObserver = gateway.NewLogObserver(os.Stderr, level)
	}
	useCases := service.NewLogUseCaseObserver(logOut, level)

	api := gateway.New(gateway.Options{
		BaseURL:    cfg.API.BaseURL,
		Token:      cfg.API.Token,
		Timeout:    time.Duration(cfg.API.TimeoutMs) * time.Millisecond,
		MaxRetries: cfg.API.MaxRetries,
	}, callObserver)

	app := &cli.App{
		Calendar:  service.NewCalendarService(api, useCases),
		Dashboard: service.NewDashboardService(api, cfg.Report.TopN, useCases),
		Reports:   service.NewReportService(api, cfg.Report.TopN, useCases),
		Workflow:  service.NewWorkflowService(api, cfg.Layout, useCases),
		Entries:   service.NewTimeEntryService(api, useCases),
		Directory: service.NewDirectoryService(api, useCases),
		Auth:      api,
	}

	// Prompts and the agenda browser need a terminal on both ends.
	app.IsInteractive = func() bool {
		return isTerminal(os.Stdin) && isTerminal(os.Stdout)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
