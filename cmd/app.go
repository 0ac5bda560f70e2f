package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"prompt-lab/analyzer"
	"prompt-lab/intent"
	"prompt-lab/registry"
	"prompt-lab/repositories"
	"prompt-lab/services"
	"prompt-lab/templates"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type app struct {
	config    Config
	log       *slog.Logger
	out       io.Writer
	printer   printer
	optimizer *services.Optimizer
	library   *templates.Library
	closers   []func() error
}

func newApp(config Config, log *slog.Logger, out io.Writer) (*app, error) {
	a := &app{
		config:  config,
		log:     log,
		out:     out,
		printer: printer{out: out, colours: config.Colours},
		library: templates.NewLibrary(log),
	}
	usage, err := a.openUsage()
	if err != nil {
		return nil, err
	}
	var detector intent.IDetector = intent.DefaultDetector{}
	if config.Detector == "keyword" {
		detector = intent.NewKeywordDetector()
	}
	a.optimizer = services.NewOptimizer(log, registry.NewDefaultRegistry(), analyzer.NewAnalyzer(log),
		detector, usage, config.RecentLimit)
	return a, nil
}

func (a *app) openUsage() (repositories.IUsageRepository, error) {
	if a.config.UsageStore == memoryStore {
		return repositories.NewMemoryUsageRepository(a.log, a.config.RecentLimit), nil
	}
	db, err := badger.Open(badger.DefaultOptions(a.config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return nil, fmt.Errorf("database opening failed: %w", err)
	}
	a.closers = append(a.closers, db.Close)
	return repositories.NewUsageRepository(db, a.log), nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Warn("Close failed", "error", err)
		}
	}
}

func (a *app) dispatch(args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" {
		a.usage()
		return nil
	}
	for _, c := range commands {
		if c.name == args[0] {
			return c.run(a, args[1:])
		}
	}
	a.usage()
	return fmt.Errorf("unknown command %q", args[0])
}

func (a *app) usage() {
	fmt.Fprintln(a.out, "Usage: prompt-lab <command> [flags]")
	fmt.Fprintln(a.out)
	for _, c := range commands {
		fmt.Fprintf(a.out, "  %-10s %s\n", c.name, c.usage)
	}
}

func (a *app) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func required(name, value string) error {
	if err := validate.Var(strings.TrimSpace(value), "required"); err != nil {
		return fmt.Errorf("-%s is required", name)
	}
	return nil
}
