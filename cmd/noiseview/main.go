// Command noiseview previews noise fields in the terminal, or samples one
// and writes statistics or a PNG.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/bigzano/noisekit/internal/logging"
)

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	if cfg.logPath != "" {
		if err := logging.Init(cfg.logPath, "noiseview"); err != nil {
			log.Fatal(err)
		}
		defer logging.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Without a terminal there is nothing to draw on; report instead.
	if !cfg.batch() && !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		cfg.stats = true
	}

	if cfg.batch() {
		if err := runBatch(ctx, cfg, os.Stdout); err != nil {
			logging.LogError("%v", err)
			logging.Close()
			log.Fatal(err)
		}
		return
	}

	sampler := newFrameSampler(0)
	go sampler.run(ctx)

	p := tea.NewProgram(initialModel(cfg, sampler), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logging.LogError("program: %v", err)
		logging.Close()
		log.Fatal(err)
	}
}
