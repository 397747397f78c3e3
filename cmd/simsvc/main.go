package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Eiyeron/six/internal/battle"
	"github.com/Eiyeron/six/internal/config"
	"github.com/Eiyeron/six/internal/report"
	"github.com/Eiyeron/six/internal/util"
)

func main() {
	var cfgPath, out, pdfOut string
	var seed int64
	var n, workers int
	var dt, maxTime float64
	var saveLog, random, verbose bool
	flag.StringVar(&cfgPath, "config", "assets/battle.yaml", "battle definition (defaults when missing)")
	flag.StringVar(&out, "out", "out.json", "output file (single) or summary file (batch)")
	flag.StringVar(&pdfOut, "pdf", "", "also write a PDF summary to this file")
	flag.Int64Var(&seed, "seed", 12345, "seed")
	flag.IntVar(&n, "n", 1, "number of simulations")
	flag.IntVar(&workers, "workers", 8, "concurrent simulations in batch mode")
	flag.Float64Var(&dt, "dt", 1.0/60, "fixed timestep in seconds")
	flag.Float64Var(&maxTime, "max-time", 900, "simulated seconds before a run is abandoned")
	flag.BoolVar(&saveLog, "log", true, "save full event log when n==1")
	flag.BoolVar(&random, "random", true, "autopilot picks random menu entries instead of always striking")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(context.Background(), runOpts{
		cfgPath: cfgPath, out: out, pdfOut: pdfOut, seed: seed, n: n, workers: workers,
		dt: dt, maxTime: maxTime, saveLog: saveLog, random: random, logger: logger,
	}); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

type runOpts struct {
	cfgPath, out, pdfOut string
	seed                 int64
	n, workers           int
	dt, maxTime          float64
	saveLog, random      bool
	logger               *slog.Logger
}

func pilotFor(random bool, seed int64) battle.InputSource {
	if !random {
		return &battle.Autopilot{}
	}
	return &battle.Autopilot{Rng: util.New(seed ^ 0x5eed)}
}

func run(ctx context.Context, o runOpts) error {
	cfg, err := config.LoadBattle(o.cfgPath)
	if err != nil {
		return err
	}
	slog.Info("battle loaded", "config", o.cfgPath, "allies", len(cfg.Allies), "enemies", len(cfg.Enemies))

	if o.n <= 1 {
		env := &battle.Env{Delta: o.dt, MaxTime: o.maxTime, Rng: util.New(o.seed), Logger: o.logger}
		res := battle.RunSingle(&cfg, env, pilotFor(o.random, o.seed), o.saveLog)
		if err := os.WriteFile(o.out, battle.MarshalPretty(res), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", o.out, err)
		}
		fmt.Printf("Single simsvc finished. Outcome=%s, T=%.2fs, Turns=%d -> %s\n", res.Outcome, res.Duration, res.Turns, o.out)
		if o.pdfOut != "" {
			sum := report.NewSummary()
			sum.Add(res)
			return writePDF(o.pdfOut, sum)
		}
		return nil
	}

	sum := report.NewSummary()
	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(o.workers, 1))
	for i := 0; i < o.n; i++ {
		runSeed := o.seed + int64(i)*7919
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			env := &battle.Env{Delta: o.dt, MaxTime: o.maxTime, Rng: util.New(runSeed), Logger: o.logger}
			res := battle.RunSingle(&cfg, env, pilotFor(o.random, runSeed), false)
			mu.Lock()
			sum.Add(res)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := os.WriteFile(o.out, battle.MarshalPretty(sum), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", o.out, err)
	}
	fmt.Printf("Batch %d done -> %s\n", o.n, filepath.Base(o.out))
	if o.pdfOut != "" {
		return writePDF(o.pdfOut, sum)
	}
	return nil
}

func writePDF(path string, sum *report.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return report.WritePDF(f, "Battle simulation summary", sum)
}
