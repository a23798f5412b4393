package main

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/grindlemire/go-panels"
	"github.com/grindlemire/go-panels/internal/gallery"
	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark bubble packing on random children",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}

	cmd.Flags().Int("items", 100, "Number of bubbles per pass")
	cmd.Flags().Int("iterations", 50, "Number of packing passes")
	cmd.Flags().Int64("seed", 1, "Seed for the random bubble sizes")
	cmd.Flags().Float64("min", 20, "Smallest bubble side")
	cmd.Flags().Float64("max", 120, "Largest bubble side")
	cmd.Flags().Float64("width", 0, "Container width; 0 sizes the container to its content")
	cmd.Flags().Float64("height", 0, "Container height; 0 sizes the container to its content")
	for _, name := range []string{"items", "iterations", "seed", "min", "max", "width", "height"} {
		_ = viper.BindPFlag("bench."+name, cmd.Flags().Lookup(name))
	}
	return cmd
}

// benchResult summarizes a benchmark run. Outside counts circles whose
// bounds leave the container.
type benchResult struct {
	Passes   int
	Mean     time.Duration
	Fastest  time.Duration
	Slowest  time.Duration
	Overflow int
	Outside  int
}

func runBench(cmd *cobra.Command, args []string) error {
	items := viper.GetInt("bench.items")
	iterations := viper.GetInt("bench.iterations")
	lo, hi := viper.GetFloat64("bench.min"), viper.GetFloat64("bench.max")
	if items <= 0 || iterations <= 0 {
		return errors.New("--items and --iterations must be positive")
	}
	if lo <= 0 || hi < lo {
		return fmt.Errorf("invalid bubble sizes [%v, %v]", lo, hi)
	}

	available := panels.Infinite
	if w := viper.GetFloat64("bench.width"); w > 0 {
		available.Width = w
	}
	if h := viper.GetFloat64("bench.height"); h > 0 {
		available.Height = h
	}

	var progress *progressbar.ProgressBar
	if isTerminal(cmd.ErrOrStderr()) && log.GetLevel() != log.ErrorLevel {
		progress = progressbar.Default(int64(iterations), "I: packing")
	}

	// Overflow warnings would drown the progress bar; they are counted
	// instead.
	panels.SetLogger(nil)
	defer panels.SetLogger(log.StandardLogger())

	rng := rand.New(rand.NewSource(viper.GetInt64("bench.seed")))
	res := bench(rng, items, iterations, lo, hi, available, func() {
		if progress != nil {
			_ = progress.Add(1)
		}
	})

	fmt.Fprintf(cmd.OutOrStdout(),
		"items %d, passes %d: mean %v, fastest %v, slowest %v, overflow %d (%.1f%%), outside %d\n",
		items, res.Passes, res.Mean, res.Fastest, res.Slowest, res.Overflow,
		100*float64(res.Overflow)/float64(items*res.Passes), res.Outside)
	return nil
}

func bench(rng *rand.Rand, items, iterations int, lo, hi float64, available panels.Size, tick func()) benchResult {
	p := panels.NewBubblePanel()
	res := benchResult{Passes: iterations}

	var total time.Duration
	for i := 0; i < iterations; i++ {
		children := gallery.Bubbles(rng, items, lo, hi)

		start := time.Now()
		final := available.Resolve(p.Measure(children, available))
		circles := p.Pack(children, final)
		elapsed := time.Since(start)

		total += elapsed
		if i == 0 || elapsed < res.Fastest {
			res.Fastest = elapsed
		}
		res.Slowest = max(res.Slowest, elapsed)
		bounds := panels.NewRect(0, 0, final.Width, final.Height)
		for _, c := range circles {
			if c.Tier == panels.TierOverflow {
				res.Overflow++
			}
			if !bounds.ContainsRect(c.Bounds()) {
				res.Outside++
			}
		}
		tick()
	}
	res.Mean = total / time.Duration(iterations)
	return res
}
