// Command gesture-prep turns labelled photodiode recordings into model input.
//
// Recordings are loaded from a dataset directory or a SQLite store, grouped
// per candidate, preprocessed, reshaped and written as JSON Lines, one
// object per sample:
//
//	{"candidate":"3","label":"tap","label_index":6,"shape":[20,5,3],"data":[...]}
//
// Usage:
//
//	gesture-prep -order rescale-normalize-filter -out train.jsonl
//	gesture-prep -order rescale-normalize -hands both -split -out all.jsonl
//	gesture-prep -order rescale-normalize-filter -wav-window 20 -window 100 -out train.jsonl
//	gesture-prep -db recordings.db -order filter-rescale-normalize -test 0.2 -out train.jsonl -test-out test.jsonl
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/pprof"

	gestures "github.com/tphakala/go-photodiode-gestures"
	"github.com/tphakala/go-photodiode-gestures/dataset"
	"github.com/tphakala/go-photodiode-gestures/internal/monitoring"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	dir := flag.String("dir", dataset.DefaultRoot, "Dataset directory")
	dbPath := flag.String("db", "", "Read recordings from this SQLite store instead of -dir")
	orderName := flag.String("order", "", "Preprocessing order (required): rescale-normalize-filter, filter-rescale-normalize, rescale-normalize")
	filterName := flag.String("filter", defaultFilter, "Smoothing filter: butterworth, fft-lowpass")
	cutoff := flag.Float64("cutoff", gestures.DefaultCutoffHz, "FFT low-pass cutoff in Hz")
	window := flag.Int("window", 0, "Stretch every recording to this many readings (0 keeps the length)")
	wavWindow := flag.Int("wav-window", gestures.DefaultWindowLength, "Readings per recording in .wav dataset files")
	hands := flag.String("hands", defaultHands, "Hands to load: left, right, both")
	split := flag.Bool("split", false, "Treat each hand of a candidate as a separate candidate")
	shapeSpec := flag.String("shape", defaultShape, "Model input shape")
	parallel := flag.Bool("parallel", true, "Preprocess samples in parallel")
	workers := flag.Int("workers", 0, "Maximum parallel workers (0 = GOMAXPROCS)")
	testFraction := flag.Float64("test", 0, "Fraction of candidates held out for testing")
	seed := flag.Uint64("seed", defaultTestSeed, "Seed for the train/test candidate split")
	out := flag.String("out", "", "Output file (default stdout)")
	testOut := flag.String("test-out", "", "Output file for the held-out candidates")
	verbose := flag.Bool("v", false, "Verbose output")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file")
	flag.Parse()

	if *orderName == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -order <order> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return errors.New("a preprocessing order must be selected")
	}
	if *testFraction > 0 && *testOut == "" {
		return errors.New("-test requires -test-out")
	}
	if !*verbose {
		monitoring.SetLogger(nil)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	order, err := gestures.ParseOrder(*orderName)
	if err != nil {
		return err
	}
	filter, err := gestures.ParseFilter(*filterName)
	if err != nil {
		return err
	}
	shape, err := gestures.ParseShape(*shapeSpec)
	if err != nil {
		return err
	}
	opts, err := groupOptions(*hands, *split)
	if err != nil {
		return err
	}

	config := gestures.DefaultConfig(order)
	config.Filter = filter
	config.CutoffHz = *cutoff
	config.WindowLength = *window
	config.EnableParallel = *parallel
	config.MaxWorkers = *workers

	p, err := gestures.NewPreprocessor(&config)
	if err != nil {
		return err
	}
	if *verbose {
		log.Printf("Pipeline: %s", p)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	src, closeSrc, err := openSource(*dir, *dbPath, *wavWindow)
	if err != nil {
		return err
	}
	defer closeSrc()

	grouped, err := dataset.Group(ctx, src, opts)
	if err != nil {
		return err
	}
	candidates := grouped.Candidates()
	if *verbose {
		log.Printf("Loaded %d samples from %d candidates", grouped.Len(), len(candidates))
	}

	train, test := candidates, []string(nil)
	if *testFraction > 0 {
		train, test, err = dataset.SplitCandidates(candidates, *testFraction, *seed)
		if err != nil {
			return err
		}
		if *verbose {
			log.Printf("Test candidates: %v", test)
		}
	}

	if err := assembleTo(ctx, *out, train, grouped, shape, p, *verbose); err != nil {
		return err
	}
	if len(test) > 0 {
		return assembleTo(ctx, *testOut, test, grouped, shape, p, *verbose)
	}
	return nil
}

func assembleTo(ctx context.Context, path string, candidates []string, grouped dataset.Grouped,
	shape gestures.Shape, p *gestures.Preprocessor, verbose bool,
) error {
	batch, err := dataset.Assemble(ctx, candidates, grouped, shape, p)
	if err != nil {
		return err
	}
	if err := writeBatchFile(path, batch); err != nil {
		return err
	}
	if verbose {
		name := path
		if name == "" {
			name = "stdout"
		}
		log.Printf("Wrote %d samples to %s", batch.Len(), name)
	}
	return nil
}
