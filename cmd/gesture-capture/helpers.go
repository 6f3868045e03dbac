package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	gestures "github.com/tphakala/go-photodiode-gestures"
	"github.com/tphakala/go-photodiode-gestures/dataset"
	"github.com/tphakala/go-photodiode-gestures/detector"
	"github.com/tphakala/go-photodiode-gestures/internal/capture"
	"github.com/tphakala/go-photodiode-gestures/internal/store"
)

// record feeds readings through det and saves every detected window as a
// copy of label carrying the window. It stops at end of input, on
// cancellation, or after maxGestures windows when maxGestures > 0, and
// returns the number saved.
func record(ctx context.Context, reader *capture.Reader, det *detector.Detector, sink dataset.Sink,
	label gestures.Recording, maxGestures int, verbose bool,
) (int, error) {
	saved := 0
	for maxGestures == 0 || saved < maxGestures {
		reading, err := reader.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return saved, nil
			}
			return saved, err
		}

		s, ok, err := det.Push(reading)
		if err != nil {
			return saved, fmt.Errorf("line %d: %w", reader.Line(), err)
		}
		if !ok {
			continue
		}

		rec := label
		rec.Sample = s
		if err := sink.Save(ctx, rec); err != nil {
			return saved, err
		}
		saved++
		log.Printf("Saved gesture %d", saved)
		if verbose {
			log.Printf("Thresholds: %v", det.Thresholds())
		}
	}
	return saved, nil
}

// openSink returns the SQLite store when dbPath is set, otherwise a dataset
// directory sink writing the given format.
func openSink(dir, format, dbPath string) (dataset.Sink, func(), error) {
	if dbPath != "" {
		s, err := store.Open(dbPath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	}

	switch format {
	case "jsonl":
		return dataset.DirSink{Root: dir, Ext: dataset.ExtJSONL}, func() {}, nil
	case "wav":
		return dataset.DirSink{Root: dir, Ext: dataset.ExtWAV}, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown format %q: expected jsonl or wav", format)
	}
}

func openInput(port string, baud int, input string) (io.ReadCloser, error) {
	switch {
	case port != "":
		return capture.Open(port, capture.PortOptions{BaudRate: baud})
	case input == "-":
		return io.NopCloser(os.Stdin), nil
	default:
		return os.Open(input)
	}
}
