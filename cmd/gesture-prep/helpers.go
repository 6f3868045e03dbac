package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	gestures "github.com/tphakala/go-photodiode-gestures"
	"github.com/tphakala/go-photodiode-gestures/dataset"
	"github.com/tphakala/go-photodiode-gestures/internal/store"
)

// outputRecord is one line of the output file.
type outputRecord struct {
	Candidate  string         `json:"candidate"`
	Label      string         `json:"label"`
	LabelIndex int            `json:"label_index"`
	Shape      gestures.Shape `json:"shape"`
	Data       []float32      `json:"data"`
}

// groupOptions builds grouping options from the -hands and -split flags.
func groupOptions(hands string, split bool) (dataset.GroupOptions, error) {
	opts := dataset.GroupOptions{SplitPerHand: split}
	switch strings.ToLower(hands) {
	case "left":
		opts.UseLeftHand = true
	case "right":
		opts.UseRightHand = true
	case "both":
		opts.UseLeftHand = true
		opts.UseRightHand = true
	default:
		return opts, fmt.Errorf("unknown hands %q: expected left, right or both", hands)
	}
	return opts, nil
}

// openSource returns the SQLite store when dbPath is set, otherwise the
// dataset directory. wavWindow is the number of readings per recording in
// .wav files and is independent of any stretch applied later.
func openSource(dir, dbPath string, wavWindow int) (dataset.Source, func(), error) {
	if dbPath == "" {
		return dataset.DirSource{Root: dir, WindowLength: wavWindow}, func() {}, nil
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, err
	}
	return s, func() { _ = s.Close() }, nil
}

// writeBatch writes one JSON object per batch item.
func writeBatch(w io.Writer, batch *dataset.Batch) error {
	enc := json.NewEncoder(w)
	for i, t := range batch.Tensors {
		rec := outputRecord{
			Candidate:  batch.Candidates[i],
			Label:      batch.Labels[i].String(),
			LabelIndex: batch.Labels[i].Index(),
			Shape:      t.Shape,
			Data:       t.Data,
		}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("failed to write item %d: %w", i, err)
		}
	}
	return nil
}

// writeBatchFile writes batch to path, or to stdout when path is empty.
func writeBatchFile(path string, batch *dataset.Batch) error {
	if path == "" {
		return writeBuffered(os.Stdout, batch)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := writeBuffered(f, batch); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writeBuffered(out io.Writer, batch *dataset.Batch) error {
	w := bufio.NewWriterSize(out, outputBufferSize)
	if err := writeBatch(w, batch); err != nil {
		return err
	}
	return w.Flush()
}
