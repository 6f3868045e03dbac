package dataset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	gestures "github.com/tphakala/go-photodiode-gestures"
	"github.com/tphakala/go-photodiode-gestures/internal/monitoring"
)

// dirPerm and filePerm are used when a sink creates dataset entries.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

var fileNamePattern = regexp.MustCompile(`^candidate_(\w+)\.(jsonl|wav)$`)

var candidatePattern = regexp.MustCompile(`^\w+$`)

// DirSource loads recordings from a directory tree laid out as
// <Root>/<gesture>/<hand>/candidate_<id>.<ext>.
type DirSource struct {
	// Root is the dataset directory. Empty means DefaultRoot.
	Root string

	// WindowLength splits WAV recordings into windows. Zero means
	// gestures.DefaultWindowLength.
	WindowLength int
}

func (d DirSource) root() string {
	if d.Root == "" {
		return DefaultRoot
	}
	return d.Root
}

func (d DirSource) windowLength() int {
	if d.WindowLength <= 0 {
		return gestures.DefaultWindowLength
	}
	return d.WindowLength
}

// Load returns every recording of gesture performed with hand, in file name
// order and then record order. A missing directory yields no recordings.
func (d DirSource) Load(ctx context.Context, gesture gestures.Gesture, hand gestures.Hand) ([]gestures.Recording, error) {
	dir := filepath.Join(d.root(), gesture.String(), hand.String())

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			monitoring.Logf("dataset: no recordings for %s/%s", gesture, hand)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var out []gestures.Recording
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := filepath.Ext(name)
		if ext != ExtJSONL && ext != ExtWAV {
			continue
		}

		m := fileNamePattern.FindStringSubmatch(name)
		if m == nil {
			return nil, fmt.Errorf("%w: %s", ErrBadFileName, filepath.Join(dir, name))
		}

		path := filepath.Join(dir, name)
		recs, err := d.loadFile(path, ext, recordContext{candidate: m[1], gesture: gesture, hand: hand})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		out = append(out, recs...)
	}
	return out, nil
}

func (d DirSource) loadFile(path, ext string, rc recordContext) ([]gestures.Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	if ext == ExtJSONL {
		return decodeJSONL(f, rc)
	}

	samples, err := DecodeWAV(f, d.windowLength())
	if err != nil {
		return nil, err
	}
	recs := make([]gestures.Recording, len(samples))
	for i, s := range samples {
		recs[i] = gestures.Recording{
			Candidate: rc.candidate,
			Gesture:   rc.gesture,
			Hand:      rc.hand,
			Sample:    s,
		}
	}
	return recs, nil
}

// DirSink writes recordings into the directory layout read by DirSource.
type DirSink struct {
	// Root is the dataset directory. Empty means DefaultRoot.
	Root string

	// Ext selects the record format, ExtJSONL or ExtWAV. Empty means
	// ExtJSONL.
	Ext string

	// SampleRate is written to WAV headers. Zero means
	// gestures.DefaultSampleRate.
	SampleRate int
}

// Path returns the file a recording is stored in.
func (d DirSink) Path(rec gestures.Recording) string {
	root := d.Root
	if root == "" {
		root = DefaultRoot
	}
	return filepath.Join(root, rec.Gesture.String(), rec.Hand.String(),
		"candidate_"+rec.Candidate+d.ext())
}

func (d DirSink) ext() string {
	if d.Ext == "" {
		return ExtJSONL
	}
	return d.Ext
}

// Save appends rec to its candidate file. JSONL files are appended in
// place. WAV files are rewritten with the new window after the existing
// ones, so every window in a file must have the same length.
func (d DirSink) Save(ctx context.Context, rec gestures.Recording) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := rec.Validate(); err != nil {
		return err
	}
	if !candidatePattern.MatchString(rec.Candidate) {
		return fmt.Errorf("%w: candidate %q", ErrBadFileName, rec.Candidate)
	}

	path := d.Path(rec)
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}

	switch d.ext() {
	case ExtJSONL:
		return appendJSONL(path, rec)
	case ExtWAV:
		return d.appendWAV(path, rec)
	default:
		return fmt.Errorf("%w: unsupported extension %q", gestures.ErrInvalidConfig, d.Ext)
	}
}

func appendJSONL(path string, rec gestures.Recording) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, filePerm)
	if err != nil {
		return err
	}
	if err := EncodeJSONL(f, rec); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

func (d DirSink) appendWAV(path string, rec gestures.Recording) error {
	var samples []gestures.Sample

	existing, err := os.Open(path)
	switch {
	case err == nil:
		samples, err = DecodeWAV(existing, rec.Sample.Steps())
		_ = existing.Close()
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}
	samples = append(samples, rec.Sample)

	rate := d.SampleRate
	if rate <= 0 {
		rate = gestures.DefaultSampleRate
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := EncodeWAV(f, samples, rate); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
