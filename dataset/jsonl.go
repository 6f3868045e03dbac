package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	gestures "github.com/tphakala/go-photodiode-gestures"
)

// jsonRecord is the object form of a stored recording. Older files hold a
// bare array of rows instead.
type jsonRecord struct {
	Data      [][]float64 `json:"data"`
	Gesture   string      `json:"gesture,omitempty"`
	Candidate any         `json:"candidate,omitempty"`
	Hand      string      `json:"hand,omitempty"`
}

// recordContext supplies the labels implied by a record's location on disk.
type recordContext struct {
	candidate string
	gesture   gestures.Gesture
	hand      gestures.Hand
}

// decodeJSONL reads every JSON value in r. Each value is either an object
// with "data", "gesture", "candidate" and "hand" fields or a bare array of
// (time, channel) rows. Missing labels are taken from ctx. The gesture always
// comes from ctx.
func decodeJSONL(r io.Reader, ctx recordContext) ([]gestures.Recording, error) {
	dec := json.NewDecoder(r)

	var out []gestures.Recording
	for n := 1; ; n++ {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, fmt.Errorf("%w: record %d: %w", ErrBadRecord, n, err)
		}

		rec, err := decodeRecord(raw, ctx)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", n, err)
		}
		out = append(out, rec)
	}
}

func decodeRecord(raw json.RawMessage, ctx recordContext) (gestures.Recording, error) {
	rec := gestures.Recording{
		Candidate: ctx.candidate,
		Gesture:   ctx.gesture,
		Hand:      ctx.hand,
	}

	var rows [][]float64
	switch trimmed := bytes.TrimSpace(raw); {
	case len(trimmed) > 0 && trimmed[0] == '[':
		if err := json.Unmarshal(trimmed, &rows); err != nil {
			return rec, fmt.Errorf("%w: %w", ErrBadRecord, err)
		}

	case len(trimmed) > 0 && trimmed[0] == '{':
		var jr jsonRecord
		if err := json.Unmarshal(trimmed, &jr); err != nil {
			return rec, fmt.Errorf("%w: %w", ErrBadRecord, err)
		}
		rows = jr.Data
		if id := candidateString(jr.Candidate); id != "" {
			rec.Candidate = id
		}
		if jr.Hand != "" {
			hand, err := gestures.ParseHand(jr.Hand)
			if err != nil {
				return rec, err
			}
			rec.Hand = hand
		}

	default:
		return rec, fmt.Errorf("%w: expected object or array", ErrBadRecord)
	}

	sample, err := gestures.SampleFromRows(rows)
	if err != nil {
		return rec, err
	}
	rec.Sample = sample
	return rec, nil
}

// candidateString normalises a candidate id that may be stored as a string
// or a number.
func candidateString(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return fmt.Sprint(id)
	}
}

// EncodeJSONL writes rec to w as a single JSON object line.
func EncodeJSONL(w io.Writer, rec gestures.Recording) error {
	jr := jsonRecord{
		Data:      rec.Sample.Rows(),
		Gesture:   rec.Gesture.String(),
		Candidate: rec.Candidate,
		Hand:      rec.Hand.String(),
	}
	line, err := json.Marshal(jr)
	if err != nil {
		return err
	}
	line = append(line, '\n')
	_, err = w.Write(line)
	return err
}

// DecodeJSONL reads every recording in r, filling labels missing from the
// records with the given candidate, gesture and hand.
func DecodeJSONL(r io.Reader, candidate string, gesture gestures.Gesture, hand gestures.Hand) ([]gestures.Recording, error) {
	return decodeJSONL(r, recordContext{candidate: candidate, gesture: gesture, hand: hand})
}
