// Command gesture-capture records labelled gestures from the sensor.
//
// Readings arrive as "r,g,b" lines, either from the sensor's serial port or
// from a file. A streaming detector finds each gesture window, which is
// saved for the given candidate, gesture and hand.
//
// Usage:
//
//	gesture-capture -port /dev/ttyACM0 -candidate 7 -gesture tap
//	gesture-capture -port /dev/ttyACM0 -candidate 7 -gesture swipe_left -hand left_hand -db recordings.db
//	gesture-capture -input session.csv -candidate 7 -gesture zoom_in -format wav -max 10
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	gestures "github.com/tphakala/go-photodiode-gestures"
	"github.com/tphakala/go-photodiode-gestures/dataset"
	"github.com/tphakala/go-photodiode-gestures/detector"
	"github.com/tphakala/go-photodiode-gestures/internal/capture"
	"github.com/tphakala/go-photodiode-gestures/internal/monitoring"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	port := flag.String("port", "", "Serial port of the sensor")
	baud := flag.Int("baud", capture.DefaultBaudRate, "Serial baud rate")
	input := flag.String("input", "", "Read readings from this file instead of a serial port (- for stdin)")
	candidate := flag.String("candidate", "", "Candidate id (required)")
	gestureName := flag.String("gesture", "", "Gesture being performed (required)")
	handName := flag.String("hand", defaultHand, "Hand performing the gesture: left_hand, right_hand")
	dir := flag.String("dir", dataset.DefaultRoot, "Dataset directory")
	format := flag.String("format", defaultFormat, "Record format in the dataset directory: jsonl, wav")
	dbPath := flag.String("db", "", "Save to this SQLite store instead of -dir")
	maxGestures := flag.Int("max", 0, "Stop after this many gestures (0 = unlimited)")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	if *candidate == "" || *gestureName == "" || (*port == "") == (*input == "") {
		fmt.Fprintf(os.Stderr, "Usage: %s (-port <dev> | -input <file>) -candidate <id> -gesture <name> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return errors.New("missing required flags")
	}
	if !*verbose {
		monitoring.SetLogger(nil)
	}

	gesture, err := gestures.ParseGesture(*gestureName)
	if err != nil {
		return err
	}
	hand, err := gestures.ParseHand(*handName)
	if err != nil {
		return err
	}

	sink, closeSink, err := openSink(*dir, *format, *dbPath)
	if err != nil {
		return err
	}
	defer closeSink()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rc, err := openInput(*port, *baud, *input)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	go func() {
		// Unblock a pending read on interrupt.
		<-ctx.Done()
		_ = rc.Close()
	}()

	det, err := detector.New(nil)
	if err != nil {
		return err
	}
	reader := capture.NewReader(rc, detector.DefaultChannels)
	reader.SkipText = true

	log.Printf("Recording %s with %s for candidate %s", gesture, hand, *candidate)

	label := gestures.Recording{Candidate: *candidate, Gesture: gesture, Hand: hand}
	saved, err := record(ctx, reader, det, sink, label, *maxGestures, *verbose)
	log.Printf("Recorded %d gestures", saved)
	return err
}
