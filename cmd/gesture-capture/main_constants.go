package main

// Default command-line flag values
const (
	defaultHand   = "right_hand"
	defaultFormat = "jsonl"
)
