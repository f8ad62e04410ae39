// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/upin/board"
)

func main() {
	var stimulus string
	var numPins int
	var maxTicks int
	var verbose bool

	flag.StringVar(&stimulus, "s", "-", "Stimulus input")
	flag.IntVar(&numPins, "n", board.NUM_PINS, "Pin slots per port")
	flag.IntVar(&maxTicks, "t", 0, "Maximum ticks to run (0 for no limit)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	input := os.Stdin
	if stimulus != "-" {
		inf, err := os.Open(stimulus)
		if err != nil {
			log.Fatalf("%v: %v", stimulus, err)
		}
		defer inf.Close()
		input = inf
	}

	script, err := board.ParseScript(input)
	if err != nil {
		log.Fatalf("%v: %v", stimulus, err)
	}
	script.MaxTicks = maxTicks

	brd, err := board.NewBoardAlloc(numPins, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer brd.Close()

	brd.Verbose = verbose

	err = script.Run(brd, func(brd *board.Board) {
		log.Printf("tick %d: keys:%03b leds:%02b display:%c",
			brd.Ticks(), brd.Keys(), brd.Leds(), brd.Display().Rune())
	})
	if err != nil {
		log.Fatal(err)
	}
}
