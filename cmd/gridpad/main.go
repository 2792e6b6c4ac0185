package main

import (
	"os"

	"github.com/jessevdk/go-flags"
)

type Options struct {
	Setup SetupCommand `command:"setup" description:"Create the config file and seed a position grid"`
	Run   RunCommand   `command:"run" description:"Start the interactive pad"`
	Info  InfoCommand  `command:"info" description:"Show the axis values and selection in the dataset"`
}

var opts Options
var parser = flags.NewParser(&opts, flags.Default)

func main() {
	parser.LongDescription = "Gridpad - directional pad navigation over a dataset position grid"

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
		}
		os.Exit(1)
	}
}
