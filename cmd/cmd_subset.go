package cmd

import (
	"fmt"

	"github.com/cheggaaa/pb"
)

type CmdSubset struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("subset",
		"Subset datasets",
		"Clip, simplify and re-encode input shapefiles using a given configuration",
		&CmdSubset{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdSubset) Usage() string {
	return "input.shp [input.shp ...]"
}

func (cmd CmdSubset) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("No input files specified, Usage: %s", cmd.Usage())
	}

	subsetter, err := cmd.global.OpenSubsetter()
	if err != nil {
		return err
	}

	bar := pb.StartNew(len(args))
	for _, input := range args {
		err = subsetter.Run(input)
		if err != nil {
			return fmt.Errorf("Failed to subset %s: %s", input, err.Error())
		}
		bar.Increment()
	}
	bar.Finish()
	return nil
}
