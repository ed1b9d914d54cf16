package cmd

import (
	"fmt"
	"strconv"
)

type CmdUpstream struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("upstream",
		"Flag upstream reaches",
		"Walk a flow network against the flow direction and write the matching attribute rows",
		&CmdUpstream{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdUpstream) Usage() string {
	return "input.shp node"
}

func (cmd CmdUpstream) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("Options missing, Usage: %s", cmd.Usage())
	}

	node, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("Invalid node id: %s", args[1])
	}

	subsetter, err := cmd.global.OpenSubsetter()
	if err != nil {
		return err
	}
	return subsetter.Upstream(args[0], node)
}
