package cmd

import (
	"fmt"
	"os"
	"path"
	"strconv"

	"github.com/USEPA/rsigserver-sub000/shp"
)

type CmdGrid struct {
	global *GlobalOptions

	WKT bool `long:"wkt" description:"Write the projection sidecar as OGC WKT"`
}

func init() {
	_, err := parser.AddCommand("grid",
		"Write a grid shapefile",
		"Emit one polygon per cell of a regular grid",
		&CmdGrid{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdGrid) Usage() string {
	return "west south cellsize cols rows name"
}

func (cmd CmdGrid) Execute(args []string) error {
	if len(args) != 6 {
		return fmt.Errorf("Options missing, Usage: %s", cmd.Usage())
	}

	west, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("Invalid west edge: %s", args[0])
	}
	south, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("Invalid south edge: %s", args[1])
	}
	cellSize, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("Invalid cell size: %s", args[2])
	}
	cols, err := strconv.Atoi(args[3])
	if err != nil {
		return fmt.Errorf("Invalid column count: %s", args[3])
	}
	rows, err := strconv.Atoi(args[4])
	if err != nil {
		return fmt.Errorf("Invalid row count: %s", args[4])
	}

	err = os.MkdirAll(cmd.global.Output, 0755)
	if err != nil {
		return err
	}

	base := path.Join(cmd.global.Output, args[5])
	err = shp.WriteGrid(base, west, south, cellSize, cols, rows, nil)
	if err != nil {
		return err
	}
	return shp.WritePrj(base, nil, cmd.WKT)
}
