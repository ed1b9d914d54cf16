package cmd

import (
	"fmt"

	"github.com/USEPA/rsigserver-sub000/table"
)

type CmdCsvTrim struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("csvtrim",
		"Trim a CSV file by date",
		"Keep only the CSV rows whose leading timestamp falls inside the given range",
		&CmdCsvTrim{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdCsvTrim) Usage() string {
	return "input.csv output.csv from to"
}

func (cmd CmdCsvTrim) Execute(args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("Options missing, Usage: %s", cmd.Usage())
	}

	from, err := table.ParseStamp(args[2])
	if err != nil {
		return fmt.Errorf("Invalid start date: %s", err.Error())
	}
	to, err := table.ParseStamp(args[3])
	if err != nil {
		return fmt.Errorf("Invalid end date: %s", err.Error())
	}

	return table.FilterCSV(args[0], args[1], from, to)
}
