package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/USEPA/rsigserver-sub000/subset"
)

type GlobalOptions struct {
	Config string `short:"c" long:"config" description:"Dataset configuration file (required)"`
	Output string `short:"o" long:"output" description:"Output folder" default:"out"`
}

var globalOpts = GlobalOptions{}
var parser = flags.NewParser(&globalOpts, flags.HelpFlag|flags.PassDoubleDash)

func Run() error {
	_, err := parser.Parse()
	if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
		parser.WriteHelp(os.Stdout)
		return nil
	}
	return err
}

func (g *GlobalOptions) OpenSubsetter() (*subset.Subsetter, error) {
	if g.Config == "" {
		return nil, errors.New("No configuration specified")
	}

	config, err := subset.LoadConfig(g.Config)
	if err != nil {
		return nil, fmt.Errorf("Failed to load configuration: %s", err.Error())
	}
	return subset.NewSubsetter(config, g.Output), nil
}
