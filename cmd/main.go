package main

import (
	"dvorakwords/config"
	"dvorakwords/pkg/pipeline"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	a := kingpin.New(filepath.Base(os.Args[0]), "Lists the words which are still words once typed on a Dvorak keyboard as if it were QWERTY")
	configFile := a.Flag("configfile", "config file").Short('c').ExistingFile()
	a.HelpFlag.Short('h')

	_, err := a.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrapf(err, "Error parsing commandline arguments"))
		a.Usage(os.Args[1:])
		os.Exit(2)
	}

	cfg, err := config.GetConfig(configFile)
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}

	if err := pipeline.Run(cfg, os.Stdout); err != nil {
		cfg.Log.Error(err)
		os.Exit(1)
	}
}
