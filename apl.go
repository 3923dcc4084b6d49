// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main // import "robpike.io/apl"

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"robpike.io/apl/config"
	"robpike.io/apl/demo"
	"robpike.io/apl/run"
)

var (
	execute    = flag.Bool("e", false, "execute arguments as a single expression")
	configFile = flag.String("config", "", "read settings from YAML `file`")
	demoFlag   = flag.Bool("demo", false, "run the demo")
	debugFlag  = flag.String("debug", "", "comma-separated `names` of debug settings to enable")
	floatPrec  = flag.Uint("floatprec", 0, "mantissa `bits` for power and exponential")
	prompt     = flag.String("prompt", "", "command `prompt`")
)

var (
	conf  config.Config
	isTTY = func(uintptr) bool { return false }
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("apl: ")

	flag.Usage = usage
	flag.Parse()

	if *configFile != "" {
		if err := conf.Load(*configFile); err != nil {
			log.Fatal(err)
		}
	}
	setFlags()

	if *demoFlag {
		if err := demo.Run(os.Stdin, evaluator{&conf, "demo"}, conf.Output()); err != nil {
			log.Fatal(err)
		}
		return
	}

	if *execute {
		if !run.Run(&conf, "<args>", strings.NewReader(strings.Join(flag.Args(), " ")), false) {
			os.Exit(1)
		}
		return
	}

	if flag.NArg() > 0 {
		ok := true
		for _, name := range flag.Args() {
			f, err := os.Open(name)
			if err != nil {
				log.Fatal(err)
			}
			ok = run.Run(&conf, name, f, false) && ok
			f.Close()
		}
		if !ok {
			os.Exit(1)
		}
		return
	}

	interactive := isTTY(os.Stdin.Fd())
	if !run.Run(&conf, "<stdin>", os.Stdin, interactive) && !interactive {
		os.Exit(1)
	}
}

// setFlags applies the command-line settings, which override
// those from a configuration file.
func setFlags() {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "prompt":
			conf.SetPrompt(*prompt)
		case "floatprec":
			if *floatPrec < config.MinFloatPrec || config.MaxFloatPrec < *floatPrec {
				log.Fatalf("floatprec %d out of range [%d, %d]", *floatPrec, config.MinFloatPrec, config.MaxFloatPrec)
			}
			conf.SetFloatPrec(*floatPrec)
		}
	})
	if *debugFlag == "" {
		return
	}
	for _, name := range strings.Split(*debugFlag, ",") {
		if !conf.SetDebug(name, true) {
			log.Fatalf("unknown debug flag %q; known flags are %s", name, strings.Join(config.DebugFlags, ", "))
		}
	}
}

// evaluator is an io.Writer that evaluates each line written to it.
type evaluator struct {
	conf *config.Config
	name string
}

func (e evaluator) Write(line []byte) (int, error) {
	run.Line(e.conf, e.name, string(line))
	return len(line), nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: apl [options] [file ...]\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	os.Exit(2)
}
