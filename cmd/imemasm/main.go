// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/tebeka/atexit"

	"github.com/ezrec/imemasm/asm"
	"github.com/ezrec/imemasm/config"
	"github.com/ezrec/imemasm/imem"
	"github.com/ezrec/imemasm/translate"
)

// run assembles cfg.Input and writes the preload image to cfg.Output.
func run(cfg config.Config, stdout io.Writer) (err error) {
	assembler := &asm.Assembler{
		Verbose:                 cfg.Verbose,
		Lenient:                 cfg.Lenient,
		DecimalControlRegisters: cfg.DecimalControlRegisters,
	}

	inf, err := imem.DirFS(filepath.Dir(cfg.Input)).Open(filepath.Base(cfg.Input))
	if err != nil {
		return
	}
	defer inf.Close()

	prog, err := assembler.Parse(inf)
	if err != nil {
		return
	}

	if cfg.Listing {
		prog.Listing(stdout)
	}

	img, err := prog.Image()
	if err != nil {
		return
	}

	err = imem.Save(imem.DirFS(filepath.Dir(cfg.Output)), filepath.Base(cfg.Output), &img)
	if err != nil {
		return
	}

	if cfg.Verbose {
		log.Printf("%v: %d instructions, %d words\n", cfg.Output, len(prog.Opcodes), imem.DEPTH)
	}

	return
}

func main() {
	var configFile string
	cfg := config.Default()

	flag.StringVar(&configFile, "config", "", "YAML configuration file")
	flag.StringVar(&cfg.Input, "i", cfg.Input, "Assembly source file")
	flag.StringVar(&cfg.Output, "o", cfg.Output, "Instruction memory preload file")
	flag.BoolVar(&cfg.Listing, "l", false, "Print a listing table")
	flag.BoolVar(&cfg.Verbose, "v", false, "Verbose mode")
	flag.BoolVar(&cfg.Lenient, "lenient", false, "Let out of range operands overflow their fields")
	flag.BoolVar(&cfg.DecimalControlRegisters, "decimal", false, "Decode beq rs2 and jmp rs registers as decimal")

	flag.Parse()

	if flag.NArg() != 0 {
		atexit.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(configFile) != 0 {
		file_cfg, err := config.LoadFile(configFile)
		if err != nil {
			atexit.Fatalf("%v: %v", os.Args[0], err)
		}

		// Flags given on the command line override the file.
		flag.Visit(func(fl *flag.Flag) {
			switch fl.Name {
			case "i":
				file_cfg.Input = cfg.Input
			case "o":
				file_cfg.Output = cfg.Output
			case "l":
				file_cfg.Listing = cfg.Listing
			case "v":
				file_cfg.Verbose = cfg.Verbose
			case "lenient":
				file_cfg.Lenient = cfg.Lenient
			case "decimal":
				file_cfg.DecimalControlRegisters = cfg.DecimalControlRegisters
			}
		})
		cfg = file_cfg
	}

	if len(cfg.Language) != 0 {
		translate.Use(cfg.Language)
	}

	err := cfg.Validate()
	if err != nil {
		atexit.Fatalf("%v: %v", os.Args[0], err)
	}

	err = run(cfg, os.Stdout)
	if err != nil {
		atexit.Fatalf("%v: %v", cfg.Input, err)
	}

	atexit.Exit(0)
}
