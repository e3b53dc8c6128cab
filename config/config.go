// Package config loads imemasm settings from a YAML file.
package config

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/imemasm/translate"
)

var f = translate.From

var (
	ErrConfigEmpty = translate.Message("config: no input or output file")
)

// ErrConfig locates an error in a configuration file.
type ErrConfig struct {
	Path string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("config %v: %v", err.Path, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}

// Config holds the assembler and command line settings.
type Config struct {
	Input   string `yaml:"input"`   // Assembly source file.
	Output  string `yaml:"output"`  // Instruction memory preload file.
	Listing bool   `yaml:"listing"` // Print a listing table.
	Verbose bool   `yaml:"verbose"` // Log each assembled line.

	Lenient                 bool `yaml:"lenient"`
	DecimalControlRegisters bool `yaml:"decimal_control_registers"`

	Language string `yaml:"language"` // Message language, e.g. "en-US".
}

// Default returns the settings used without a configuration file.
func Default() Config {
	return Config{
		Input:  "assembly_instructions.txt",
		Output: "instructions.txt",
	}
}

// Load reads a YAML configuration over the defaults. Unknown keys are an
// error.
func Load(input io.Reader) (cfg Config, err error) {
	cfg = Default()

	dec := yaml.NewDecoder(input)
	dec.KnownFields(true)

	err = dec.Decode(&cfg)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		return
	}

	err = cfg.Validate()
	return
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (cfg Config, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	cfg, err = Load(inf)
	if err != nil {
		err = &ErrConfig{Path: path, Err: err}
	}

	return
}

// Validate checks that the settings are usable.
func (cfg *Config) Validate() (err error) {
	if len(cfg.Input) == 0 || len(cfg.Output) == 0 {
		err = ErrConfigEmpty
	}

	return
}
