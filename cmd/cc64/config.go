/*
File    : cc64/cmd/cc64/config.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/akashmaji946/cc64/codegen"
)

// FileConfig is the shape of the optional -config YAML file: calling
// convention extensions to System V AMD64 plus driver verbosity. The
// source argument is always required regardless of whether -config
// was passed.
type FileConfig struct {
	// Registers overrides the ordered list of integer registers used
	// to pass call arguments. Empty means "use the System V default".
	Registers []string `yaml:"registers"`
	// FrameAlign overrides the byte boundary stack frames are padded
	// to. Zero means "use the default of 16".
	FrameAlign int `yaml:"frame_align"`
	// Verbose, when true, makes file mode print a cyan confirmation
	// line naming the linked output to stderr after a successful
	// -assemble; without -assemble it has no effect.
	Verbose bool `yaml:"verbose"`
}

// loadConfig reads and parses a YAML config file at path.
func loadConfig(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, err
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FileConfig{}, err
	}
	return cfg, nil
}

// codegenConfig projects the parts of FileConfig that the code
// generator itself understands.
func (c FileConfig) codegenConfig() codegen.Config {
	return codegen.Config{Registers: c.Registers, FrameAlign: c.FrameAlign}
}
