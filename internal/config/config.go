// Package config resolves the envplus CLI settings from its four sources:
// built-in defaults, an optional YAML profile file, ENVPLUS_* environment
// overrides, and command-line flags, in increasing order of precedence.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	yaml "gopkg.in/yaml.v3"
)

// Defaults mirrored from the library.
const (
	DefaultFile      = "./.env_plus"
	DefaultComment   = "//"
	DefaultDelimiter = "="
)

// Config is the fully merged set of load options handed to the library.
type Config struct {
	File      string
	Comment   string
	Delimiter string
	Overwrite bool
}

// FileConfig is the YAML profile schema (.envplus.yaml). Absent fields leave
// the lower-precedence value in place; Overwrite is a pointer so that an
// explicit "overwrite: false" is distinguishable from the field being absent.
type FileConfig struct {
	File      string `yaml:"file"`
	Comment   string `yaml:"comment"`
	Delimiter string `yaml:"delimiter"`
	Overwrite *bool  `yaml:"overwrite"`
}

// LoadProfile reads a YAML profile file into FileConfig.
func LoadProfile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse profile: %w", err)
	}
	return fc, nil
}

// FindDefaultProfilePath returns the conventional profile file in the working
// directory when one exists, otherwise an empty string.
func FindDefaultProfilePath() string {
	for _, name := range []string{".envplus.yaml", ".envplus.yml"} {
		if st, err := os.Stat(name); err == nil && !st.IsDir() {
			return name
		}
	}
	return ""
}

// EnvOverrides carries the ENVPLUS_* variables read from the process
// environment. Field names map to keys via the "envplus" prefix; no envconfig
// alt tags, so the unprefixed names are never consulted.
type EnvOverrides struct {
	File      string
	Comment   string
	Delimiter string
	Overwrite *bool
}

// ReadEnvOverrides collects ENVPLUS_FILE, ENVPLUS_COMMENT, ENVPLUS_DELIMITER
// and ENVPLUS_OVERWRITE from the environment.
func ReadEnvOverrides() (EnvOverrides, error) {
	var ev EnvOverrides
	if err := envconfig.Process("envplus", &ev); err != nil {
		return ev, fmt.Errorf("read env overrides: %w", err)
	}
	return ev, nil
}

// Merge resolves the final configuration. Only flags the user actually passed
// take part, hence the explicit flagsSet markers keyed by flag name; a flag
// left at its default does not mask an env or profile value.
func Merge(flags Config, flagsSet map[string]bool, ev EnvOverrides, fc FileConfig) Config {
	out := Config{
		File:      DefaultFile,
		Comment:   DefaultComment,
		Delimiter: DefaultDelimiter,
	}

	if fc.File != "" {
		out.File = fc.File
	}
	if fc.Comment != "" {
		out.Comment = fc.Comment
	}
	if fc.Delimiter != "" {
		out.Delimiter = fc.Delimiter
	}
	if fc.Overwrite != nil {
		out.Overwrite = *fc.Overwrite
	}

	if ev.File != "" {
		out.File = ev.File
	}
	if ev.Comment != "" {
		out.Comment = ev.Comment
	}
	if ev.Delimiter != "" {
		out.Delimiter = ev.Delimiter
	}
	if ev.Overwrite != nil {
		out.Overwrite = *ev.Overwrite
	}

	if flagsSet["file"] {
		out.File = flags.File
	}
	if flagsSet["comment"] {
		out.Comment = flags.Comment
	}
	if flagsSet["delimiter"] {
		out.Delimiter = flags.Delimiter
	}
	if flagsSet["overwrite"] {
		out.Overwrite = flags.Overwrite
	}
	return out
}
