package scratch

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Defaults holds optional creation defaults loaded from a TOML file. Only
// fields present in the file are set; everything else stays nil.
type Defaults struct {
	Prefix         *string `toml:"prefix"`
	Suffix         *string `toml:"suffix"`
	RandomFragment *bool   `toml:"random_fragment"`
	Dir            *string `toml:"dir"`
}

// LoadDefaults reads a TOML defaults file. A missing file yields zero
// Defaults and no error; defaults are always optional.
func LoadDefaults(path string) (Defaults, error) {
	var d Defaults
	_, err := toml.DecodeFile(path, &d)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults{}, nil
		}
		return Defaults{}, fmt.Errorf("load defaults %s: %w", path, err)
	}
	return d, nil
}

// Apply overlays the loaded defaults onto opts, returning the result.
// Fields already set in opts win over the file.
func (d Defaults) Apply(opts Options) Options {
	if opts.Prefix == "" && d.Prefix != nil {
		opts.Prefix = *d.Prefix
	}
	if opts.Suffix == "" && d.Suffix != nil {
		opts.Suffix = *d.Suffix
	}
	if !opts.NoRandomFragment && d.RandomFragment != nil {
		opts.NoRandomFragment = !*d.RandomFragment
	}
	if opts.Dir == "" && d.Dir != nil {
		opts.Dir = *d.Dir
	}
	return opts
}
