// Package scratch creates uniquely-named temporary files with explicit
// lifecycle semantics: a Handle owns the open file from creation until
// Close deletes it, and Promote copies its contents out to a permanent
// destination without consuming the handle.
//
// Filenames combine a collision-resistant fragment (millisecond timestamp
// suffix plus a process-wide wrapping counter), a caller prefix, and a
// caller suffix, in that order. Files are created in the current working
// directory unless Options.Dir says otherwise.
package scratch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bamsammich/scratch/internal/namegen"
)

// fragmentDigits is how many trailing digits of the millisecond timestamp
// the default fragment keeps.
const fragmentDigits = 5

// Options configures Create. The zero value is usable: a random fragment,
// no prefix or suffix, read/write exclusive creation in the working
// directory.
type Options struct {
	// Suffix is appended last in the filename, typically an extension or
	// descriptive name. It is what Handle.Name reports.
	Suffix string

	// Prefix sits between the random fragment and Suffix.
	Prefix string

	// NoRandomFragment skips the generated fragment entirely, leaving
	// Prefix+Suffix as the whole filename.
	NoRandomFragment bool

	// Flags are os.OpenFile flag bits forwarded verbatim to creation
	// (O_CREATE is always added). Zero means os.O_RDWR|os.O_EXCL;
	// truncate/append semantics are the caller's choice.
	Flags int

	// Perm is the mode for the new file. Zero means 0o600.
	Perm os.FileMode

	// Dir is the directory to create the file in. Empty means the current
	// working directory, recorded as a "./" relative path.
	Dir string

	// FragmentFunc overrides the fragment source, e.g. UUIDFragment.
	FragmentFunc func() string

	// Generator supplies fragments when FragmentFunc is nil. Nil means the
	// process-wide shared generator.
	Generator *namegen.Generator

	// Logger, when set, receives a debug record per successful Promote.
	// The library is otherwise silent.
	Logger *slog.Logger

	// Stats, when set, counts created/removed/promoted files.
	Stats *Collector
}

// Create makes a new temporary file and returns a Handle owning its open
// descriptor. The filename is fragment+Prefix+Suffix; the assembled
// absolute path must stay under the platform path-length bound or Create
// fails with ErrPathOverflow before touching the filesystem.
func Create(opts Options) (*Handle, error) {
	var frag string
	if !opts.NoRandomFragment {
		switch {
		case opts.FragmentFunc != nil:
			frag = opts.FragmentFunc()
		case opts.Generator != nil:
			frag = opts.Generator.Fragment(fragmentDigits)
		default:
			frag = namegen.Default.Fragment(fragmentDigits)
		}
	}

	filename := frag + opts.Prefix + opts.Suffix
	if filename == "" {
		return nil, fmt.Errorf("create temp file: %w", os.ErrInvalid)
	}

	// The length check runs against the absolute form since that is what
	// the kernel resolves; the handle records the form used for creation.
	var recorded string
	if opts.Dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		if len(filepath.Join(wd, filename)) >= maxPathLen {
			return nil, ErrPathOverflow
		}
		recorded = "./" + filename
	} else {
		abs, err := filepath.Abs(filepath.Join(opts.Dir, filename))
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", opts.Dir, err)
		}
		if len(abs) >= maxPathLen {
			return nil, ErrPathOverflow
		}
		recorded = filepath.Join(opts.Dir, filename)
	}

	flags := opts.Flags
	if flags == 0 {
		flags = os.O_RDWR | os.O_EXCL
	}
	perm := opts.Perm
	if perm == 0 {
		perm = 0o600
	}

	f, err := os.OpenFile(recorded, flags|os.O_CREATE, perm)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", recorded, err)
	}

	if opts.Stats != nil {
		opts.Stats.filesCreated.Add(1)
	}

	return &Handle{
		file:   f,
		name:   opts.Suffix,
		path:   recorded,
		logger: opts.Logger,
		stats:  opts.Stats,
	}, nil
}
