package scratch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bamsammich/scratch/internal/platform"
)

// Handle owns one open temporary file and the path it was created under.
// A Handle belongs to a single goroutine; it is not safe for concurrent
// use and must be closed exactly once.
type Handle struct {
	file   *os.File
	name   string
	path   string
	logger *slog.Logger
	stats  *Collector
	closed bool
}

// File returns the open descriptor. It remains owned by the handle; do not
// close it directly.
func (h *Handle) File() *os.File { return h.file }

// Name returns the suffix the file was created with, not the full
// assembled filename.
func (h *Handle) Name() string { return h.name }

// Path returns the path the file was created under, relative to the
// working directory unless Options.Dir was set.
func (h *Handle) Path() string { return h.path }

// Close releases the descriptor and then deletes the file. The descriptor
// is released even when deletion fails; deletion never happens on a
// still-open descriptor. A second Close returns os.ErrClosed and touches
// nothing.
func (h *Handle) Close() error {
	if h.closed {
		return os.ErrClosed
	}
	h.closed = true

	closeErr := h.file.Close()
	if err := os.Remove(h.path); err != nil {
		return fmt.Errorf("remove %s: %w", h.path, err)
	}
	if h.stats != nil {
		h.stats.filesRemoved.Add(1)
	}
	return closeErr
}

// CopyOptions controls Promote.
type CopyOptions struct {
	// Overwrite replaces an existing destination. When false the copy
	// fails if the destination already exists.
	Overwrite bool

	// Verify re-reads both files after the copy and fails on a BLAKE3
	// digest mismatch.
	Verify bool
}

// Promote copies the temp file's current contents to dst, resolved against
// the working directory unless dst is absolute. The temp file is untouched
// and must still be closed. An empty dst fails with ErrEmptyDestination.
func (h *Handle) Promote(dst string, opts CopyOptions) error {
	if dst == "" {
		return ErrEmptyDestination
	}

	src, err := filepath.Abs(h.path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", h.path, err)
	}
	src, err = filepath.EvalSymlinks(src)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", h.path, err)
	}

	dstAbs := dst
	if !filepath.IsAbs(dst) {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolve working directory: %w", err)
		}
		wd, err = filepath.EvalSymlinks(wd)
		if err != nil {
			return fmt.Errorf("resolve working directory: %w", err)
		}
		dstAbs = filepath.Join(wd, dst)
	}

	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}

	flags := os.O_WRONLY | os.O_CREATE
	if opts.Overwrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_EXCL
	}
	out, err := os.OpenFile(dstAbs, flags, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create %s: %w", dstAbs, err)
	}

	result, copyErr := platform.Copy(platform.Params{
		Dst:     out,
		SrcPath: src,
		SrcSize: info.Size(),
	})
	if err := out.Close(); copyErr == nil {
		copyErr = err
	}
	if copyErr != nil {
		if !opts.Overwrite {
			// We created the destination; don't leave a partial file.
			_ = os.Remove(dstAbs)
		}
		return fmt.Errorf("copy %s to %s: %w", src, dstAbs, copyErr)
	}

	if opts.Verify {
		if err := verifyCopy(src, dstAbs); err != nil {
			return err
		}
	}

	if h.logger != nil {
		h.logger.Debug("promoted temp file",
			"src", h.path,
			"dst", dstAbs,
			"method", result.Method.String(),
			"bytes", result.BytesWritten,
		)
	}
	if h.stats != nil {
		h.stats.filesPromoted.Add(1)
		h.stats.bytesPromoted.Add(result.BytesWritten)
	}
	return nil
}

func verifyCopy(src, dst string) error {
	srcHash, err := HashFile(src)
	if err != nil {
		return err
	}
	dstHash, err := HashFile(dst)
	if err != nil {
		return err
	}
	if srcHash != dstHash {
		return fmt.Errorf("verify %s: digest mismatch (src %s, dst %s)", dst, srcHash, dstHash)
	}
	return nil
}
