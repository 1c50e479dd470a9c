package scratch_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bamsammich/scratch"
)

func TestCreate_Defaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	h, err := scratch.Create(scratch.Options{Suffix: "data.json", Dir: dir})
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })

	assert.Equal(t, "data.json", h.Name())
	assert.True(t, strings.HasSuffix(h.Path(), "data.json"))

	info, err := os.Stat(h.Path())
	require.NoError(t, err)
	assert.Zero(t, info.Size())
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// Default flags are read/write.
	_, err = h.File().WriteString("hello")
	require.NoError(t, err)
}

func TestCreate_FragmentPattern(t *testing.T) {
	chdir(t, t.TempDir())

	h, err := scratch.Create(scratch.Options{Suffix: "data.json"})
	require.NoError(t, err)

	require.Regexp(t, regexp.MustCompile(`^\./\d{5}-\d+data\.json$`), h.Path())

	_, err = os.Stat(h.Path())
	require.NoError(t, err)

	require.NoError(t, h.Close())
	_, err = os.Stat(h.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestCreate_NoFragmentExactPath(t *testing.T) {
	chdir(t, t.TempDir())

	h, err := scratch.Create(scratch.Options{
		Prefix:           "myapp_",
		Suffix:           "cache.tmp",
		NoRandomFragment: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })

	assert.Equal(t, "./myapp_cache.tmp", h.Path())
}

func TestCreate_FragmentOrder(t *testing.T) {
	t.Parallel()

	h, err := scratch.Create(scratch.Options{
		Prefix: "mid_",
		Suffix: "end.log",
		Dir:    t.TempDir(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })

	base := filepath.Base(h.Path())
	require.Regexp(t, regexp.MustCompile(`^\d{5}-\d+mid_end\.log$`), base)
}

func TestCreate_PathOverflow(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := scratch.Create(scratch.Options{
		Suffix: strings.Repeat("a", 8192),
		Dir:    dir,
	})
	require.ErrorIs(t, err, scratch.ErrPathOverflow)

	// Nothing was created.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCreate_EmptyName(t *testing.T) {
	t.Parallel()

	_, err := scratch.Create(scratch.Options{NoRandomFragment: true, Dir: t.TempDir()})
	require.ErrorIs(t, err, os.ErrInvalid)
}

func TestCreate_ExclusiveByDefault(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	opts := scratch.Options{Suffix: "same.tmp", NoRandomFragment: true, Dir: dir}

	h, err := scratch.Create(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })

	_, err = scratch.Create(opts)
	require.ErrorIs(t, err, os.ErrExist)
}

func TestCreate_CallerFlags(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	existing := filepath.Join(dir, "keep.tmp")
	require.NoError(t, os.WriteFile(existing, []byte("old contents"), 0o600))

	// Truncate semantics are the caller's choice via Flags.
	h, err := scratch.Create(scratch.Options{
		Suffix:           "keep.tmp",
		NoRandomFragment: true,
		Dir:              dir,
		Flags:            os.O_RDWR | os.O_TRUNC,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })

	info, err := os.Stat(existing)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestCreate_ConcurrentDistinctPaths(t *testing.T) {
	t.Parallel()

	const n = 32

	dir := t.TempDir()
	paths := make([]string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			h, err := scratch.Create(scratch.Options{Suffix: ".tmp", Dir: dir})
			if err != nil {
				t.Error(err)
				return
			}
			paths[i] = h.Path()
			_ = h.Close()
		}()
	}
	wg.Wait()

	seen := make(map[string]struct{}, n)
	for _, p := range paths {
		require.NotEmpty(t, p)
		_, dup := seen[p]
		assert.False(t, dup, "duplicate path %q", p)
		seen[p] = struct{}{}
	}
}

func TestClose_DeletesAndReleases(t *testing.T) {
	t.Parallel()

	h, err := scratch.Create(scratch.Options{Suffix: ".tmp", Dir: t.TempDir()})
	require.NoError(t, err)

	path := h.Path()
	f := h.File()

	require.NoError(t, h.Close())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	_, err = f.WriteString("nope")
	require.Error(t, err)
}

func TestClose_Twice(t *testing.T) {
	t.Parallel()

	h, err := scratch.Create(scratch.Options{Suffix: ".tmp", Dir: t.TempDir()})
	require.NoError(t, err)

	require.NoError(t, h.Close())
	require.ErrorIs(t, h.Close(), os.ErrClosed)
}

func TestClose_FileRemovedExternally(t *testing.T) {
	t.Parallel()

	h, err := scratch.Create(scratch.Options{Suffix: ".tmp", Dir: t.TempDir()})
	require.NoError(t, err)

	require.NoError(t, os.Remove(h.Path()))

	// Deletion failure is surfaced, but the descriptor is gone regardless.
	err = h.Close()
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = h.File().WriteString("nope")
	require.Error(t, err)
}

func TestStats_CountsLifecycle(t *testing.T) {
	t.Parallel()

	var c scratch.Collector
	h, err := scratch.Create(scratch.Options{Suffix: ".tmp", Dir: t.TempDir(), Stats: &c})
	require.NoError(t, err)
	require.NoError(t, h.Close())

	snap := c.Snapshot()
	assert.Equal(t, int64(1), snap.FilesCreated)
	assert.Equal(t, int64(1), snap.FilesRemoved)
	assert.Equal(t, int64(0), snap.FilesPromoted)
}
