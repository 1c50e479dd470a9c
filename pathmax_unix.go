//go:build unix

package scratch

import "golang.org/x/sys/unix"

// maxPathLen bounds assembled absolute paths, including the trailing NUL
// the kernel accounts for.
const maxPathLen = unix.PathMax
