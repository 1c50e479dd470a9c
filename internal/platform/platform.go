// Package platform selects the most efficient whole-file copy primitive the
// running OS offers, falling back to plain read/write when a syscall is
// unsupported or the files cross devices.
package platform

import "os"

// Method identifies which syscall/strategy performed a copy.
type Method int

const (
	ReadWrite     Method = iota
	CopyFileRange        // Linux copy_file_range(2)
	Sendfile             // Linux sendfile(2)
	Clonefile            // macOS clonefile(2)
)

func (m Method) String() string {
	switch m {
	case ReadWrite:
		return "read_write"
	case CopyFileRange:
		return "copy_file_range"
	case Sendfile:
		return "sendfile"
	case Clonefile:
		return "clonefile"
	default:
		return "unknown"
	}
}

// Result reports the outcome of a copy.
type Result struct {
	BytesWritten int64
	Method       Method
}

// Params describes a whole-file copy from SrcPath into the already-open Dst.
type Params struct {
	Dst     *os.File
	SrcPath string
	SrcSize int64
}
