//go:build darwin

package platform

import (
	"golang.org/x/sys/unix"
)

// Copy tries clonefile first for a CoW copy, then falls back to read/write
// on macOS.
func Copy(params Params) (Result, error) {
	err := unix.Clonefile(params.SrcPath, params.Dst.Name(), 0)
	if err == nil {
		return Result{BytesWritten: params.SrcSize, Method: Clonefile}, nil
	}
	if !isFallbackCloneErr(err) {
		return Result{}, err
	}

	preallocate(params.Dst, params.SrcSize)
	return copyReadWrite(params)
}

func isFallbackCloneErr(err error) bool {
	switch err {
	case unix.ENOTSUP, unix.EXDEV, unix.EEXIST:
		return true
	}
	return false
}
