//go:build !linux && !darwin

package platform

import (
	"io"
	"os"
)

// Copy falls back to a buffered io.Copy on platforms without a faster
// primitive.
func Copy(params Params) (Result, error) {
	src, err := os.Open(params.SrcPath)
	if err != nil {
		return Result{}, err
	}
	defer src.Close()

	n, err := io.Copy(params.Dst, src)
	return Result{BytesWritten: n, Method: ReadWrite}, err
}

// CopyReadWrite is the same as Copy here; exported for test parity with the
// Linux and macOS builds.
func CopyReadWrite(params Params) (Result, error) {
	return Copy(params)
}
