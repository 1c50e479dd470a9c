//go:build linux

package platform

import (
	"os"

	"golang.org/x/sys/unix"
)

// Copy tries the most efficient copy method available on Linux, falling
// through on unsupported/cross-device errors.
func Copy(params Params) (Result, error) {
	preallocate(params.Dst, params.SrcSize)

	result, err := copyFileRange(params)
	if err == nil {
		return result, nil
	}
	if !isFallbackErr(err) {
		return result, err
	}

	result, err = copySendfile(params)
	if err == nil {
		return result, nil
	}
	if !isFallbackErr(err) {
		return result, err
	}

	return copyReadWrite(params)
}

func copyFileRange(params Params) (Result, error) {
	src, err := os.Open(params.SrcPath)
	if err != nil {
		return Result{}, err
	}
	defer src.Close()

	var (
		written int64
		roff    int64
		woff    int64
	)
	for written < params.SrcSize {
		n, err := unix.CopyFileRange(int(src.Fd()), &roff, int(params.Dst.Fd()), &woff, int(params.SrcSize-written), 0)
		if err != nil {
			if written == 0 {
				return Result{}, err
			}
			return Result{BytesWritten: written, Method: CopyFileRange}, err
		}
		if n == 0 {
			break
		}
		written += int64(n)
	}

	return Result{BytesWritten: written, Method: CopyFileRange}, nil
}

func copySendfile(params Params) (Result, error) {
	src, err := os.Open(params.SrcPath)
	if err != nil {
		return Result{}, err
	}
	defer src.Close()

	var (
		written int64
		offset  int64
	)
	for written < params.SrcSize {
		n, err := unix.Sendfile(int(params.Dst.Fd()), int(src.Fd()), &offset, int(params.SrcSize-written))
		if err != nil {
			if written == 0 {
				return Result{}, err
			}
			return Result{BytesWritten: written, Method: Sendfile}, err
		}
		if n == 0 {
			break
		}
		written += int64(n)
	}

	return Result{BytesWritten: written, Method: Sendfile}, nil
}

// isFallbackErr reports whether err should trigger the next copy strategy.
func isFallbackErr(err error) bool {
	switch err {
	case unix.ENOSYS, unix.EXDEV, unix.EINVAL, unix.ENOTSUP:
		return true
	}
	if e, ok := err.(*os.PathError); ok {
		return isFallbackErr(e.Err)
	}
	return false
}
