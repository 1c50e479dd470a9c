//go:build linux || darwin

package platform

import (
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

const bufferSize = 1 << 20 // 1 MiB

var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, bufferSize)
		return &b
	},
}

// copyReadWrite copies data using pread/pwrite with a pooled buffer.
func copyReadWrite(params Params) (Result, error) {
	src, err := os.Open(params.SrcPath)
	if err != nil {
		return Result{}, err
	}
	defer src.Close()

	bufp := bufPool.Get().(*[]byte)
	defer bufPool.Put(bufp)
	buf := *bufp

	srcFd := int(src.Fd())
	dstFd := int(params.Dst.Fd())

	var offset int64
	for offset < params.SrcSize {
		toRead := params.SrcSize - offset
		if toRead > bufferSize {
			toRead = bufferSize
		}

		n, err := unix.Pread(srcFd, buf[:toRead], offset)
		if err != nil {
			return Result{BytesWritten: offset, Method: ReadWrite}, err
		}
		if n == 0 {
			break
		}

		written := 0
		for written < n {
			w, err := unix.Pwrite(dstFd, buf[written:n], offset+int64(written))
			if err != nil {
				return Result{BytesWritten: offset + int64(written), Method: ReadWrite}, err
			}
			written += w
		}

		offset += int64(n)
	}

	return Result{BytesWritten: offset, Method: ReadWrite}, nil
}

// CopyReadWrite exposes the plain fallback so tests can exercise it directly.
func CopyReadWrite(params Params) (Result, error) {
	return copyReadWrite(params)
}
