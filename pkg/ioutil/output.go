package ioutil

import (
	"io"
	"os"
)

// ToStdOutOrFile returns a writer for path, or stdout when path is empty.
// Closing the stdout writer is a no-op.
func ToStdOutOrFile(path string, perm os.FileMode) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
