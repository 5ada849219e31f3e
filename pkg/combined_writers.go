package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// FanoutWriter duplicates every Write to all underlying writers.
// A failing writer does not stop the others.
type FanoutWriter struct {
	writers []io.Writer
}

func NewFanoutWriter(writers ...io.Writer) *FanoutWriter {
	return &FanoutWriter{writers: writers}
}

func (fw *FanoutWriter) Write(p []byte) (n int, err error) {
	for _, w := range fw.writers {
		written, werr := w.Write(p)
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		n += written
	}
	return n, err
}
