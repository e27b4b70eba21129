// SPDX-License-Identifier: MIT

package source

import (
	"io"
	"sync/atomic"
)

// pipeWriter feeds a background upload; Close waits for its result.
type pipeWriter struct {
	pw       *io.PipeWriter
	done     chan error
	finished atomic.Bool
}

// startUpload runs upload over the read end of a fresh pipe.
func startUpload(upload func(r io.Reader) error) *pipeWriter {
	pr, pw := io.Pipe()
	w := &pipeWriter{pw: pw, done: make(chan error, 1)}
	go func() {
		err := upload(pr)
		_ = pr.CloseWithError(err)
		w.done <- err
	}()

	return w
}

func (w *pipeWriter) Write(p []byte) (int, error) {
	return w.pw.Write(p)
}

func (w *pipeWriter) Close() error {
	if !w.finished.CompareAndSwap(false, true) {
		return errAlreadyClosed
	}
	if err := w.pw.Close(); err != nil {
		return err
	}

	return <-w.done
}
