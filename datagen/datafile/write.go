package datafile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
)

var ErrFileWrite = errors.New("file write failed")

// WriteError records a failed operation on the output file.
type WriteError struct {
	Op   string
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

func (e *WriteError) Is(target error) bool {
	return target == ErrFileWrite
}

// Result describes a written data file.
type Result struct {
	Path  string
	Lines uint64 // Value lines, excluding the header
	Bytes int64
}

// Encode writes the count header followed by one value per line.
// It returns the number of value lines written.
func Encode(w io.Writer, count uint64, values iter.Seq[Value]) (uint64, error) {
	if _, err := fmt.Fprintf(w, "Count: %d\n", count); err != nil {
		return 0, err
	}
	var lines uint64
	for v := range values {
		if _, err := io.WriteString(w, v.String()+"\n"); err != nil {
			return lines, err
		}
		lines++
	}
	return lines, nil
}

// Write creates or truncates path and encodes values into it.
// The file is flushed and closed before Write returns, on success and on failure.
func Write(path string, count uint64, values iter.Seq[Value]) (res Result, err error) {
	res.Path = path
	f, err := os.Create(path) // #nosec G304 -- path is chosen by the user
	if err != nil {
		return res, &WriteError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, &WriteError{Op: "close", Path: path, Err: cerr})
		}
	}()

	cw := &countingWriter{w: f}
	bw := bufio.NewWriter(cw)
	res.Lines, err = Encode(bw, count, values)
	if err != nil {
		return res, &WriteError{Op: "write", Path: path, Err: err}
	}
	if err := bw.Flush(); err != nil {
		return res, &WriteError{Op: "flush", Path: path, Err: err}
	}
	res.Bytes = cw.n
	return res, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
