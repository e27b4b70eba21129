// SPDX-License-Identifier: MIT

package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/katalvlaran/spmat/matrix"
)

const (
	// Magic opens every snapshot file.
	Magic = "SPMATSN1"

	headerSize = 32
	recordSize = 24
)

var (
	// ErrBadMagic is returned when a file does not start with Magic.
	ErrBadMagic = errors.New("snapshot: bad magic")

	// ErrTruncated is returned when the file size disagrees with the header.
	ErrTruncated = errors.New("snapshot: truncated or oversized file")

	// ErrClosed is returned by reads after Close.
	ErrClosed = errors.New("snapshot: closed")
)

// Write stores m at path, replacing any existing file.
func Write(path string, m *matrix.Sparse) error {
	if m == nil {
		return fmt.Errorf("snapshot: %w", matrix.ErrNilMatrix)
	}

	return write(path, m.Rows(), m.Cols(), m.NNZ(), m.Range)
}

// WriteTriplets stores t at path, duplicates included.
func WriteTriplets(path string, t *matrix.Triplets) error {
	if t == nil {
		return fmt.Errorf("snapshot: %w", matrix.ErrNilMatrix)
	}

	return write(path, t.Rows(), t.Cols(), t.Len(), t.Range)
}

func write(path string, rows, cols, count int, each func(func(matrix.Entry) bool)) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	size := int64(headerSize) + int64(count)*recordSize
	if err = f.Truncate(size); err != nil {
		return err
	}
	data, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		return fmt.Errorf("snapshot: map %s: %w", path, err)
	}
	defer func() {
		if uerr := data.Unmap(); uerr != nil && err == nil {
			err = uerr
		}
	}()

	copy(data[:8], Magic)
	binary.LittleEndian.PutUint64(data[8:], uint64(rows))
	binary.LittleEndian.PutUint64(data[16:], uint64(cols))
	binary.LittleEndian.PutUint64(data[24:], uint64(count))

	off := headerSize
	each(func(e matrix.Entry) bool {
		binary.LittleEndian.PutUint64(data[off:], uint64(e.Row))
		binary.LittleEndian.PutUint64(data[off+8:], uint64(e.Col))
		binary.LittleEndian.PutUint64(data[off+16:], math.Float64bits(e.Value))
		off += recordSize

		return true
	})

	return data.Flush()
}

// Snapshot is a read-only mapped snapshot file. It is not safe to use after
// Close; entries returned earlier stay valid.
type Snapshot struct {
	file       *os.File
	data       mmap.MMap
	rows, cols int
	count      int
}

// Open maps path read-only and validates its header.
func Open(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.Size() < headerSize {
		f.Close()
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncated, info.Size())
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("snapshot: map %s: %w", path, err)
	}
	s := &Snapshot{file: f, data: data}
	if err = s.validate(info.Size()); err != nil {
		s.Close()
		return nil, err
	}

	return s, nil
}

func (s *Snapshot) validate(size int64) error {
	if string(s.data[:8]) != Magic {
		return ErrBadMagic
	}
	rows := int64(binary.LittleEndian.Uint64(s.data[8:]))
	cols := int64(binary.LittleEndian.Uint64(s.data[16:]))
	count := int64(binary.LittleEndian.Uint64(s.data[24:]))
	if rows < 0 || cols < 0 || count < 0 {
		return fmt.Errorf("snapshot: %w", matrix.ErrBadShape)
	}
	if count > (size-headerSize)/recordSize || size != headerSize+count*recordSize {
		return fmt.Errorf("%w: header count %d, file %d bytes", ErrTruncated, count, size)
	}
	s.rows, s.cols, s.count = int(rows), int(cols), int(count)

	return nil
}

// Rows returns the stored row count.
func (s *Snapshot) Rows() int { return s.rows }

// Cols returns the stored column count.
func (s *Snapshot) Cols() int { return s.cols }

// Len returns the number of records.
func (s *Snapshot) Len() int { return s.count }

// Entry decodes record k; k must be in [0, Len).
func (s *Snapshot) Entry(k int) matrix.Entry {
	off := headerSize + k*recordSize
	return matrix.Entry{
		Row:   int(int64(binary.LittleEndian.Uint64(s.data[off:]))),
		Col:   int(int64(binary.LittleEndian.Uint64(s.data[off+8:]))),
		Value: math.Float64frombits(binary.LittleEndian.Uint64(s.data[off+16:])),
	}
}

// Range calls fn for each record in file order until fn returns false.
func (s *Snapshot) Range(fn func(e matrix.Entry) bool) error {
	if s.data == nil {
		return ErrClosed
	}
	for k := 0; k < s.count; k++ {
		if !fn(s.Entry(k)) {
			break
		}
	}

	return nil
}

// Sparse rebuilds a matrix from the records (Set order, last write wins).
func (s *Snapshot) Sparse(opts ...matrix.Option) (*matrix.Sparse, error) {
	m, err := matrix.NewSparse(s.rows, s.cols, opts...)
	if err != nil {
		return nil, err
	}
	var serr error
	err = s.Range(func(e matrix.Entry) bool {
		serr = m.Set(e.Row, e.Col, e.Value)
		return serr == nil
	})
	if err != nil {
		return nil, err
	}
	if serr != nil {
		return nil, fmt.Errorf("snapshot: %w", serr)
	}

	return m, nil
}

// Triplets copies the records into an ordered sequence.
func (s *Snapshot) Triplets() (*matrix.Triplets, error) {
	t, err := matrix.NewTriplets(s.rows, s.cols)
	if err != nil {
		return nil, err
	}
	var aerr error
	err = s.Range(func(e matrix.Entry) bool {
		aerr = t.Append(e.Row, e.Col, e.Value)
		return aerr == nil
	})
	if err != nil {
		return nil, err
	}
	if aerr != nil {
		return nil, fmt.Errorf("snapshot: %w", aerr)
	}

	return t, nil
}

// Close unmaps the file. Calling it twice is a no-op.
func (s *Snapshot) Close() error {
	if s.data == nil {
		return nil
	}
	uerr := s.data.Unmap()
	s.data = nil
	cerr := s.file.Close()

	return errors.Join(uerr, cerr)
}
