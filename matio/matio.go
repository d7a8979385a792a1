// Package matio reads and writes compressed snapshots of symmetric distance
// and similarity matrices. A snapshot is a 4-byte magic, a version byte and
// a zstd frame holding the row count followed by the upper triangle
// (diagonal included) as little-endian float64.
package matio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"
)

const (
	magic   = "MDSM"
	version = 1
)

var (
	// ErrBadMagic is returned when the input is not a matrix snapshot.
	ErrBadMagic = errors.New("matio: not a matrix snapshot")

	// ErrBadVersion is returned for snapshot versions this build cannot read.
	ErrBadVersion = errors.New("matio: unsupported snapshot version")
)

// Write serializes m to w.
func Write(w io.Writer, m *mat.SymDense) error {
	if _, err := w.Write([]byte(magic)); err != nil {
		return err
	}
	if _, err := w.Write([]byte{version}); err != nil {
		return err
	}

	enc, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}

	n := m.SymmetricDim()
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint32(buf, uint32(n))
	if _, err := enc.Write(buf[:4]); err != nil {
		enc.Close()
		return err
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			binary.LittleEndian.PutUint64(buf, math.Float64bits(m.At(i, j)))
			if _, err := enc.Write(buf); err != nil {
				enc.Close()
				return err
			}
		}
	}
	return enc.Close()
}

// Read deserializes a snapshot from r.
func Read(r io.Reader) (*mat.SymDense, error) {
	hdr := make([]byte, 5)
	if _, err := io.ReadFull(r, hdr); err != nil {
		return nil, fmt.Errorf("matio: reading header: %w", err)
	}
	if string(hdr[:4]) != magic {
		return nil, ErrBadMagic
	}
	if hdr[4] != version {
		return nil, fmt.Errorf("%w: %d", ErrBadVersion, hdr[4])
	}

	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	buf := make([]byte, 8)
	if _, err := io.ReadFull(dec, buf[:4]); err != nil {
		return nil, fmt.Errorf("matio: reading row count: %w", err)
	}
	n := int(binary.LittleEndian.Uint32(buf))

	m := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if _, err := io.ReadFull(dec, buf); err != nil {
				return nil, fmt.Errorf("matio: truncated payload: %w", err)
			}
			m.SetSym(i, j, math.Float64frombits(binary.LittleEndian.Uint64(buf)))
		}
	}
	return m, nil
}
