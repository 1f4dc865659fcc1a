/*
DESCRIPTION
  bitreader.go provides a big-endian bit reader over an in-memory buffer,
  with signed magnitude+sign reads and bit position tracking.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package bits provides a bit reader over an in-memory byte buffer. Unlike a
// streaming reader it keeps an absolute bit position, which callers use to
// derive byte offsets back into the original buffer.
package bits

import "github.com/pkg/errors"

// ErrOverread is returned by all reads that would pass the end of the data.
var ErrOverread = errors.New("bits: read past end of data")

// Reader is a big-endian bit reader over a byte slice. The slice is never
// modified.
type Reader struct {
	data []byte
	pos  int // Position in bits from the start of data.
}

// NewReader returns a new Reader reading from data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// ReadBits reads n bits from the source and returns them in the
// least-significant part of a uint64.
// For example, with a source as []byte{0x8f,0xe3} (1000 1111, 1110 0011), we
// would get the following results for consecutive reads with n values:
// n = 4, res = 0x8 (1000)
// n = 2, res = 0x3 (0011)
// n = 4, res = 0xf (1111)
// n = 6, res = 0x23 (0010 0011)
func (r *Reader) ReadBits(n int) (uint64, error) {
	if r.pos+n > 8*len(r.data) {
		return 0, ErrOverread
	}
	var v uint64
	for i := 0; i < n; i++ {
		b := r.data[r.pos>>3]
		v = v<<1 | uint64(b>>uint(7-r.pos&7)&1)
		r.pos++
	}
	return v, nil
}

// ReadBool reads a single bit and returns it as a boolean.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.ReadBits(1)
	return b == 1, err
}

// ReadSigned reads n magnitude bits big-endian followed by one sign bit, and
// returns -magnitude if the sign bit is set and +magnitude otherwise. A set
// sign bit with zero magnitude returns 0.
func (r *Reader) ReadSigned(n int) (int64, error) {
	mag, err := r.ReadBits(n)
	if err != nil {
		return 0, err
	}
	neg, err := r.ReadBool()
	if err != nil {
		return 0, err
	}
	if neg {
		return -int64(mag), nil
	}
	return int64(mag), nil
}

// ByteAligned returns true if the read position is at the start of a byte,
// and false otherwise.
func (r *Reader) ByteAligned() bool {
	return r.pos&7 == 0
}

// Position returns the current read position in bits from the start of the
// data.
func (r *Reader) Position() int {
	return r.pos
}
