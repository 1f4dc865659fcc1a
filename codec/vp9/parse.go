/*
DESCRIPTION
  parse.go provides parsing helpers for reading the fields of the VP9
  uncompressed header.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


package vp9

import (
	"github.com/ausocean/vp9/codec/vp9/bits"
)

// fieldReader provides methods for reading bitstream syntax fields using a
// bits.Reader with a sticky error that may be checked after a series of
// parsing read calls. Once the error is set all further reads return zero
// values.
type fieldReader struct {
	e  error
	br *bits.Reader
}

// newFieldReader returns a new fieldReader.
func newFieldReader(br *bits.Reader) *fieldReader {
	return &fieldReader{br: br}
}

// readBits returns the result of reading n bits from br. If we have an error
// already, we do not continue with the read.
func (r *fieldReader) readBits(n int) uint64 {
	if r.e != nil {
		return 0
	}
	var b uint64
	b, r.e = r.br.ReadBits(n)
	return b
}

// readFlag returns the result of reading a single bit from br as a boolean.
// The read does not happen if the fieldReader has a non-nil error.
func (r *fieldReader) readFlag() bool {
	if r.e != nil {
		return false
	}
	var b bool
	b, r.e = r.br.ReadBool()
	return b
}

// readSigned returns the result of reading n magnitude bits and a sign bit
// from br. The read does not happen if the fieldReader has a non-nil error.
func (r *fieldReader) readSigned(n int) int64 {
	if r.e != nil {
		return 0
	}
	var v int64
	v, r.e = r.br.ReadSigned(n)
	return v
}

// readProb reads a segmentation probability: an 8-bit value when the
// preceding flag is set, and 255 otherwise.
func (r *fieldReader) readProb() uint8 {
	if r.readFlag() {
		return uint8(r.readBits(8))
	}
	return 255
}

// err returns the fieldReader's sticky error.
func (r *fieldReader) err() error {
	return r.e
}
