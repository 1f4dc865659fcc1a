/*
NAME
  ivf.go

DESCRIPTION
  ivf.go provides a demuxer for the IVF container, which carries VP8/VP9
  frames with per-frame timestamps.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package ivf provides demuxing of IVF files. IVF is a minimal container:
// a 32 byte file header followed by frames, each a 12 byte header carrying
// the payload size and a timestamp, then the payload bytes.
package ivf

import (
	"encoding/binary"
	"io"

	"github.com/cybergarage/go-safecast/safecast"
	"github.com/pkg/errors"
)

const (
	headerSize      = 32
	frameHeaderSize = 12
)

// signature is the four byte magic opening every IVF file.
const signature = "DKIF"

// IVF is little-endian.
var order = binary.LittleEndian

// Errors returned while demuxing.
var (
	// ErrInvalidHeader means the file header was malformed.
	ErrInvalidHeader = errors.New("ivf: invalid header")

	// ErrUnexpectedFileEnding means the file ended inside a frame.
	ErrUnexpectedFileEnding = errors.New("ivf: unexpected file ending")
)

// Frame is one container frame: an opaque codec packet and its timestamp.
type Frame struct {
	Timestamp uint64
	Data      []byte
}

// Reader demuxes an IVF stream.
type Reader struct {
	r          io.Reader
	fourCC     string
	width      int
	height     int
	rateRate   uint32
	rateScale  uint32
	frameCount uint32
}

// NewReader reads and validates the file header from r and returns a Reader
// yielding the contained frames.
func NewReader(r io.Reader) (*Reader, error) {
	var buf [headerSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, errors.Wrapf(ErrInvalidHeader, "short header: %v", err)
	}
	if string(buf[0:4]) != signature {
		return nil, errors.Wrapf(ErrInvalidHeader, "bad signature %q", buf[0:4])
	}
	if v := order.Uint16(buf[4:6]); v != 0 {
		return nil, errors.Wrapf(ErrInvalidHeader, "unsupported version %d", v)
	}
	if n := order.Uint16(buf[6:8]); n != headerSize {
		return nil, errors.Wrapf(ErrInvalidHeader, "bad header length %d", n)
	}
	return &Reader{
		r:          r,
		fourCC:     string(buf[8:12]),
		width:      int(order.Uint16(buf[12:14])),
		height:     int(order.Uint16(buf[14:16])),
		rateRate:   order.Uint32(buf[16:20]),
		rateScale:  order.Uint32(buf[20:24]),
		frameCount: order.Uint32(buf[24:28]),
	}, nil
}

// FourCC returns the codec FourCC, e.g. "VP90".
func (r *Reader) FourCC() string { return r.fourCC }

// Width returns the frame width from the file header.
func (r *Reader) Width() int { return r.width }

// Height returns the frame height from the file header.
func (r *Reader) Height() int { return r.height }

// FrameRateRate returns the numerator of the frame rate.
func (r *Reader) FrameRateRate() uint32 { return r.rateRate }

// FrameRateScale returns the denominator of the frame rate.
func (r *Reader) FrameRateScale() uint32 { return r.rateScale }

// FrameCount returns the number of frames the file header advertises.
func (r *Reader) FrameCount() uint32 { return r.frameCount }

// ReadFrame returns the next frame of the stream. A clean end of file
// returns io.EOF; a file that ends inside a frame returns
// ErrUnexpectedFileEnding.
func (r *Reader) ReadFrame() (*Frame, error) {
	var fh [frameHeaderSize]byte
	_, err := io.ReadFull(r.r, fh[:])
	switch err {
	case nil: // Do nothing.
	case io.EOF:
		return nil, io.EOF
	default:
		return nil, errors.Wrapf(ErrUnexpectedFileEnding, "short frame header: %v", err)
	}

	var size int
	if err := safecast.ToInt(order.Uint32(fh[0:4]), &size); err != nil {
		return nil, errors.Wrapf(ErrInvalidHeader, "frame size: %v", err)
	}

	f := &Frame{
		Timestamp: order.Uint64(fh[4:12]),
		Data:      make([]byte, size),
	}
	if _, err := io.ReadFull(r.r, f.Data); err != nil {
		return nil, errors.Wrapf(ErrUnexpectedFileEnding, "short frame payload: %v", err)
	}
	return f, nil
}
