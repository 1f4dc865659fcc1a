/*
DESCRIPTION
  superframe.go provides splitting of VP9 superframes: packets that
  concatenate up to 8 frames followed by a trailing index of frame sizes.

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
	"github.com/cybergarage/go-safecast/safecast"
	"github.com/pkg/errors"

	"github.com/ausocean/vp9/codec/vp9/bits"
)

// Superframe marker byte: the top three bits are 0b110, the next two are the
// frame size width minus one, and the bottom three are the frame count minus
// one.
const (
	superframeMarkerMask = 0xe0
	superframeMarker     = 0xc0
)

// splitSuperframe returns the payloads of the frames packed in packet, in
// bitstream order. A packet whose final byte is not a superframe marker, or
// whose index is not bracketed by two copies of the marker byte, holds a
// single frame occupying the whole packet.
func splitSuperframe(packet []byte) ([][]byte, error) {
	m := packet[len(packet)-1]
	if m&superframeMarkerMask != superframeMarker {
		return [][]byte{packet}, nil
	}

	sizeBytes := int(m>>3&3) + 1
	count := int(m&7) + 1
	indexSize := 2 + count*sizeBytes

	// The index is bracketed by two copies of the marker byte. If the
	// opening copy is absent, this is an ordinary frame that happens to end
	// with a marker-like byte.
	if indexSize > len(packet) || packet[len(packet)-indexSize] != m {
		return [][]byte{packet}, nil
	}

	index := packet[len(packet)-indexSize+1 : len(packet)-1]
	region := packet[:len(packet)-indexSize]
	payloads := make([][]byte, 0, count)
	var off int
	for i := 0; i < count; i++ {
		size, err := leUint(index[i*sizeBytes : (i+1)*sizeBytes])
		if err != nil {
			return nil, err
		}
		if off+size > len(region) {
			return nil, errors.Wrapf(bits.ErrOverread, "vp9: superframe frame %d overruns packet", i)
		}
		payloads = append(payloads, region[off:off+size])
		off += size
	}
	return payloads, nil
}

// leUint decodes a little-endian unsigned integer of 1 to 4 bytes. The
// superframe index stores its sizes little-endian even though every
// multi-bit field of the uncompressed header is big-endian.
func leUint(b []byte) (int, error) {
	if len(b) < 1 || len(b) > 4 {
		return 0, errors.Wrapf(ErrFrameSizeWidth, "width %d", len(b))
	}
	var v uint64
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	var size int
	if err := safecast.ToInt(v, &size); err != nil {
		return 0, errors.Wrapf(ErrNumericRange, "superframe frame size %d", v)
	}
	return size, nil
}
