/*
DESCRIPTION
  vp9.go provides a parser for VP9 packets. The parser splits superframes,
  consumes the uncompressed header of each frame and emits frame descriptors
  locating the compressed header and tile data in the packet bytes.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package vp9 provides parsing of the uncompressed portion of VP9 bitstreams
// and of the superframe packaging that carries one or more VP9 frames per
// container packet. For every frame found in a packet the parser emits a
// descriptor holding the uncompressed header fields together with byte exact
// offsets of the compressed header and tile regions; the entropy coded
// portions are located but never decoded.
package vp9

import "github.com/ausocean/vp9/codec/vp9/bits"

// frameMarker is the expected value of the 2-bit marker opening every frame.
const frameMarker = 2

// nRefFrameSlots is the number of reference frame slots addressable by a
// frame.
const nRefFrameSlots = 8

// frameSize is the stored size of a reference frame slot.
type frameSize struct {
	width  int
	height int
}

// Loop filter delta defaults, restored for key frames, intra only frames and
// error resilient frames.
var (
	defaultRefDeltas  = [4]int8{1, 0, -1, -1}
	defaultModeDeltas = [2]int8{0, 0}
)

// state is the cross-frame parser state retained between frames of the same
// stream.
type state struct {
	lastFrameType FrameType
	refFrameSizes [nRefFrameSlots]frameSize
	refDeltas     [4]int8
	modeDeltas    [2]int8
}

// defaultState returns the state of a parser before any frame has been
// parsed.
func defaultState() state {
	return state{
		lastFrameType: NonKeyFrame,
		refDeltas:     defaultRefDeltas,
		modeDeltas:    defaultModeDeltas,
	}
}

// Parser is a stateful VP9 packet parser. A parser owns the cross-frame
// state of exactly one stream; packets must be supplied in bitstream order.
// Independent streams need independent parsers, which may be driven
// concurrently. A single parser must not be shared between goroutines.
type Parser struct {
	state state
}

// NewParser returns a new Parser.
func NewParser() *Parser {
	return &Parser{state: defaultState()}
}

// Reset restores the parser to its initial state. Call on bitstream change
// or seek.
func (p *Parser) Reset() {
	p.state = defaultState()
}

// ParsePacket parses all frames contained in a packet, in bitstream order,
// and returns their descriptors. An empty packet yields an empty result. On
// error no descriptors are returned, the packet must be treated as not
// consumed, and the parser state is as of the start of the failing frame.
func (p *Parser) ParsePacket(packet []byte) ([]*Frame, error) {
	if len(packet) == 0 {
		return nil, nil
	}
	payloads, err := splitSuperframe(packet)
	if err != nil {
		return nil, err
	}
	frames := make([]*Frame, 0, len(payloads))
	for _, payload := range payloads {
		f, err := p.parseFrame(payload)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// parseFrame parses a single frame payload against a working copy of the
// parser state, committing the copy only on success. A show-existing frame
// leaves the state untouched.
func (p *Parser) parseFrame(payload []byte) (*Frame, error) {
	f := &Frame{data: payload}
	s := p.state
	r := newFieldReader(bits.NewReader(payload))
	if err := parseUncompressedHeader(r, f, &s); err != nil {
		return nil, err
	}
	if !f.ShowExistingFrame {
		for i := 0; i < nRefFrameSlots; i++ {
			if f.RefreshFrameFlags&(1<<uint(i)) != 0 {
				s.refFrameSizes[i] = frameSize{f.Width, f.Height}
			}
		}
		s.lastFrameType = f.FrameType
		p.state = s
	}
	return f, nil
}
