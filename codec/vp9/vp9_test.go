/*
DESCRIPTION
  vp9_test.go provides testing for packet level parsing in vp9.go and the
  superframe splitting in superframe.go.

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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/ausocean/vp9/codec/vp9/bits"
)

// TestSplitSuperframe checks the superframe splitting boundary behaviours.
func TestSplitSuperframe(t *testing.T) {
	tests := []struct {
		name   string
		packet []byte
		want   [][]byte
	}{
		{
			name:   "not a superframe",
			packet: []byte{0x8d, 0x01, 0x02},
			want:   [][]byte{{0x8d, 0x01, 0x02}},
		},
		{
			name: "two frame superframe",
			packet: []byte{
				0x8d,       // frame 0
				0x8e,       // frame 1
				0xc9,       // index marker: 2 byte sizes, 2 frames
				0x01, 0x00, // size of frame 0, little-endian
				0x01, 0x00, // size of frame 1, little-endian
				0xc9, // index marker repeated
			},
			want: [][]byte{{0x8d}, {0x8e}},
		},
		{
			name: "single frame superframe",
			packet: []byte{
				0x8d,
				0xc0, // index marker: 1 byte sizes, 1 frame
				0x01,
				0xc0,
			},
			want: [][]byte{{0x8d}},
		},
		{
			name: "first index byte differs",
			packet: []byte{
				0x8d, 0x8e, 0xff, 0x01, 0x00, 0x01, 0x00, 0xc9,
			},
			want: [][]byte{{0x8d, 0x8e, 0xff, 0x01, 0x00, 0x01, 0x00, 0xc9}},
		},
		{
			name:   "index longer than packet",
			packet: []byte{0x01, 0xc9},
			want:   [][]byte{{0x01, 0xc9}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := splitSuperframe(test.packet)
			if err != nil {
				t.Fatalf("did not expect error: %v", err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("unexpected payloads (-want +got):\n%s", diff)
			}
		})
	}
}

// TestSplitSuperframeOverrun checks that index sizes overrunning the frame
// region are rejected before any frame is parsed.
func TestSplitSuperframeOverrun(t *testing.T) {
	packet := []byte{
		0x8d,
		0xc0, // index marker: 1 byte sizes, 1 frame
		0x09, // frame 0 claims 9 bytes; only 1 precedes the index
		0xc0,
	}
	if _, err := splitSuperframe(packet); !errors.Is(err, bits.ErrOverread) {
		t.Errorf("did not get expected error\nGot: %v\nWant: %v", err, bits.ErrOverread)
	}
}

// TestLeUint checks little-endian size decoding and the width bound.
func TestLeUint(t *testing.T) {
	got, err := leUint([]byte{0x01, 0x02})
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	if got != 0x0201 {
		t.Errorf("did not get expected result\nGot: %#x\nWant: 0x0201", got)
	}

	if _, err := leUint(make([]byte, 5)); !errors.Is(err, ErrFrameSizeWidth) {
		t.Errorf("did not get expected error\nGot: %v\nWant: %v", err, ErrFrameSizeWidth)
	}
	if _, err := leUint(nil); !errors.Is(err, ErrFrameSizeWidth) {
		t.Errorf("did not get expected error\nGot: %v\nWant: %v", err, ErrFrameSizeWidth)
	}
}

// TestParseSuperframePacket checks that a two frame superframe yields two
// descriptors in bitstream order.
func TestParseSuperframePacket(t *testing.T) {
	packet := []byte{
		0x8d,       // show existing frame, slot 5
		0x8e,       // show existing frame, slot 6
		0xc9,       // index marker
		0x01, 0x00, // size of frame 0
		0x01, 0x00, // size of frame 1
		0xc9,
	}

	frames, err := NewParser().ParsePacket(packet)
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	if len(frames) != 2 {
		t.Fatalf("did not get expected number of frames\nGot: %d\nWant: 2", len(frames))
	}
	if frames[0].FrameToShowMapIdx != 5 || frames[1].FrameToShowMapIdx != 6 {
		t.Errorf("frames out of order: %d, %d", frames[0].FrameToShowMapIdx, frames[1].FrameToShowMapIdx)
	}
}

// TestParseEmptyPacket checks that an empty packet yields an empty result
// and no error.
func TestParseEmptyPacket(t *testing.T) {
	frames, err := NewParser().ParsePacket(nil)
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	if len(frames) != 0 {
		t.Errorf("did not expect frames from empty packet: %d", len(frames))
	}
}

// TestFrameMarker checks that a bad frame marker is rejected.
func TestFrameMarker(t *testing.T) {
	p := NewParser()
	if _, err := p.ParsePacket([]byte{0x3f}); !errors.Is(err, ErrFrameMarker) {
		t.Errorf("did not get expected error\nGot: %v\nWant: %v", err, ErrFrameMarker)
	}
}

// TestReset checks that Reset restores the initial cross-frame state.
func TestReset(t *testing.T) {
	p := NewParser()
	if _, err := p.ParsePacket(keyFramePayload(nil, nil)); err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	p.Reset()

	frames, err := p.ParsePacket(interFramePayload(nil))
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	if frames[0].LastFrameType != NonKeyFrame {
		t.Errorf("reset did not restore last frame type")
	}
	if frames[0].Width != 0 {
		t.Errorf("reset did not clear reference sizes\nGot width: %d", frames[0].Width)
	}
}
