/*
NAME
  ivf_test.go

DESCRIPTION
  ivf_test.go provides testing for the IVF demuxer in ivf.go.

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


package ivf

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

// fileHeader returns a 32 byte IVF file header for a VP9 stream.
func fileHeader(width, height uint16, rate, scale, count uint32) []byte {
	b := make([]byte, headerSize)
	copy(b[0:4], signature)
	binary.LittleEndian.PutUint16(b[6:8], headerSize)
	copy(b[8:12], "VP90")
	binary.LittleEndian.PutUint16(b[12:14], width)
	binary.LittleEndian.PutUint16(b[14:16], height)
	binary.LittleEndian.PutUint32(b[16:20], rate)
	binary.LittleEndian.PutUint32(b[20:24], scale)
	binary.LittleEndian.PutUint32(b[24:28], count)
	return b
}

// frame returns an IVF frame: size and timestamp header then payload.
func frame(timestamp uint64, payload []byte) []byte {
	b := make([]byte, frameHeaderSize)
	binary.LittleEndian.PutUint32(b[0:4], uint32(len(payload)))
	binary.LittleEndian.PutUint64(b[4:12], timestamp)
	return append(b, payload...)
}

// TestReadFile checks demuxing of a small complete file.
func TestReadFile(t *testing.T) {
	var file []byte
	file = append(file, fileHeader(320, 180, 24, 1, 2)...)
	file = append(file, frame(0, []byte{0x01, 0x02, 0x03})...)
	file = append(file, frame(512, []byte{0x04})...)

	r, err := NewReader(bytes.NewReader(file))
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}

	if r.FourCC() != "VP90" {
		t.Errorf("unexpected FourCC\nGot: %q\nWant: %q", r.FourCC(), "VP90")
	}
	if r.Width() != 320 || r.Height() != 180 {
		t.Errorf("unexpected dimensions\nGot: %dx%d\nWant: 320x180", r.Width(), r.Height())
	}
	if r.FrameRateRate() != 24 || r.FrameRateScale() != 1 {
		t.Errorf("unexpected frame rate\nGot: %d/%d\nWant: 24/1", r.FrameRateRate(), r.FrameRateScale())
	}
	if r.FrameCount() != 2 {
		t.Errorf("unexpected frame count\nGot: %d\nWant: 2", r.FrameCount())
	}

	want := []*Frame{
		{Timestamp: 0, Data: []byte{0x01, 0x02, 0x03}},
		{Timestamp: 512, Data: []byte{0x04}},
	}
	for i, w := range want {
		got, err := r.ReadFrame()
		if err != nil {
			t.Fatalf("did not expect error: %v for frame: %d", err, i)
		}
		if diff := cmp.Diff(w, got); diff != "" {
			t.Errorf("unexpected frame: %d (-want +got):\n%s", i, diff)
		}
	}

	if _, err := r.ReadFrame(); err != io.EOF {
		t.Errorf("did not get expected error\nGot: %v\nWant: %v", err, io.EOF)
	}
}

// TestBadHeader checks rejection of malformed file headers.
func TestBadHeader(t *testing.T) {
	tests := []struct {
		name string
		file []byte
	}{
		{
			name: "short",
			file: []byte{'D', 'K', 'I', 'F'},
		},
		{
			name: "bad signature",
			file: append([]byte("FIKD"), make([]byte, headerSize-4)...),
		},
		{
			name: "bad version",
			file: func() []byte {
				b := fileHeader(320, 180, 24, 1, 0)
				binary.LittleEndian.PutUint16(b[4:6], 1)
				return b
			}(),
		},
		{
			name: "bad header length",
			file: func() []byte {
				b := fileHeader(320, 180, 24, 1, 0)
				binary.LittleEndian.PutUint16(b[6:8], 44)
				return b
			}(),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := NewReader(bytes.NewReader(test.file)); !errors.Is(err, ErrInvalidHeader) {
				t.Errorf("did not get expected error\nGot: %v\nWant: %v", err, ErrInvalidHeader)
			}
		})
	}
}

// TestTruncatedFrame checks that a file ending inside a frame is reported.
func TestTruncatedFrame(t *testing.T) {
	var file []byte
	file = append(file, fileHeader(320, 180, 24, 1, 1)...)
	file = append(file, frame(0, []byte{0x01, 0x02, 0x03})...)

	tests := []struct {
		name string
		cut  int
	}{
		{name: "inside frame header", cut: headerSize + 4},
		{name: "inside payload", cut: len(file) - 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r, err := NewReader(bytes.NewReader(file[:test.cut]))
			if err != nil {
				t.Fatalf("did not expect error: %v", err)
			}
			if _, err := r.ReadFrame(); !errors.Is(err, ErrUnexpectedFileEnding) {
				t.Errorf("did not get expected error\nGot: %v\nWant: %v", err, ErrUnexpectedFileEnding)
			}
		})
	}
}
