/*
DESCRIPTION
  errors.go provides the errors reported while parsing VP9 bitstreams.

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

import "github.com/pkg/errors"

// Errors reported while parsing. Bit reader exhaustion is reported as
// bits.ErrOverread, passed through unchanged from any depth of the parse.
var (
	// ErrFrameMarker means the 2-bit frame marker was not 2.
	ErrFrameMarker = errors.New("vp9: invalid frame marker")

	// ErrSyncByte means all three frame sync bytes mismatched the expected
	// 0x49 0x83 0x42.
	ErrSyncByte = errors.New("vp9: invalid sync byte")

	// ErrPadding means a trailing bit before byte alignment was non-zero.
	ErrPadding = errors.New("vp9: invalid padding")

	// ErrRefFrameIndex means a reference slot index was out of bounds. The
	// indices are 3 bits wide and the slot array has 8 entries, so this is
	// reserved for stricter validation.
	ErrRefFrameIndex = errors.New("vp9: invalid reference frame index")

	// ErrFrameSizeWidth means a superframe index entry width was outside 1..4.
	ErrFrameSizeWidth = errors.New("vp9: invalid superframe frame size width")

	// ErrMetadata means a required codec private feature id was missing.
	ErrMetadata = errors.New("vp9: missing required metadata feature")

	// ErrNumericRange means a size conversion exceeded the width of the
	// destination type. This is surfaced rather than silently truncated.
	ErrNumericRange = errors.New("vp9: numeric value out of range")
)
