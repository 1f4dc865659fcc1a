/*
DESCRIPTION
  frame.go provides the frame descriptor emitted for every VP9 frame found
  in a packet, with byte views into the compressed header and tile regions.

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

// Frame describes one VP9 frame: the fields of its uncompressed header and
// the byte offsets of the compressed header and tile regions within the frame
// payload. The descriptor owns its payload bytes; the byte view methods
// return sub-slices valid for the descriptor's lifetime.
//
// Field semantics follow the uncompressed header syntax in the VP9 Bitstream
// & Decoding Process Specification; comments note where a field is defaulted
// rather than read.
type Frame struct {
	data []byte

	// UncompressedHeaderSize is the size of the uncompressed header in bytes
	// from the start of the payload.
	UncompressedHeaderSize int

	// CompressedHeaderSize is the size in bytes of the compressed header,
	// which immediately follows the uncompressed header. The value is carried
	// in the uncompressed header itself.
	CompressedHeaderSize int

	// TileSize is the size in bytes of the tile region, the remainder of the
	// payload after the two headers.
	TileSize int

	// Profile is the bitstream profile, 0..3.
	Profile Profile

	// ShowExistingFrame indicates the frame directs the decoder to show a
	// previously decoded reference frame. Such a frame carries no further
	// header syntax; all other fields keep their defaults.
	ShowExistingFrame bool

	// FrameToShowMapIdx is the reference slot to show. Only meaningful when
	// ShowExistingFrame is set.
	FrameToShowMapIdx uint8

	// LastFrameType is the type of the previous non-show-existing frame of
	// the stream.
	LastFrameType FrameType

	// FrameType is the type of this frame.
	FrameType FrameType

	ShowFrame          bool
	ErrorResilientMode bool
	IntraOnly          bool

	// ResetFrameContext specifies which frame contexts this frame resets.
	// Defaulted to ResetNo0 for key frames and error resilient frames.
	ResetFrameContext ResetFrameContext

	// RefFrameIndices holds the reference slot for each of the LAST, GOLDEN
	// and ALTREF references, in that order.
	RefFrameIndices [3]uint8

	// RefFrameSignBias is indexed by reference kind: intra 0, last 1,
	// golden 2, altref 3. The intra entry is always false.
	RefFrameSignBias [4]bool

	AllowHighPrecisionMV      bool
	RefreshFrameContext       bool
	FrameParallelDecodingMode bool

	// RefreshFrameFlags is a bitmap of the reference slots overwritten by
	// this frame. Always 0xFF for key frames.
	RefreshFrameFlags uint8

	// FrameContextIdx is the frame context to use, forced to 0 for key
	// frames, intra only frames and error resilient frames.
	FrameContextIdx uint8

	ColorDepth   ColorDepth
	ColorSpace   ColorSpace
	ColorRange   ColorRange
	SubsamplingX bool
	SubsamplingY bool

	// Width and Height are the frame dimensions in pixels, 1..65536.
	Width  int
	Height int

	// RenderWidth and RenderHeight are the dimensions at which the frame is
	// intended to be displayed. Equal to Width and Height unless the header
	// carries an explicit render size.
	RenderWidth  int
	RenderHeight int

	// MiCols and MiRows are the frame dimensions in 8x8 block units:
	// (dimension+7)>>3.
	MiCols int
	MiRows int

	TileRowsLog2 uint8
	TileColsLog2 uint8

	InterpolationFilter InterpolationFilter

	LoopFilterLevel        uint8
	LoopFilterSharpness    uint8
	LoopFilterDeltaEnabled bool

	// LoopFilterRefDeltas and LoopFilterModeDeltas are the persisted loop
	// filter deltas after this frame's updates, copied out of the parser
	// state.
	LoopFilterRefDeltas  [4]int8
	LoopFilterModeDeltas [2]int8

	// BaseQIdx is the base quantisation index, 0..255.
	BaseQIdx uint8

	// DeltaQYDc, DeltaQUVDc and DeltaQUVAc are the quantiser deltas, each in
	// [-15..15].
	DeltaQYDc  int8
	DeltaQUVDc int8
	DeltaQUVAc int8

	// Lossless is true iff BaseQIdx and all three quantiser deltas are zero.
	Lossless bool

	SegmentationEnabled          bool
	SegmentationUpdateMap        bool
	SegmentationTemporalUpdate   bool
	SegmentationUpdateData       bool
	SegmentationAbsOrDeltaUpdate bool

	// SegmentTreeProbs and SegmentPredProbs are the segmentation map
	// probabilities, 255 where the map is updated but a probability is not
	// coded. Both stay zero when segmentation is disabled or the map is not
	// updated.
	SegmentTreeProbs [7]uint8
	SegmentPredProbs [3]uint8

	// SegmentFeatureActive and SegmentFeatureData hold, per segment and
	// segment-level feature, whether the feature is active and its data.
	// SegLvlSkip carries no data.
	SegmentFeatureActive [MaxSegments][SegLvlMax]bool
	SegmentFeatureData   [MaxSegments][SegLvlMax]int16
}

// Data returns the whole frame payload.
func (f *Frame) Data() []byte {
	return f.data
}

// CompressedHeaderData returns the bytes of the compressed header.
func (f *Frame) CompressedHeaderData() []byte {
	from := f.clamp(f.UncompressedHeaderSize)
	to := f.clamp(f.UncompressedHeaderSize + f.CompressedHeaderSize)
	return f.data[from:to]
}

// CompressedHeaderAndTileData returns the bytes of the compressed header and
// the tile region together, i.e. everything after the uncompressed header.
func (f *Frame) CompressedHeaderAndTileData() []byte {
	return f.data[f.clamp(f.UncompressedHeaderSize):]
}

// TileData returns the bytes of the tile region.
func (f *Frame) TileData() []byte {
	return f.data[f.clamp(f.UncompressedHeaderSize + f.CompressedHeaderSize):]
}

// clamp bounds a header-derived offset to the payload length. A malformed
// stream can advertise a compressed header size larger than the payload; the
// descriptor is still emitted and the affected views are empty.
func (f *Frame) clamp(off int) int {
	if off > len(f.data) {
		return len(f.data)
	}
	return off
}
