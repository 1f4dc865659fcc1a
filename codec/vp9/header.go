/*
DESCRIPTION
  header.go provides parsing of the VP9 uncompressed header as specified in
  section 6.2 of the VP9 Bitstream & Decoding Process Specification.

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

// Frame sync bytes.
const (
	syncByte0 = 0x49
	syncByte1 = 0x83
	syncByte2 = 0x42
)

// Tile column width bounds in 64x64 super-blocks.
const (
	maxTileWidthB64 = 64
	minTileWidthB64 = 4
)

// literalFilter maps the 2-bit interpolation filter literal to its filter.
var literalFilter = [4]InterpolationFilter{EighttapSmooth, Eighttap, EighttapSharp, Bilinear}

// parseUncompressedHeader consumes the uncompressed header syntax from r,
// filling f and updating the working copy of the parser state s. It is pure
// over (s, payload): the caller commits s only on success.
func parseUncompressedHeader(r *fieldReader, f *Frame, s *state) error {
	marker := r.readBits(2)
	if err := r.err(); err != nil {
		return err
	}
	if marker != frameMarker {
		return errors.Wrapf(ErrFrameMarker, "got %d", marker)
	}

	low := r.readBits(1)
	high := r.readBits(1)
	f.Profile = Profile(high<<1 | low)
	if f.Profile == Profile3 {
		r.readBits(1) // Reserved.
	}

	// A show-existing frame carries only the slot index; everything else
	// keeps its defaults and the parser state must not advance.
	if r.readFlag() {
		idx := r.readBits(3)
		if err := r.err(); err != nil {
			return err
		}
		f.ShowExistingFrame = true
		f.FrameToShowMapIdx = uint8(idx)
		return nil
	}

	f.LastFrameType = s.lastFrameType
	if r.readFlag() {
		f.FrameType = NonKeyFrame
	} else {
		f.FrameType = KeyFrame
	}
	f.ShowFrame = r.readFlag()
	f.ErrorResilientMode = r.readFlag()

	if f.FrameType == KeyFrame {
		if err := readSyncCode(r); err != nil {
			return err
		}
		parseColorConfig(r, f)
		parseFrameSize(r, f)
		parseRenderSize(r, f)
		f.RefreshFrameFlags = 0xff
	} else {
		if !f.ShowFrame {
			f.IntraOnly = r.readFlag()
		}
		if !f.ErrorResilientMode {
			f.ResetFrameContext = ResetFrameContext(r.readBits(2))
		}
		if f.IntraOnly {
			if err := readSyncCode(r); err != nil {
				return err
			}
			if f.Profile > Profile0 {
				parseColorConfig(r, f)
			} else {
				f.ColorDepth = Depth8
				f.ColorSpace = CsBt601
				f.SubsamplingX = true
				f.SubsamplingY = true
			}
			f.RefreshFrameFlags = uint8(r.readBits(8))
			parseFrameSize(r, f)
			parseRenderSize(r, f)
		} else {
			f.RefreshFrameFlags = uint8(r.readBits(8))
			for i := range f.RefFrameIndices {
				f.RefFrameIndices[i] = uint8(r.readBits(3))
				f.RefFrameSignBias[1+i] = r.readFlag()
			}
			parseFrameSizeWithRefs(r, f, s)
			f.AllowHighPrecisionMV = r.readFlag()
			if r.readFlag() {
				f.InterpolationFilter = Switchable
			} else {
				f.InterpolationFilter = literalFilter[r.readBits(2)&3]
			}
		}
	}

	if !f.ErrorResilientMode {
		f.RefreshFrameContext = r.readFlag()
		f.FrameParallelDecodingMode = r.readFlag()
	}

	// The index is present in the bitstream regardless, but only takes
	// effect for inter frames with error resilience off.
	idx := r.readBits(2)
	if f.FrameType != KeyFrame && !f.IntraOnly && !f.ErrorResilientMode {
		f.FrameContextIdx = uint8(idx)
	}

	if f.FrameType == KeyFrame || f.ErrorResilientMode || f.IntraOnly {
		s.refDeltas = defaultRefDeltas
		s.modeDeltas = defaultModeDeltas
	}

	parseLoopFilterParams(r, f, s)
	parseQuantizationParams(r, f)
	parseSegmentationParams(r, f)
	parseTileInfo(r, f)

	f.CompressedHeaderSize = int(r.readBits(16))
	if err := r.err(); err != nil {
		return err
	}

	for !r.br.ByteAligned() {
		pad := r.readBits(1)
		if err := r.err(); err != nil {
			return err
		}
		if pad != 0 {
			return errors.Wrap(ErrPadding, "non-zero trailing bit")
		}
	}

	f.UncompressedHeaderSize = r.br.Position() / 8
	f.TileSize = len(f.data) - f.UncompressedHeaderSize - f.CompressedHeaderSize
	if f.TileSize < 0 {
		// Advertised compressed header size overruns the payload. The
		// descriptor is still emitted; the tile region is empty.
		f.TileSize = 0
	}
	return r.err()
}

// readSyncCode reads the three frame sync bytes. A frame is rejected only
// when all three mismatch; a single differing byte is tolerated.
func readSyncCode(r *fieldReader) error {
	b0 := r.readBits(8)
	b1 := r.readBits(8)
	b2 := r.readBits(8)
	if err := r.err(); err != nil {
		return err
	}
	if b0 != syncByte0 && b1 != syncByte1 && b2 != syncByte2 {
		return errors.Wrapf(ErrSyncByte, "got %#02x %#02x %#02x", b0, b1, b2)
	}
	return nil
}

// parseColorConfig consumes the color_config syntax.
func parseColorConfig(r *fieldReader, f *Frame) {
	if f.Profile >= Profile2 {
		if r.readFlag() {
			f.ColorDepth = Depth12
		} else {
			f.ColorDepth = Depth10
		}
	} else {
		f.ColorDepth = Depth8
	}

	f.ColorSpace = ColorSpace(r.readBits(3))
	if f.ColorSpace == CsRGB {
		// RGB is implicitly full swing and, in profiles 1 and 3, 4:4:4.
		f.ColorRange = FullSwing
		if f.Profile == Profile1 || f.Profile == Profile3 {
			r.readBits(1) // Reserved.
		}
		return
	}

	if r.readFlag() {
		f.ColorRange = FullSwing
	}
	if f.Profile == Profile1 || f.Profile == Profile3 {
		f.SubsamplingX = r.readFlag()
		f.SubsamplingY = r.readFlag()
		r.readBits(1) // Reserved.
	} else {
		f.SubsamplingX = true
		f.SubsamplingY = true
	}
}

// parseFrameSize consumes an explicit frame size: 16-bit minus-one width and
// height.
func parseFrameSize(r *fieldReader, f *Frame) {
	f.Width = int(r.readBits(16)) + 1
	f.Height = int(r.readBits(16)) + 1
	computeMiSize(f)
}

// parseRenderSize consumes the render size, defaulting to the frame size
// when no explicit render size is present.
func parseRenderSize(r *fieldReader, f *Frame) {
	if r.readFlag() {
		f.RenderWidth = int(r.readBits(16)) + 1
		f.RenderHeight = int(r.readBits(16)) + 1
		return
	}
	f.RenderWidth = f.Width
	f.RenderHeight = f.Height
}

// parseFrameSizeWithRefs consumes the inter frame size syntax: the first
// reference with a set bit donates its stored slot size, otherwise an
// explicit size follows. A slot that has never been populated donates its
// zero size as-is.
func parseFrameSizeWithRefs(r *fieldReader, f *Frame, s *state) {
	var found bool
	for i := 0; i < len(f.RefFrameIndices) && !found; i++ {
		if r.readFlag() {
			sz := s.refFrameSizes[f.RefFrameIndices[i]]
			f.Width = sz.width
			f.Height = sz.height
			computeMiSize(f)
			found = true
		}
	}
	if !found {
		parseFrameSize(r, f)
	}
	parseRenderSize(r, f)
}

// computeMiSize derives the frame dimensions in 8x8 block units.
func computeMiSize(f *Frame) {
	f.MiCols = (f.Width + 7) >> 3
	f.MiRows = (f.Height + 7) >> 3
}

// parseLoopFilterParams consumes the loop filter syntax. Delta updates
// mutate the persisted deltas in s; the resulting values are copied into f
// whether or not an update occurred.
func parseLoopFilterParams(r *fieldReader, f *Frame, s *state) {
	f.LoopFilterLevel = uint8(r.readBits(6))
	f.LoopFilterSharpness = uint8(r.readBits(3))
	f.LoopFilterDeltaEnabled = r.readFlag()
	if f.LoopFilterDeltaEnabled && r.readFlag() {
		for i := range s.refDeltas {
			if r.readFlag() {
				s.refDeltas[i] = int8(r.readSigned(6))
			}
		}
		for i := range s.modeDeltas {
			if r.readFlag() {
				s.modeDeltas[i] = int8(r.readSigned(6))
			}
		}
	}
	f.LoopFilterRefDeltas = s.refDeltas
	f.LoopFilterModeDeltas = s.modeDeltas
}

// parseQuantizationParams consumes the quantisation syntax.
func parseQuantizationParams(r *fieldReader, f *Frame) {
	f.BaseQIdx = uint8(r.readBits(8))
	f.DeltaQYDc = readDeltaQ(r)
	f.DeltaQUVDc = readDeltaQ(r)
	f.DeltaQUVAc = readDeltaQ(r)
	f.Lossless = f.BaseQIdx == 0 && f.DeltaQYDc == 0 && f.DeltaQUVDc == 0 && f.DeltaQUVAc == 0
}

// readDeltaQ reads a quantiser delta: 4 magnitude bits and a sign bit when
// the preceding flag is set, 0 otherwise.
func readDeltaQ(r *fieldReader) int8 {
	if r.readFlag() {
		return int8(r.readSigned(4))
	}
	return 0
}

// segFeatureBits is the signed magnitude width of each segment feature's
// data. SegLvlSkip carries none.
var segFeatureBits = [SegLvlMax]int{8, 6, 2, 0}

// parseSegmentationParams consumes the segmentation syntax.
func parseSegmentationParams(r *fieldReader, f *Frame) {
	f.SegmentationEnabled = r.readFlag()
	if !f.SegmentationEnabled {
		return
	}

	f.SegmentationUpdateMap = r.readFlag()
	if f.SegmentationUpdateMap {
		for i := range f.SegmentTreeProbs {
			f.SegmentTreeProbs[i] = r.readProb()
		}
		f.SegmentationTemporalUpdate = r.readFlag()
		for i := range f.SegmentPredProbs {
			if f.SegmentationTemporalUpdate {
				f.SegmentPredProbs[i] = r.readProb()
			} else {
				f.SegmentPredProbs[i] = 255
			}
		}
	}

	f.SegmentationUpdateData = r.readFlag()
	if !f.SegmentationUpdateData {
		return
	}
	f.SegmentationAbsOrDeltaUpdate = r.readFlag()
	for i := 0; i < MaxSegments; i++ {
		for j := SegLvlAltQ; j < SegLvlMax; j++ {
			active := r.readFlag()
			f.SegmentFeatureActive[i][j] = active
			if active && segFeatureBits[j] > 0 {
				f.SegmentFeatureData[i][j] = int16(r.readSigned(segFeatureBits[j]))
			}
		}
	}
}

// parseTileInfo consumes the tile geometry syntax. The tile column count is
// coded as increments above the minimum permitted log2, bounded by the
// 64x64 super-block width of the frame.
func parseTileInfo(r *fieldReader, f *Frame) {
	sb64Cols := (f.MiCols + 7) >> 3

	minLog2 := 0
	for maxTileWidthB64<<minLog2 < sb64Cols {
		minLog2++
	}
	maxLog2 := 1
	for sb64Cols>>maxLog2 >= minTileWidthB64 {
		maxLog2++
	}
	maxLog2--

	cols := minLog2
	for cols < maxLog2 && r.readFlag() {
		cols++
	}
	f.TileColsLog2 = uint8(cols)

	rows := r.readBits(1)
	if rows == 1 {
		rows += r.readBits(1)
	}
	f.TileRowsLog2 = uint8(rows)
}
