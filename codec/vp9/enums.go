/*
DESCRIPTION
  enums.go provides the enumerated types used to describe VP9 frames and
  codec private metadata, and their conversions from bitstream encodings.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


package vp9

// FrameType is the type of a VP9 frame.
type FrameType uint8

// VP9 frame types.
const (
	KeyFrame FrameType = iota
	NonKeyFrame
)

// String implements fmt.Stringer.
func (t FrameType) String() string {
	if t == KeyFrame {
		return "key"
	}
	return "non-key"
}

// Profile is a VP9 bitstream profile. Conversion from an integer encoding is
// total; unknown encodings map to ProfileUnknown rather than aborting.
type Profile uint8

// VP9 profiles.
const (
	Profile0 Profile = iota
	Profile1
	Profile2
	Profile3
	ProfileUnknown
)

// profileFromByte converts a codec private profile value to a Profile.
func profileFromByte(b byte) Profile {
	if b <= 3 {
		return Profile(b)
	}
	return ProfileUnknown
}

// ColorDepth is the bit depth of the frame samples.
type ColorDepth uint8

// Sample bit depths.
const (
	Depth8 ColorDepth = iota
	Depth10
	Depth12
	DepthUnknown
)

// depthFromByte converts a codec private bit depth value to a ColorDepth.
func depthFromByte(b byte) ColorDepth {
	switch b {
	case 8:
		return Depth8
	case 10:
		return Depth10
	case 12:
		return Depth12
	default:
		return DepthUnknown
	}
}

// ColorSpace is the colour space of the stream, using the tags from the VP9
// bitstream syntax. The values match the 3-bit encoding in the uncompressed
// header.
type ColorSpace uint8

// Colour spaces.
const (
	CsUnknown ColorSpace = iota
	CsBt601
	CsBt709
	CsSmpte170
	CsSmpte240
	CsBt2020
	CsReserved
	CsRGB
)

// ColorRange is the colour range of the stream.
type ColorRange uint8

// Colour ranges.
const (
	// StudioSwing is the studio swing representation: Y in [16..235],
	// U and V in [16..240] for 8 bit depth.
	StudioSwing ColorRange = iota

	// FullSwing is the full swing representation: [0..255] for 8 bit depth.
	FullSwing
)

// ResetFrameContext describes which frame contexts a frame resets. All four
// 2-bit encodings are meaningful, so there is no unknown variant.
type ResetFrameContext uint8

// Frame context reset modes.
const (
	ResetNo0 ResetFrameContext = iota // Do not reset any frame context.
	ResetNo1                          // Do not reset any frame context.
	ResetSingle                       // Reset only the context specified by the frame context index.
	ResetAll                          // Reset all frame contexts.
)

// InterpolationFilter is the filter selection for inter prediction.
type InterpolationFilter uint8

// Interpolation filters.
const (
	Eighttap InterpolationFilter = iota
	EighttapSmooth
	EighttapSharp
	Bilinear
	Switchable
)

// Level is a VP9 level advertised in codec private metadata.
type Level uint8

// VP9 levels.
const (
	Level1 Level = iota
	Level1_1
	Level2
	Level2_1
	Level3
	Level3_1
	Level4
	Level4_1
	Level5
	Level5_1
	Level5_2
	Level6
	Level6_1
	Level6_2
	LevelUnknown
)

// levelFromByte converts a codec private level value, encoded as
// 10*tens+tenths (e.g. 31 is level 3.1), to a Level.
func levelFromByte(b byte) Level {
	switch b {
	case 10:
		return Level1
	case 11:
		return Level1_1
	case 20:
		return Level2
	case 21:
		return Level2_1
	case 30:
		return Level3
	case 31:
		return Level3_1
	case 40:
		return Level4
	case 41:
		return Level4_1
	case 50:
		return Level5
	case 51:
		return Level5_1
	case 52:
		return Level5_2
	case 60:
		return Level6
	case 61:
		return Level6_1
	case 62:
		return Level6_2
	default:
		return LevelUnknown
	}
}

// String implements fmt.Stringer.
func (l Level) String() string {
	switch l {
	case Level1:
		return "1"
	case Level1_1:
		return "1.1"
	case Level2:
		return "2"
	case Level2_1:
		return "2.1"
	case Level3:
		return "3"
	case Level3_1:
		return "3.1"
	case Level4:
		return "4"
	case Level4_1:
		return "4.1"
	case Level5:
		return "5"
	case Level5_1:
		return "5.1"
	case Level5_2:
		return "5.2"
	case Level6:
		return "6"
	case Level6_1:
		return "6.1"
	case Level6_2:
		return "6.2"
	default:
		return "unknown"
	}
}

// Subsampling is the chroma subsampling mode advertised in codec private
// metadata.
type Subsampling uint8

// Chroma subsampling modes.
const (
	Yuv420 Subsampling = iota
	Yuv420Colocated
	Yuv422
	Yuv444
	SubsamplingUnknown
)

// subsamplingFromByte converts a codec private chroma subsampling value to a
// Subsampling.
func subsamplingFromByte(b byte) Subsampling {
	if b <= 3 {
		return Subsampling(b)
	}
	return SubsamplingUnknown
}

// Segment-level features. SegLvlSkip carries no data; its feature data is
// always 0.
const (
	SegLvlAltQ     = iota // Alternate quantiser.
	SegLvlAltL            // Alternate loop filter level.
	SegLvlRefFrame        // Reference frame override.
	SegLvlSkip            // Skip residual coding.

	SegLvlMax
)

// MaxSegments is the number of segments in the VP9 segmentation map.
const MaxSegments = 8
