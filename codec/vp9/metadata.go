/*
DESCRIPTION
  metadata.go provides parsing of the VP9 codec private data that containers
  use to advertise stream parameters out-of-band.

AUTHORS
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


package vp9

import "github.com/pkg/errors"

// Codec private feature ids.
const (
	featureProfile = iota + 1
	featureLevel
	featureBitDepth
	featureSubsampling
)

// Metadata holds the stream parameters advertised in the VP9 codec private
// data.
type Metadata struct {
	Profile     Profile
	Level       Level
	ColorDepth  ColorDepth
	Subsampling Subsampling
}

// ParseCodecPrivate parses codec private data: a sequence of one byte
// (id, value) pairs. Unknown ids are ignored and unknown values map to the
// unknown variant of their type, but each of the profile, level, bit depth
// and chroma subsampling ids must be present.
func ParseCodecPrivate(data []byte) (Metadata, error) {
	var (
		md   Metadata
		seen [featureSubsampling + 1]bool
	)
	for i := 0; i+1 < len(data); i += 2 {
		id, v := data[i], data[i+1]
		switch id {
		case featureProfile:
			md.Profile = profileFromByte(v)
		case featureLevel:
			md.Level = levelFromByte(v)
		case featureBitDepth:
			md.ColorDepth = depthFromByte(v)
		case featureSubsampling:
			md.Subsampling = subsamplingFromByte(v)
		default:
			continue
		}
		seen[id] = true
	}

	for id, name := range map[int]string{
		featureProfile:     "profile",
		featureLevel:       "level",
		featureBitDepth:    "bit depth",
		featureSubsampling: "chroma subsampling",
	} {
		if !seen[id] {
			return Metadata{}, errors.Wrapf(ErrMetadata, "no %s", name)
		}
	}
	return md, nil
}
