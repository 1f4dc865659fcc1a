/*
DESCRIPTION
  vp9info is a program that reads an IVF file and logs the stream parameters
  and per-frame metadata parsed from each VP9 packet.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package main provides vp9info, an inspection tool for VP9 streams in IVF
// files.
package main

import (
	"flag"
	"io"
	"os"

	"github.com/ausocean/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/vp9/codec/vp9"
	"github.com/ausocean/vp9/container/ivf"
)

// Logging related constants.
const (
	logPath      = "/var/log/vp9info/vp9info.log"
	logMaxSize   = 100 // MB
	logMaxBackup = 10
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
	logSuppress  = true
)

func main() {
	inPtr := flag.String("in", "", "Path to the IVF file to inspect.")
	logPtr := flag.String("log", logPath, "Path to the rotated log file.")
	flag.Parse()

	// Create lumberjack logger to handle logging to file.
	fileLog := &lumberjack.Logger{
		Filename:   *logPtr,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}

	// Create logger that we call methods on to l.
	l := logging.New(logVerbosity, io.MultiWriter(fileLog, os.Stdout), logSuppress)

	if *inPtr == "" {
		l.Fatal("no input file specified, use -in")
	}

	f, err := os.Open(*inPtr)
	if err != nil {
		l.Fatal("could not open input file", "error", err)
	}
	defer f.Close()

	in, err := ivf.NewReader(f)
	if err != nil {
		l.Fatal("could not read IVF header", "error", err)
	}
	l.Info("stream", "fourcc", in.FourCC(), "width", in.Width(), "height", in.Height(),
		"frameRate", in.FrameRateRate(), "frameRateScale", in.FrameRateScale(),
		"frames", in.FrameCount())

	p := vp9.NewParser()
	var n int
	for {
		chunk, err := in.ReadFrame()
		if err == io.EOF {
			break
		}
		if err != nil {
			l.Fatal("could not read IVF frame", "error", err)
		}

		frames, err := p.ParsePacket(chunk.Data)
		if err != nil {
			l.Fatal("could not parse packet", "timestamp", chunk.Timestamp, "error", err)
		}

		for _, fr := range frames {
			if fr.ShowExistingFrame {
				l.Info("frame", "n", n, "timestamp", chunk.Timestamp,
					"showExisting", true, "slot", fr.FrameToShowMapIdx)
				n++
				continue
			}
			l.Info("frame", "n", n, "timestamp", chunk.Timestamp,
				"type", fr.FrameType.String(), "profile", int(fr.Profile),
				"show", fr.ShowFrame, "intraOnly", fr.IntraOnly,
				"width", fr.Width, "height", fr.Height,
				"renderWidth", fr.RenderWidth, "renderHeight", fr.RenderHeight,
				"tileColsLog2", fr.TileColsLog2, "tileRowsLog2", fr.TileRowsLog2,
				"baseQIdx", fr.BaseQIdx, "lossless", fr.Lossless,
				"refreshFlags", fr.RefreshFrameFlags,
				"headerSize", fr.UncompressedHeaderSize,
				"compressedHeaderSize", fr.CompressedHeaderSize,
				"tileSize", fr.TileSize)
			n++
		}
	}
	l.Info("done", "frames", n)
}
