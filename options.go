// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzav

package lzav

import "github.com/sirupsen/logrus"

// CompressOptions configures a Compress call. The zero value is valid and
// disables logging.
type CompressOptions struct {
	// Logger, when non-nil, receives one Debug-level entry per call with the
	// source and output lengths, the reference block count and the literal
	// byte count; skip-heuristic triggers are not logged. Left nil, the
	// compressor does no logging work at all.
	Logger *logrus.Logger
}

// DefaultCompressOptions returns options with logging disabled.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{}
}

func (o *CompressOptions) logger() *logrus.Logger {
	if o == nil {
		return nil
	}
	return o.Logger
}

// DecompressOptions configures a DecompressWithOptions call. The zero value
// is valid and disables logging.
type DecompressOptions struct {
	// Logger, when non-nil, receives one Debug-level entry per call with the
	// source length, the output length and whether decoding succeeded; block
	// counts are not logged.
	Logger *logrus.Logger
}

// DefaultDecompressOptions returns options with logging disabled.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}

func (o *DecompressOptions) logger() *logrus.Logger {
	if o == nil {
		return nil
	}
	return o.Logger
}
