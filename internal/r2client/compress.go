package r2client

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// zstdMagic is the frame header of every zstd stream.
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// Compress writes src to dst as a single zstd stream.
func Compress(dst io.Writer, src io.Reader) error {
	encoder, err := zstd.NewWriter(dst, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return fmt.Errorf("compress: create encoder: %w", err)
	}

	if _, err := io.Copy(encoder, src); err != nil {
		_ = encoder.Close()
		return fmt.Errorf("compress: copy: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("compress: close encoder: %w", err)
	}
	return nil
}

// MaybeDecompress returns a reader over rc that transparently decodes zstd
// when the stream starts with the zstd magic number. Plain streams pass
// through unchanged. Closing the result closes rc.
func MaybeDecompress(rc io.ReadCloser) (io.ReadCloser, error) {
	br := bufio.NewReader(rc)
	head, err := br.Peek(len(zstdMagic))
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		_ = rc.Close()
		return nil, fmt.Errorf("decompress: sniff: %w", err)
	}

	if !bytes.Equal(head, zstdMagic) {
		return &readCloser{Reader: br, closers: []func() error{rc.Close}}, nil
	}

	decoder, err := zstd.NewReader(br)
	if err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("decompress: create decoder: %w", err)
	}
	return &readCloser{
		Reader: decoder,
		closers: []func() error{
			func() error { decoder.Close(); return nil },
			rc.Close,
		},
	}, nil
}

type readCloser struct {
	io.Reader
	closers []func() error
}

func (r *readCloser) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
