// SPDX-License-Identifier: MIT
package comm

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Codec turns values into frames and back. Implementations must be safe for
// concurrent use because every rank of a Network shares one Codec.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// GobCodec encodes values with encoding/gob. It is the default codec.
type GobCodec struct{}

// Marshal gob-encodes v.
func (GobCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, fmt.Errorf("gob encode %T: %w", v, err)
	}

	return buf.Bytes(), nil
}

// Unmarshal gob-decodes data into v, which must be a pointer.
func (GobCodec) Unmarshal(data []byte, v any) error {
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(v); err != nil {
		return fmt.Errorf("gob decode %T: %w", v, err)
	}

	return nil
}

// Name returns "gob".
func (GobCodec) Name() string { return "gob" }

// ZstdCodec wraps another codec and compresses its frames with zstd.
// Candidate tables for large vertex counts shrink considerably, which matters
// once frames leave the process.
type ZstdCodec struct {
	inner Codec
	enc   *zstd.Encoder
	dec   *zstd.Decoder
}

// NewZstdCodec returns a compressing wrapper around inner (GobCodec when nil).
func NewZstdCodec(inner Codec) (*ZstdCodec, error) {
	if inner == nil {
		inner = GobCodec{}
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		enc.Close()
		return nil, fmt.Errorf("zstd decoder: %w", err)
	}

	return &ZstdCodec{inner: inner, enc: enc, dec: dec}, nil
}

// Marshal encodes v with the inner codec and compresses the result.
func (z *ZstdCodec) Marshal(v any) ([]byte, error) {
	raw, err := z.inner.Marshal(v)
	if err != nil {
		return nil, err
	}

	return z.enc.EncodeAll(raw, nil), nil
}

// Unmarshal decompresses data and decodes it with the inner codec.
func (z *ZstdCodec) Unmarshal(data []byte, v any) error {
	raw, err := z.dec.DecodeAll(data, nil)
	if err != nil {
		return fmt.Errorf("zstd decode: %w", err)
	}

	return z.inner.Unmarshal(raw, v)
}

// Name returns "zstd+<inner>".
func (z *ZstdCodec) Name() string { return "zstd+" + z.inner.Name() }

// Close releases the encoder and decoder.
func (z *ZstdCodec) Close() {
	z.enc.Close()
	z.dec.Close()
}
