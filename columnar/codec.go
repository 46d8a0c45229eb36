package columnar

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/internal/conv"
	"github.com/hupe1980/hepvec/internal/hash"
	"github.com/hupe1980/hepvec/resource"
	"github.com/hupe1980/hepvec/vtype"
)

// Compression selects how a block payload is stored.
type Compression uint8

const (
	// CompressionNone stores the payload as is.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZstd uses Zstandard (better ratio).
	CompressionZstd Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", c)
	}
}

// ParseCompression parses "none", "lz4" or "zstd".
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZstd, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedCompression, s)
	}
}

const (
	blockVersion = 1
	// A compressed payload larger than this share of the raw size is stored
	// uncompressed.
	maxCompressionRatio = 0.9
)

var blockMagic = [4]byte{'H', 'V', 'E', 'C'}

// blockHeader is the fixed little-endian prefix of an encoded block. It is
// followed by MaskLen bytes of portable roaring bitmap and PayloadLen bytes
// of payload. The raw payload holds the columns in slot order, each value a
// little-endian IEEE-754 float64. Checksum is CRC-32C over mask and payload.
type blockHeader struct {
	Magic        [4]byte
	Version      uint8
	Azimuthal    uint8
	Longitudinal uint8
	Temporal     uint8
	Flavor       uint8
	Compression  uint8
	_            [2]byte
	Count        uint64
	MaskLen      uint32
	RawLen       uint64
	PayloadLen   uint64
	Checksum     uint32
}

var blockHeaderSize = binary.Size(blockHeader{})

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil)
}

// compress returns the stored payload and the compression actually used.
func compress(raw []byte, c Compression) ([]byte, Compression, error) {
	if c == CompressionNone || len(raw) == 0 {
		return raw, CompressionNone, nil
	}

	var out []byte
	switch c {
	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(raw)))
		n, err := lz4.CompressBlock(raw, buf, nil)
		if err != nil {
			return nil, 0, err
		}
		out = buf[:n] // n == 0: incompressible
	case CompressionZstd:
		enc, err := getZstdEncoder()
		if err != nil {
			return nil, 0, err
		}
		out = enc.EncodeAll(raw, nil)
		zstdEncoderPool.Put(enc)
	default:
		return nil, 0, fmt.Errorf("%w: %s", ErrUnsupportedCompression, c)
	}

	if len(out) == 0 || float64(len(out)) > float64(len(raw))*maxCompressionRatio {
		return raw, CompressionNone, nil
	}
	return out, c, nil
}

func decompress(payload []byte, c Compression, rawLen int) ([]byte, error) {
	switch c {
	case CompressionNone:
		if len(payload) != rawLen {
			return nil, corrupt("payload is %d bytes, expected %d", len(payload), rawLen)
		}
		return payload, nil
	case CompressionLZ4:
		raw := make([]byte, rawLen)
		n, err := lz4.UncompressBlock(payload, raw)
		if err != nil {
			return nil, corrupt("lz4: %v", err)
		}
		if n != rawLen {
			return nil, corrupt("lz4 payload decoded to %d bytes, expected %d", n, rawLen)
		}
		return raw, nil
	case CompressionZstd:
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		defer zstdDecoderPool.Put(dec)
		raw, err := dec.DecodeAll(payload, make([]byte, 0, rawLen))
		if err != nil {
			return nil, corrupt("zstd: %v", err)
		}
		if len(raw) != rawLen {
			return nil, corrupt("zstd payload decoded to %d bytes, expected %d", len(raw), rawLen)
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCompression, c)
	}
}

// countingWriter counts the bytes written through it.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}

// WriteTo implements io.WriterTo by encoding a as one block.
func (a *Array) WriteTo(w io.Writer) (int64, error) {
	return a.EncodeTo(context.Background(), w)
}

// EncodeTo writes a as one block. The payload is compressed with the
// configured compression, and writes are throttled by the controller.
func (a *Array) EncodeTo(ctx context.Context, w io.Writer) (int64, error) {
	o := a.o()
	start := time.Now()
	cw := &countingWriter{w: resource.NewRateLimitedWriter(ctx, w, o.controller)}

	c, err := a.encode(ctx, cw, o)
	o.metrics.RecordEncode(cw.n, time.Since(start), err)
	o.logger.Debug("block encoded",
		"type", a.desc.String(),
		"count", a.n,
		"compression", c.String(),
		"bytes", cw.n,
		"error", err,
	)
	return cw.n, err
}

func (a *Array) encode(ctx context.Context, w io.Writer, o *options) (Compression, error) {
	if err := ctx.Err(); err != nil {
		return CompressionNone, err
	}

	dim := a.desc.Dim()
	rawLen := int64(dim) * int64(a.n) * 8
	if err := o.controller.AcquireMemory(ctx, rawLen); err != nil {
		return CompressionNone, err
	}
	defer o.controller.ReleaseMemory(rawLen)

	raw := make([]byte, rawLen)
	off := 0
	for k := 0; k < dim; k++ {
		for _, x := range a.cols[k][:a.n] {
			binary.LittleEndian.PutUint64(raw[off:], math.Float64bits(x))
			off += 8
		}
	}

	payload, c, err := compress(raw, o.compression)
	if err != nil {
		return c, err
	}

	var mask []byte
	if a.mask != nil {
		if mask, err = a.mask.ToBytes(); err != nil {
			return c, err
		}
	}
	maskLen, err := conv.IntToUint32(len(mask))
	if err != nil {
		return c, err
	}

	h := blockHeader{
		Magic:        blockMagic,
		Version:      blockVersion,
		Azimuthal:    uint8(a.desc.Azimuthal()),
		Longitudinal: uint8(a.desc.Longitudinal()),
		Temporal:     uint8(a.desc.Temporal()),
		Flavor:       uint8(a.desc.Flavor()),
		Compression:  uint8(c),
		Count:        uint64(a.n),
		MaskLen:      maskLen,
		RawLen:       uint64(rawLen),
		PayloadLen:   uint64(len(payload)),
		Checksum:     hash.CRC32C(mask, payload),
	}
	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return c, err
	}
	if _, err := w.Write(mask); err != nil {
		return c, err
	}
	_, err = w.Write(payload)
	return c, err
}

// ReadFrom implements io.ReaderFrom by decoding one block into a. It must
// only be called on an Array that is not shared yet, typically a zero one.
func (a *Array) ReadFrom(r io.Reader) (int64, error) {
	cr := &countingReader{r: r}
	out, err := decode(context.Background(), cr, a.o())
	if err != nil {
		return cr.n, err
	}
	*a = *out
	return cr.n, nil
}

// Decode reads one block written by EncodeTo.
func Decode(ctx context.Context, r io.Reader, optFns ...Option) (*Array, error) {
	return decode(ctx, r, applyOptions(optFns))
}

func decode(ctx context.Context, r io.Reader, o *options) (*Array, error) {
	start := time.Now()
	cr := &countingReader{r: resource.NewRateLimitedReader(ctx, r, o.controller)}

	a, err := readBlock(ctx, cr, o)
	o.metrics.RecordDecode(cr.n, time.Since(start), err)
	switch {
	case errors.Is(err, ErrCorrupt), errors.Is(err, ErrChecksum):
		o.logger.Warn("corrupt block", "bytes", cr.n, "error", err)
	default:
		o.logger.Debug("block decoded", "bytes", cr.n, "error", err)
	}
	return a, err
}

func readBlock(ctx context.Context, r io.Reader, o *options) (*Array, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var h blockHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, corrupt("truncated header")
		}
		return nil, err
	}
	if h.Magic != blockMagic {
		return nil, corrupt("bad magic %q", h.Magic[:])
	}
	if h.Version != blockVersion {
		return nil, fmt.Errorf("%w: %d", ErrVersion, h.Version)
	}

	sys := coords.System{
		Azimuthal:    coords.Azimuthal(h.Azimuthal),
		Longitudinal: coords.Longitudinal(h.Longitudinal),
		Temporal:     coords.Temporal(h.Temporal),
	}
	if !sys.Valid() {
		return nil, corrupt("invalid coordinate system %d/%d/%d", h.Azimuthal, h.Longitudinal, h.Temporal)
	}
	desc, err := vtype.New(sys, coords.Flavor(h.Flavor))
	if err != nil {
		return nil, corrupt("%v", err)
	}

	if h.Count > math.MaxUint32+1 {
		return nil, corrupt("element count %d out of range", h.Count)
	}
	n, err := conv.Uint64ToInt(h.Count)
	if err != nil {
		return nil, corrupt("%v", err)
	}
	if want := uint64(desc.Dim()) * h.Count * 8; h.RawLen != want {
		return nil, corrupt("raw length %d, expected %d", h.RawLen, want)
	}
	if h.PayloadLen > h.RawLen {
		return nil, corrupt("payload length %d exceeds raw length %d", h.PayloadLen, h.RawLen)
	}
	// Array containers take 2 bytes per element plus small headers.
	if uint64(h.MaskLen) > 4*h.Count+1<<16 {
		return nil, corrupt("mask length %d out of range", h.MaskLen)
	}
	c := Compression(h.Compression)
	if c > CompressionZstd {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCompression, c)
	}

	scratch := int64(h.MaskLen) + int64(h.PayloadLen) + int64(h.RawLen)
	if err := o.controller.AcquireMemory(ctx, scratch); err != nil {
		return nil, err
	}
	defer o.controller.ReleaseMemory(scratch)

	body := make([]byte, int(h.MaskLen)+int(h.PayloadLen))
	if _, err := io.ReadFull(r, body); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, corrupt("truncated body")
		}
		return nil, err
	}
	mask, payload := body[:h.MaskLen], body[h.MaskLen:]
	if sum := hash.CRC32C(mask, payload); sum != h.Checksum {
		return nil, fmt.Errorf("%w: stored %08x, computed %08x", ErrChecksum, h.Checksum, sum)
	}

	raw, err := decompress(payload, c, int(h.RawLen))
	if err != nil {
		return nil, err
	}

	a := alloc(desc, n, o)
	rd := bytes.NewReader(raw)
	for k := 0; k < desc.Dim(); k++ {
		if err := binary.Read(rd, binary.LittleEndian, a.cols[k]); err != nil {
			return nil, corrupt("payload: %v", err)
		}
	}

	if len(mask) > 0 {
		m := roaring.New()
		if err := m.UnmarshalBinary(mask); err != nil {
			return nil, corrupt("mask: %v", err)
		}
		m.RemoveRange(h.Count, math.MaxUint32+1)
		a.mask = m
	}
	return a, nil
}
