package benchmark_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/hupe1980/hepvec"
	"github.com/hupe1980/hepvec/columnar"
)

func BenchmarkCodec(b *testing.B) {
	ctx := context.Background()
	a := momenta(b, 100_000)

	for _, c := range []columnar.Compression{columnar.CompressionNone, columnar.CompressionLZ4, columnar.CompressionZstd} {
		var block bytes.Buffer
		if _, err := hepvec.WriteArray(ctx, &block, a, hepvec.WithCompression(c)); err != nil {
			b.Fatal(err)
		}
		data := block.Bytes()

		b.Run("encode/"+c.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(a.Len() * 4 * 8))
			var buf bytes.Buffer
			for b.Loop() {
				buf.Reset()
				if _, err := hepvec.WriteArray(ctx, &buf, a, hepvec.WithCompression(c)); err != nil {
					b.Fatal(err)
				}
			}
			b.ReportMetric(float64(len(data))/float64(a.Len()*4*8), "ratio")
		})

		b.Run("decode/"+c.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(a.Len() * 4 * 8))
			for b.Loop() {
				if _, err := hepvec.ReadArray(ctx, bytes.NewReader(data)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
