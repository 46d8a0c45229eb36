package benchmark_test

import (
	"context"
	"testing"

	"github.com/hupe1980/hepvec/columnar"
	"github.com/hupe1980/hepvec/ragged"
	"github.com/hupe1980/hepvec/testutil"
)

func BenchmarkRagged_Sum(b *testing.B) {
	ctx := context.Background()
	rng := testutil.NewRNG(3)
	offsets := rng.Offsets(10_000, 10, 1.1)
	x, y, z, t := rng.Columns(int(offsets[len(offsets)-1]))
	flat, err := columnar.FromColumns(map[string][]float64{"px": x, "py": y, "pz": z, "E": t})
	if err != nil {
		b.Fatal(err)
	}
	jets, err := ragged.FromArray(nil, "", offsets, flat)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := jets.Sum(ctx); err != nil {
			b.Fatal(err)
		}
	}
}
