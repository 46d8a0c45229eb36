// Package columnar stores many vectors of one type as a struct of arrays.
//
// An Array holds one float64 column per native coordinate and an optional
// validity mask (a roaring bitmap of the valid element indices). Every
// operation of the engine package is available element-wise: the result
// type is resolved once per call and the elements are evaluated in chunks on
// a bounded worker pool.
//
// # Construction
//
//	arr, err := columnar.FromColumns(map[string][]float64{
//		"pt":  {10, 20},
//		"eta": {0.1, -1.2},
//		"phi": {0.5, 2.9},
//		"M":   {0.105, 0.105},
//	})
//
// # Operations
//
//	sum, err := arr.Add(ctx, other)       // element-wise, equal lengths
//	m, err := arr.Column(ctx, "mass")     // any coordinate, native or derived
//	total, err := arr.Sum(ctx)            // reduction over the valid elements
//
// Arrays are immutable: operations return new arrays and may share columns
// with their inputs.
//
// # Encoding
//
// WriteTo and ReadFrom use a self-describing block format with optional
// LZ4 or Zstandard compression and a CRC32-C checksum:
//
//	arr, err := columnar.FromColumns(cols, columnar.WithCompression(columnar.CompressionZstd))
//	_, err = arr.WriteTo(w)
//	got, err := columnar.Decode(ctx, r)
package columnar
