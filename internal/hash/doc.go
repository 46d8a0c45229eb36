// Package hash provides the CRC32-Castagnoli checksums of the block codec.
//
// Go's hash/crc32 uses the SSE4.2 and ARM CRC instructions when present.
//
//	sum := hash.CRC32C(header, mask, payload)
//
//	h := hash.NewCRC32C()
//	h.Write(header)
//	h.Write(payload)
//	sum := h.Sum32()
package hash
