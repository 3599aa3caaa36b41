// Package records turns coordinate text into core points: one point per line,
// coordinates separated by commas ("162,817,812"). Blank lines are ignored;
// anything else that does not parse is rejected with its line number, so the
// clustering engine only ever receives fully-formed points.
//
// Open transparently decompresses inputs by file extension:
//
//	.gz  – gzip (klauspost/compress/gzip)
//	.zst – zstandard (klauspost/compress/zstd)
//	.lz4 – lz4 frame (pierrec/lz4/v4)
package records
