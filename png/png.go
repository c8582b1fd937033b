// Package png implements a minimal, from-scratch PNG encoder for 1-bit
// module grids: signature, IHDR, a single IDAT chunk wrapping one stored
// (uncompressed) deflate block, and IEND. It does not implement general
// deflate compression, interlacing, or any color type other than
// grayscale — this is a purpose-built serializer for QR code output, not a
// general image codec, and deliberately does not use image/png or
// compress/flate.
package png

import (
	"bytes"
	"fmt"
)

var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// pixelsPerModule is the number of output pixels, per side, each module
// expands to.
const pixelsPerModule = 8

// Encode renders a square module grid (1 = dark, 0 = light) as a PNG byte
// stream. Each module becomes an 8x8 block of 1-bit grayscale pixels, dark
// modules rendered as black (byte 0x00, eight samples of 0) and light modules
// as white (byte 0xFF, eight samples of 1), inverted from the QR convention
// where 1 means dark.
func Encode(modules [][]byte) ([]byte, error) {
	n := len(modules)
	if n == 0 {
		return nil, fmt.Errorf("png: empty module grid")
	}
	for _, row := range modules {
		if len(row) != n {
			return nil, fmt.Errorf("png: module grid must be square, got row of length %d in a %d-wide grid", len(row), n)
		}
	}

	raw := expandPixels(modules)

	var out bytes.Buffer
	out.Write(pngSignature)
	out.Write(chunk("IHDR", ihdrData(n*pixelsPerModule)))
	out.Write(chunk("IDAT", zlibStoredBlock(raw)))
	out.Write(iendChunk())

	return out.Bytes(), nil
}

// expandPixels turns each module row into pixelsPerModule scanlines of n
// bytes (one byte, i.e. eight 1-bit pixels, per module), each scanline
// prefixed by a filter-type-0 byte, inverting color (dark module 1 -> byte
// 0x00, light module 0 -> byte 0xFF).
func expandPixels(modules [][]byte) []byte {
	n := len(modules)
	raw := make([]byte, 0, n*pixelsPerModule*(1+n))
	for _, row := range modules {
		scanline := make([]byte, n)
		for c, v := range row {
			if v == 1 {
				scanline[c] = 0x00
			} else {
				scanline[c] = 0xFF
			}
		}
		for i := 0; i < pixelsPerModule; i++ {
			raw = append(raw, 0x00) // filter type: none
			raw = append(raw, scanline...)
		}
	}
	return raw
}

func chunk(chunkType string, data []byte) []byte {
	var out bytes.Buffer
	writeUint32BE(&out, uint32(len(data)))
	out.WriteString(chunkType)
	out.Write(data)
	writeUint32BE(&out, crc32(append([]byte(chunkType), data...)))
	return out.Bytes()
}

func ihdrData(dim int) []byte {
	var out bytes.Buffer
	writeUint32BE(&out, uint32(dim)) // width
	writeUint32BE(&out, uint32(dim)) // height
	out.WriteByte(1)                 // bit depth
	out.WriteByte(0)                 // color type: grayscale
	out.WriteByte(0)                 // compression method
	out.WriteByte(0)                 // filter method
	out.WriteByte(0)                 // interlace method
	return out.Bytes()
}

// zlibStoredBlock wraps raw in a minimal zlib stream containing exactly one
// stored (uncompressed) deflate block.
func zlibStoredBlock(raw []byte) []byte {
	var out bytes.Buffer
	out.Write([]byte{0x78, 0x01}) // zlib header: deflate, default window, no preset dict

	out.WriteByte(0x01) // BFINAL=1, BTYPE=00 (stored)

	length := uint16(len(raw))
	out.WriteByte(byte(length))
	out.WriteByte(byte(length >> 8))
	nlen := ^length
	out.WriteByte(byte(nlen))
	out.WriteByte(byte(nlen >> 8))

	out.Write(raw)
	writeUint32BE(&out, adler32(raw))
	return out.Bytes()
}

func iendChunk() []byte {
	return []byte{0, 0, 0, 0, 0x49, 0x45, 0x4E, 0x44, 0xAE, 0x42, 0x60, 0x82}
}

func writeUint32BE(buf *bytes.Buffer, v uint32) {
	buf.WriteByte(byte(v >> 24))
	buf.WriteByte(byte(v >> 16))
	buf.WriteByte(byte(v >> 8))
	buf.WriteByte(byte(v))
}
