// Package qrcode implements the QR code symbol construction pipeline for a
// fixed configuration: version 2 (25x25 modules), error correction level L,
// alphanumeric mode carrying a base-45 encoding of an arbitrary byte
// secret. It does not decode QR codes and does not support any other
// version, EC level, or encoding mode.
package qrcode

import "fmt"

// MaxInputBytes is the largest secret this pipeline can encode: 256 bits.
const MaxInputBytes = 32

// quietZone is the width, in modules, of the blank border added around the
// 25x25 symbol in the exported grid.
const quietZone = 4

// ExportedSize is the side length, in modules, of the grid returned by
// Encode, including the quiet zone.
const ExportedSize = matrixSize + 2*quietZone

// Encode runs the full pipeline — base-45 encoding, data framing,
// Reed-Solomon error correction, matrix construction, mask selection, and
// format-string embedding — and returns the final ExportedSize x
// ExportedSize module grid (1 = dark, 0 = light) with its quiet zone.
func Encode(secret []byte) ([ExportedSize][ExportedSize]byte, error) {
	var out [ExportedSize][ExportedSize]byte

	if len(secret) == 0 {
		return out, fmt.Errorf("qrcode: secret must be 1-%d bytes, got 0", MaxInputBytes)
	}
	if len(secret) > MaxInputBytes {
		return out, fmt.Errorf("qrcode: secret must be 1-%d bytes, got %d", MaxInputBytes, len(secret))
	}

	digits := EncodeBase45(secret)
	frameBits := frameData(digits)
	message := packMessageBytes(frameBits)
	codeword := encodeReedSolomon(message)
	dataBits := codewordBits(codeword)

	m := newMatrix()
	m.placeFinderPatterns()
	m.placeAlignmentPattern()
	m.placeDarkModule()
	m.placeTimingPatterns()
	m.reserveFormatArea()
	m.fillData(dataBits)

	maskIdx, masked := chooseMask(m)
	m.data = masked
	m.placeFormatBits(buildFormatBits(maskIdx))

	for r := 0; r < matrixSize; r++ {
		for c := 0; c < matrixSize; c++ {
			out[r+quietZone][c+quietZone] = m.data[r][c]
		}
	}
	return out, nil
}
