package qrcode

// EncodeBase45 converts b into a sequence of base-45 "digits" (0-44),
// treating b as a single big-endian integer and repeatedly dividing it by
// 45. The result is left-padded with zeros so its length always equals
// ceil(len(b)*8*2/11), the number of alphanumeric characters the QR
// alphanumeric mode needs to hold that many bits.
//
// Mirrors the long-division approach of the original Rust encode_bits: walk
// the bytes MSB-first, carrying the remainder of each division into the
// next byte, and peel off quotient bytes only once a nonzero quotient byte
// has been seen (to avoid leading-zero bytes in the intermediate quotient).
func EncodeBase45(b []byte) []byte {
	digits := make([]byte, 0, len(b)*2)
	rem := make([]byte, len(b))
	copy(rem, b)

	for len(rem) > 0 {
		quotient, r := divmod45(rem)
		digits = append([]byte{r}, digits...)
		rem = quotient
	}

	want := (len(b)*8*2 + 10) / 11
	for len(digits) < want {
		digits = append([]byte{0}, digits...)
	}
	return digits
}

// divmod45 divides the big-endian byte sequence number by 45, returning the
// quotient (with leading zero bytes stripped) and the remainder.
func divmod45(number []byte) ([]byte, byte) {
	var temp uint16
	quotient := make([]byte, 0, len(number))
	seenNonzero := false

	for _, b := range number {
		temp = (temp << 8) + uint16(b)
		q := byte(temp / 45)
		temp %= 45
		if q == 0 && !seenNonzero {
			continue
		}
		seenNonzero = true
		quotient = append(quotient, q)
	}

	return quotient, byte(temp)
}
