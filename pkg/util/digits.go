package util

import "golang.org/x/exp/constraints"

// TrimZeros drops the trailing (most significant) zero digits of a little
// endian digit sequence. The result shares d's backing array; a sequence of
// zeros trims to nil.
func TrimZeros[D constraints.Unsigned](d []D) []D {
	n := len(d)
	for n > 0 && d[n-1] == 0 {
		n--
	}

	if n == 0 {
		return nil
	}

	return d[:n]
}

func IsNormalized[D constraints.Unsigned](d []D) bool {
	return len(d) == 0 || d[len(d)-1] != 0
}
