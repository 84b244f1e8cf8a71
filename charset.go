package randx

import "errors"

// ErrInvalidClasses reports a class mask whose set bits name no known
// character class.
var ErrInvalidClasses = errors.New("randx: classes must include a known character class")

// CharClass selects which character classes compose the alphabet used by
// String. Classes combine with bitwise or. The zero value falls back to
// Alphanumeric.
type CharClass uint8

const (
	Lower   CharClass = 1 << iota // lowercase ASCII letters
	Upper                         // uppercase ASCII letters
	Digits                        // decimal digits
	Symbols                       // printable ASCII punctuation
)

// Alphanumeric selects letters of both cases plus digits.
const Alphanumeric = Lower | Upper | Digits

const (
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()-_=+[]{}<>?"
)

// alphabet composes the selected classes in a fixed order so equal masks
// always produce equal alphabets.
func alphabet(classes CharClass) string {
	if classes == 0 {
		classes = Alphanumeric
	}
	var a []byte
	if classes&Lower != 0 {
		a = append(a, lowerChars...)
	}
	if classes&Upper != 0 {
		a = append(a, upperChars...)
	}
	if classes&Digits != 0 {
		a = append(a, digitChars...)
	}
	if classes&Symbols != 0 {
		a = append(a, symbolChars...)
	}
	return string(a)
}

// String returns a string of n characters drawn uniformly from the alphabet
// selected by classes; a zero mask selects Alphanumeric. Fails with
// ErrInvalidLength when n <= 0 and with ErrInvalidClasses when the mask
// composes an empty alphabet, in both cases without consuming a draw.
func (r *Rand) String(n int, classes CharClass) (string, error) {
	if n <= 0 {
		return "", ErrInvalidLength
	}
	set := alphabet(classes)
	if set == "" {
		return "", ErrInvalidClasses
	}
	b := make([]byte, n)
	for i := range b {
		j, err := r.Int(0, int64(len(set)))
		if err != nil {
			return "", err
		}
		b[i] = set[j]
	}
	return string(b), nil
}
