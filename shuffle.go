package randx

import "errors"

// ErrEmptySequence reports selection from a nil or empty sequence.
var ErrEmptySequence = errors.New("randx: sequence is empty")

// Shuffle permutes s in place with the Fisher-Yates algorithm driven by r:
// for every index i from the top down, the element at i swaps with one drawn
// uniformly from [0, i]. Every permutation is equally likely. Slices of
// length 0 or 1 are left untouched without consuming a draw.
func Shuffle[T any](r *Rand, s []T) {
	for i := len(s) - 1; i >= 1; i-- {
		j, _ := r.Int(0, int64(i)+1)
		s[i], s[j] = s[j], s[i]
	}
}

// Element returns a uniformly selected element of s. Fails with
// ErrEmptySequence when s is nil or empty, without consuming a draw.
func Element[T any](r *Rand, s []T) (T, error) {
	var zero T
	if len(s) == 0 {
		return zero, ErrEmptySequence
	}
	i, _ := r.Int(0, int64(len(s)))
	return s[i], nil
}

// Perm returns a uniformly random permutation of the integers [0, n), or
// nil when n <= 0.
func (r *Rand) Perm(n int) []int {
	if n <= 0 {
		return nil
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	Shuffle(r, p)
	return p
}
