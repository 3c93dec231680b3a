package game

import "math/rand"

// Shuffle returns a uniformly random permutation of the indices 0..n-1
// using the Fisher–Yates algorithm. Every permutation is equally likely.
func Shuffle(n int, rng *rand.Rand) []int {
	if n <= 0 {
		return nil
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx
}
