package rng

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int

	// Perm will return an unbiased permutation of [0, n)
	Perm(n int) []int
}

// perm builds a Fisher-Yates permutation of [0, n) from intn
// math/rand has its own Perm; this is for sources that only supply Intn
func perm(n int, intn func(int) int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	for j := n - 1; j > 0; j-- {
		i := intn(j + 1)
		p[i], p[j] = p[j], p[i]
	}

	return p
}
