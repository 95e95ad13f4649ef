package domain

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultOptionCount is the number of choices shown in multiple-choice mode.
const DefaultOptionCount = 4

// Randomizer is the source of randomness for shuffles and sampling.
// *rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
}

// LockedRand is a Randomizer that is safe for concurrent use.
type LockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLockedRand seeds a LockedRand from the clock.
func NewLockedRand() *LockedRand {
	return &LockedRand{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (r *LockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

// Shuffle returns a uniformly shuffled copy of items (Fisher-Yates).
func Shuffle[T any](rng Randomizer, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// BuildQuestions samples min(n, len(pool)) distinct countries as answering questions.
func BuildQuestions(rng Randomizer, pool []Country, n int) []Question {
	if n <= 0 {
		return []Question{}
	}
	shuffled := Shuffle(rng, pool)
	if n > len(shuffled) {
		n = len(shuffled)
	}
	questions := make([]Question, n)
	for i, c := range shuffled[:n] {
		questions[i] = NewAnsweringQuestion(c)
	}
	return questions
}

// BuildChoosingQuestions produces min(n, poolSize) type-then-pick questions.
func BuildChoosingQuestions(poolSize, n int) []Question {
	if n <= 0 {
		return []Question{}
	}
	if n > poolSize {
		n = poolSize
	}
	questions := make([]Question, n)
	for i := range questions {
		questions[i] = NewChoosingQuestion()
	}
	return questions
}

// BuildNameOptions returns up to k country names: correctName plus distinct
// distractors from pool, in random order.
func BuildNameOptions(rng Randomizer, pool []Country, correctName string, k int) []string {
	return buildOptions(rng, pool, correctName, k, func(c Country) string { return c.Name })
}

// BuildFlagOptions returns up to k flag codes: correctCode plus distinct
// distractors from pool, in random order.
func BuildFlagOptions(rng Randomizer, pool []Country, correctCode string, k int) []string {
	return buildOptions(rng, pool, correctCode, k, func(c Country) string { return c.Code })
}

func buildOptions(rng Randomizer, pool []Country, correct string, k int, key func(Country) string) []string {
	if k < 1 {
		k = 1
	}

	// first occurrence of a key wins; the correct key is never a distractor
	seen := map[string]struct{}{correct: {}}
	others := make([]string, 0, len(pool))
	for _, c := range pool {
		v := key(c)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		others = append(others, v)
	}

	others = Shuffle(rng, others)
	if len(others) > k-1 {
		others = others[:k-1]
	}
	return Shuffle(rng, append([]string{correct}, others...))
}
