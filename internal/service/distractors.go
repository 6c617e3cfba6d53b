package service

import (
	"math/rand"
)

// distractorSampler draws wrong multiple-choice options from a candidate
// pool using the compiler's seeded generator, so identical inputs always
// produce identical samples.
type distractorSampler struct {
	rng *rand.Rand
}

// sample returns up to count candidates, deduplicated and with the correct
// answer (and empty strings) removed. Input order plus the seeded shuffle
// decide which candidates are picked.
func (s *distractorSampler) sample(candidates []string, correct string, count int) []string {
	pool := dedupeExcluding(candidates, correct)
	if len(pool) == 0 {
		return nil
	}

	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if len(pool) > count {
		pool = pool[:count]
	}
	return pool
}

// dedupeExcluding removes duplicates, empty strings and the correct answer,
// preserving first-seen order.
func dedupeExcluding(candidates []string, correct string) []string {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c == "" || c == correct {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
