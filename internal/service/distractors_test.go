package service

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestSampleExcludesCorrectAndDuplicates(t *testing.T) {
	s := &distractorSampler{rng: rand.New(rand.NewSource(1))}

	candidates := []string{"treble", "chain", "treble", "", "slip stitch", "chain"}
	got := s.sample(candidates, "chain", 5)

	if len(got) != 2 {
		t.Fatalf("got %d distractors %v, want 2", len(got), got)
	}
	seen := make(map[string]struct{})
	for _, d := range got {
		if d == "chain" {
			t.Errorf("sample contains the correct answer")
		}
		if d == "" {
			t.Errorf("sample contains an empty string")
		}
		if _, ok := seen[d]; ok {
			t.Errorf("sample contains duplicate %q", d)
		}
		seen[d] = struct{}{}
	}
}

func TestSampleTruncatesToCount(t *testing.T) {
	s := &distractorSampler{rng: rand.New(rand.NewSource(1))}

	candidates := []string{"a", "b", "c", "d", "e"}
	got := s.sample(candidates, "z", 3)
	if len(got) != 3 {
		t.Errorf("got %d distractors, want 3", len(got))
	}
}

func TestSampleEmptyPool(t *testing.T) {
	s := &distractorSampler{rng: rand.New(rand.NewSource(1))}

	if got := s.sample([]string{"only"}, "only", 3); got != nil {
		t.Errorf("sample() = %v, want nil when every candidate is excluded", got)
	}
	if got := s.sample(nil, "x", 3); got != nil {
		t.Errorf("sample() = %v, want nil for an empty pool", got)
	}
}

func TestSampleDeterministicPerSeed(t *testing.T) {
	candidates := []string{"a", "b", "c", "d", "e", "f"}

	first := (&distractorSampler{rng: rand.New(rand.NewSource(7))}).sample(candidates, "a", 3)
	second := (&distractorSampler{rng: rand.New(rand.NewSource(7))}).sample(candidates, "a", 3)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("same seed produced different samples: %v vs %v", first, second)
	}
}
