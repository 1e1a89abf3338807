package core

import (
	"fmt"

	"github.com/huangsam/whatsmygrade/schema"
)

// Category is a named grading component with its declared weight. Weights
// are non-negative and act only as a normalizing denominator; they need not
// sum to 1.
type Category struct {
	Name   string
	Weight float64
}

// Scheme is the immutable grading scheme built from a [breakdown] section.
// The declaration order of names is preserved, including duplicates; the
// weight lookup is last-write-wins for a duplicated name.
type Scheme struct {
	names   []string
	weights map[string]float64
}

// NewScheme builds a Scheme from the accumulated breakdown categories.
func NewScheme(categories []Category) *Scheme {
	s := &Scheme{
		names:   make([]string, 0, len(categories)),
		weights: make(map[string]float64, len(categories)),
	}
	for _, c := range categories {
		s.names = append(s.names, c.Name)
		s.weights[c.Name] = c.Weight
	}
	return s
}

// Categories returns the category names in declaration order, duplicates
// preserved as stored.
func (s *Scheme) Categories() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Weight returns the stored weight for a category name.
func (s *Scheme) Weight(name string) float64 {
	return s.weights[name]
}

// WeightProportional returns a category's weight as a fraction of the total
// weight across the scheme.
func (s *Scheme) WeightProportional(name string) float64 {
	var total float64
	for _, w := range s.weights {
		total += w
	}
	return s.weights[name] / total
}

// ComputeGrade returns a grade (where 100% is 1.0) for the values given in
// the context of this scheme. Every unique category of the scheme must be
// present in values; a missing one is a UserError naming the category. An
// empty scheme computes to 0.0.
func (s *Scheme) ComputeGrade(values map[string]float64) (float64, error) {
	data := make([]weightedPart, 0, len(s.weights))

	for _, name := range s.uniqueNames() {
		value, ok := values[name]
		if !ok {
			return 0, schema.NewUserError(fmt.Sprintf("Missing grade entry for %q", name))
		}
		data = append(data, weightedPart{value: value, weight: s.weights[name]})
	}

	return weightedAverage(data), nil
}

// MinValueForUnknown scans candidate percentages 0..100 ascending and
// returns the first one for which substituting p/100 for every unknown
// category yields a grade strictly greater than passing. ok is false when
// even 100 does not exceed the threshold.
func (s *Scheme) MinValueForUnknown(unknowns []string, knownValues map[string]float64, passing float64) (minPercent int, ok bool, err error) {
	for p := 0; p <= 100; p++ {
		trial := make(map[string]float64, len(knownValues)+len(unknowns))
		for k, v := range knownValues {
			trial[k] = v
		}
		for _, u := range unknowns {
			trial[u] = float64(p) / 100
		}

		grade, err := s.ComputeGrade(trial)
		if err != nil {
			return 0, false, err
		}
		if grade > passing {
			return p, true, nil
		}
	}
	return 0, false, nil
}

// uniqueNames returns the scheme's category names deduplicated in
// first-seen order, matching how the weight lookup collapses duplicates.
func (s *Scheme) uniqueNames() []string {
	seen := make(map[string]struct{}, len(s.names))
	out := make([]string, 0, len(s.weights))
	for _, name := range s.names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

type weightedPart struct {
	value  float64
	weight float64
}

// weightedAverage returns sum(value*weight)/sum(weight), or 0.0 for an
// empty input.
func weightedAverage(data []weightedPart) float64 {
	if len(data) == 0 {
		return 0.0
	}
	var weightedTotal, sumWeights float64
	for _, part := range data {
		weightedTotal += part.value * part.weight
		sumWeights += part.weight
	}
	return weightedTotal / sumWeights
}
