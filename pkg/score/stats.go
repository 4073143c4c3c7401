package score

// Stats summarizes one set of scores.
type Stats struct {
	Count   int     `json:"count" yaml:"count"`
	Sum     int     `json:"sum" yaml:"sum"`
	Average float64 `json:"average" yaml:"average"`
	Max     int     `json:"max" yaml:"max"`
	Min     int     `json:"min" yaml:"min"`
}

// Compute returns the sum, average, maximum and minimum of scores in a single
// pass. The average is computed in floating point.
func Compute(scores []int) (*Stats, error) {
	if len(scores) == 0 {
		return nil, ErrNoScores
	}

	s := &Stats{
		Count: len(scores),
		Max:   scores[0],
		Min:   scores[0],
	}
	for _, v := range scores {
		s.Sum += v
		if v > s.Max {
			s.Max = v
		}
		if v < s.Min {
			s.Min = v
		}
	}
	s.Average = float64(s.Sum) / float64(s.Count)

	return s, nil
}
