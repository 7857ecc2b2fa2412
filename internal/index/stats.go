package index

// Stats summarizes how well the fingerprint partitions the dictionary.
//
// A good partition has many buckets and a small MaxBucket. Large buckets
// only cost time; the resolver filters every bucket exactly.
type Stats struct {
	Words     int     `json:"words"`
	Buckets   int     `json:"buckets"`
	MinBucket int     `json:"min_bucket"`
	MaxBucket int     `json:"max_bucket"`
	AvgBucket float64 `json:"avg_bucket"`
}

// Stats computes bucket statistics. An empty index yields zero values.
func (idx *Index) Stats() Stats {
	s := Stats{Words: idx.Len(), Buckets: idx.Buckets()}
	if s.Buckets == 0 {
		return s
	}

	first := true
	total := 0
	for _, words := range idx.buckets {
		n := len(words)
		total += n
		if first || n < s.MinBucket {
			s.MinBucket = n
		}
		if first || n > s.MaxBucket {
			s.MaxBucket = n
		}
		first = false
	}
	s.AvgBucket = float64(total) / float64(s.Buckets)
	return s
}
