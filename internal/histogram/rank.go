package histogram

import "slices"

// RankSeries holds one count per distinct key in ascending order. Reading it
// back to front gives rank order: rank 1 is the highest count.
type RankSeries []int

// BuildRanks extracts the counts of t and sorts them ascending. Key identity
// is discarded, so equal counts carry no relative order.
func BuildRanks(t *FrequencyTable) RankSeries {
	ranks := make(RankSeries, 0, t.Len())
	for _, k := range t.order {
		ranks = append(ranks, t.counts[k])
	}
	slices.Sort(ranks)
	return ranks
}

// Len returns the number of ranks.
func (r RankSeries) Len() int {
	return len(r)
}

// Max returns the highest count, or 0 for an empty series.
func (r RankSeries) Max() int {
	if len(r) == 0 {
		return 0
	}
	return r[len(r)-1]
}

// Descending returns a copy in plotting order, highest count first.
func (r RankSeries) Descending() []int {
	out := slices.Clone([]int(r))
	slices.Reverse(out)
	return out
}
