package hilbert

// Range returns the integers 0, 1, ..., max-1. The result is empty when max
// is not positive.
func Range(max int) []int {
	return RangeFrom(0, max)
}

// RangeFrom returns the integers min, min+1, ..., max-1 in ascending order.
func RangeFrom(min, max int) []int {
	if min >= max {
		return []int{}
	}
	r := make([]int, 0, max-min)
	for i := min; i < max; i++ {
		r = append(r, i)
	}
	return r
}
