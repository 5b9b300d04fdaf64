package interval

import "golang.org/x/exp/slices"

// Set is an ascending collection of distinct intervals.
//
// The zero value is an empty set. Copies share nothing observable: pushing
// into a copy never changes the set it was copied from.
type Set struct {
	intervals []Interval
}

func NewSet(intervals ...Interval) Set {
	var s Set
	s.Extend(intervals...)
	return s
}

// Push inserts i, keeping the set sorted. Pushing a present interval is a no-op.
func (s *Set) Push(i Interval) {
	pos, found := slices.BinarySearch(s.intervals, i)
	if found {
		return
	}
	// clip so the insert reallocates instead of shifting a shared backing array
	s.intervals = slices.Insert(slices.Clip(s.intervals), pos, i)
}

func (s *Set) Extend(intervals ...Interval) {
	for _, i := range intervals {
		s.Push(i)
	}
}

func (s *Set) Remove(i Interval) {
	pos, found := slices.BinarySearch(s.intervals, i)
	if !found {
		return
	}
	s.intervals = slices.Delete(slices.Clone(s.intervals), pos, pos+1)
}

func (s Set) Contains(i Interval) bool {
	_, found := slices.BinarySearch(s.intervals, i)
	return found
}

// Map applies fn to every interval and returns the rebuilt set.
// Intervals that map to the same value collapse into one.
func (s Set) Map(fn func(Interval) Interval) Set {
	var res Set
	for _, i := range s.intervals {
		res.Push(fn(i))
	}
	return res
}

// Next removes and returns the smallest interval.
// It reports false once the set is drained.
func (s *Set) Next() (Interval, bool) {
	if len(s.intervals) == 0 {
		return 0, false
	}
	i := s.intervals[0]
	s.intervals = s.intervals[1:]
	return i, true
}

func (s Set) Len() int {
	return len(s.intervals)
}

// Slice returns a copy of the intervals in ascending order.
func (s Set) Slice() []Interval {
	return slices.Clone(s.intervals)
}

func (s Set) String() string {
	res := "["
	for n, i := range s.intervals {
		if n > 0 {
			res += " "
		}
		res += i.String()
	}
	return res + "]"
}
