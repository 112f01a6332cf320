package array

import (
	"sort"
	"time"
)

// GroupByTime buckets the time dimension by the period key function and
// collapses each bucket through reduce. key maps a sample time to its
// period start; reduce sees the bucket's values and matching timestamps.
// The result keeps the time dimension in place with one tick per period,
// ordered chronologically. Name, attributes and other coordinates carry
// over.
func (a *DataArray) GroupByTime(key func(time.Time) time.Time, reduce func(values []float64, times []time.Time) float64) (*DataArray, error) {
	times, err := a.TimeCoord()
	if err != nil {
		return nil, err
	}

	type bucket struct {
		start time.Time
		idx   []int
	}
	byStart := make(map[int64]*bucket)
	var buckets []*bucket
	for i, t := range times {
		start := key(t)
		b, ok := byStart[start.Unix()]
		if !ok {
			b = &bucket{start: start}
			byStart[start.Unix()] = b
			buckets = append(buckets, b)
		}
		b.idx = append(b.idx, i)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].start.Before(buckets[j].start) })

	starts := make([]time.Time, len(buckets))
	bucketTimes := make([][]time.Time, len(buckets))
	for i, b := range buckets {
		starts[i] = b.start
		ts := make([]time.Time, len(b.idx))
		for j, k := range b.idx {
			ts[j] = times[k]
		}
		bucketTimes[i] = ts
	}

	var vals []float64
	return a.TransformAlong(DimTime, len(buckets), TimeCoord(starts), func(series, out []float64) {
		for i, b := range buckets {
			vals = vals[:0]
			for _, k := range b.idx {
				vals = append(vals, series[k])
			}
			out[i] = reduce(vals, bucketTimes[i])
		}
	})
}
