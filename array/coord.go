package array

import (
	"fmt"
	"time"
)

type coordKind int

const (
	coordNone coordKind = iota
	coordTime
	coordLabel
	coordValue
)

// Coord is an ordered set of tick values along one dimension. A coordinate
// is one of three kinds: timestamps (the "time" dimension), string labels
// (e.g. distribution parameter names), or plain float64 values (e.g. return
// periods).
type Coord struct {
	kind   coordKind
	times  []time.Time
	labels []string
	values []float64
}

// TimeCoord builds a timestamp coordinate. The slice is copied.
func TimeCoord(ts []time.Time) Coord {
	c := Coord{kind: coordTime, times: make([]time.Time, len(ts))}
	copy(c.times, ts)
	return c
}

// LabelCoord builds a string-label coordinate. The slice is copied.
func LabelCoord(labels []string) Coord {
	c := Coord{kind: coordLabel, labels: make([]string, len(labels))}
	copy(c.labels, labels)
	return c
}

// ValueCoord builds a numeric coordinate. The slice is copied.
func ValueCoord(vs []float64) Coord {
	c := Coord{kind: coordValue, values: make([]float64, len(vs))}
	copy(c.values, vs)
	return c
}

// IsZero reports whether the coordinate is unset.
func (c Coord) IsZero() bool { return c.kind == coordNone }

// Len returns the number of ticks.
func (c Coord) Len() int {
	switch c.kind {
	case coordTime:
		return len(c.times)
	case coordLabel:
		return len(c.labels)
	case coordValue:
		return len(c.values)
	}
	return 0
}

// Times returns the timestamp ticks, or an error for non-time coordinates.
func (c Coord) Times() ([]time.Time, error) {
	if c.kind != coordTime {
		return nil, fmt.Errorf("coordinate is not a time coordinate")
	}
	out := make([]time.Time, len(c.times))
	copy(out, c.times)
	return out, nil
}

// Labels returns the string ticks, or an error for non-label coordinates.
func (c Coord) Labels() ([]string, error) {
	if c.kind != coordLabel {
		return nil, fmt.Errorf("coordinate is not a label coordinate")
	}
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out, nil
}

// Values returns the numeric ticks, or an error for non-value coordinates.
func (c Coord) Values() ([]float64, error) {
	if c.kind != coordValue {
		return nil, fmt.Errorf("coordinate is not a value coordinate")
	}
	out := make([]float64, len(c.values))
	copy(out, c.values)
	return out, nil
}

// subset returns a coordinate holding only the ticks at idx, in idx order.
func (c Coord) subset(idx []int) Coord {
	switch c.kind {
	case coordTime:
		ts := make([]time.Time, len(idx))
		for i, j := range idx {
			ts[i] = c.times[j]
		}
		return Coord{kind: coordTime, times: ts}
	case coordLabel:
		ls := make([]string, len(idx))
		for i, j := range idx {
			ls[i] = c.labels[j]
		}
		return Coord{kind: coordLabel, labels: ls}
	case coordValue:
		vs := make([]float64, len(idx))
		for i, j := range idx {
			vs[i] = c.values[j]
		}
		return Coord{kind: coordValue, values: vs}
	}
	return Coord{}
}

func (c Coord) copy() Coord {
	switch c.kind {
	case coordTime:
		return TimeCoord(c.times)
	case coordLabel:
		return LabelCoord(c.labels)
	case coordValue:
		return ValueCoord(c.values)
	}
	return Coord{}
}
