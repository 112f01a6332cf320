package freq

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goclim/array"
	"goclim/internal/testkit"
)

func annualSeries(t *testing.T, values []float64) *array.DataArray {
	t.Helper()
	start := time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)
	attrs := array.Attrs{
		array.AttrUnits:  "K",
		AttrStandardName: "air_temperature",
	}
	da, err := array.NewSeries("tas", values, testkit.DailyTimes(start, len(values)), attrs)
	require.NoError(t, err)
	return da
}

func TestFit_Norm(t *testing.T) {
	p, err := Fit(annualSeries(t, []float64{8, 9, 10, 11, 12}), "norm")
	require.NoError(t, err)

	assert.Equal(t, []string{DimDparams}, p.Dims())
	coord, ok := p.Coord(DimDparams)
	require.True(t, ok)
	labels, err := coord.Labels()
	require.NoError(t, err)
	assert.Equal(t, []string{"loc", "scale"}, labels)

	assert.InDelta(t, 10, p.Values()[0], 1e-12)
	assert.InDelta(t, math.Sqrt(2), p.Values()[1], 1e-12)

	attrs := p.Attrs()
	assert.Equal(t, "air_temperature", attrs[AttrOriginalName])
	assert.Equal(t, "Maximum likelihood", attrs[AttrEstimator])
	assert.Equal(t, "norm", attrs[AttrDist])
	assert.Equal(t, "K", attrs[AttrOriginalUnits])
	assert.Equal(t, "", p.Units())
	assert.Equal(t, "Parameters of the norm distribution fitted over air_temperature", attrs[array.AttrDescription])
}

func TestFit_DropsNaN(t *testing.T) {
	nan := math.NaN()
	p, err := Fit(annualSeries(t, []float64{8, nan, 9, 10, nan, 11, 12}), "norm")
	require.NoError(t, err)
	assert.InDelta(t, 10, p.Values()[0], 1e-12)
	assert.InDelta(t, math.Sqrt(2), p.Values()[1], 1e-12)
}

func TestFit_InsufficientData(t *testing.T) {
	nan := math.NaN()

	p, err := Fit(annualSeries(t, []float64{nan, 5, nan}), "norm")
	require.NoError(t, err)
	for _, v := range p.Values() {
		assert.True(t, math.IsNaN(v))
	}

	p, err = Fit(annualSeries(t, []float64{nan, nan, nan}), "norm")
	require.NoError(t, err)
	for _, v := range p.Values() {
		assert.True(t, math.IsNaN(v))
	}
}

// A fit that cannot produce a full parameter vector invalidates the whole
// set rather than leaving a mixed one.
func TestFit_WholeSetInvalidation(t *testing.T) {
	p, err := Fit(annualSeries(t, []float64{1, -2, 3}), "lognorm")
	require.NoError(t, err)
	require.Equal(t, 3, p.Size())
	for _, v := range p.Values() {
		assert.True(t, math.IsNaN(v))
	}
}

func TestFit_PerSeriesIndependence(t *testing.T) {
	start := time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)
	nan := math.NaN()
	// Two stations: the first has clean data, the second nothing at all.
	clean := []float64{8, 9, 10, 11, 12}
	data := make([]float64, 0, len(clean)*2)
	for _, v := range clean {
		data = append(data, v, nan)
	}
	da, err := array.New("tas", data,
		[]string{array.DimTime, "station"}, []int{len(clean), 2},
		map[string]array.Coord{
			array.DimTime: array.TimeCoord(testkit.DailyTimes(start, len(clean))),
			"station":     array.LabelCoord([]string{"a", "b"}),
		},
		array.Attrs{array.AttrUnits: "K"})
	require.NoError(t, err)

	p, err := Fit(da, "norm")
	require.NoError(t, err)
	assert.Equal(t, []string{DimDparams, "station"}, p.Dims())
	assert.Equal(t, []int{2, 2}, p.Shape())

	assert.InDelta(t, 10, p.At(0, 0), 1e-12)
	assert.InDelta(t, math.Sqrt(2), p.At(1, 0), 1e-12)
	assert.True(t, math.IsNaN(p.At(0, 1)))
	assert.True(t, math.IsNaN(p.At(1, 1)))
}

func TestFit_UnknownDistribution(t *testing.T) {
	_, err := Fit(annualSeries(t, []float64{1, 2, 3}), "cauchy")
	assert.ErrorIs(t, err, ErrUnknownDistribution)
}
