package freq

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Distribution is one fittable distribution family in the conventional
// parameter layout: shape parameters first, then location and scale. All
// parameter vectors passed in and out follow that order.
//
// Fitting maximizes likelihood. Families whose support starts at a finite
// bound (lognorm, gamma, weibull_min) are fitted with the location pinned
// at zero, which is the convention for strictly positive climate
// quantities; exponential uses its closed-form location at the sample
// minimum. Degenerate inputs yield NaN parameters rather than errors.
type Distribution struct {
	name   string
	shapes []string
	fit    func(x []float64) []float64
	// quantile evaluates the inverse CDF for validated parameters:
	// q inside [0,1], finite params, scale > 0.
	quantile func(q float64, shapes []float64, loc, scale float64) float64
}

// Name returns the distribution's table name.
func (d Distribution) Name() string { return d.name }

// ShapeNames returns the names of the shape parameters, possibly empty.
func (d Distribution) ShapeNames() []string { return append([]string(nil), d.shapes...) }

// ParamNames returns the full parameter vector labels: shapes, then "loc"
// and "scale".
func (d Distribution) ParamNames() []string {
	return append(d.ShapeNames(), "loc", "scale")
}

// NumParams returns the parameter vector length.
func (d Distribution) NumParams() int { return len(d.shapes) + 2 }

// Fit estimates the parameter vector from a sample by maximum likelihood.
// The sample must hold at least two finite values; callers filter NaN
// first. Unfittable samples produce an all-NaN vector.
func (d Distribution) Fit(x []float64) []float64 {
	params := d.fit(x)
	if len(params) != d.NumParams() {
		return nanVector(d.NumParams())
	}
	return params
}

// Quantile evaluates the inverse CDF at probability q for a fitted
// parameter vector. Out-of-range probabilities, malformed or non-finite
// parameters, and non-positive scales all yield NaN, never panics.
func (d Distribution) Quantile(q float64, params []float64) float64 {
	if len(params) != d.NumParams() {
		return math.NaN()
	}
	if math.IsNaN(q) || q < 0 || q > 1 {
		return math.NaN()
	}
	for _, p := range params {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return math.NaN()
		}
	}
	n := len(d.shapes)
	loc, scale := params[n], params[n+1]
	if scale <= 0 {
		return math.NaN()
	}
	return d.quantile(q, params[:n], loc, scale)
}

// InverseSurvival evaluates the inverse survival function, the value
// exceeded with probability q.
func (d Distribution) InverseSurvival(q float64, params []float64) float64 {
	return d.Quantile(1-q, params)
}

func nanVector(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

// eulerGamma is the Euler-Mascheroni constant used by the Gumbel moment
// starting point.
const eulerGamma = 0.5772156649015329

// distTable holds the supported families under their conventional names.
var distTable = map[string]Distribution{
	"norm": {
		name: "norm",
		fit: func(x []float64) []float64 {
			return []float64{stat.Mean(x, nil), stat.PopStdDev(x, nil)}
		},
		quantile: func(q float64, _ []float64, loc, scale float64) float64 {
			return distuv.Normal{Mu: loc, Sigma: scale}.Quantile(q)
		},
	},
	"lognorm": {
		name:   "lognorm",
		shapes: []string{"s"},
		fit: func(x []float64) []float64 {
			logs, ok := logSample(x)
			if !ok {
				return nanVector(3)
			}
			s := stat.PopStdDev(logs, nil)
			return []float64{s, 0, math.Exp(stat.Mean(logs, nil))}
		},
		quantile: func(q float64, shapes []float64, loc, scale float64) float64 {
			s := shapes[0]
			if s <= 0 {
				return math.NaN()
			}
			return loc + distuv.LogNormal{Mu: math.Log(scale), Sigma: s}.Quantile(q)
		},
	},
	"gamma": {
		name:   "gamma",
		shapes: []string{"a"},
		fit: func(x []float64) []float64 {
			if floats.Min(x) <= 0 {
				return nanVector(3)
			}
			m, v := stat.Mean(x, nil), stat.PopVariance(x, nil)
			if v <= 0 {
				return nanVector(3)
			}
			theta, err := minimizeNLL(
				[]float64{math.Log(m * m / v), math.Log(v / m)},
				func(theta []float64) float64 {
					a, scale := math.Exp(theta[0]), math.Exp(theta[1])
					return negLogLik(x, distuv.Gamma{Alpha: a, Beta: 1 / scale}.LogProb)
				})
			if err != nil {
				return nanVector(3)
			}
			return []float64{math.Exp(theta[0]), 0, math.Exp(theta[1])}
		},
		quantile: func(q float64, shapes []float64, loc, scale float64) float64 {
			a := shapes[0]
			if a <= 0 {
				return math.NaN()
			}
			return loc + distuv.Gamma{Alpha: a, Beta: 1 / scale}.Quantile(q)
		},
	},
	"expon": {
		name: "expon",
		fit: func(x []float64) []float64 {
			lo := floats.Min(x)
			return []float64{lo, stat.Mean(x, nil) - lo}
		},
		quantile: func(q float64, _ []float64, loc, scale float64) float64 {
			return loc + distuv.Exponential{Rate: 1 / scale}.Quantile(q)
		},
	},
	"gumbel_r": {
		name: "gumbel_r",
		fit: func(x []float64) []float64 {
			sd := stat.PopStdDev(x, nil)
			scale0 := sd * math.Sqrt(6) / math.Pi
			loc0 := stat.Mean(x, nil) - eulerGamma*scale0
			if scale0 <= 0 {
				return []float64{loc0, scale0}
			}
			theta, err := minimizeNLL(
				[]float64{loc0, math.Log(scale0)},
				func(theta []float64) float64 {
					return negLogLik(x, distuv.GumbelRight{Mu: theta[0], Beta: math.Exp(theta[1])}.LogProb)
				})
			if err != nil {
				return nanVector(2)
			}
			return []float64{theta[0], math.Exp(theta[1])}
		},
		quantile: func(q float64, _ []float64, loc, scale float64) float64 {
			return distuv.GumbelRight{Mu: loc, Beta: scale}.Quantile(q)
		},
	},
	"weibull_min": {
		name:   "weibull_min",
		shapes: []string{"c"},
		fit: func(x []float64) []float64 {
			logs, ok := logSample(x)
			if !ok {
				return nanVector(3)
			}
			c0 := 1.0
			if sd := stat.PopStdDev(logs, nil); sd > 0 {
				// Menon's estimator as a starting point.
				c0 = 1.2 / sd
			}
			theta, err := minimizeNLL(
				[]float64{math.Log(c0), math.Log(stat.Mean(x, nil))},
				func(theta []float64) float64 {
					k, scale := math.Exp(theta[0]), math.Exp(theta[1])
					return negLogLik(x, distuv.Weibull{K: k, Lambda: scale}.LogProb)
				})
			if err != nil {
				return nanVector(3)
			}
			return []float64{math.Exp(theta[0]), 0, math.Exp(theta[1])}
		},
		quantile: func(q float64, shapes []float64, loc, scale float64) float64 {
			k := shapes[0]
			if k <= 0 {
				return math.NaN()
			}
			return loc + distuv.Weibull{K: k, Lambda: scale}.Quantile(q)
		},
	},
}

// GetDist resolves a distribution by its table name.
func GetDist(name string) (Distribution, error) {
	d, ok := distTable[name]
	if !ok {
		return Distribution{}, fmt.Errorf("%w: %q (supported: %v)", ErrUnknownDistribution, name, DistNames())
	}
	return d, nil
}

// DistNames lists the supported distribution names in sorted order.
func DistNames() []string {
	names := make([]string, 0, len(distTable))
	for name := range distTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// logSample returns the elementwise logarithm, or ok=false when any value
// is outside the strictly positive support.
func logSample(x []float64) ([]float64, bool) {
	logs := make([]float64, len(x))
	for i, v := range x {
		if v <= 0 {
			return nil, false
		}
		logs[i] = math.Log(v)
	}
	return logs, true
}

// negLogLik sums -logpdf over the sample, mapping non-finite results to
// +Inf so the optimizer steers away from invalid parameter regions.
func negLogLik(x []float64, logProb func(float64) float64) float64 {
	sum := 0.0
	for _, v := range x {
		lp := logProb(v)
		if math.IsNaN(lp) || math.IsInf(lp, 1) {
			return math.Inf(1)
		}
		sum -= lp
	}
	if math.IsNaN(sum) {
		return math.Inf(1)
	}
	return sum
}

// minimizeNLL runs a derivative-free search from theta0.
func minimizeNLL(theta0 []float64, nll func([]float64) float64) ([]float64, error) {
	problem := optimize.Problem{Func: nll}
	result, err := optimize.Minimize(problem, theta0, nil, &optimize.NelderMead{})
	if err != nil {
		return nil, err
	}
	for _, v := range result.X {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("optimizer diverged")
		}
	}
	return result.X, nil
}
