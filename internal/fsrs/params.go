package fsrs

// DefaultWeights is the stock 17-element weight vector. Index mapping:
//
//	w[0..3]   initial stability by rating (Again, Hard, Good, Easy)
//	w[4]      initial difficulty baseline
//	w[5]      initial difficulty slope per rating step
//	w[6]      difficulty drift per rating step on later reviews
//	w[8..10]  stability growth shape (scale, stability exponent, retrievability gain)
//	w[15]     hard penalty on stability growth
//	w[16]     easy bonus on stability growth
//
// Note the off-by-one-prone lookup on the first review: a rating of n
// reads w[n-1].
var DefaultWeights = [17]float64{
	0.4, 0.6, 2.4, 5.8,
	4.93, 0.94, 0.86, 0.01,
	1.49, 0.14, 0.94, 2.18,
	0.05, 0.34, 1.26, 0.29,
	2.61,
}

const (
	defaultRequestRetention = 0.9
	defaultMaximumInterval  = 36500
	minStability            = 0.1
	easyGraduationBonus     = 1.3
	lapseStabilityFactor    = 0.2
)

// Params configures a Scheduler. The weight vector is fixed configuration,
// not learned here; per-learner optimization happens offline.
type Params struct {
	// RequestRetention is the target recall probability at the scheduled
	// review time, in (0, 1).
	RequestRetention float64 `json:"request_retention"`
	// MaximumInterval is the hard cap on any computed interval, in days.
	MaximumInterval int `json:"maximum_interval"`
	// W is the weight vector governing initial stability and difficulty
	// and the stability growth curve.
	W [17]float64 `json:"w"`
}

// DefaultParams returns the stock configuration: 90% retention, a 100-year
// interval cap, and DefaultWeights.
func DefaultParams() Params {
	return Params{
		RequestRetention: defaultRequestRetention,
		MaximumInterval:  defaultMaximumInterval,
		W:                DefaultWeights,
	}
}

// normalize fills zero-valued fields with defaults and clamps out-of-range
// values instead of rejecting them.
func (p Params) normalize() Params {
	if p.RequestRetention <= 0 || p.RequestRetention >= 1 {
		p.RequestRetention = defaultRequestRetention
	}
	if p.MaximumInterval <= 0 {
		p.MaximumInterval = defaultMaximumInterval
	}
	if p.W == ([17]float64{}) {
		p.W = DefaultWeights
	}
	return p
}
