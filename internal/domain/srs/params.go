package srs

// Params defines all configurable parameters for the SM-2 scheduling
// algorithm.
type Params struct {
	// MinEaseFactor is the floor applied after every ease recalculation.
	MinEaseFactor float64

	// FirstInterval is the interval (days) after the first successful
	// review, and after any lapse.
	FirstInterval int

	// SecondInterval is the interval (days) after the second consecutive
	// successful review.
	SecondInterval int

	// PassThreshold is the minimum quality score counted as a successful
	// recall. Scores below it reset the repetition count.
	PassThreshold int

	// MinQuality and MaxQuality bound the accepted quality scores.
	MinQuality int
	MaxQuality int
}

// ParamsConfig allows overriding the default parameters when creating a
// new Params instance. Zero values leave the default in place.
type ParamsConfig struct {
	MinEaseFactor  float64
	FirstInterval  int
	SecondInterval int
	PassThreshold  int
}

// NewDefaultParams creates a Params instance with the standard SM-2
// values: ease floor 1.3, intervals 1 and 6 days, pass at quality 3.
func NewDefaultParams() *Params {
	return &Params{
		MinEaseFactor:  1.3,
		FirstInterval:  1,
		SecondInterval: 6,
		PassThreshold:  3,
		MinQuality:     0,
		MaxQuality:     5,
	}
}

// NewParams creates a Params instance with custom overrides applied on
// top of the defaults.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.MinEaseFactor > 0 {
		params.MinEaseFactor = config.MinEaseFactor
	}
	if config.FirstInterval > 0 {
		params.FirstInterval = config.FirstInterval
	}
	if config.SecondInterval > 0 {
		params.SecondInterval = config.SecondInterval
	}
	if config.PassThreshold > 0 {
		params.PassThreshold = config.PassThreshold
	}

	return params
}
