// README: Calculation session; collects out-of-order signal results and
// recomputes the full price each time.
package quote

import (
	"sync"
	"sync/atomic"

	"haulquote/internal/modules/pricing"
	"haulquote/internal/modules/pricingconfig"
	"haulquote/internal/modules/tolls"
)

// Session is one logical calculation. Signals resolve independently and in
// any order; each Set records the latest known value and every Recompute
// rebuilds the entire formula from that set, so a late factor is never
// applied on top of an already-adjusted price.
//
// Sessions are tagged with a token from the owning client's counter.
// Starting that client's next calculation moves the counter on, and Set
// calls on the superseded session are discarded. Counters are never shared
// between clients, so concurrent calculations for different clients do not
// supersede each other.
type Session struct {
	token  uint64
	source *atomic.Uint64

	mu       sync.Mutex
	input    pricing.ComposeInput
	cfg      pricingconfig.PricingConfig
	composer *pricing.Composer
}

// NewSession claims the next token from source, invalidating any session
// created from it earlier.
func NewSession(source *atomic.Uint64, input pricing.ComposeInput, cfg pricingconfig.PricingConfig) *Session {
	if input.Factors == (pricing.FactorSet{}) {
		input.Factors = pricing.NeutralFactors()
	}
	return &Session{
		token:    source.Add(1),
		source:   source,
		input:    input,
		cfg:      cfg,
		composer: pricing.NewComposer(),
	}
}

// Current reports whether this session is still the active calculation.
func (s *Session) Current() bool {
	return s.source.Load() == s.token
}

func (s *Session) apply(fn func(*pricing.ComposeInput)) bool {
	if !s.Current() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.input)
	return true
}

// SetWeather records the resolved weather multiplier. Returns false when the
// session has been superseded and the result was discarded.
func (s *Session) SetWeather(multiplier float64) bool {
	return s.apply(func(in *pricing.ComposeInput) { in.Factors.Weather = multiplier })
}

func (s *Session) SetTraffic(multiplier float64) bool {
	return s.apply(func(in *pricing.ComposeInput) { in.Factors.Traffic = multiplier })
}

func (s *Session) SetFuel(multiplier float64) bool {
	return s.apply(func(in *pricing.ComposeInput) { in.Factors.Fuel = multiplier })
}

func (s *Session) SetAutoShow(multiplier float64) bool {
	return s.apply(func(in *pricing.ComposeInput) { in.Factors.AutoShow = multiplier })
}

// SetTolls replaces any prior toll estimate wholesale; segments are never
// merged incrementally.
func (s *Session) SetTolls(est tolls.Estimate) bool {
	return s.apply(func(in *pricing.ComposeInput) { in.Tolls = est })
}

// Recompute rebuilds the breakdown from the full currently-known factor set.
func (s *Session) Recompute() pricing.PriceBreakdown {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.composer.Compose(s.input, s.cfg)
}
