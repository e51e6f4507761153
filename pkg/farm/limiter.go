package farm

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore keeps one token bucket per farm id.
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(farmID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[farmID]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[farmID] = limiter
	}
	return limiter
}

// SetLimiter replaces the farm's bucket; the new one starts full.
func (s *RateLimiterStore) SetLimiter(farmID string, farmRate rate.Limit, farmBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[farmID] = rate.NewLimiter(farmRate, farmBurst)
}

func (s *RateLimiterStore) Allow(farmID string) bool {
	return s.GetLimiter(farmID).Allow()
}

func (s *RateLimiterStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.limiters)
}
