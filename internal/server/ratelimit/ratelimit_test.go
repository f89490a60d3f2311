package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Aanishnithin07/FitForge/internal/config"
)

// fakeClock is a manually advanced clock
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestLimiter_Allow(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	}
	limiter := newLimiter(config, newFakeClock().Now)
	defer limiter.Stop()

	clientID := "127.0.0.1"
	endpoint := "/analyze"
	method := "POST"

	// Should allow requests up to limit
	for i := 0; i < 10; i++ {
		allowed, rateInfo := limiter.Allow(clientID, endpoint, method)
		if !allowed {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
		if rateInfo.Limit != 10 {
			t.Errorf("Expected limit 10, got %d", rateInfo.Limit)
		}
		if rateInfo.Remaining != 9-i {
			t.Errorf("Expected remaining %d, got %d", 9-i, rateInfo.Remaining)
		}
	}

	// 11th request should be denied
	allowed, rateInfo := limiter.Allow(clientID, endpoint, method)
	if allowed {
		t.Error("Expected 11th request to be denied")
	}
	if rateInfo.Remaining != 0 {
		t.Errorf("Expected remaining 0, got %d", rateInfo.Remaining)
	}
	if rateInfo.RetryAfter != 6*time.Second {
		t.Errorf("Expected retry after 6s, got %v", rateInfo.RetryAfter)
	}
}

func TestLimiter_Refill(t *testing.T) {
	clock := newFakeClock()
	limiter := newLimiter(&Config{Enabled: true, DefaultLimit: 10, DefaultWindow: time.Minute}, clock.Now)
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		limiter.Allow("c", "/analyze", "POST")
	}
	if allowed, _ := limiter.Allow("c", "/analyze", "POST"); allowed {
		t.Fatal("Expected bucket to be empty")
	}

	// 10 per minute refills one token every 6 seconds
	clock.Advance(6 * time.Second)

	if allowed, _ := limiter.Allow("c", "/analyze", "POST"); !allowed {
		t.Error("Expected request to be allowed after refill")
	}
	if allowed, _ := limiter.Allow("c", "/analyze", "POST"); allowed {
		t.Error("Expected request to be denied after consuming refilled token")
	}
}

func TestLimiter_ResetTime(t *testing.T) {
	clock := newFakeClock()
	limiter := newLimiter(&Config{Enabled: true, DefaultLimit: 10, DefaultWindow: time.Minute}, clock.Now)
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		limiter.Allow("c", "/analyze", "POST")
	}
	_, info := limiter.Allow("c", "/analyze", "POST")

	// six tokens missing at 6s each
	want := clock.Now().Add(36 * time.Second)
	if !info.ResetTime.Equal(want) {
		t.Errorf("Expected reset at %v, got %v", want, info.ResetTime)
	}
}

func TestLimiter_Whitelist(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"127.0.0.1": true},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	// Whitelisted IP should always be allowed
	for i := 0; i < 100; i++ {
		allowed, rateInfo := limiter.Allow("127.0.0.1", "/analyze", "POST")
		if !allowed {
			t.Errorf("Expected whitelisted request %d to be allowed", i+1)
		}
		if rateInfo.Limit != 0 {
			t.Errorf("Expected limit 0 for whitelisted, got %d", rateInfo.Limit)
		}
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Blacklist:     map[string]bool{"192.168.1.1": true},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	// Blacklisted IP should always be denied
	allowed, _ := limiter.Allow("192.168.1.1", "/analyze", "POST")
	if allowed {
		t.Error("Expected blacklisted request to be denied")
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	// When disabled, all requests should be allowed
	for i := 0; i < 100; i++ {
		allowed, rateInfo := limiter.Allow("127.0.0.1", "/analyze", "POST")
		if !allowed {
			t.Errorf("Expected request %d to be allowed when disabled", i+1)
		}
		if rateInfo.Limit != 0 {
			t.Errorf("Expected limit 0 when disabled, got %d", rateInfo.Limit)
		}
	}
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	limiter := newLimiter(&Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Minute}, newFakeClock().Now)
	defer limiter.Stop()

	for i := 0; i < 20; i++ {
		if allowed, _ := limiter.Allow("c", "/health", "GET"); !allowed {
			t.Fatalf("Expected health check %d to be allowed", i+1)
		}
		if allowed, _ := limiter.Allow("c", "/metrics", "GET"); !allowed {
			t.Fatalf("Expected metrics scrape %d to be allowed", i+1)
		}
	}
}

func TestLimiter_EndpointSpecific(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/leaderboard", Method: "POST", Limit: 5, Window: time.Hour, Burst: 5},
		},
	}
	limiter := newLimiter(config, newFakeClock().Now)
	defer limiter.Stop()

	clientID := "127.0.0.1"

	// Test endpoint-specific limit (burst allows 5 immediately)
	for i := 0; i < 5; i++ {
		allowed, rateInfo := limiter.Allow(clientID, "/leaderboard", "POST")
		if !allowed {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
		if rateInfo.Limit != 5 {
			t.Errorf("Expected limit 5, got %d", rateInfo.Limit)
		}
	}

	// 6th request should be denied (limit reached)
	allowed, rateInfo := limiter.Allow(clientID, "/leaderboard", "POST")
	if allowed {
		t.Error("Expected 6th request to be denied")
	}
	if rateInfo.Limit != 5 {
		t.Errorf("Expected limit 5, got %d", rateInfo.Limit)
	}

	// Different endpoint should use default limit
	allowed, rateInfo = limiter.Allow(clientID, "/analyze", "POST")
	if !allowed {
		t.Error("Expected different endpoint to be allowed")
	}
	if rateInfo.Limit != 1000 {
		t.Errorf("Expected default limit 1000, got %d", rateInfo.Limit)
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
	}
	limiter := newLimiter(config, newFakeClock().Now)
	defer limiter.Stop()

	var wg sync.WaitGroup
	allowedCount := 0
	var mu sync.Mutex

	// Make 200 concurrent requests (should only allow 100)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed, _ := limiter.Allow("127.0.0.1", "/analyze", "POST")
			if allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	if allowedCount != 100 {
		t.Errorf("Expected 100 allowed requests, got %d", allowedCount)
	}
}

func TestLimiter_CleanupDropsIdleBuckets(t *testing.T) {
	clock := newFakeClock()
	config := &Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
		IdleTimeout:   time.Hour,
	}
	limiter := newLimiter(config, clock.Now)
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		limiter.Allow(fmt.Sprintf("127.0.0.%d", i+1), "/analyze", "POST")
	}
	if limiter.size() != 10 {
		t.Fatalf("Expected 10 buckets, got %d", limiter.size())
	}

	clock.Advance(2 * time.Hour)
	for i := 0; i < 3; i++ {
		limiter.Allow(fmt.Sprintf("127.0.0.%d", i+1), "/analyze", "POST")
	}

	limiter.cleanupBuckets()

	if limiter.size() != 3 {
		t.Errorf("Expected 3 recently used buckets to survive, got %d", limiter.size())
	}
}

func TestLimiter_Burst(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/burst", Method: "POST", Limit: 10, Window: time.Minute, Burst: 5},
		},
	}
	limiter := newLimiter(config, newFakeClock().Now)
	defer limiter.Stop()

	// Should allow burst of 5 requests immediately
	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/burst", "POST")
		if !allowed {
			t.Errorf("Expected burst request %d to be allowed", i+1)
		}
	}

	// 6th request should be denied (burst exhausted, no refill yet)
	allowed, _ := limiter.Allow("127.0.0.1", "/burst", "POST")
	if allowed {
		t.Error("Expected request after burst to be denied")
	}
}

func TestNewLimiter_NilConfig(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()

	// Should use defaults
	allowed, rateInfo := limiter.Allow("127.0.0.1", "/analyze", "POST")
	if !allowed {
		t.Error("Expected request to be allowed with default config")
	}
	if rateInfo.Limit != 1000 {
		t.Errorf("Expected default limit 1000, got %d", rateInfo.Limit)
	}
}

func TestLimiter_StopTwice(t *testing.T) {
	limiter := NewLimiter(nil)
	limiter.Stop()
	limiter.Stop()
}

func TestFromConfig(t *testing.T) {
	cfg := FromConfig(config.RateLimitConfig{Enabled: true, RequestsPerMinute: 120, Burst: 20})

	if !cfg.Enabled || cfg.DefaultLimit != 120 || cfg.DefaultBurst != 20 {
		t.Errorf("Unexpected config: %+v", cfg)
	}

	lb := MatchEndpoint("/leaderboard", "POST", cfg.EndpointConfigs)
	if lb == nil {
		t.Fatal("Expected a /leaderboard endpoint config")
	}
	if lb.Limit != 30 || lb.Burst != 5 {
		t.Errorf("Expected leaderboard limit 30 burst 5, got %d/%d", lb.Limit, lb.Burst)
	}

	if disabled := FromConfig(config.RateLimitConfig{Enabled: false}); disabled.Enabled {
		t.Error("Expected disabled config")
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/leaderboard", Method: "POST", Limit: 5},
		{Path: "/stats/", Method: "GET", Limit: 1},
	}

	tests := []struct {
		path, method string
		wantLimit    int
		wantNil      bool
	}{
		{"/leaderboard", "POST", 5, false},
		{"/stats/labels", "GET", 1, false},
		{"/stats/labels", "POST", 0, true},
		{"/health", "GET", 0, false},
		{"/metrics", "GET", 0, false},
		{"/leaderboard", "GET", 0, true},
		{"/analyze", "POST", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Expected no match, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("Expected a match")
			}
			if got.Limit != tt.wantLimit {
				t.Errorf("Expected limit %d, got %d", tt.wantLimit, got.Limit)
			}
		})
	}
}
