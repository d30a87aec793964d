package token_bucket

import (
	"sync"
	"time"
)

// TokenBucket - классический token bucket: ведро на capacity токенов,
// пополняемое со скоростью refillRate токенов в секунду. Allow снимает
// токен или отказывает, если ведро пустое.
type TokenBucket struct {
	capacity   int
	tokens     int
	refillRate float64
	lastRefill time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		tokens:     capacity,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens == 0 {
		return false
	}
	t.tokens--
	return true
}

// refill двигает lastRefill только когда накопился целый токен,
// иначе частые вызовы Allow съедали бы дробные остатки.
func (t *TokenBucket) refill() {
	now := time.Now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	tokensToAdd := int(elapsed * t.refillRate)
	if tokensToAdd == 0 {
		return
	}

	t.tokens += tokensToAdd
	if t.tokens > t.capacity {
		t.tokens = t.capacity
	}
	t.lastRefill = now
}
