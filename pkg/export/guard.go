package export

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"
)

// Guard admits at most one export per key at a time.
type Guard interface {
	// Acquire returns ErrInProgress when key is already held. The returned
	// release func must be called exactly once.
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// MemoryGuard is a process-local Guard.
type MemoryGuard struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewMemoryGuard creates an empty MemoryGuard.
func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{held: make(map[string]struct{})}
}

// Acquire claims key for this process. It fails with ErrInProgress while the
// key is held; the returned func releases it.
func (g *MemoryGuard) Acquire(_ context.Context, key string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.held[key]; busy {
		return nil, ErrInProgress
	}
	g.held[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.held, key)
			g.mu.Unlock()
		})
	}, nil
}

// releaseScript deletes the lock only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisGuard shares the in-flight set between API replicas. Locks expire
// after ttl so a crashed replica cannot block a receipt forever.
type RedisGuard struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisGuard creates a RedisGuard. A non-positive ttl means one minute.
func NewRedisGuard(client redis.UniversalClient, ttl time.Duration) *RedisGuard {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &RedisGuard{client: client, prefix: "rasid:export:", ttl: ttl}
}

// Acquire claims key across instances with SET NX and the guard's TTL. The
// returned func deletes the key only if this call still owns it.
func (g *RedisGuard) Acquire(ctx context.Context, key string) (func(), error) {
	k := g.prefix + key
	token := ulid.Make().String()

	ok, err := g.client.SetNX(ctx, k, token, g.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire export lock: %w", err)
	}
	if !ok {
		return nil, ErrInProgress
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = releaseScript.Run(ctx, g.client, []string{k}, token).Err()
		})
	}, nil
}
