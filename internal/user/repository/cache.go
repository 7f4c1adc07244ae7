package repository

import (
	"context"
	"sync"
	"time"

	"userapi/internal/common/clock"
	"userapi/internal/common/constants"
	"userapi/internal/common/logger"
	"userapi/internal/observability/metrics"
	"userapi/internal/user/domain"
)

type userCacheEntry struct {
	user      domain.User
	expiresAt time.Time
}

// CachedRepository is a read-through TTL cache over another Repository.
// Entries are keyed by user id and refreshed on every successful store call,
// so a cached read always reflects the last value the store returned.
type CachedRepository struct {
	next   Repository
	cache  sync.Map
	ttl    time.Duration
	clock  clock.Clock
	log    *logger.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

func NewCachedRepository(ctx context.Context, next Repository, ttl time.Duration, clk clock.Clock, log *logger.Logger) *CachedRepository {
	cacheCtx, cancel := context.WithCancel(ctx)
	c := &CachedRepository{
		next:   next,
		ttl:    ttl,
		clock:  clk,
		log:    log,
		ctx:    cacheCtx,
		cancel: cancel,
	}

	go c.cleanup()

	return c
}

func (c *CachedRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	saved, err := c.next.Save(ctx, user)
	if err != nil {
		return domain.User{}, err
	}

	c.set(saved)
	return saved, nil
}

func (c *CachedRepository) FindByID(ctx context.Context, id domain.ID) (domain.User, error) {
	if entry, ok := c.cache.Load(id); ok {
		e := entry.(*userCacheEntry)
		if c.clock.Now().Before(e.expiresAt) {
			metrics.UserCacheHitsTotal.Inc()
			return e.user, nil
		}
		c.cache.Delete(id)
	}

	metrics.UserCacheMissesTotal.Inc()

	user, err := c.next.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	c.set(user)
	return user, nil
}

func (c *CachedRepository) FindByCredentials(ctx context.Context, username, password string) (domain.User, error) {
	user, err := c.next.FindByCredentials(ctx, username, password)
	if err != nil {
		return domain.User{}, err
	}

	c.set(user)
	return user, nil
}

func (c *CachedRepository) set(user domain.User) {
	entry := &userCacheEntry{
		user:      user,
		expiresAt: c.clock.Now().Add(c.ttl),
	}
	c.cache.Store(user.ID, entry)
}

func (c *CachedRepository) cleanup() {
	ticker := time.NewTicker(constants.UserCacheCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			now := c.clock.Now()
			removed := 0
			c.cache.Range(func(key, value interface{}) bool {
				entry := value.(*userCacheEntry)
				if now.After(entry.expiresAt) {
					c.cache.Delete(key)
					removed++
				}
				return true
			})
			if removed > 0 {
				c.log.Debugf("user cache cleaned up %d expired entries", removed)
			}
		}
	}
}

func (c *CachedRepository) Close() {
	c.cancel()
}
