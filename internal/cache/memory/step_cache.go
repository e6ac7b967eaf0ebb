package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/order-precheck/internal/domain"
	"github.com/Gunvolt24/order-precheck/pkg/metrics"
)

type entry struct {
	key       string
	res       domain.StepResult
	expiresAt time.Time
}

// StepCacheTTL — LRU-кэш результатов шагов с индивидуальным TTL записи.
// Срок жизни фиксируется в момент записи и чтением не продлевается:
// просроченная запись вытесняется при первом обращении к ней.
type StepCacheTTL struct {
	capacity   int
	defaultTTL time.Duration

	ll    *list.List
	index map[string]*list.Element

	now func() time.Time // переопределяется в тестах

	mu sync.Mutex
}

// NewStepCacheTTL — конструктор; defaultTTL применяется к записям,
// сохранённым без собственного TTL (defaultTTL <= 0 — записи вечные).
func NewStepCacheTTL(capacity int, defaultTTL time.Duration) *StepCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &StepCacheTTL{
		capacity:   capacity,
		defaultTTL: defaultTTL,
		ll:         list.New(),
		index:      make(map[string]*list.Element),
		now:        time.Now,
	}
}

// Get — вернуть результат по ключу; просроченная запись вытесняется, промах.
func (c *StepCacheTTL) Get(_ context.Context, key string) (domain.StepResult, bool) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[key]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return domain.StepResult{}, false
	}
	ent := elem.Value.(*entry)
	if isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(c.ll.Len()))
		return domain.StepResult{}, false
	}
	c.ll.MoveToFront(elem)

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return cloneResult(ent.res), true
}

// Set — сохранить/обновить результат; ttl <= 0 — TTL по умолчанию.
func (c *StepCacheTTL) Set(_ context.Context, key string, res domain.StepResult, ttl time.Duration) error {
	if key == "" {
		return nil
	}
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.expiryFrom(now, ttl)

	if elem, ok := c.index[key]; ok {
		ent := elem.Value.(*entry)
		ent.res = cloneResult(res)
		ent.expiresAt = expiresAt
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		key:       key,
		res:       cloneResult(res),
		expiresAt: expiresAt,
	})
	c.index[key] = elem
	metrics.CacheSize.Set(float64(c.ll.Len()))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

// Has — есть ли непросроченная запись; порядок LRU не меняет.
func (c *StepCacheTTL) Has(_ context.Context, key string) bool {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[key]
	if !ok {
		return false
	}
	if isExpired(elem.Value.(*entry), now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(c.ll.Len()))
		return false
	}
	return true
}

// Delete — удалить одну запись.
func (c *StepCacheTTL) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		c.removeElement(elem)
		metrics.CacheOps.WithLabelValues("deleted").Inc()
		metrics.CacheSize.Set(float64(c.ll.Len()))
	}
	return nil
}

// Clear — удалить все записи.
func (c *StepCacheTTL) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ll.Init()
	c.index = make(map[string]*list.Element)
	metrics.CacheSize.Set(0)
	return nil
}
