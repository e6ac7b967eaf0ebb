package memory

import (
	"container/list"
	"time"

	"github.com/Gunvolt24/order-precheck/internal/domain"
	"github.com/Gunvolt24/order-precheck/pkg/metrics"
)

// evictLRU — удаляет наименее используемый элемент.
func (c *StepCacheTTL) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues("evicted").Inc()
		metrics.CacheSize.Set(float64(c.ll.Len()))
	}
}

// removeElement — удаляет элемент из списка и индекса.
func (c *StepCacheTTL) removeElement(elem *list.Element) {
	if elem == nil {
		return
	}
	if ent, ok := elem.Value.(*entry); ok {
		delete(c.index, ent.key)
	}
	c.ll.Remove(elem)
}

// isExpired — проверяет истечение TTL; нулевой expiresAt — запись вечная.
func isExpired(ent *entry, now time.Time) bool {
	if ent.expiresAt.IsZero() {
		return false
	}
	return now.After(ent.expiresAt)
}

// expiryFrom — момент истечения для записи: её собственный TTL
// либо TTL кэша по умолчанию.
func (c *StepCacheTTL) expiryFrom(now time.Time, ttl time.Duration) time.Time {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	if ttl <= 0 {
		return time.Time{}
	}
	return now.Add(ttl)
}

// pruneExpiredFromBack — удаляет элементы с истекшим TTL из хвоста до первого актуального.
func (c *StepCacheTTL) pruneExpiredFromBack(now time.Time) {
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		ent, ok := back.Value.(*entry)
		if !ok {
			c.removeElement(back)
			metrics.CacheSize.Set(float64(c.ll.Len()))
			continue
		}
		if isExpired(ent, now) {
			c.removeElement(back)
			metrics.CacheOps.WithLabelValues("expired").Inc()
			metrics.CacheSize.Set(float64(c.ll.Len()))
			continue
		}
		return
	}
}

// cloneResult — возвращает копию результата, чтобы внешние изменения
// не отражались на данных внутри кэша.
func cloneResult(res domain.StepResult) domain.StepResult {
	out := res
	if res.Payload != nil {
		p := res.Payload.Clone()
		out.Payload = &p
	}
	return out
}
