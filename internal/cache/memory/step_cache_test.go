package memory

import (
	"context"
	"testing"
	"time"

	"github.com/Gunvolt24/order-precheck/internal/domain"
)

func passedResult(name string) domain.StepResult {
	return domain.StepResult{
		Passed: true,
		State:  domain.StateAllowed,
		Payload: &domain.StepPayload{
			Customer: &domain.Customer{ID: name, Name: "x"},
		},
	}
}

func TestSetGet_HitMiss(t *testing.T) {
	c := NewStepCacheTTL(2, 5*time.Minute)
	ctx := context.Background()

	// miss
	if _, ok := c.Get(ctx, "k-1"); ok {
		t.Fatalf("expected miss before Set")
	}

	// hit после Set
	_ = c.Set(ctx, "k-1", passedResult("k-1"), 0)
	got, ok := c.Get(ctx, "k-1")
	if !ok || !got.Passed || got.Payload.Customer.ID != "k-1" {
		t.Fatalf("expected hit for k-1, got %+v", got)
	}
}

func TestTTL_Expiry_SimulatedClock(t *testing.T) {
	c := NewStepCacheTTL(2, 5*time.Minute)
	ctx := context.Background()

	base := time.Date(2025, 11, 26, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }

	_ = c.Set(ctx, "ttl", passedResult("ttl"), 0)
	if _, ok := c.Get(ctx, "ttl"); !ok {
		t.Fatalf("expected hit right after Set")
	}

	// ровно на границе TTL запись ещё жива (валидна при age <= ttl)
	c.now = func() time.Time { return base.Add(5 * time.Minute) }
	if _, ok := c.Get(ctx, "ttl"); !ok {
		t.Fatalf("expected hit at exact TTL boundary")
	}

	c.now = func() time.Time { return base.Add(5*time.Minute + time.Nanosecond) }
	if _, ok := c.Get(ctx, "ttl"); ok {
		t.Fatalf("expected miss after TTL expires")
	}
	if c.ll.Len() != 0 {
		t.Fatalf("expected expired entry to be evicted on read")
	}
}

func TestTTL_PerEntryOverride(t *testing.T) {
	c := NewStepCacheTTL(4, 5*time.Minute)
	ctx := context.Background()

	base := time.Date(2025, 11, 26, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }

	_ = c.Set(ctx, "short", passedResult("short"), 30*time.Second)
	_ = c.Set(ctx, "long", passedResult("long"), 0) // TTL по умолчанию

	c.now = func() time.Time { return base.Add(time.Minute) }
	if _, ok := c.Get(ctx, "short"); ok {
		t.Fatalf("expected short-lived entry to expire")
	}
	if _, ok := c.Get(ctx, "long"); !ok {
		t.Fatalf("expected default-TTL entry to survive")
	}
}

func TestGet_DoesNotExtendTTL(t *testing.T) {
	c := NewStepCacheTTL(2, time.Minute)
	ctx := context.Background()

	base := time.Date(2025, 11, 26, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }
	_ = c.Set(ctx, "k", passedResult("k"), 0)

	// чтение в середине срока не переносит момент истечения
	c.now = func() time.Time { return base.Add(50 * time.Second) }
	if _, ok := c.Get(ctx, "k"); !ok {
		t.Fatalf("expected hit mid-TTL")
	}

	c.now = func() time.Time { return base.Add(70 * time.Second) }
	if _, ok := c.Get(ctx, "k"); ok {
		t.Fatalf("expected miss: read must not extend entry lifetime")
	}
}

func TestLRUEviction(t *testing.T) {
	c := NewStepCacheTTL(2, 0) // 0 = без TTL
	ctx := context.Background()

	_ = c.Set(ctx, "A", passedResult("A"), 0)
	_ = c.Set(ctx, "B", passedResult("B"), 0)
	// A сделать «свежим»
	if _, ok := c.Get(ctx, "A"); !ok {
		t.Fatalf("expected hit for A")
	}
	// Добавляем C — вытеснит B (самый старый)
	_ = c.Set(ctx, "C", passedResult("C"), 0)

	if _, ok := c.Get(ctx, "B"); ok {
		t.Fatalf("expected B to be evicted")
	}
	if _, ok := c.Get(ctx, "A"); !ok || c.ll.Len() != 2 {
		t.Fatalf("expected A & C to stay in cache")
	}
}

func TestCloneImmutability(t *testing.T) {
	c := NewStepCacheTTL(1, 0)
	ctx := context.Background()
	_ = c.Set(ctx, "Z", passedResult("Z"), 0)

	// меняем то, что вернул Get — не должно влиять на кэш
	r1, _ := c.Get(ctx, "Z")
	r1.Payload.Customer.Name = "changed"

	r2, _ := c.Get(ctx, "Z")
	if r2.Payload.Customer.Name == "changed" {
		t.Fatalf("cache should return clones, not pointers to internal value")
	}
}

func TestHas_DeleteClear(t *testing.T) {
	c := NewStepCacheTTL(4, time.Minute)
	ctx := context.Background()

	base := time.Date(2025, 11, 26, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }

	_ = c.Set(ctx, "a", passedResult("a"), 0)
	_ = c.Set(ctx, "b", passedResult("b"), 0)

	if !c.Has(ctx, "a") || !c.Has(ctx, "b") {
		t.Fatalf("expected Has to see both entries")
	}
	if c.Has(ctx, "missing") {
		t.Fatalf("expected Has to miss unknown key")
	}

	if err := c.Delete(ctx, "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Has(ctx, "a") {
		t.Fatalf("expected a to be deleted")
	}
	// повторное удаление — не ошибка
	if err := c.Delete(ctx, "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := c.Clear(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Has(ctx, "b") || c.ll.Len() != 0 {
		t.Fatalf("expected empty cache after Clear")
	}
}

func TestHas_EvictsExpired(t *testing.T) {
	c := NewStepCacheTTL(2, time.Minute)
	ctx := context.Background()

	base := time.Date(2025, 11, 26, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }
	_ = c.Set(ctx, "k", passedResult("k"), 0)

	c.now = func() time.Time { return base.Add(2 * time.Minute) }
	if c.Has(ctx, "k") {
		t.Fatalf("expected Has to report expired entry as missing")
	}
	if c.ll.Len() != 0 {
		t.Fatalf("expected Has to evict the expired entry")
	}
}
