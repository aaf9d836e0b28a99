package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/follonierjack89-bit/fte-facturation/internal/domain/entity"
)

// memoryKeyStore is an in-memory IdempotencyRepository for tests.
type memoryKeyStore struct {
	keys map[string]*entity.IdempotencyKey
}

func newMemoryKeyStore() *memoryKeyStore {
	return &memoryKeyStore{keys: make(map[string]*entity.IdempotencyKey)}
}

func (s *memoryKeyStore) GetByKey(_ context.Context, key string) (*entity.IdempotencyKey, error) {
	return s.keys[key], nil
}

func (s *memoryKeyStore) Create(_ context.Context, ikey *entity.IdempotencyKey) error {
	s.keys[ikey.Key] = ikey
	return nil
}

func (s *memoryKeyStore) DeleteExpired(_ context.Context) error {
	for key, ikey := range s.keys {
		if ikey.IsExpired() {
			delete(s.keys, key)
		}
	}
	return nil
}

// newIdempotentRouter returns a router whose POST handler simulates a
// counter-consuming save: each real invocation produces a new number.
func newIdempotentRouter(store *memoryKeyStore, calls *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Idempotency(IdempotencyConfig{Repo: store}))
	router.POST("/invoices", func(c *gin.Context) {
		*calls++
		c.JSON(201, gin.H{"number": fmt.Sprintf("2025-%03d", *calls)})
	})
	return router
}

func postInvoice(t *testing.T, router *gin.Engine, key string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/invoices", nil)
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotencyReplaysStoredResponse(t *testing.T) {
	store := newMemoryKeyStore()
	calls := 0
	router := newIdempotentRouter(store, &calls)

	first := postInvoice(t, router, "retry-1")
	if first.Code != 201 {
		t.Fatalf("first request status = %d, want 201", first.Code)
	}
	if first.Header().Get("X-Idempotency-Replayed") != "" {
		t.Error("first request must not be marked as replayed")
	}

	second := postInvoice(t, router, "retry-1")
	if second.Code != 201 {
		t.Fatalf("retried request status = %d, want 201", second.Code)
	}
	if second.Header().Get("X-Idempotency-Replayed") != "true" {
		t.Error("retried request should carry X-Idempotency-Replayed: true")
	}
	if second.Body.String() != first.Body.String() {
		t.Errorf("retried body = %s, want the original %s", second.Body.String(), first.Body.String())
	}
	if calls != 1 {
		t.Errorf("handler ran %d times, want 1: a retry must not consume another number", calls)
	}
}

func TestIdempotencyDistinctKeysRunSeparately(t *testing.T) {
	store := newMemoryKeyStore()
	calls := 0
	router := newIdempotentRouter(store, &calls)

	first := postInvoice(t, router, "key-a")
	second := postInvoice(t, router, "key-b")

	if calls != 2 {
		t.Errorf("handler ran %d times, want 2", calls)
	}
	if first.Body.String() == second.Body.String() {
		t.Error("distinct keys must produce distinct responses")
	}
}

func TestIdempotencyWithoutKeyPassesThrough(t *testing.T) {
	store := newMemoryKeyStore()
	calls := 0
	router := newIdempotentRouter(store, &calls)

	postInvoice(t, router, "")
	postInvoice(t, router, "")

	if calls != 2 {
		t.Errorf("handler ran %d times, want 2 without idempotency keys", calls)
	}
	if len(store.keys) != 0 {
		t.Errorf("store holds %d keys, want none", len(store.keys))
	}
}

func TestIdempotencyExpiredKeyRunsAgain(t *testing.T) {
	store := newMemoryKeyStore()
	store.keys["stale"] = &entity.IdempotencyKey{
		Key:          "stale",
		ResponseCode: 201,
		ResponseBody: `{"number":"2025-001"}`,
		ExpiresAt:    time.Now().Add(-time.Minute),
	}
	calls := 0
	router := newIdempotentRouter(store, &calls)

	w := postInvoice(t, router, "stale")
	if calls != 1 {
		t.Errorf("handler ran %d times, want 1 for an expired key", calls)
	}
	if w.Header().Get("X-Idempotency-Replayed") != "" {
		t.Error("expired key must not be replayed")
	}
}
