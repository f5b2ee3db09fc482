package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aakb/rasid-api/internal/domain/entity"
	"github.com/aakb/rasid-api/internal/domain/enum"
	"github.com/aakb/rasid-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm/schema"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuthAndRequireRole(t *testing.T) {
	jwt := utils.NewJWTManager("secret", time.Hour, time.Hour)
	admin, _ := jwt.GenerateAccessToken(uuid.New(), "a@aakb.org.in", "Admin", "admin")
	staff, _ := jwt.GenerateAccessToken(uuid.New(), "b@aakb.org.in", "Staff", "bill_maker")
	refresh, _ := jwt.GenerateRefreshToken(uuid.New())

	r := gin.New()
	r.Use(AuthMiddleware(jwt))
	r.GET("/any", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(ContextUserName)) })
	r.GET("/admin", RequireRole(enum.UserRoleAdmin), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"no header", "/any", "", http.StatusUnauthorized},
		{"bad scheme", "/any", "Token " + admin, http.StatusUnauthorized},
		{"refresh token", "/any", "Bearer " + refresh, http.StatusUnauthorized},
		{"staff any", "/any", "Bearer " + staff, http.StatusOK},
		{"staff admin", "/admin", "Bearer " + staff, http.StatusForbidden},
		{"admin admin", "/admin", "Bearer " + admin, http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestRateLimiterPerUser(t *testing.T) {
	rl := NewUserRateLimiter(RateLimiterConfig{RequestsPerSecond: 0.001, BurstSize: 2})
	userA, userB := uuid.New(), uuid.New()

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if c.GetHeader("X-User") == "a" {
			c.Set(ContextUserID, userA)
		} else {
			c.Set(ContextUserID, userB)
		}
	})
	r.Use(rl.Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(user string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-User", user)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}
	for i := 0; i < 2; i++ {
		if got := do("a"); got != http.StatusOK {
			t.Fatalf("request %d = %d", i, got)
		}
	}
	if got := do("a"); got != http.StatusTooManyRequests {
		t.Errorf("third request = %d, want 429", got)
	}
	if got := do("b"); got != http.StatusOK {
		t.Errorf("other user = %d, want 200", got)
	}
}

type memoryIdempotencyRepo struct {
	mu   sync.Mutex
	keys    map[string]*entity.IdempotencyKey
	saveErr error
}

func (m *memoryIdempotencyRepo) Find(_ context.Context, userID uuid.UUID, key string) (*entity.IdempotencyKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k, ok := m.keys[userID.String()+"/"+key]
	if !ok || k.IsExpired() {
		return nil, nil
	}
	return k, nil
}

func (m *memoryIdempotencyRepo) Save(_ context.Context, k *entity.IdempotencyKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.keys[k.UserID.String()+"/"+k.Key] = k
	return nil
}

func (m *memoryIdempotencyRepo) Purge(context.Context) (int64, error) { return 0, nil }

func TestIdempotencyRequired(t *testing.T) {
	repo := &memoryIdempotencyRepo{keys: map[string]*entity.IdempotencyKey{}}
	user := uuid.New()
	calls := 0

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(ContextUserID, user) })
	r.POST("/receipts", IdempotencyRequired(IdempotencyConfig{Repo: repo}), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"receipt_no": calls})
	})

	do := func(key, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/receipts", strings.NewReader(body))
		if key != "" {
			req.Header.Set(IdempotencyKeyHeader, key)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	if w := do("", `{}`); w.Code != http.StatusBadRequest {
		t.Errorf("missing key = %d, want 400", w.Code)
	}

	first := do("k1", `{"amount":100}`)
	if first.Code != http.StatusCreated {
		t.Fatalf("first = %d", first.Code)
	}
	again := do("k1", `{"amount":100}`)
	if again.Code != http.StatusCreated || again.Header().Get("X-Idempotency-Replayed") != "true" {
		t.Errorf("replay = %d %v", again.Code, again.Header())
	}
	if again.Body.String() != first.Body.String() || calls != 1 {
		t.Errorf("handler ran %d times, body %q", calls, again.Body.String())
	}
	if w := do("k1", `{"amount":200}`); w.Code != http.StatusUnprocessableEntity {
		t.Errorf("reused key with new body = %d, want 422", w.Code)
	}
}

func TestIdempotencyKeyIsPerUser(t *testing.T) {
	repo := &memoryIdempotencyRepo{keys: map[string]*entity.IdempotencyKey{}}
	calls := 0

	r := gin.New()
	r.Use(func(c *gin.Context) {
		id, _ := uuid.Parse(c.GetHeader("X-User"))
		c.Set(ContextUserID, id)
	})
	r.POST("/receipts", IdempotencyRequired(IdempotencyConfig{Repo: repo}), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"receipt_no": calls})
	})

	do := func(user uuid.UUID) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/receipts", strings.NewReader(`{"amount":100}`))
		req.Header.Set(IdempotencyKeyHeader, "same-key")
		req.Header.Set("X-User", user.String())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	a, b := uuid.New(), uuid.New()
	do(a)
	w := do(b)
	if w.Header().Get("X-Idempotency-Replayed") != "" || calls != 2 {
		t.Errorf("second user got a replay: calls = %d, body %q", calls, w.Body.String())
	}
}

func TestIdempotencySaveFailureIsLogged(t *testing.T) {
	repo := &memoryIdempotencyRepo{
		keys:    map[string]*entity.IdempotencyKey{},
		saveErr: errors.New("connection reset"),
	}
	core, logs := observer.New(zap.ErrorLevel)

	r := gin.New()
	r.Use(LoggerMiddleware(zap.New(core)))
	r.Use(func(c *gin.Context) { c.Set(ContextUserID, uuid.New()) })
	r.POST("/receipts", IdempotencyRequired(IdempotencyConfig{Repo: repo}), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"receipt_no": 1})
	})

	req := httptest.NewRequest(http.MethodPost, "/receipts", strings.NewReader(`{}`))
	req.Header.Set(IdempotencyKeyHeader, "k1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want the handler's 201", w.Code)
	}
	entries := logs.FilterMessage("request error").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d request errors, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["error"]; !strings.Contains(fmt.Sprint(got), "connection reset") {
		t.Errorf("logged error = %v", got)
	}
}

func TestIdempotencyKeyUniquePerUser(t *testing.T) {
	s, err := schema.Parse(&entity.IdempotencyKey{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatal(err)
	}
	idx, ok := s.ParseIndexes()["idx_idempotency_user_key"]
	if !ok {
		t.Fatal("missing idx_idempotency_user_key")
	}
	if idx.Class != "UNIQUE" {
		t.Errorf("class = %q, want UNIQUE", idx.Class)
	}
	var cols []string
	for _, f := range idx.Fields {
		cols = append(cols, f.DBName)
	}
	if strings.Join(cols, ",") != "user_id,key" {
		t.Errorf("columns = %v, want [user_id key]", cols)
	}
	for name, other := range s.ParseIndexes() {
		if name != "idx_idempotency_user_key" && other.Class == "UNIQUE" {
			t.Errorf("unexpected unique index %s", name)
		}
	}
}

func TestLoggerSetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(LoggerMiddleware(zap.NewNop()), RecoveryMiddleware(zap.NewNop()))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID")
	}

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("X-Request-ID", "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "abc" {
		t.Errorf("X-Request-ID = %q, want abc", got)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("panic status = %d", w.Code)
	}
}
