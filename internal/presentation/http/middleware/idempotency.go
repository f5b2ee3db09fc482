package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aakb/rasid-api/internal/domain/entity"
	"github.com/aakb/rasid-api/internal/domain/repository"
	"github.com/aakb/rasid-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// IdempotencyKeyHeader is the HTTP header for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL is how long keys are valid
	IdempotencyKeyTTL = 24 * time.Hour
)

// IdempotencyConfig holds configuration for the idempotency middleware
type IdempotencyConfig struct {
	Repo repository.IdempotencyRepository
	// Required rejects requests without a key
	Required bool
}

// responseWriter wraps gin.ResponseWriter to capture the response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response when a POST is retried with the
// same Idempotency-Key. Reusing a key with a different body is refused.
// Only 2xx JSON responses are stored.
func Idempotency(config IdempotencyConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		idempotencyKey := strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader))
		if idempotencyKey == "" {
			if config.Required {
				response.BadRequest(c, "Idempotency-Key header is required for this request")
				c.Abort()
				return
			}
			c.Next()
			return
		}

		userID, ok := c.Get(ContextUserID)
		uid, isUUID := userID.(uuid.UUID)
		if !ok || !isUUID {
			response.Unauthorized(c, "User not authenticated")
			c.Abort()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.BadRequest(c, "Failed to read request body")
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		sum := sha256.Sum256(body)
		requestHash := hex.EncodeToString(sum[:])

		existing, err := config.Repo.Find(c.Request.Context(), uid, idempotencyKey)
		if err != nil {
			response.InternalServerError(c, "Failed to check idempotency key")
			c.Abort()
			return
		}

		if existing != nil && !existing.IsExpired() {
			if !existing.Matches(requestHash) {
				response.ErrorWithCode(c, http.StatusUnprocessableEntity, "Idempotency-Key was already used with a different request")
				c.Abort()
				return
			}
			c.Header("X-Idempotency-Replayed", "true")
			c.Data(existing.ResponseCode, "application/json; charset=utf-8", []byte(existing.ResponseBody))
			c.Abort()
			return
		}

		blw := &responseWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 || !strings.HasPrefix(c.Writer.Header().Get("Content-Type"), "application/json") {
			return
		}
		err = config.Repo.Save(c.Request.Context(), &entity.IdempotencyKey{
			Key:          idempotencyKey,
			UserID:       uid,
			Endpoint:     c.Request.Method + " " + c.FullPath(),
			RequestHash:  requestHash,
			ResponseCode: status,
			ResponseBody: blw.body.String(),
			ExpiresAt:    time.Now().Add(IdempotencyKeyTTL),
		})
		if err != nil {
			// The response is already sent; a retry will run the handler again.
			_ = c.Error(fmt.Errorf("save idempotency key %q: %w", idempotencyKey, err))
		}
	}
}

// IdempotencyRequired is Idempotency with a mandatory key
func IdempotencyRequired(config IdempotencyConfig) gin.HandlerFunc {
	config.Required = true
	return Idempotency(config)
}
