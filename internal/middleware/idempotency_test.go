package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func idempotencyRouter(rdb *redis.Client, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/payroll", Idempotency(rdb), handler)
	return r
}

func postWithKey(r *gin.Engine, key string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payroll", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotencyReplaysCompletedResponse(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()
	redisMock.ExpectGet("idemp:/payroll:key-1").SetVal(`{"id":"p-1"}`)

	r := idempotencyRouter(rdb, func(c *gin.Context) {
		t.Fatal("handler must not run on a replayed key")
	})

	w := postWithKey(r, "key-1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"p-1"`)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestIdempotencyRejectsKeyStillInProgress(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()
	redisMock.ExpectGet("idemp:/payroll:key-2").RedisNil()
	redisMock.ExpectSetNX("idemp:/payroll:key-2:lock", "locked", 30*time.Second).SetVal(false)

	r := idempotencyRouter(rdb, func(c *gin.Context) {
		t.Fatal("handler must not run while the key is locked")
	})

	w := postWithKey(r, "key-2")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestIdempotencyHandsKeysToTheHandler(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()
	redisMock.ExpectGet("idemp:/payroll:key-3").RedisNil()
	redisMock.ExpectSetNX("idemp:/payroll:key-3:lock", "locked", 30*time.Second).SetVal(true)

	var cacheKey, lockKey string
	r := idempotencyRouter(rdb, func(c *gin.Context) {
		cacheKey = c.GetString("idempotency_cache_key")
		lockKey = c.GetString("idempotency_lock_key")
		c.Status(http.StatusCreated)
	})

	w := postWithKey(r, "key-3")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "idemp:/payroll:key-3", cacheKey)
	assert.Equal(t, "idemp:/payroll:key-3:lock", lockKey)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}
