package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/petros-hq/petros-api/internal/domain/entity"
)

type fakeIdempotencyRepo struct {
	keys map[string]*entity.IdempotencyKey
}

func newFakeIdempotencyRepo() *fakeIdempotencyRepo {
	return &fakeIdempotencyRepo{keys: map[string]*entity.IdempotencyKey{}}
}

func (f *fakeIdempotencyRepo) Create(ctx context.Context, key *entity.IdempotencyKey) error {
	f.keys[key.UserID.String()+"/"+key.Key] = key
	return nil
}

func (f *fakeIdempotencyRepo) GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error) {
	return f.keys[userID.String()+"/"+key], nil
}

func (f *fakeIdempotencyRepo) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}

// newIdempotencyTestRouter simulates an authenticated user and counts how
// many times the wrapped handler actually runs.
func newIdempotencyTestRouter(repo *fakeIdempotencyRepo, userID uuid.UUID, status int, executed *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/sales",
		func(c *gin.Context) { c.Set("user_id", userID) },
		Idempotency(repo),
		func(c *gin.Context) {
			*executed++
			c.JSON(status, gin.H{"invoice": "INV-1"})
		},
	)
	return router
}

func postWithKey(router *gin.Engine, key string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sales", nil)
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotencyFirstRequestExecutesAndCaches(t *testing.T) {
	repo := newFakeIdempotencyRepo()
	executed := 0
	router := newIdempotencyTestRouter(repo, uuid.New(), http.StatusCreated, &executed)

	w := postWithKey(router, "key-1")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, executed)
	assert.Empty(t, w.Header().Get("X-Idempotency-Replayed"))
	assert.Len(t, repo.keys, 1)
}

func TestIdempotencyRetryReplaysWithoutReExecuting(t *testing.T) {
	repo := newFakeIdempotencyRepo()
	executed := 0
	router := newIdempotencyTestRouter(repo, uuid.New(), http.StatusCreated, &executed)

	first := postWithKey(router, "key-1")
	retry := postWithKey(router, "key-1")

	assert.Equal(t, 1, executed)
	assert.Equal(t, first.Code, retry.Code)
	assert.Equal(t, first.Body.String(), retry.Body.String())
	assert.Equal(t, "true", retry.Header().Get("X-Idempotency-Replayed"))
}

func TestIdempotencyDoesNotCacheFailedWrites(t *testing.T) {
	repo := newFakeIdempotencyRepo()
	executed := 0
	router := newIdempotencyTestRouter(repo, uuid.New(), http.StatusConflict, &executed)

	postWithKey(router, "key-1")
	postWithKey(router, "key-1")

	assert.Equal(t, 2, executed)
	assert.Empty(t, repo.keys)
}

func TestIdempotencyKeysAreScopedPerUser(t *testing.T) {
	repo := newFakeIdempotencyRepo()
	executedA, executedB := 0, 0
	routerA := newIdempotencyTestRouter(repo, uuid.New(), http.StatusCreated, &executedA)
	routerB := newIdempotencyTestRouter(repo, uuid.New(), http.StatusCreated, &executedB)

	postWithKey(routerA, "key-1")
	postWithKey(routerB, "key-1")

	assert.Equal(t, 1, executedA)
	assert.Equal(t, 1, executedB)
	assert.Len(t, repo.keys, 2)
}

func TestIdempotencyExpiredKeyReExecutes(t *testing.T) {
	repo := newFakeIdempotencyRepo()
	userID := uuid.New()
	repo.keys[userID.String()+"/key-1"] = &entity.IdempotencyKey{
		Key:          "key-1",
		UserID:       userID,
		ResponseCode: http.StatusCreated,
		ResponseBody: `{"invoice":"INV-OLD"}`,
		ExpiresAt:    time.Now().Add(-time.Minute),
	}

	executed := 0
	router := newIdempotencyTestRouter(repo, userID, http.StatusCreated, &executed)

	w := postWithKey(router, "key-1")

	assert.Equal(t, 1, executed)
	assert.NotContains(t, w.Body.String(), "INV-OLD")
}

func TestIdempotencyWithoutKeyAlwaysExecutes(t *testing.T) {
	repo := newFakeIdempotencyRepo()
	executed := 0
	router := newIdempotencyTestRouter(repo, uuid.New(), http.StatusCreated, &executed)

	postWithKey(router, "")
	postWithKey(router, "")

	assert.Equal(t, 2, executed)
	assert.Empty(t, repo.keys)
}
