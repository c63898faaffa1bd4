package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// HeaderRequestID opts a mutating request into at-most-once semantics.
const HeaderRequestID = "X-Request-Id"

// provisionalLockTTL bounds how long an in-flight request holds its key if
// the handler never finishes.
const provisionalLockTTL = 60 * time.Second

var (
	reUUID  = regexp.MustCompile(`^[a-f0-9]{8}-[a-f0-9]{4}-[1-5][a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}$`)
	reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)
)

type idempEntry struct {
	InProgress bool      `json:"in_progress"`
	Code       int       `json:"code"`
	Body       []byte    `json:"body"`
	BodySHA256 string    `json:"body_sha256"`
	CreatedAt  time.Time `json:"created_at"`
}

type respRecorder struct {
	w    http.ResponseWriter
	buf  *bytes.Buffer
	code int
}

func (r *respRecorder) Header() http.Header { return r.w.Header() }

func (r *respRecorder) Write(b []byte) (int, error) {
	r.buf.Write(b)
	return r.w.Write(b)
}

func (r *respRecorder) WriteHeader(code int) {
	r.code = code
	r.w.WriteHeader(code)
}

// Idempotency replays recorded responses for retried mutating requests.
// It is opt-in: requests without X-Request-Id pass through untouched. The
// key binds method, route, caller and request id; reusing an id with a
// different body is a conflict, as is retrying while the first attempt is
// still in flight.
func Idempotency(rdb *redis.Client, ttl time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			switch req.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return next(c)
			}

			reqID := strings.ToLower(strings.TrimSpace(req.Header.Get(HeaderRequestID)))
			if reqID == "" {
				return next(c)
			}
			if !reUUID.MatchString(reqID) && !reHex32.MatchString(reqID) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid X-Request-Id format"})
			}

			var body []byte
			if req.Body != nil {
				body, _ = io.ReadAll(req.Body)
			}
			req.Body = io.NopCloser(bytes.NewBuffer(body))
			sum := sha256.Sum256(body)
			bhash := hex.EncodeToString(sum[:])

			key := idempKey(req.Method, c.Path(), callerKey(req), reqID)
			ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
			defer cancel()

			ok, err := setProvisional(ctx, rdb, key, bhash)
			if err != nil {
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "idempotency store unavailable"})
			}
			if !ok {
				cur, err := loadEntry(ctx, rdb, key)
				if err != nil {
					return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "idempotency store unavailable"})
				}
				if cur.BodySHA256 != bhash {
					return c.JSON(http.StatusConflict, map[string]string{"error": "X-Request-Id reused with different body"})
				}
				if cur.InProgress {
					return c.JSON(http.StatusConflict, map[string]string{"error": "request is already in progress"})
				}
				return c.Blob(cur.Code, echo.MIMEApplicationJSON, cur.Body)
			}

			rec := &respRecorder{w: c.Response().Writer, buf: &bytes.Buffer{}, code: http.StatusOK}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				c.Error(err)
			}

			final := idempEntry{
				Code:       rec.code,
				Body:       rec.buf.Bytes(),
				BodySHA256: bhash,
				CreatedAt:  time.Now().UTC(),
			}
			// recording happens after the response is already on the wire, so
			// a fresh context rather than the (possibly done) request context
			_ = saveFinal(context.Background(), rdb, key, final, ttl)
			return nil
		}
	}
}

func callerKey(req *http.Request) string {
	if id := strings.TrimSpace(req.Header.Get(HeaderUserID)); id != "" {
		return id
	}
	if req.Header.Get(HeaderAdmin) == "true" {
		return "admin"
	}
	return "anon"
}

func idempKey(method, path, caller, reqID string) string {
	return "idemp:" + strings.ToLower(method) + ":" + path + ":" + caller + ":" + reqID
}

func setProvisional(ctx context.Context, rdb *redis.Client, key, bodyHash string) (bool, error) {
	payload, _ := json.Marshal(idempEntry{
		InProgress: true,
		BodySHA256: bodyHash,
		CreatedAt:  time.Now().UTC(),
	})
	return rdb.SetNX(ctx, key, payload, provisionalLockTTL).Result()
}

func loadEntry(ctx context.Context, rdb *redis.Client, key string) (idempEntry, error) {
	var e idempEntry
	raw, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return e, err
	}
	err = json.Unmarshal(raw, &e)
	return e, err
}

func saveFinal(ctx context.Context, rdb *redis.Client, key string, e idempEntry, ttl time.Duration) error {
	payload, _ := json.Marshal(e)
	return rdb.Set(ctx, key, payload, ttl).Err()
}
