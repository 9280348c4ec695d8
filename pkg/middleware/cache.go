package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gilby125/award-distance/pkg/cache"
	"github.com/gilby125/award-distance/pkg/logger"
)

// CacheConfig holds cache middleware configuration
type CacheConfig struct {
	TTL         time.Duration
	SkipPaths   []string
	OnlyMethods []string
}

// responseWriter wraps gin.ResponseWriter to capture response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// CachedResponse represents a cached HTTP response
type CachedResponse struct {
	StatusCode  int               `json:"status_code"`
	Headers     map[string]string `json:"headers"`
	Body        []byte            `json:"body"`
	ContentType string            `json:"content_type"`
	CachedAt    time.Time         `json:"cached_at"`
}

// ResponseCache caches successful JSON responses. Every response carries an
// X-Cache header of HIT or MISS.
func ResponseCache(cacheManager *cache.CacheManager, config CacheConfig) gin.HandlerFunc {
	if config.OnlyMethods == nil {
		config.OnlyMethods = []string{http.MethodGet}
	}
	if config.TTL <= 0 {
		config.TTL = cache.MediumTTL
	}

	return func(c *gin.Context) {
		if !contains(config.OnlyMethods, c.Request.Method) {
			c.Next()
			return
		}
		for _, skipPath := range config.SkipPaths {
			if strings.HasPrefix(c.Request.URL.Path, skipPath) {
				c.Next()
				return
			}
		}

		cacheKey := cacheKeyFor(c.Request)
		log := logger.WithContext(c.Request.Context()).WithField("cache_key", cacheKey)

		var cached CachedResponse
		err := cacheManager.GetJSON(c.Request.Context(), cacheKey, &cached)
		if err == nil {
			log.Debug("Cache hit")
			for key, value := range cached.Headers {
				c.Header(key, value)
			}
			c.Header("X-Cache", "HIT")
			c.Data(cached.StatusCode, cached.ContentType, cached.Body)
			c.Abort()
			return
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Error(err, "Cache get error")
		}

		c.Header("X-Cache", "MISS")
		writer := &responseWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		contentType := c.Writer.Header().Get("Content-Type")
		if !strings.Contains(contentType, "application/json") {
			return
		}
		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}

		resp := CachedResponse{
			StatusCode:  status,
			Headers:     make(map[string]string),
			Body:        writer.body.Bytes(),
			ContentType: contentType,
			CachedAt:    time.Now(),
		}
		for key, values := range c.Writer.Header() {
			if len(values) > 0 && shouldCacheHeader(key) {
				resp.Headers[key] = values[0]
			}
		}

		if err := cacheManager.SetJSON(c.Request.Context(), cacheKey, resp, config.TTL); err != nil {
			log.Error(err, "Cache set error")
		} else {
			log.Debug("Response cached")
		}
	}
}

func cacheKeyFor(req *http.Request) string {
	return cache.ResponseKey(req.Method, req.URL.Path, req.URL.Query().Encode(), req.Header.Get("Accept"))
}

func shouldCacheHeader(header string) bool {
	switch strings.ToLower(header) {
	case "content-type", "content-encoding", "cache-control", "etag", "last-modified":
		return true
	}
	return false
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
