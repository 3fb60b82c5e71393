package web

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// requestID tags each request with an id, reusing a valid incoming one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(requestIDHeader, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// ipHasher hashes client addresses with a per-process salt so access logs
// never hold a raw IP.
type ipHasher struct {
	salt string
}

func newIPHasher() ipHasher {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatal("Failed to generate hashing salt:", err)
	}
	return ipHasher{salt: hex.EncodeToString(b)}
}

func (h ipHasher) hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// accessLog logs page and fragment requests. Static assets are skipped and
// clients sending DNT: 1 are logged without an address hash.
func accessLog(h ipHasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/favicon") ||
			path == "/healthz" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		visitor := "-"
		if c.GetHeader("DNT") != "1" {
			visitor = h.hash(c.ClientIP())
		}
		log.Printf("%s %s %d %s visitor=%s request=%s",
			c.Request.Method, path, c.Writer.Status(), time.Since(start),
			visitor, c.GetString(requestIDHeader))
	}
}
