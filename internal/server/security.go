package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/goldenstack/enchantd/internal/logger"
)

// isPublicPath reports whether the path bypasses API-key auth. Matching is by
// prefix and ignores the method, so only read-only endpoints belong in
// PublicPaths; every catalog write stays behind the key.
func isPublicPath(path string) bool {
	for _, prefix := range PublicPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// AuthMiddleware enforces the X-API-Key header on everything outside
// PublicPaths. Failed attempts are reported to the detector keyed by client IP.
func AuthMiddleware(apiKey string, trustedProxies []string, detector *AbuseDetector) func(http.Handler) http.Handler {
	expected := []byte(apiKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(provided), expected) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			ip := clientIP(r, trustedProxies)
			detector.RecordFailedAuth(ip)
			logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
				"ip", ip,
				"path", r.URL.Path,
				"has_key", provided != "")
			http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
		})
	}
}

// RateLimitMiddleware rejects clients that exceed the per-IP request budget
// within the detector's window.
func RateLimitMiddleware(trustedProxies []string, detector *AbuseDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.Allow(clientIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware caps the request body size.
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// securityHeaders are attached to every response.
var securityHeaders = map[string]string{
	HeaderContentType:    HeaderValueNoSniff,
	HeaderFrameOptions:   HeaderValueSameOrigin,
	HeaderXSSProtection:  HeaderValueXSSBlock,
	HeaderReferrerPolicy: HeaderValueReferrerStrictOrigin,
}

// SecurityHeadersMiddleware sets the standard security headers.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for name, value := range securityHeaders {
				h.Set(name, value)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AbuseDetector counts per-IP auth failures and request volume over a fixed
// reset window.
type AbuseDetector struct {
	mu          sync.Mutex
	authFails   map[string]int
	requests    map[string]int
	windowStart time.Time
	window      time.Duration
	maxRequests int
}

func NewAbuseDetector() *AbuseDetector {
	return &AbuseDetector{
		authFails:   make(map[string]int),
		requests:    make(map[string]int),
		windowStart: time.Now(),
		window:      RateLimitWindow,
		maxRequests: RateLimitMaxRequests,
	}
}

// RecordFailedAuth counts one failed authentication for ip and raises an alert
// once the count reaches AuthFailAlertThreshold.
func (d *AbuseDetector) RecordFailedAuth(ip string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.maybeReset()
	d.authFails[ip]++
	if d.authFails[ip] >= AuthFailAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", d.authFails[ip])
	}
}

// Allow counts one request for ip and reports whether it is still within the
// window budget. Blocked requests are logged once per rateLimitLogEvery hits
// to keep the log volume bounded.
func (d *AbuseDetector) Allow(ip string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.maybeReset()
	d.requests[ip]++
	n := d.requests[ip]
	if n <= d.maxRequests {
		return true
	}
	if n%rateLimitLogEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", n)
	}
	return false
}

// maybeReset clears the counters once the window has elapsed. Callers hold
// the mutex.
func (d *AbuseDetector) maybeReset() {
	if time.Since(d.windowStart) <= d.window {
		return
	}
	d.authFails = make(map[string]int)
	d.requests = make(map[string]int)
	d.windowStart = time.Now()
}

// clientIP resolves the client address. X-Forwarded-For is honored only when
// the direct peer is a trusted proxy, and then the rightmost hop wins because
// that is the address the proxy itself saw.
func clientIP(r *http.Request, trustedProxies []string) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	if !slices.Contains(trustedProxies, ip) {
		return ip
	}
	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return ip
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}
