package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-CalendarBooking/internal/api/handlers"
)

const (
	msgTooManyRequests = "слишком много запросов, попробуйте позже"

	clientTTL       = 3 * time.Minute
	cleanupInterval = time.Minute
)

type client struct {
	limiter *rate.Limiter
	seen    time.Time
}

// RateLimiter ограничивает частоту запросов с одного IP
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
	logger  Logger
	stop    chan struct{}
	once    sync.Once
}

// NewRateLimiter создает ограничитель на rps запросов в секунду с запасом burst
// и запускает очистку неактивных клиентов до вызова Stop
func NewRateLimiter(rps float64, burst int, logger Logger) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*client),
		limit:   rate.Limit(rps),
		burst:   burst,
		logger:  logger,
		stop:    make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

// Stop останавливает фоновую очистку
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Middleware отвечает 429, если клиент превысил лимит
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !rl.get(ip).Allow() {
			rl.logger.Warn("%s %s - Rate limit exceeded: ip=%s", r.Method, r.URL.Path, ip)
			handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) get(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if c, ok := rl.clients[ip]; ok {
		c.seen = time.Now()
		return c.limiter
	}

	l := rate.NewLimiter(rl.limit, rl.burst)
	rl.clients[ip] = &client{limiter: l, seen: time.Now()}
	return l
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.mu.Lock()
			for ip, c := range rl.clients {
				if time.Since(c.seen) > clientTTL {
					delete(rl.clients, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// clientIP возвращает адрес из RemoteAddr. Заголовок X-Forwarded-For
// задается клиентом и для ключа лимита не используется
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
