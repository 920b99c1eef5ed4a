package middleware

import (
	"net/http"
	"strconv"
	"time"
)

// HeaderProcessTime заголовок с временем обработки запроса в секундах
const HeaderProcessTime = "X-Process-Time"

// ProcessTime добавляет к ответу заголовок X-Process-Time
func ProcessTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := wrapResponseWriter(w)
		rw.beforeWrite = func(h http.Header) {
			h.Set(HeaderProcessTime, strconv.FormatFloat(time.Since(start).Seconds(), 'f', 6, 64))
		}

		next.ServeHTTP(rw, r)

		// обработчик ничего не записал
		if !rw.wroteHeader {
			rw.WriteHeader(http.StatusOK)
		}
	})
}
