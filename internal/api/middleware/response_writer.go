package middleware

import "net/http"

// responseWriter запоминает статус ответа и вызывает beforeWrite
// непосредственно перед отправкой заголовков
type responseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	beforeWrite func(h http.Header)
}

func wrapResponseWriter(w http.ResponseWriter) *responseWriter {
	if rw, ok := w.(*responseWriter); ok {
		return rw
	}
	return &responseWriter{ResponseWriter: w, status: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	if rw.wroteHeader {
		return
	}
	rw.wroteHeader = true
	rw.status = code
	if rw.beforeWrite != nil {
		rw.beforeWrite(rw.Header())
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}
