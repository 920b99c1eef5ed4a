package middleware

import (
	"net/http"

	gorillaHandlers "github.com/gorilla/handlers"
)

// CORS разрешает запросы с любых origin. Оборачивает весь роутер,
// чтобы preflight OPTIONS обрабатывался до сопоставления маршрутов
func CORS(next http.Handler) http.Handler {
	return gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With"}),
		gorillaHandlers.ExposedHeaders([]string{HeaderProcessTime}),
	)(next)
}
