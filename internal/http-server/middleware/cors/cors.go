package cors

import "net/http"

const (
	AllowOrigin  = "*"
	AllowMethods = "POST,GET"
	AllowHeaders = "Content-Type, Authorization"
)

// New sets permissive CORS headers on every response. Any OPTIONS request
// is answered with 200 and an empty body without reaching the route.
func New() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", AllowOrigin)
			h.Set("Access-Control-Allow-Methods", AllowMethods)
			h.Set("Access-Control-Allow-Headers", AllowHeaders)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}
