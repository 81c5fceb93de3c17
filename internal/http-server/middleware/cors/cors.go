package cors

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"imageUploader/internal/lib/api/response"
)

// New returns a middleware that gates every request on its Origin header.
// A request with no Origin header passes untouched. An origin on the
// allow-list passes with credential-sharing CORS headers set; any other
// origin is logged and rejected before routing. Origins are matched as a
// set with trailing slashes stripped, so "http://host/" and "http://host"
// are the same entry.
func New(log *slog.Logger, allowedOrigins []string) func(next http.Handler) http.Handler {
	log = log.With(
		slog.String("component", "middleware/cors"),
	)

	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[normalize(origin)] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if _, ok := allowed[normalize(origin)]; !ok {
				log.Warn("blocked cross-origin request", slog.String("origin", origin))

				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("cors not allowed for this origin"))
				return
			}

			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Add("Vary", "Origin")

			if r.Method == http.MethodOptions {
				h.Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
				h.Set("Access-Control-Allow-Headers", "Content-Type")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

func normalize(origin string) string {
	return strings.TrimSuffix(origin, "/")
}
