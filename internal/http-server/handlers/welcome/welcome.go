package welcome

import (
	"log/slog"
	"net/http"

	"imageUploader/internal/lib/logger/sl"
)

// New serves the HTML welcome banner. It doubles as the liveness check.
func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.welcome.New"

		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		if _, err := w.Write([]byte("<h1>welcome to image uploader website</h1>")); err != nil {
			log.Error("failed to write welcome response", slog.String("op", op), sl.Err(err))
		}
	}
}
