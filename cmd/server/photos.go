package main

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/notrecocon/cocon/internal/auth"
	"github.com/notrecocon/cocon/internal/blob"
	"github.com/notrecocon/cocon/internal/middleware"
)

// photoHandler serves stored photos to either role. Browsers cannot attach a
// bearer header to <img> requests, so the token may also come as ?token=.
func photoHandler(blobs blob.Store, jwtManager *auth.JWTManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := middleware.BearerToken(r.Header)
		if err != nil {
			token = r.URL.Query().Get("token")
		}
		if token == "" {
			http.Error(w, auth.ErrMissingToken.Error(), http.StatusUnauthorized)
			return
		}
		if _, err := jwtManager.Validate(token); err != nil {
			http.Error(w, auth.ErrInvalidToken.Error(), http.StatusUnauthorized)
			return
		}

		p, ok := blob.PathFromURL(r.URL.Path)
		if !ok {
			http.NotFound(w, r)
			return
		}
		rc, contentType, err := blobs.Get(r.Context(), p)
		if errors.Is(err, blob.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		if err != nil {
			slog.Error("Failed to read photo", "path", p, "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		defer rc.Close()

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "private, max-age=300")
		if _, err := io.Copy(w, rc); err != nil {
			slog.Warn("Failed to send photo", "path", p, "error", err)
		}
	})
}
