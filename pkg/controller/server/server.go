package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ghresume/pkg/domain/interfaces"
	"github.com/m-mizutani/ghresume/pkg/domain/types"
	"github.com/m-mizutani/ghresume/pkg/infra/renderer"
	"github.com/m-mizutani/ghresume/pkg/utils/errutil"
	"github.com/m-mizutani/ghresume/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func New(uc interfaces.UseCase) *Server {
	r := chi.NewRouter()
	r.Use(preProcess)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		body, err := json.Marshal(map[string]string{
			"status":    "ok",
			"timestamp": logging.CtxTime(r.Context()).Format(time.RFC3339),
		})
		if err != nil {
			safeWrite(w, http.StatusInternalServerError, []byte(err.Error()))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		safeWrite(w, http.StatusOK, body)
	})

	r.Get("/preview", func(w http.ResponseWriter, r *http.Request) {
		user, ok := queryUsername(w, r)
		if !ok {
			return
		}

		html, err := uc.Preview(r.Context(), user)
		if err != nil {
			writeResumeError(w, r, user, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		safeWrite(w, http.StatusOK, []byte(html))
	})

	r.Get("/pdf", func(w http.ResponseWriter, r *http.Request) {
		user, ok := queryUsername(w, r)
		if !ok {
			return
		}

		pdf, err := uc.ExportPDF(r.Context(), user)
		if err != nil {
			writeResumeError(w, r, user, err)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s-github-resume.pdf"`, user))
		safeWrite(w, http.StatusOK, pdf)
	})

	r.Get("/static/resume.css", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		safeWrite(w, http.StatusOK, []byte(renderer.StyleCSS))
	})

	return &Server{
		mux: r,
	}
}

// queryUsername extracts the required username parameter. A missing value
// is answered with 400 before any upstream call happens.
func queryUsername(w http.ResponseWriter, r *http.Request) (types.GitHubUser, bool) {
	user := types.GitHubUser(r.URL.Query().Get("username"))
	if user == "" {
		safeWrite(w, http.StatusBadRequest, []byte("missing required query parameter: username"))
		return "", false
	}
	return user, true
}

// writeResumeError maps pipeline failures to plain-text HTTP responses:
// unknown user to 404, everything else to 500.
func writeResumeError(w http.ResponseWriter, r *http.Request, user types.GitHubUser, err error) {
	if errors.Is(err, types.ErrUserNotFound) {
		safeWrite(w, http.StatusNotFound,
			[]byte(fmt.Sprintf("GitHub user %q was not found", user)))
		return
	}

	errutil.HandleError(r.Context(), "fail to build resume", err)
	safeWrite(w, http.StatusInternalServerError, []byte(err.Error()))
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
