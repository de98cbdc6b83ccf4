package forms

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the form endpoints under /forms on the given router.
func RegisterRoutes(r chi.Router, svc *Service, limiter *Limiter) {
	r.Route("/forms", func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Post("/{kind}", handleSubmit(svc))
	})
}

func handleSubmit(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := Kind(chi.URLParam(r, "kind"))
		if kind.Section() == "" {
			writeError(w, r, http.StatusNotFound, "unknown form")
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, 64<<10)
		remote := clientIP(r)

		var (
			sub *Submission
			err error
		)
		switch kind {
		case KindConsultation:
			var c Consultation
			if err := decode(r, &c, func(v url.Values) {
				c = Consultation{
					Name:    v.Get("name"),
					Email:   v.Get("email"),
					Phone:   v.Get("phone"),
					Service: v.Get("service"),
					Message: v.Get("message"),
				}
			}); err != nil {
				writeError(w, r, http.StatusBadRequest, "invalid request body")
				return
			}
			sub, err = svc.SubmitConsultation(r.Context(), c, remote)
		default:
			var sg Signup
			if err := decode(r, &sg, func(v url.Values) {
				sg = Signup{Email: v.Get("email")}
			}); err != nil {
				writeError(w, r, http.StatusBadRequest, "invalid request body")
				return
			}
			sub, err = svc.SubmitSignup(r.Context(), kind, sg, remote)
		}

		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			if isJSON(r) {
				writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
					"error":  verr.Error(),
					"fields": verr.Fields,
				})
				return
			}
			http.Redirect(w, r, returnURL(kind, "error"), http.StatusSeeOther)
		case err != nil:
			svc.logger.Error("capturing submission", "form", kind, "err", err)
			writeError(w, r, http.StatusInternalServerError, "could not save your request, please try again later")
		case isJSON(r):
			writeJSON(w, http.StatusCreated, map[string]string{
				"id":     sub.ID,
				"status": string(sub.Status),
			})
		default:
			http.Redirect(w, r, returnURL(kind, "sent"), http.StatusSeeOther)
		}
	}
}

// decode reads a JSON body into dst, or parses a form body and hands the
// values to fromForm.
func decode(r *http.Request, dst any, fromForm func(url.Values)) error {
	if isJSON(r) {
		return json.NewDecoder(r.Body).Decode(dst)
	}
	if err := r.ParseForm(); err != nil {
		return err
	}
	fromForm(r.PostForm)
	return nil
}

// returnURL sends the browser back to the form's section with a flag the
// page uses to show the outcome.
func returnURL(kind Kind, flag string) string {
	q := url.Values{flag: {string(kind)}}
	return "/?" + q.Encode() + "#" + kind.Section()
}

func isJSON(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/json"
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	if isJSON(r) {
		writeJSON(w, status, map[string]string{"error": msg})
		return
	}
	http.Error(w, msg, status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
