package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"favkart/internal/model"
	"favkart/internal/payload"
)

// MaxBodyBytes caps the size of JSON request bodies.
const MaxBodyBytes int64 = 1 << 20

// StripBlankFields removes empty-string fields from the object under key in
// a JSON request body. Sibling keys pass through untouched, and bodies that
// are not JSON objects are handed on unchanged for the handler to reject.
func StripBlankFields(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}

			raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
			r.Body.Close()
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					writeError(w, r, http.StatusRequestEntityTooLarge, model.ErrCodePayloadTooLarge, model.ErrPayloadTooLarge.Message)
					return
				}
				writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "failed to read request body")
				return
			}

			cleaned, ok := stripEnvelope(raw, key)
			if !ok {
				cleaned = raw
			}

			r.Body = io.NopCloser(bytes.NewReader(cleaned))
			r.ContentLength = int64(len(cleaned))
			r.Header.Set("Content-Length", strconv.Itoa(len(cleaned)))

			next.ServeHTTP(w, r)
		})
	}
}

func stripEnvelope(raw []byte, key string) ([]byte, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var body map[string]any
	if err := dec.Decode(&body); err != nil || body == nil {
		return nil, false
	}

	inner, ok := body[key].(map[string]any)
	if !ok {
		return nil, false
	}
	body[key] = payload.StripBlanks(inner)

	out, err := json.Marshal(body)
	if err != nil {
		return nil, false
	}
	return out, true
}
