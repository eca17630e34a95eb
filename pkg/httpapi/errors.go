package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/quietstack/cadschedule/pkg/schederr"
)

// statusFor maps a schederr.Kind to the HTTP status spec.md §7 assigns
// it.
func statusFor(kind schederr.Kind) int {
	switch kind {
	case schederr.KindInputShape, schederr.KindConfiguration:
		return http.StatusUnprocessableEntity
	case schederr.KindMissingArtifact:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSONError(w, statusFor(schederr.KindOf(err)), err.Error())
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
