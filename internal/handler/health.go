package handler

import (
	"encoding/json"
	"net/http"
)

// HandleHealthz reports liveness for the storefront process. It only
// says the HTTP layer is up; it does not touch the database.
func HandleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "vault93-storefront",
	})
}
