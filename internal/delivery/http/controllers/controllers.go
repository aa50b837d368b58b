// Package controllers contains the HTTP handlers for the five resource
// domains. Handlers depend on domain service or repository interfaces and map
// errors to the per-endpoint statuses clients rely on.
package controllers

import (
	"net/http"
	"strconv"
)

// pathID parses the named path value as an int64 id. On failure it writes a
// 400 and returns false.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		WriteMessage(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}
