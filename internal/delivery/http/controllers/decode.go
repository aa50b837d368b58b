package controllers

import (
	"encoding/json"
	"net/http"
)

// DecodeJSON decodes the request body into dest. On failure it writes a 400
// with the decode error message and returns false; callers should return
// immediately in that case.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		WriteMessage(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
