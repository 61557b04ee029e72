package response

import (
	"encoding/json"
	"net/http"
)

// ContentType is sent with every JSON body
const ContentType = "application/json"

// JSON writes status and, unless data is nil, data encoded as the body
func JSON(w http.ResponseWriter, status int, data any) {
	if data == nil {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// NoContent answers 204 for actions with nothing to return, such as logout
func NoContent(w http.ResponseWriter) {
	JSON(w, http.StatusNoContent, nil)
}
