package resp

import (
	"encoding/json"
	"net/http"
)

// ErrorBody - единый формат ошибки {error: string}
type ErrorBody struct {
	Error string `json:"error"`
}

func WriteJSONResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSONResponse(w, status, ErrorBody{Error: msg})
}
