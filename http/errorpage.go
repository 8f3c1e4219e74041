package http

import (
	"net/http"
)

const (
	notFoundMessage         = "404 Not Found"
	methodNotAllowedMessage = "405 Method Not Allowed"
)

func writeDefaultNotFound(w http.ResponseWriter, _ *http.Request) {
	WriteError(w, http.StatusNotFound, notFoundMessage)
}

func writeDefaultMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
	WriteError(w, http.StatusMethodNotAllowed, methodNotAllowedMessage)
}
