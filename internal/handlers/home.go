package handlers

import (
	"net/http"
)

// HomeMessage is the liveness text served at the root path.
const HomeMessage = "AI-Powered File Organizer API is running!"

// HomeHandler serves the liveness message.
//
// swagger:route GET / home
//
// Liveness message.
//
// ---
// produces:
// - text/plain
// responses:
//
//	'200':
//	  description: Service is running
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(HomeMessage))
}
