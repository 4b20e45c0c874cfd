package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

const idPattern = "{id:[0-9]+}"

// Handler builds the full handler chain: CORS, request IDs and access logs
// around the API router.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	methodNotAllowed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	r.MethodNotAllowedHandler = methodNotAllowed

	// Method mismatches are resolved by the router owning the routes.
	api := r.PathPrefix("/api").Subrouter()
	api.MethodNotAllowedHandler = methodNotAllowed

	api.HandleFunc("/health", s.health).Methods(http.MethodGet)

	api.HandleFunc("/auth/register", s.register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", s.login).Methods(http.MethodPost)
	api.Handle("/auth/profile", s.requireAuth(s.profile)).Methods(http.MethodGet)
	api.Handle("/auth/profile", s.requireAuth(s.updateProfile)).Methods(http.MethodPut)

	api.HandleFunc("/posts", s.listPosts).Methods(http.MethodGet)
	api.Handle("/posts", s.requireAuth(s.createPost)).Methods(http.MethodPost)
	api.Handle("/posts/"+idPattern, s.requireAuth(s.updatePost)).Methods(http.MethodPut)
	api.Handle("/posts/"+idPattern, s.requireAuth(s.deletePost)).Methods(http.MethodDelete)
	api.Handle("/posts/"+idPattern+"/like", s.requireAuth(s.toggleLike)).Methods(http.MethodPost)

	api.HandleFunc("/posts/"+idPattern+"/comments", s.listComments).Methods(http.MethodGet)
	api.Handle("/posts/"+idPattern+"/comments", s.requireAuth(s.addComment)).Methods(http.MethodPost)

	return s.cors(s.requestID(s.accessLog(r)))
}
