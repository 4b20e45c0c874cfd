package httpapi

import (
	"net/http"
)

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "OK", Message: "API is running"})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	user, token, err := s.users.Register(r.Context(), req.Username, req.Email, req.Password, req.Bio)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "Registered", "username", user.Username, "user_id", user.ID)
	writeJSON(w, http.StatusCreated, authResponse{
		Message:     "User registered successfully",
		AccessToken: token,
		User:        toUserJSON(user),
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	user, token, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		Message:     "Login successful",
		AccessToken: token,
		User:        toUserJSON(user),
	})
}

func (s *Server) profile(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.Profile(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserJSON(user))
}

func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	user, err := s.users.UpdateProfile(r.Context(), userIDFrom(r.Context()), req.Bio, req.ProfilePic)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{
		Message: "Profile updated successfully",
		User:    toUserJSON(user),
	})
}
