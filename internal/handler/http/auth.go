package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var signup models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&signup); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeMappedError(w, service.ErrInvalidDataProvided, "invalid JSON was passed")
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, signup)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already registered")
			writeMappedError(w, err, "email already registered")
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeMappedError(w, err, "invalid data provided")
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeError(w, err)
		}
		return
	}

	log.Debug().Str("user_id", registeredUser.UserID).Msg("user successfully registered")

	utils.WriteJSON(w, models.NewUserResponse(registeredUser), http.StatusCreated)
}

func (h *Handler) signin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var signin models.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&signin); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeMappedError(w, service.ErrInvalidDataProvided, "invalid JSON was passed")
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, signin)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongCredentials):
			log.Err(err).Msg("wrong email or password")
			writeMappedError(w, err, "incorrect email or password")
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeMappedError(w, err, "invalid data provided")
		default:
			log.Err(err).Msg("unexpected error occurred during user signin")
			writeError(w, err)
		}
		return
	}

	log.Debug().Str("user_id", foundUser.UserID).Msg("user successfully signed in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   "bearer",
	}, http.StatusOK)
}
