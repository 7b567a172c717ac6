package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/foodcourt/models"
	"github.com/ray-remotestate/foodcourt/utils"
)

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "all fields are required")
		return
	}

	if !utils.IsValidEmail(req.Email) {
		writeError(w, http.StatusBadRequest, "invalid email format")
		return
	}

	exists, err := h.users.IsUserExists(r.Context(), req.Username, req.Email)
	if err != nil {
		logrus.WithError(err).Error("failed to check user existence")
		writeError(w, http.StatusInternalServerError, "signup failed")
		return
	}
	if exists {
		writeError(w, http.StatusConflict, "username or email already exists")
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		logrus.WithError(err).Error("failed to hash password")
		writeError(w, http.StatusInternalServerError, "signup failed")
		return
	}

	userID, err := h.users.CreateUser(r.Context(), req.Username, req.Email, hashedPassword)
	if err != nil {
		if isUniqueViolation(err) {
			writeError(w, http.StatusConflict, "username or email already exists")
			return
		}
		logrus.WithError(err).Error("failed to create user")
		writeError(w, http.StatusInternalServerError, "signup failed")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "user registered successfully",
		"user_id": userID,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "all fields are required")
		return
	}

	user, err := h.users.GetUserByEmail(r.Context(), req.Email)
	if errors.Is(err, models.ErrNotFound) {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to fetch user")
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := utils.GenerateAccessToken(h.secretKey, user)
	if err != nil {
		logrus.WithError(err).Error("failed to generate token")
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "login successful",
		"token":   token,
	})
}
