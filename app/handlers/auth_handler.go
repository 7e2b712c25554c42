package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/TheCodister/badminton-shop-api/app/helpers"
	"github.com/TheCodister/badminton-shop-api/app/middlewares"
	"github.com/TheCodister/badminton-shop-api/app/models"
	"github.com/TheCodister/badminton-shop-api/app/repositories"
	"github.com/TheCodister/badminton-shop-api/app/utils/token"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	render     *render.Render
	userRepo   repositories.UserRepositoryImpl
	tokenMaker *token.Maker
	validator  *validator.Validate
}

func NewAuthHandler(r *render.Render, userRepo repositories.UserRepositoryImpl, tokenMaker *token.Maker, validator *validator.Validate) *AuthHandler {
	return &AuthHandler{
		render:     r,
		userRepo:   userRepo,
		tokenMaker: tokenMaker,
		validator:  validator,
	}
}

type LoginRequest struct {
	Mail     string `json:"mail" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	Mail        string `json:"mail"`
	AccessToken string `json:"access_token"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,max=20"`
	Password string `json:"password" validate:"required,min=6"`
	Address  string `json:"address" validate:"required"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.render, w, helpers.NewValidation("Email and password are required"))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondError(h.render, w, helpers.NewValidation("Email and password are required"))
		return
	}

	user, err := h.userRepo.FindByMail(r.Context(), req.Mail)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	// same message for unknown mail and wrong password, no existence leak
	if user == nil {
		respondError(h.render, w, helpers.NewUnauthorized("Invalid credentials"))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		respondError(h.render, w, helpers.NewUnauthorized("Invalid credentials"))
		return
	}

	accessToken, err := h.tokenMaker.Create(user.ID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, LoginResponse{
		UserID:      user.ID,
		Username:    user.Username,
		Mail:        user.Mail,
		AccessToken: accessToken,
	})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.render, w, helpers.NewValidation("All fields are required"))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(h.render, w, err)
		return
	}

	existing, err := h.userRepo.FindByMail(r.Context(), req.Email)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if existing != nil {
		respondError(h.render, w, helpers.NewConflict("Email already registered"))
		return
	}

	user := models.User{
		Username:    req.Username,
		Mail:        req.Email,
		PhoneNumber: req.Phone,
		Password:    req.Password,
		Role:        models.RoleCustomer,
		Address:     req.Address,
	}
	if err := h.userRepo.Create(r.Context(), &user); err != nil {
		respondError(h.render, w, err)
		return
	}

	respondMessage(h.render, w, http.StatusOK, "User registered successfully")
}

// Verify runs behind the auth middleware and echoes the decoded claims.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	claims, ok := middlewares.ClaimsFromContext(r.Context())
	if !ok {
		respondError(h.render, w, helpers.NewUnauthorized("No token provided"))
		return
	}
	_ = h.render.JSON(w, http.StatusOK, claims)
}
