package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shelfmate/catalog/internal/auth"
	"github.com/shelfmate/catalog/internal/model"
	"github.com/shelfmate/catalog/internal/repository"
	"github.com/shelfmate/catalog/internal/validation"
)

type UserHandler struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
}

func NewUserHandler(users repository.UserRepository, tokens *auth.TokenManager) *UserHandler {
	return &UserHandler{users: users, tokens: tokens}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/me", requireAuth, h.Me)
}

// Register godoc
// @Summary      Register a user
// @Description  Create a new user account. The password is stored only as a bcrypt hash.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body      RegisterRequest            true  "Credentials"
// @Success      201      {object}  UserResponse
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Failure      409      {object}  validation.ErrorResponse   "Username already taken"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(c, http.StatusInternalServerError,
			"USER_CREATE_FAILED",
			"failed to create user",
		)
		return
	}

	user := model.User{
		Username:     req.Username,
		PasswordHash: hash,
	}

	if err := h.users.Create(c.Request.Context(), &user); err != nil {
		if isDuplicateKey(err) {
			writeError(c, http.StatusConflict,
				"USERNAME_TAKEN",
				"a user with this username already exists",
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"USER_CREATE_FAILED",
			"failed to create user",
		)
		return
	}

	c.JSON(http.StatusCreated, UserResponse{Data: toUserData(user)})
}

// Login godoc
// @Summary      Log in
// @Description  Exchange username and password for a bearer token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body      LoginRequest               true  "Credentials"
// @Success      200      {object}  TokenResponse
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Failure      401      {object}  validation.ErrorResponse   "Bad credentials"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.users.FindByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(c, http.StatusUnauthorized,
				"BAD_CREDENTIALS",
				"invalid username or password",
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"LOGIN_FAILED",
			"failed to log in",
		)
		return
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		writeError(c, http.StatusUnauthorized,
			"BAD_CREDENTIALS",
			"invalid username or password",
		)
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		writeError(c, http.StatusInternalServerError,
			"LOGIN_FAILED",
			"failed to issue token",
		)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Me godoc
// @Summary      Get the current user
// @Tags         users
// @Produce      json
// @Success      200  {object}  UserResponse
// @Failure      401  {object}  validation.ErrorResponse  "Missing or invalid token"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Security     BearerAuth
// @Router       /me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(c, http.StatusUnauthorized,
				"UNAUTHORIZED",
				"user no longer exists",
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"USER_FETCH_FAILED",
			"failed to fetch user",
		)
		return
	}

	c.JSON(http.StatusOK, UserResponse{Data: toUserData(*user)})
}
