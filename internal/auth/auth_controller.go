package auth

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/league/config"
	"github.com/DhavalSuthar-24/league/internal/common"
	"github.com/DhavalSuthar-24/league/internal/user"
	"github.com/DhavalSuthar-24/league/pkg/logger"
	"github.com/DhavalSuthar-24/league/pkg/responses"
	"github.com/DhavalSuthar-24/league/pkg/token"
	"github.com/DhavalSuthar-24/league/pkg/utils"
)

type AuthController struct {
	users user.UserRepository
	jwt   config.JWTConfig
}

func NewAuthController(users user.UserRepository, jwt config.JWTConfig) *AuthController {
	return &AuthController{users: users, jwt: jwt}
}

func (ac *AuthController) issueTokens(u *user.User) (*AuthResponse, error) {
	access, err := token.GenerateJWT(u.ID, u.Username, ac.jwt.AccessTokenSecret, ac.jwt.AccessTokenExpiryMinutes)
	if err != nil {
		return nil, fmt.Errorf("access token generation failed: %w", err)
	}
	refresh, err := utils.GenerateRefreshToken(u.ID, ac.jwt.RefreshTokenSecret, ac.jwt.RefreshTokenExpiryDays)
	if err != nil {
		return nil, fmt.Errorf("refresh token generation failed: %w", err)
	}
	return &AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         UserResponse{ID: u.ID, Username: u.Username, CreatedAt: u.CreatedAt},
	}, nil
}

// Register godoc
// @Summary Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Credentials"
// @Success 201 {object} responses.SuccessResponse{data=AuthResponse}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse "Username taken"
// @Router /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if !common.BindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()

	existing, err := ac.users.GetUserByUsername(ctx, req.Username)
	if err != nil {
		common.RespondStoreError(c, err, "Failed to register")
		return
	}
	if existing != nil {
		responses.Conflict(c, "User "+req.Username+" already exists")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.FromContext(ctx).Error("hash password", "error", err)
		responses.InternalServerError(c)
		return
	}
	u := user.User{Username: req.Username, Password: hash}
	if err := ac.users.CreateUser(ctx, &u); err != nil {
		common.RespondStoreError(c, err, "Failed to register")
		return
	}

	resp, err := ac.issueTokens(&u)
	if err != nil {
		logger.FromContext(ctx).Error("issue tokens", "error", err, "user_id", u.ID)
		responses.InternalServerError(c)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "User registered", resp)
}

// Login godoc
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} responses.SuccessResponse{data=AuthResponse}
// @Failure 401 {object} responses.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if !common.BindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()

	u, err := ac.users.GetUserByUsername(ctx, req.Username)
	if err != nil {
		common.RespondStoreError(c, err, "Failed to log in")
		return
	}
	if u == nil || !utils.CheckPassword(u.Password, req.Password) {
		responses.Unauthorized(c, "Invalid username or password")
		return
	}

	resp, err := ac.issueTokens(u)
	if err != nil {
		logger.FromContext(ctx).Error("issue tokens", "error", err, "user_id", u.ID)
		responses.InternalServerError(c)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Logged in", resp)
}

// RefreshToken godoc
// @Summary Exchange a refresh token for a new token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param token body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} responses.SuccessResponse{data=AuthResponse}
// @Failure 401 {object} responses.ErrorResponse
// @Router /auth/refresh [post]
func (ac *AuthController) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if !common.BindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()

	userID, err := utils.VerifyRefreshToken(req.RefreshToken, ac.jwt.RefreshTokenSecret)
	if err != nil {
		responses.Unauthorized(c, "Invalid or expired refresh token")
		return
	}
	u, err := ac.users.GetUserByID(ctx, userID)
	if err != nil {
		common.RespondStoreError(c, err, "Failed to refresh token")
		return
	}
	if u == nil {
		responses.Unauthorized(c, "User not found")
		return
	}

	resp, err := ac.issueTokens(u)
	if err != nil {
		logger.FromContext(ctx).Error("issue tokens", "error", err, "user_id", u.ID)
		responses.InternalServerError(c)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Token refreshed", resp)
}

// Me godoc
// @Summary Current user
// @Tags Auth
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=UserResponse}
// @Failure 401 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /auth/me [get]
func (ac *AuthController) Me(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	u, err := ac.users.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		common.RespondStoreError(c, err, "Failed to load user")
		return
	}
	if u == nil {
		responses.NotFound(c, "User")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", UserResponse{ID: u.ID, Username: u.Username, CreatedAt: u.CreatedAt})
}
