package api

import (
	"errors"
	"net/http"

	reqdto "swiss-virtual-airline/internal/handler/dto/request"
	resdto "swiss-virtual-airline/internal/handler/dto/response"
	"swiss-virtual-airline/internal/handler/httperr"
	"swiss-virtual-airline/internal/handler/middleware"
	"swiss-virtual-airline/internal/pkg/errs"
	"swiss-virtual-airline/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// @Summary Login with Discord
// @Description Exchange a Discord OAuth authorization code for a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.DiscordAuthRequest true "Authorization code and redirect URI"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /auth/discord [post]
func (h *AuthHandler) LoginWithDiscord(c *gin.Context) {
	var req reqdto.DiscordAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrMalformedInput), "Code and redirectUri are required")
		return
	}

	token, identity, err := h.authUseCase.LoginWithDiscord(c.Request.Context(), req.Code, req.RedirectURI)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUpstreamAuth):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Authentication failed")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{
		Success: true,
		Token:   token,
		User:    resdto.FromIdentity(identity),
	})
}

// @Summary Logout
// @Description Revoke the current session token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MessageResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := middleware.GetSessionToken(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.ErrInvalidSession, "Internal server error")
		return
	}

	h.authUseCase.Logout(token)
	c.JSON(http.StatusOK, resdto.NewMessageResponse("Logged out"))
}

// @Summary Current user
// @Description Get the identity bound to the current session
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.ErrInvalidSession, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromIdentity(identity))
}
