package api

import (
	"net/http"

	reqdto "petkeeper/internal/handler/dto/request"
	resdto "petkeeper/internal/handler/dto/response"
	"petkeeper/internal/handler/httperr"
	"petkeeper/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthHandler mints access tokens for owner identities. In production the
// chat platform authenticates the user; this endpoint is the identity shim
// for direct API access.
type AuthHandler struct {
	tokens *jwt.Service
}

func NewAuthHandler(tokens *jwt.Service) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// @Summary Issue token
// @Description Issue an access token for an owner id
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.TokenRequest true "Token request"
// @Success 200 {object} resdto.TokenResponse
// @Failure 400 {object} map[string]string
// @Router /auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req reqdto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid owner id", nil)
		return
	}
	token, err := h.tokens.GenerateToken(ownerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to issue token", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.TokenResponse{AccessToken: token})
}
