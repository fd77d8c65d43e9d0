package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/airlabs/air-tasks/internal/application"
	"github.com/airlabs/air-tasks/pkg/apperr"
	"github.com/airlabs/air-tasks/pkg/response"
	"github.com/airlabs/air-tasks/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) fail(c *gin.Context, err error) {
	if apperr.KindOf(err) == apperr.KindInternal {
		h.Logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
	}
	response.Error[any](c, apperr.HTTPStatus(err), apperr.Message(err), nil)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u}, "user registered successfully", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u}, "login successful", nil)
}

// Logout is stateless; there is no server-side session to tear down.
func (h *AuthHandler) Logout(c *gin.Context) {
	response.Success[any](c, http.StatusOK, gin.H{"logged_out": true}, "logged out successfully", nil)
}

func (h *AuthHandler) CheckAuth(c *gin.Context) {
	userID, _ := strconv.ParseInt(c.Query("user_id"), 10, 64)

	u, ok, err := h.Svc.CheckAuth(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	if !ok {
		response.Success[any](c, http.StatusOK, gin.H{"authenticated": false}, "not authenticated", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"authenticated": true, "user": u}, "authenticated", nil)
}
