package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authapp "github.com/stonique/storefront/internal/auth/app"
)

type signupRequest struct {
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,accountpassword"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
}

func (h *handlers) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "INVALID_ARGUMENT"})
		return
	}

	sess := currentSession(c)
	user, err := sess.Auth.Signup(c.Request.Context(), authapp.SignupInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	h.log.Info("signup", "email", user.Email)
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (h *handlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "INVALID_ARGUMENT"})
		return
	}

	sess := currentSession(c)
	user, err := sess.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	h.log.Info("login", "email", user.Email)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *handlers) logout(c *gin.Context) {
	sess := currentSession(c)
	if err := sess.Auth.Logout(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) me(c *gin.Context) {
	sess := currentSession(c)
	user, ok := sess.Auth.CurrentUser(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated", "code": "UNAUTHENTICATED"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

type themeRequest struct {
	Theme string `json:"theme" binding:"required,oneof=dark light"`
}

func (h *handlers) setTheme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "INVALID_ARGUMENT"})
		return
	}

	sess := currentSession(c)
	if err := sess.Auth.SetTheme(c.Request.Context(), req.Theme); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": req.Theme})
}

func (h *handlers) getTheme(c *gin.Context) {
	sess := currentSession(c)
	c.JSON(http.StatusOK, gin.H{"theme": sess.Auth.Theme(c.Request.Context())})
}
