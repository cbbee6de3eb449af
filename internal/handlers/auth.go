package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/trektribe/backend/internal/database"
	"github.com/trektribe/backend/internal/handlers/dto"
	"github.com/trektribe/backend/internal/middleware"
	"github.com/trektribe/backend/internal/models"
	"github.com/trektribe/backend/pkg/auth"
)

// cookieMaxAge matches the ~300 day token lifetime the frontend expects.
const cookieMaxAge = 25892000

type AuthHandler struct {
	users      UserStore
	jwtManager *auth.JWTManager
	blacklist  *middleware.RedisBlacklist
}

func NewAuthHandler(users UserStore, jwtMgr *auth.JWTManager, blacklist *middleware.RedisBlacklist) *AuthHandler {
	return &AuthHandler{users: users, jwtManager: jwtMgr, blacklist: blacklist}
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.CookieName, token, cookieMaxAge, "/", "", true, false)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Please fill all fields properly."})
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Please fill all fields properly."})
		return
	}
	if len(req.Password) < 6 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Password must be at least 6 characters long."})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	user := models.NewUser(req.Name, req.Email, string(hash))
	if err := h.users.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, database.ErrDuplicateEmail) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Email already exists."})
			return
		}
		log.Printf("Error during registration: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Registration successful."})
}

// Login issues a token only on a successful credential match. A wrong
// password gets the same failure response as an unknown email and leaves
// the token list untouched.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "NaN"})
		return
	}
	if req.Email == "" && req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "NaN"})
		return
	}

	user, err := h.users.FindUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "error"})
			return
		}
		log.Printf("Error during login: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "error"})
		return
	}

	if err := h.issueToken(c, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "success"})
}

// GoogleLogin trusts the identity provider: a known email gets a session
// with no password check.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Email is required"})
		return
	}

	user, err := h.users.FindUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "error"})
			return
		}
		log.Printf("Error during google login: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	if err := h.issueToken(c, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "success"})
}

func (h *AuthHandler) issueToken(c *gin.Context, user *models.User) error {
	token, err := h.jwtManager.Generate(user.ID.Hex())
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return err
	}
	if err := h.users.AppendToken(c.Request.Context(), user.ID, token); err != nil {
		log.Printf("Error storing token: %v", err)
		return err
	}
	h.setTokenCookie(c, token)
	return nil
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Email is required."})
		return
	}
	if req.Email == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Email is required."})
		return
	}

	err := h.users.UpdateProfile(c.Request.Context(), req.Email, req.Fields())
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
			return
		}
		log.Printf("Error during profile update: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Profile updated successfully."})
}

// GetInfo returns the authenticated caller's profile without credential
// material.
func (h *AuthHandler) GetInfo(c *gin.Context) {
	user := c.MustGet(middleware.UserKey).(*models.User)
	c.JSON(http.StatusOK, user.Sanitized())
}

// Logout clears the cookie and blacklists the presented token until it
// would have expired anyway.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(middleware.CookieName)
	if err == nil && token != "" && h.blacklist != nil {
		if exp, err := h.jwtManager.Expiry(token); err == nil {
			if err := h.blacklist.Add(c.Request.Context(), token, time.Until(exp)); err != nil {
				log.Printf("Error blacklisting token: %v", err)
			}
		}
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.CookieName, "", -1, "/", "", true, false)
	c.String(http.StatusOK, "User logout")
}
