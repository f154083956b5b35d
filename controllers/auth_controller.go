package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cloud-tech1/food-finds-clone/entity"
	"github.com/cloud-tech1/food-finds-clone/pkg/resp"
	"github.com/cloud-tech1/food-finds-clone/session"
)

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type SignupRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

type AuthController struct{ Store *session.Store }

func NewAuthController(s *session.Store) *AuthController { return &AuthController{Store: s} }

// POST /auth/login
// There are no credentials to verify; login records the profile, and the
// last login wins. A missing name falls back to "User".
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "User"
	}
	profile := entity.UserProfile{
		Email: strings.ToLower(req.Email),
		Name:  name,
		Phone: req.Phone,
	}
	a.Store.Login(profile)
	resp.OK(c, profile)
}

// POST /auth/signup
// Same effect as login with the full profile supplied.
func (a *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	profile := entity.UserProfile{
		Email: strings.ToLower(req.Email),
		Name:  req.Name,
		Phone: req.Phone,
	}
	a.Store.Login(profile)
	resp.Created(c, profile)
}

// POST /auth/logout
func (a *AuthController) Logout(c *gin.Context) {
	a.Store.Logout()
	resp.OK(c, gin.H{"loggedOut": true})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user := a.Store.CurrentUser()
	if user == nil {
		resp.Unauthorized(c, "not logged in")
		return
	}
	resp.OK(c, user)
}
