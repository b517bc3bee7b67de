package public

import (
	"github.com/cartella/internal/http/response"
	"github.com/cartella/internal/service"

	"github.com/gin-gonic/gin"
)

// CredentialsRequest 注册/登录请求
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CompleteProfileRequest 完善资料请求
type CompleteProfileRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// SignUp 注册
func (h *Handler) SignUp(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", nil)
		return
	}
	result, err := h.AuthService.SignUp(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err, "sign up failed")
		return
	}
	response.Success(c, result)
}

// Login 登录
func (h *Handler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", nil)
		return
	}
	result, err := h.AuthService.SignIn(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err, "login failed")
		return
	}
	response.Success(c, result)
}

// Logout 退出登录
func (h *Handler) Logout(c *gin.Context) {
	if err := h.AuthService.Logout(); err != nil {
		respondServiceError(c, err, "logout failed")
		return
	}
	response.Success(c, nil)
}

// CompleteProfile 完善资料；邮箱为空时使用预填邮箱
func (h *Handler) CompleteProfile(c *gin.Context) {
	var req CompleteProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", nil)
		return
	}
	if req.Email == "" {
		req.Email = h.AuthService.ProfileEmail()
	}
	result, err := h.AuthService.CompleteProfile(req.Email, req.Name)
	if err != nil {
		respondServiceError(c, err, "complete profile failed")
		return
	}
	response.Success(c, result)
}

// GetStartScreen 启动页
func (h *Handler) GetStartScreen(c *gin.Context) {
	response.Success(c, gin.H{
		"screen":        h.AuthService.StartScreen(),
		"profile_email": h.AuthService.ProfileEmail(),
	})
}

// GetCurrentUser 当前用户资料
func (h *Handler) GetCurrentUser(c *gin.Context) {
	view, err := h.ProfileService.CurrentUser()
	if err != nil {
		respondServiceError(c, err, "profile fetch failed")
		return
	}
	response.Success(c, view)
}

// DeleteCurrentUser 删除账号
func (h *Handler) DeleteCurrentUser(c *gin.Context) {
	if err := h.AuthService.DeleteAccount(); err != nil {
		respondServiceError(c, err, "delete account failed")
		return
	}
	response.Success(c, gin.H{"screen": service.ScreenInitial})
}
