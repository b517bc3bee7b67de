package service

import (
	"github.com/cartella/internal/logger"
	"github.com/cartella/internal/models"
	"github.com/cartella/internal/store"
	"github.com/cartella/internal/validator"
)

// 导航目标
const (
	ScreenHome          = "home"
	ScreenCreateProfile = "create_profile"
	ScreenInitial       = "initial"
)

// AuthResult 登录/注册结果
type AuthResult struct {
	User             *models.User `json:"user"`
	ProfileCompleted bool         `json:"profile_completed"`
	NextScreen       string       `json:"next_screen"`
}

// AuthService 注册、登录与资料完善
type AuthService struct {
	store *store.Store
}

// NewAuthService 创建认证服务
func NewAuthService(s *store.Store) *AuthService {
	return &AuthService{store: s}
}

// SignUp 校验后创建账号，下一步为完善资料
func (s *AuthService) SignUp(email, password string) (*AuthResult, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}
	if s.store.UserExists(email) {
		return nil, newAppError(TitleAccountExists, MsgEmailAlreadyExists)
	}
	user := s.store.CreateUserAccount(email, password)
	if user == nil {
		return nil, newAppError(TitleAlert, MsgCreateAccountFailed)
	}
	logger.Infow("auth_signup", "user_id", user.ID)
	return &AuthResult{User: user, NextScreen: ScreenCreateProfile}, nil
}

// SignIn 校验并认证，资料已完善时进入首页
func (s *AuthService) SignIn(email, password string) (*AuthResult, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}
	if !s.store.UserExists(email) {
		return nil, newAppError(TitleAccountNotFound, MsgEmailNotFound)
	}
	user := s.store.AuthenticateUser(email, password)
	if user == nil {
		return nil, newAppError(TitleAlert, MsgInvalidCredentials)
	}
	result := &AuthResult{User: user, ProfileCompleted: user.IsProfileCompleted, NextScreen: ScreenCreateProfile}
	if user.IsProfileCompleted {
		result.NextScreen = ScreenHome
	}
	logger.Infow("auth_login", "user_id", user.ID, "profile_completed", user.IsProfileCompleted)
	return result, nil
}

// CompleteProfile 填写姓名并激活
func (s *AuthService) CompleteProfile(email, name string) (*AuthResult, error) {
	if !validator.NonEmpty(email).IsValid() {
		return nil, newAppError(TitleEmailEmpty, fieldRequiredMessage("Email"))
	}
	if !validator.NonEmpty(name).IsValid() {
		return nil, newAppError(TitleIncomplete, fieldRequiredMessage("Name"))
	}
	user := s.store.CompleteUserProfile(email, name)
	if user == nil {
		return nil, newAppError(TitleAlert, MsgCompleteProfileFailed)
	}
	return &AuthResult{User: user, ProfileCompleted: true, NextScreen: ScreenHome}, nil
}

// ProfileEmail 完善资料页预填邮箱：优先当前用户，其次已存储用户
func (s *AuthService) ProfileEmail() string {
	if user := s.store.GetCurrentUser(); user != nil {
		return user.Email
	}
	if user := s.store.LoadUser(); user != nil {
		return user.Email
	}
	return ""
}

// Logout 退出登录（保留账号）
func (s *AuthService) Logout() error {
	if !s.store.LogoutUser() {
		return newAppError(TitleAlert, MsgNoActiveUser)
	}
	logger.Infow("auth_logout")
	return nil
}

// DeleteAccount 删除全部用户数据
func (s *AuthService) DeleteAccount() error {
	if !s.store.DeleteUserData() {
		return newAppError(TitleError, MsgDeleteAccountFailed)
	}
	logger.Infow("auth_account_deleted")
	return nil
}

// StartScreen 启动时的初始页面
func (s *AuthService) StartScreen() string {
	user := s.store.GetCurrentUser()
	switch {
	case user == nil:
		return ScreenInitial
	case user.IsProfileCompleted:
		return ScreenHome
	default:
		return ScreenCreateProfile
	}
}

func validateCredentials(email, password string) error {
	if status := validator.Email(email); !status.IsValid() {
		return newAppError(TitleValidEmailRequired, validator.MsgInvalidEmail)
	}
	if status := validator.Password(password); !status.IsValid() {
		return newAppError(TitleValidPasswordRequired, validator.MsgPasswordTooShort)
	}
	return nil
}
