// Package validator 表单字段校验，返回三态结果（未填写 / 有效 / 无效+提示）。
package validator

import (
	"strings"
	"sync"
	"unicode/utf8"

	playground "github.com/go-playground/validator/v10"
)

// State 校验状态
type State int

const (
	Untouched State = iota
	Valid
	Invalid
)

// String 状态名
func (s State) String() string {
	switch s {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "untouched"
	}
}

// MinPasswordLength 密码最小长度
const MinPasswordLength = 8

// 提示文案
const (
	MsgInvalidEmail     = "Invalid email address."
	MsgPasswordTooShort = "Password must contain at least 8 digit or more"
	MsgFieldRequired    = "cannot be empty"
	MsgPasswordMismatch = "The password you have entered do not match"
	MsgPasswordReused   = "This password has already been used. Please choose a different one."
)

// Status 校验结果
type Status struct {
	State   State  `json:"state"`
	Message string `json:"message,omitempty"`
}

// IsValid 是否有效
func (s Status) IsValid() bool {
	return s.State == Valid
}

func valid() Status {
	return Status{State: Valid}
}

func invalid(msg string) Status {
	return Status{State: Invalid, Message: msg}
}

var (
	engineOnce sync.Once
	engine     *playground.Validate
)

func validate() *playground.Validate {
	engineOnce.Do(func() {
		engine = playground.New()
	})
	return engine
}

// Email 邮箱格式校验
func Email(value string) Status {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Status{}
	}
	if err := validate().Var(trimmed, "email"); err != nil {
		return invalid(MsgInvalidEmail)
	}
	return valid()
}

// Password 长度不少于 8 位
func Password(value string) Status {
	if value == "" {
		return Status{}
	}
	if utf8.RuneCountInString(value) < MinPasswordLength {
		return invalid(MsgPasswordTooShort)
	}
	return valid()
}

// NonEmpty 非空校验
func NonEmpty(value string) Status {
	if strings.TrimSpace(value) == "" {
		return invalid(MsgFieldRequired)
	}
	return valid()
}

// PasswordMatch 新密码与确认一致，且与旧密码不同
func PasswordMatch(newPassword, confirm, oldPassword string) Status {
	if newPassword == "" && confirm == "" {
		return Status{}
	}
	if status := Password(newPassword); !status.IsValid() {
		return status
	}
	if newPassword != confirm {
		return invalid(MsgPasswordMismatch)
	}
	if oldPassword != "" && newPassword == oldPassword {
		return invalid(MsgPasswordReused)
	}
	return valid()
}
