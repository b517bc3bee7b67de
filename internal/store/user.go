package store

import (
	"github.com/cartella/internal/events"
	"github.com/cartella/internal/models"
)

// SaveUser 存在任一用户时更新其可变字段，否则插入新用户
func (s *Store) SaveUser(user *models.User) *models.User {
	if user == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	existing, err := s.userRepo.First()
	if err != nil {
		logFailure("store_save_user_failed", err)
		return nil
	}
	if existing != nil {
		applyUserFields(existing, user)
		existing.UpdatedAt = now
		if err := s.userRepo.Update(existing); err != nil {
			logFailure("store_save_user_failed", err, "user_id", existing.ID)
			return nil
		}
		s.publish(events.TopicUser, "updated", existing.ID)
		return existing
	}

	created := &models.User{
		ID:        models.NewID(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyUserFields(created, user)
	if err := s.userRepo.Create(created); err != nil {
		logFailure("store_save_user_failed", err)
		return nil
	}
	s.publish(events.TopicUser, "created", created.ID)
	return created
}

// UpdateUser 仅更新已存在的用户，无用户时返回 nil
func (s *Store) UpdateUser(user *models.User) *models.User {
	if user == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.userRepo.First()
	if err != nil {
		logFailure("store_update_user_failed", err)
		return nil
	}
	if existing == nil {
		return nil
	}
	applyUserFields(existing, user)
	return s.persistUser(existing, "store_update_user_failed", "updated")
}

// LoadUser 返回首个用户
func (s *Store) LoadUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadUser()
}

func (s *Store) loadUser() *models.User {
	user, err := s.userRepo.First()
	if err != nil {
		logFailure("store_load_user_failed", err)
		return nil
	}
	return user
}

// HasAnyUser 是否已注册过用户
func (s *Store) HasAnyUser() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	count, err := s.userRepo.Count()
	if err != nil {
		logFailure("store_count_users_failed", err)
		return false
	}
	return count > 0
}

// LoadUserByEmail 按邮箱精确查找
func (s *Store) LoadUserByEmail(email string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadUserByEmail(email)
}

func (s *Store) loadUserByEmail(email string) *models.User {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		logFailure("store_load_user_by_email_failed", err)
		return nil
	}
	return user
}

// UserExists 邮箱是否已注册
func (s *Store) UserExists(email string) bool {
	return s.LoadUserByEmail(email) != nil
}

// AuthenticateUser 邮箱存在且密码完全一致时置为活跃并返回
func (s *Store) AuthenticateUser(email, password string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.loadUserByEmail(email)
	if user == nil || user.Password != password {
		return nil
	}
	user.IsActive = true
	return s.persistUser(user, "store_authenticate_user_failed", "logged_in")
}

// CreateUserAccount 邮箱已存在时返回 nil，否则创建未激活、资料未完善的用户
func (s *Store) CreateUserAccount(email, password string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.userRepo.GetByEmail(email)
	if err != nil {
		logFailure("store_create_user_account_failed", err)
		return nil
	}
	if existing != nil {
		return nil
	}
	now := s.now()
	user := &models.User{
		ID:        models.NewID(),
		Email:     email,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.userRepo.Create(user); err != nil {
		logFailure("store_create_user_account_failed", err)
		return nil
	}
	s.publish(events.TopicUser, "created", user.ID)
	return user
}

// CompleteUserProfile 设置姓名并标记资料完善与活跃
func (s *Store) CompleteUserProfile(email, name string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.loadUserByEmail(email)
	if user == nil {
		return nil
	}
	user.Name = name
	user.IsProfileCompleted = true
	user.IsActive = true
	return s.persistUser(user, "store_complete_user_profile_failed", "profile_completed")
}

// UpdateProfileCompleteStatus 更新首个用户的资料完善标记
func (s *Store) UpdateProfileCompleteStatus(completed bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.loadUser()
	if user == nil {
		return false
	}
	user.IsProfileCompleted = completed
	return s.persistUser(user, "store_update_profile_status_failed", "profile_status_updated") != nil
}

// UpdateUserActiveStatus 更新首个用户的活跃标记
func (s *Store) UpdateUserActiveStatus(active bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.loadUser()
	if user == nil {
		return false
	}
	user.IsActive = active
	return s.persistUser(user, "store_update_active_status_failed", "active_status_updated") != nil
}

// LogoutUser 清除活跃与资料完善标记（保留账号）
func (s *Store) LogoutUser() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.loadUser()
	if user == nil {
		return false
	}
	user.IsActive = false
	user.IsProfileCompleted = false
	return s.persistUser(user, "store_logout_user_failed", "logged_out") != nil
}

// DeleteUserData 删除全部用户记录
func (s *Store) DeleteUserData() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.userRepo.DeleteAll(); err != nil {
		logFailure("store_delete_user_data_failed", err)
		return false
	}
	s.publish(events.TopicUser, "deleted", "")
	return true
}

// GetCurrentUser 仅当首个用户处于活跃状态时返回
func (s *Store) GetCurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.loadUser()
	if user == nil || !user.IsActive {
		return nil
	}
	return user
}

func (s *Store) persistUser(user *models.User, failureEvent, action string) *models.User {
	user.UpdatedAt = s.now()
	if err := s.userRepo.Update(user); err != nil {
		logFailure(failureEvent, err, "user_id", user.ID)
		return nil
	}
	s.publish(events.TopicUser, action, user.ID)
	return user
}

func applyUserFields(dst, src *models.User) {
	dst.Email = src.Email
	dst.Name = src.Name
	dst.Password = src.Password
	dst.IsProfileCompleted = src.IsProfileCompleted
	dst.IsActive = src.IsActive
}
