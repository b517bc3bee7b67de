package store

import (
	"testing"

	"github.com/cartella/internal/events"
	"github.com/cartella/internal/models"
)

func TestSaveUserInsertsThenUpdatesFirstUser(t *testing.T) {
	s, pub, _ := setupStoreTest(t)

	created := s.SaveUser(&models.User{Email: "a@shop.io", Password: "password1"})
	if created == nil || created.ID == "" {
		t.Fatalf("expected created user, got %+v", created)
	}
	if !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("expected createdAt == updatedAt on insert")
	}

	updated := s.SaveUser(&models.User{Email: "b@shop.io", Name: "Bea", Password: "password2", IsActive: true})
	if updated == nil || updated.ID != created.ID {
		t.Fatalf("expected update of existing user, got %+v", updated)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("expected updatedAt to move forward")
	}
	loaded := s.LoadUser()
	if loaded == nil || loaded.Email != "b@shop.io" || loaded.Name != "Bea" || !loaded.IsActive {
		t.Fatalf("unexpected loaded user: %+v", loaded)
	}
	if got := pub.actions(events.TopicUser); len(got) != 2 || got[0] != "created" || got[1] != "updated" {
		t.Fatalf("unexpected user events: %v", got)
	}
}

func TestUpdateUserRequiresExistingUser(t *testing.T) {
	s, _, _ := setupStoreTest(t)
	if s.UpdateUser(&models.User{Email: "x@shop.io"}) != nil {
		t.Fatalf("expected nil without stored user")
	}
	s.CreateUserAccount("x@shop.io", "password1")
	got := s.UpdateUser(&models.User{Email: "x@shop.io", Name: "Xin", Password: "password1"})
	if got == nil || got.Name != "Xin" {
		t.Fatalf("unexpected update result: %+v", got)
	}
}

func TestCreateUserAccountRejectsDuplicateEmail(t *testing.T) {
	s, _, _ := setupStoreTest(t)

	first := s.CreateUserAccount("dup@shop.io", "password1")
	if first == nil {
		t.Fatalf("expected first account")
	}
	if first.IsActive || first.IsProfileCompleted {
		t.Fatalf("new account must be inactive and incomplete: %+v", first)
	}
	if second := s.CreateUserAccount("dup@shop.io", "password2"); second != nil {
		t.Fatalf("expected duplicate email to fail, got %+v", second)
	}
	if !s.UserExists("dup@shop.io") || s.UserExists("DUP@shop.io") {
		t.Fatalf("user exists must be exact match")
	}
	if !s.HasAnyUser() {
		t.Fatalf("expected stored user")
	}
}

func TestAuthenticateUserExactPasswordMatch(t *testing.T) {
	s, _, _ := setupStoreTest(t)
	s.CreateUserAccount("login@shop.io", "Secret123")

	if s.AuthenticateUser("login@shop.io", "secret123") != nil {
		t.Fatalf("password match must be case-sensitive")
	}
	if s.AuthenticateUser("other@shop.io", "Secret123") != nil {
		t.Fatalf("unknown email must fail")
	}
	if s.GetCurrentUser() != nil {
		t.Fatalf("no current user before login")
	}
	user := s.AuthenticateUser("login@shop.io", "Secret123")
	if user == nil || !user.IsActive {
		t.Fatalf("expected active user on exact match, got %+v", user)
	}
	current := s.GetCurrentUser()
	if current == nil || current.ID != user.ID {
		t.Fatalf("expected current user after login")
	}
}

func TestCompleteUserProfile(t *testing.T) {
	s, _, _ := setupStoreTest(t)
	if s.CompleteUserProfile("ghost@shop.io", "Ghost") != nil {
		t.Fatalf("expected nil for unknown email")
	}
	s.CreateUserAccount("p@shop.io", "password1")
	user := s.CompleteUserProfile("p@shop.io", "Pat")
	if user == nil || user.Name != "Pat" || !user.IsProfileCompleted || !user.IsActive {
		t.Fatalf("unexpected profile result: %+v", user)
	}
}

func TestStatusUpdatesAndLogout(t *testing.T) {
	s, _, _ := setupStoreTest(t)
	if s.LogoutUser() || s.UpdateUserActiveStatus(true) || s.UpdateProfileCompleteStatus(true) {
		t.Fatalf("status updates must fail without a user")
	}
	s.CreateUserAccount("s@shop.io", "password1")
	if !s.UpdateUserActiveStatus(true) || !s.UpdateProfileCompleteStatus(true) {
		t.Fatalf("expected status updates to succeed")
	}
	user := s.LoadUser()
	if !user.IsActive || !user.IsProfileCompleted {
		t.Fatalf("unexpected flags: %+v", user)
	}
	if !s.LogoutUser() {
		t.Fatalf("expected logout to succeed")
	}
	user = s.LoadUser()
	if user.IsActive || user.IsProfileCompleted {
		t.Fatalf("logout must clear active and profile flags: %+v", user)
	}
	if s.GetCurrentUser() != nil {
		t.Fatalf("expected no current user after logout")
	}
}

func TestDeleteUserDataRemovesEveryUser(t *testing.T) {
	s, _, db := setupStoreTest(t)
	s.CreateUserAccount("one@shop.io", "password1")
	// 直接写入第二个用户，模拟多账号残留
	if err := db.Create(&models.User{Email: "two@shop.io"}).Error; err != nil {
		t.Fatalf("seed second user failed: %v", err)
	}
	if !s.DeleteUserData() {
		t.Fatalf("expected delete to succeed")
	}
	if s.LoadUser() != nil {
		t.Fatalf("expected no user after delete")
	}
	if s.UserExists("one@shop.io") || s.UserExists("two@shop.io") || s.HasAnyUser() {
		t.Fatalf("expected every user removed")
	}
}
