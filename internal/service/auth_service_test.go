package service

import (
	"testing"

	"github.com/cartella/internal/validator"
)

func TestSignUpValidatesCredentials(t *testing.T) {
	svc := NewAuthService(newServiceTestStore(t))

	_, err := svc.SignUp("not-an-email", "password123")
	requireAppError(t, err, TitleValidEmailRequired, validator.MsgInvalidEmail)

	_, err = svc.SignUp("ann@example.com", "short")
	requireAppError(t, err, TitleValidPasswordRequired, validator.MsgPasswordTooShort)
}

func TestSignUpThenDuplicate(t *testing.T) {
	svc := NewAuthService(newServiceTestStore(t))

	result, err := svc.SignUp("ann@example.com", "password123")
	if err != nil {
		t.Fatalf("sign up failed: %v", err)
	}
	if result.NextScreen != ScreenCreateProfile {
		t.Fatalf("expected create_profile, got %s", result.NextScreen)
	}
	if result.User.IsActive || result.User.IsProfileCompleted {
		t.Fatalf("unexpected user flags: %+v", result.User)
	}

	_, err = svc.SignUp("ann@example.com", "password456")
	requireAppError(t, err, TitleAccountExists, MsgEmailAlreadyExists)
}

func TestSignInRouting(t *testing.T) {
	svc := NewAuthService(newServiceTestStore(t))

	_, err := svc.SignIn("ghost@example.com", "password123")
	requireAppError(t, err, TitleAccountNotFound, MsgEmailNotFound)

	if _, err := svc.SignUp("ann@example.com", "password123"); err != nil {
		t.Fatalf("sign up failed: %v", err)
	}
	_, err = svc.SignIn("ann@example.com", "password999")
	requireAppError(t, err, TitleAlert, MsgInvalidCredentials)

	result, err := svc.SignIn("ann@example.com", "password123")
	if err != nil {
		t.Fatalf("sign in failed: %v", err)
	}
	if result.NextScreen != ScreenCreateProfile {
		t.Fatalf("incomplete profile should go to create_profile, got %s", result.NextScreen)
	}

	if _, err := svc.CompleteProfile("ann@example.com", "Ann"); err != nil {
		t.Fatalf("complete profile failed: %v", err)
	}
	result, err = svc.SignIn("ann@example.com", "password123")
	if err != nil {
		t.Fatalf("sign in failed: %v", err)
	}
	if result.NextScreen != ScreenHome || !result.ProfileCompleted {
		t.Fatalf("completed profile should go home: %+v", result)
	}
}

func TestCompleteProfileRequiresFields(t *testing.T) {
	svc := NewAuthService(newServiceTestStore(t))

	_, err := svc.CompleteProfile("  ", "Ann")
	requireAppError(t, err, TitleEmailEmpty, "Email field is required and cannot be empty")

	_, err = svc.CompleteProfile("ann@example.com", "")
	requireAppError(t, err, TitleIncomplete, "Name field is required and cannot be empty")

	_, err = svc.CompleteProfile("ann@example.com", "Ann")
	requireAppError(t, err, TitleAlert, MsgCompleteProfileFailed)
}

func TestStartScreenLogoutAndDelete(t *testing.T) {
	svc := NewAuthService(newServiceTestStore(t))

	if got := svc.StartScreen(); got != ScreenInitial {
		t.Fatalf("expected initial, got %s", got)
	}
	if _, err := svc.SignUp("ann@example.com", "password123"); err != nil {
		t.Fatalf("sign up failed: %v", err)
	}
	if got := svc.StartScreen(); got != ScreenInitial {
		t.Fatalf("inactive account should start at initial, got %s", got)
	}
	if got := svc.ProfileEmail(); got != "ann@example.com" {
		t.Fatalf("unexpected profile email: %s", got)
	}
	if _, err := svc.CompleteProfile("ann@example.com", "Ann"); err != nil {
		t.Fatalf("complete profile failed: %v", err)
	}
	if got := svc.StartScreen(); got != ScreenHome {
		t.Fatalf("expected home, got %s", got)
	}

	if err := svc.Logout(); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if got := svc.StartScreen(); got != ScreenInitial {
		t.Fatalf("expected initial after logout, got %s", got)
	}
	if got := svc.ProfileEmail(); got != "ann@example.com" {
		t.Fatalf("stored user email should still prefill, got %q", got)
	}

	if err := svc.DeleteAccount(); err != nil {
		t.Fatalf("delete account failed: %v", err)
	}
	if got := svc.ProfileEmail(); got != "" {
		t.Fatalf("expected empty email after delete, got %q", got)
	}
}
