package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	// Test valid user creation
	user, err := NewUser("Test User", "test@example.com", "password123")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if user.Name != "Test User" {
		t.Errorf("Expected name %q, got %q", "Test User", user.Name)
	}

	if user.Email != "test@example.com" {
		t.Errorf("Expected email %s, got %s", "test@example.com", user.Email)
	}

	if user.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Email is normalized to lowercase with surrounding space trimmed
	user, err = NewUser("Test User", "  Test@Example.COM ", "password123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.Email != "test@example.com" {
		t.Errorf("Expected normalized email %s, got %s", "test@example.com", user.Email)
	}

	// Test invalid name
	_, err = NewUser("", "test@example.com", "password123")
	if err != ErrEmptyUserName {
		t.Errorf("Expected error %v, got %v", ErrEmptyUserName, err)
	}

	// Test invalid email
	_, err = NewUser("Test User", "", "password123")
	if err != ErrEmptyEmail {
		t.Errorf("Expected error %v, got %v", ErrEmptyEmail, err)
	}

	_, err = NewUser("Test User", "invalidemail", "password123")
	if err != ErrInvalidEmail {
		t.Errorf("Expected error %v, got %v", ErrInvalidEmail, err)
	}

	// Test invalid password
	_, err = NewUser("Test User", "test@example.com", "short")
	if err != ErrPasswordTooShort {
		t.Errorf("Expected error %v, got %v", ErrPasswordTooShort, err)
	}

	_, err = NewUser("Test User", "test@example.com", strings.Repeat("p", 73))
	if err != ErrPasswordTooLong {
		t.Errorf("Expected error %v, got %v", ErrPasswordTooLong, err)
	}

	_, err = NewUser("Test User", "test@example.com", "")
	if err != ErrEmptyPassword {
		t.Errorf("Expected error %v, got %v", ErrEmptyPassword, err)
	}
}

func TestUserValidate(t *testing.T) {
	validUser := User{
		ID:             uuid.New(),
		Name:           "Test User",
		Email:          "test@example.com",
		HashedPassword: "hashedpassword123",
	}

	// Test valid user loaded from the store (hash only, no plaintext)
	if err := validUser.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	// Test invalid ID
	invalidUser := validUser
	invalidUser.ID = uuid.Nil
	if err := invalidUser.Validate(); err != ErrEmptyUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyUserID, err)
	}

	// Test invalid email
	invalidUser = validUser
	invalidUser.Email = ""
	if err := invalidUser.Validate(); err != ErrEmptyEmail {
		t.Errorf("Expected error %v, got %v", ErrEmptyEmail, err)
	}

	invalidUser = validUser
	invalidUser.Email = "user@@example.com"
	if err := invalidUser.Validate(); err != ErrInvalidEmail {
		t.Errorf("Expected error %v, got %v", ErrInvalidEmail, err)
	}

	// Test missing credentials entirely
	invalidUser = validUser
	invalidUser.HashedPassword = ""
	if err := invalidUser.Validate(); err != ErrEmptyPassword {
		t.Errorf("Expected error %v, got %v", ErrEmptyPassword, err)
	}

	// Plaintext password takes precedence for validation when set
	invalidUser = validUser
	invalidUser.Password = "short"
	if err := invalidUser.Validate(); err != ErrPasswordTooShort {
		t.Errorf("Expected error %v, got %v", ErrPasswordTooShort, err)
	}
}

func TestValidEmailFormat(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.example.co",
		"u@x.io",
	}
	for _, email := range valid {
		if !validEmailFormat(email) {
			t.Errorf("Expected %q to be valid", email)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@example",
		"user@.com",
		"user@example.",
		"a@b@c.com",
	}
	for _, email := range invalid {
		if validEmailFormat(email) {
			t.Errorf("Expected %q to be invalid", email)
		}
	}
}
