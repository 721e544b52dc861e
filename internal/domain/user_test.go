package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	user, err := NewUser("Ada Lovelace", "ada@example.com", "$2a$10$hash")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if user.Name != "Ada Lovelace" {
		t.Errorf("Expected name %q, got %q", "Ada Lovelace", user.Name)
	}

	if user.CreatedAt.IsZero() || !user.CreatedAt.Equal(user.UpdatedAt) {
		t.Errorf("Expected matching non-zero timestamps, got %v and %v", user.CreatedAt, user.UpdatedAt)
	}

	if user.CreatedAt.Location().String() != "UTC" {
		t.Errorf("Expected UTC timestamps, got %s", user.CreatedAt.Location())
	}

	if _, err := NewUser("", "ada@example.com", "hash"); err != ErrEmptyUserName {
		t.Errorf("Expected error %v, got %v", ErrEmptyUserName, err)
	}

	if _, err := NewUser("Ada", "not-an-email", "hash"); err != ErrInvalidEmail {
		t.Errorf("Expected error %v, got %v", ErrInvalidEmail, err)
	}

	if _, err := NewUser("Ada", "ada@example.com", ""); err != ErrEmptyHashedPassword {
		t.Errorf("Expected error %v, got %v", ErrEmptyHashedPassword, err)
	}
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	validUser := User{
		ID:             uuid.New(),
		Name:           "Ada",
		Email:          "ada@example.com",
		HashedPassword: "hash",
	}

	if err := validUser.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalidUser := validUser
	invalidUser.ID = uuid.Nil
	if err := invalidUser.Validate(); err != ErrEmptyUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyUserID, err)
	}

	invalidUser = validUser
	invalidUser.Email = ""
	if err := invalidUser.Validate(); err != ErrEmptyEmail {
		t.Errorf("Expected error %v, got %v", ErrEmptyEmail, err)
	}

	invalidUser = validUser
	invalidUser.Name = strings.Repeat("a", MaxStringLength+1)
	if err := invalidUser.Validate(); err != ErrUserNameTooLong {
		t.Errorf("Expected error %v, got %v", ErrUserNameTooLong, err)
	}
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"user@example.com":          true,
		"first.last+tag@sub.domain": true,
		"":                          false,
		"plainaddress":              false,
		"@example.com":              false,
		"Ada <ada@example.com>":     false,
		strings.Repeat("a", 250) + "@x.com": false,
	}

	for email, want := range cases {
		if got := ValidEmail(email); got != want {
			t.Errorf("ValidEmail(%q) = %v, want %v", email, got, want)
		}
	}
}
