package services

import (
	"errors"
	"fmt"
	"log"
	"net/url"

	"golang.org/x/crypto/bcrypt"

	"evoxabackend/models"
	"evoxabackend/store"
)

var (
	ErrMissingFields  = errors.New("missing email or password")
	ErrUserExists     = errors.New("user already exists")
	ErrUserNotFound   = errors.New("account not found")
	ErrBadCredentials = errors.New("invalid credentials")
	ErrNotVerified    = errors.New("email not verified")
)

// BaseURL is the public origin used in verification links, set in main.
var BaseURL string

// Signup creates an unverified account and sends the verification
// email. Delivery is best effort: a mail failure is logged and signup
// still succeeds.
func Signup(email, password string) error {
	if email == "" || password == "" {
		return ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = store.Users.Update(func(users map[string]models.User) error {
		if _, ok := users[email]; ok {
			return ErrUserExists
		}
		users[email] = models.User{Password: string(hash), Verified: false}
		return nil
	})
	if err != nil {
		return err
	}

	link := BaseURL + "/verify?email=" + url.QueryEscape(email)
	if err := Mail.Send(email, "Verify your Evoxa account", verificationEmailBody(link)); err != nil {
		log.Println("Verification email error:", err)
	}

	return nil
}

// Verify marks the account as verified. Calling it again on an already
// verified account is a no-op success.
func Verify(email string) error {
	return store.Users.Update(func(users map[string]models.User) error {
		user, ok := users[email]
		if !ok {
			return ErrUserNotFound
		}
		user.Verified = true
		users[email] = user
		return nil
	})
}

// Login checks credentials and the verified gate. No token or session
// is issued.
func Login(email, password string) error {
	if email == "" || password == "" {
		return ErrMissingFields
	}

	users, err := store.Users.Load()
	if err != nil {
		return err
	}

	user, ok := users[email]
	if !ok {
		return ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return ErrBadCredentials
	}
	if !user.Verified {
		return ErrNotVerified
	}
	return nil
}
