package database

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrUsernameExists is returned when creating a user with a taken username.
var ErrUsernameExists = errors.New("username already exists")

// CreateUser inserts a new user with a bcrypt-hashed password.
// It returns ErrUsernameExists if the username is already taken.
func (c *Client) CreateUser(ctx context.Context, username, password string, isAdmin bool, commissionDefault float64) (*User, error) {
	_, err := c.GetUserByUsername(ctx, username)
	if err == nil {
		return nil, ErrUsernameExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := User{
		Username:          username,
		PasswordHash:      string(hash),
		IsAdmin:           isAdmin,
		CommissionDefault: commissionDefault,
	}
	if err := c.db.WithContext(ctx).Create(&user).Error; err != nil {
		log.Error("failed to create user", "error", err)
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername returns the user with the given username, or
// gorm.ErrRecordNotFound if no such user exists.
func (c *Client) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	if err := c.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("failed to get user by username", "error", err)
		}
		return nil, err
	}
	return &user, nil
}

// AuthenticateUser returns the user matching the username and password, or
// gorm.ErrRecordNotFound if either is wrong. The caller cannot distinguish an
// unknown username from a wrong password.
func (c *Client) AuthenticateUser(ctx context.Context, username, password string) (*User, error) {
	user, err := c.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

// ListUsers returns all users in insertion order.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		log.Error("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

// EnsureAdmin makes sure an admin account with the given username exists.
// It is idempotent: if the account is already present it is left untouched,
// password included.
func (c *Client) EnsureAdmin(ctx context.Context, username, password string) error {
	_, err := c.GetUserByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if _, err := c.CreateUser(ctx, username, password, true, 0); err != nil {
		return err
	}
	log.Info("created initial admin account", "username", username)
	return nil
}
