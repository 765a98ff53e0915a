package auth

import (
	"bank-services/internal/config"
	"bank-services/internal/pkg/apperrors"
	"fmt"
	"slices"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	Username     string
	PasswordHash []byte
	Roles        []string
}

func (u *User) HasRole(role string) bool {
	return slices.Contains(u.Roles, role)
}

// Directory is the fixed set of users allowed to log in.
type Directory struct {
	users map[string]*User
	// dummyHash is compared against for unknown users so a lookup miss costs
	// about as much as a wrong password.
	dummyHash []byte
}

func NewDirectory(users []config.UserConfig) (*Directory, error) {
	return newDirectory(users, bcrypt.DefaultCost)
}

func newDirectory(users []config.UserConfig, cost int) (*Directory, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare user directory: %w", err)
	}

	d := &Directory{users: make(map[string]*User, len(users)), dummyHash: dummy}
	for _, uc := range users {
		if uc.Username == "" {
			return nil, fmt.Errorf("%w: user without a username", apperrors.ErrInvalidArgument)
		}
		if _, dup := d.users[uc.Username]; dup {
			return nil, fmt.Errorf("%w: duplicate user %q", apperrors.ErrInvalidArgument, uc.Username)
		}

		hash := []byte(uc.PasswordHash)
		switch {
		case uc.PasswordHash != "":
			if _, err := bcrypt.Cost(hash); err != nil {
				return nil, fmt.Errorf("%w: invalid password hash for user %q: %w", apperrors.ErrInvalidArgument, uc.Username, err)
			}
		case uc.Password != "":
			hash, err = bcrypt.GenerateFromPassword([]byte(uc.Password), cost)
			if err != nil {
				return nil, fmt.Errorf("failed to hash password for user %q: %w", uc.Username, err)
			}
		default:
			return nil, fmt.Errorf("%w: user %q has neither password nor passwordHash", apperrors.ErrInvalidArgument, uc.Username)
		}

		d.users[uc.Username] = &User{
			Username:     uc.Username,
			PasswordHash: hash,
			Roles:        slices.Clone(uc.Roles),
		}
	}
	return d, nil
}

// Authenticate returns the user when the password matches, or
// apperrors.ErrInvalidCredentials for an unknown user or a wrong password.
func (d *Directory) Authenticate(username, password string) (*User, error) {
	user, ok := d.users[username]
	if !ok {
		_ = bcrypt.CompareHashAndPassword(d.dummyHash, []byte(password))
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}
