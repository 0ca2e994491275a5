package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/dvukovic/trainlog/pkg"
)

const minPasswordLength = 6

var (
	ErrUsernameTaken    = errors.New("username already taken")
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters", minPasswordLength)
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrMissingField     = errors.New("all fields are required")
	ErrWrongCredentials = errors.New("wrong credentials")
)

type User struct {
	Email        string `yaml:"email" json:"email"`
	Name         string `yaml:"name" json:"name"`
	PasswordHash string `yaml:"password" json:"-"`
}

type credentialsFile struct {
	Credentials struct {
		Usernames map[string]User `yaml:"usernames"`
	} `yaml:"credentials"`
}

// UsersStore keeps user credentials in a human-editable YAML file.
// Every mutation is written back to disk before it is acknowledged.
type UsersStore struct {
	path string

	mutex sync.Mutex
	users map[string]User
}

func NewUsersStore(path string) (*UsersStore, error) {
	store := &UsersStore{
		path:  path,
		users: map[string]User{},
	}

	fileBytes, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}
		return nil, fmt.Errorf("read credentials file: %w", err)
	}

	var creds credentialsFile
	if err := yaml.Unmarshal(fileBytes, &creds); err != nil {
		return nil, fmt.Errorf("unmarshal credentials file: %w", err)
	}
	if creds.Credentials.Usernames != nil {
		store.users = creds.Credentials.Usernames
	}

	return store, nil
}

type RegisterParams struct {
	Email           string `json:"email"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (s *UsersStore) Register(params RegisterParams) (*User, error) {
	if params.Email == "" || params.Username == "" || params.Password == "" || params.ConfirmPassword == "" {
		return nil, ErrMissingField
	}
	if params.Password != params.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if len(params.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	username := strings.ToLower(strings.TrimSpace(params.Username))
	if _, exists := s.users[username]; exists {
		return nil, ErrUsernameTaken
	}

	passwordHash, err := pkg.HashPassword(params.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		Email:        params.Email,
		Name:         displayNameFromUsername(username),
		PasswordHash: passwordHash,
	}
	s.users[username] = user

	if err := s.save(); err != nil {
		delete(s.users, username)
		return nil, fmt.Errorf("save credentials: %w", err)
	}

	return &user, nil
}

func (s *UsersStore) Verify(username, password string) (*User, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	user, exists := s.users[strings.ToLower(strings.TrimSpace(username))]
	if !exists {
		return nil, ErrWrongCredentials
	}
	if !pkg.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrWrongCredentials
	}

	return &user, nil
}

func (s *UsersStore) Get(username string) (*User, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	user, exists := s.users[username]
	if !exists {
		return nil, ErrWrongCredentials
	}
	return &user, nil
}

func (s *UsersStore) save() error {
	var creds credentialsFile
	creds.Credentials.Usernames = s.users

	fileBytes, err := yaml.Marshal(&creds)
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, fileBytes, 0o600)
}

func displayNameFromUsername(username string) string {
	return pkg.DisplayName(strings.ReplaceAll(username, "_", " "))
}
