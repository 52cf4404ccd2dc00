package file

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"taskflow/internal/auth/repository"
	"taskflow/internal/model"
	"taskflow/pkg/log"
)

// usersFile is the on-disk layout:
//
//	users:
//	  - username: alex
//	    user_id: 7f1c...
//	    password_hash: $2a$10$...
type usersFile struct {
	Users []model.User `yaml:"users"`
}

type implRepository struct {
	l     log.Logger
	users map[string]model.User
}

// Load reads the YAML users file at path. Usernames are matched case-insensitively.
func Load(ctx context.Context, path string, l log.Logger) (repository.UserRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}
	return Parse(ctx, data, l)
}

// Parse builds a repository from YAML content.
func Parse(ctx context.Context, data []byte, l log.Logger) (repository.UserRepository, error) {
	var f usersFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}

	users := make(map[string]model.User, len(f.Users))
	for i, u := range f.Users {
		key := normalize(u.Username)
		if key == "" || u.ID == "" || u.PasswordHash == "" {
			return nil, fmt.Errorf("%w: entry %d needs username, user_id and password_hash", repository.ErrInvalidUser, i)
		}
		if _, dup := users[key]; dup {
			return nil, fmt.Errorf("%w: duplicate username %q", repository.ErrInvalidUser, u.Username)
		}
		users[key] = u
	}

	l.Infof(ctx, "auth/repository/file.Parse: loaded %d users", len(users))
	return &implRepository{l: l, users: users}, nil
}

func (r *implRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	return r.users[normalize(username)], nil
}

func normalize(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
