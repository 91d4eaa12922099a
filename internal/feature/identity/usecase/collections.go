package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"regalis_backend/internal/feature/identity/domain/entity"
)

// The helpers below run on the store goroutine only.

func (s *Store) insertUser(ctx context.Context, name, email, proof string) (entity.PublicUser, error) {
	users, err := loadList[entity.User](ctx, s.kv, KeyUsers)
	if err != nil {
		return entity.PublicUser{}, err
	}
	for _, u := range users {
		if u.Email == email {
			return entity.PublicUser{}, ErrDuplicateEmail
		}
	}

	user := entity.User{
		ID:            s.newID(),
		Email:         email,
		Name:          name,
		PasswordProof: proof,
		CreatedAt:     s.now().UTC(),
	}
	next := append(slices.Clone(users), user)
	if err := saveList(ctx, s.kv, KeyUsers, next); err != nil {
		return entity.PublicUser{}, err
	}

	public := user.Public()
	if err := writeSession(ctx, s.kv, public); err != nil {
		// Put the previous list back so a failed signup leaves no account behind.
		if rbErr := saveList(ctx, s.kv, KeyUsers, users); rbErr != nil {
			s.logger.Error("failed to roll back users after session write failure",
				"email", email, "error", rbErr)
		}
		return entity.PublicUser{}, err
	}

	s.emit(entity.AuditSignUp, email)
	return public, nil
}

func (s *Store) findUserByEmail(ctx context.Context, email string) (entity.User, bool, error) {
	users, err := loadList[entity.User](ctx, s.kv, KeyUsers)
	if err != nil {
		return entity.User{}, false, err
	}
	for _, u := range users {
		if u.Email == email {
			return u, true, nil
		}
	}
	return entity.User{}, false, nil
}

func (s *Store) insertProject(ctx context.Context, userID, name, prompt, code string, typ entity.ProjectType) (entity.Project, error) {
	if _, known, err := s.findUserByID(ctx, userID); err != nil {
		return entity.Project{}, err
	} else if !known {
		s.logger.Warn("saving project for unknown user", "user_id", userID)
	}

	projects, err := loadList[entity.Project](ctx, s.kv, KeyProjects)
	if err != nil {
		return entity.Project{}, err
	}

	project := entity.Project{
		ID:        s.newID(),
		UserID:    userID,
		Name:      name,
		Prompt:    prompt,
		Type:      typ,
		Code:      code,
		CreatedAt: s.now().UTC(),
	}
	if err := saveList(ctx, s.kv, KeyProjects, append(projects, project)); err != nil {
		return entity.Project{}, err
	}
	return project, nil
}

func (s *Store) findUserByID(ctx context.Context, id string) (entity.User, bool, error) {
	users, err := loadList[entity.User](ctx, s.kv, KeyUsers)
	if err != nil {
		return entity.User{}, false, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, true, nil
		}
	}
	return entity.User{}, false, nil
}

// projectsOf filters by owner and orders by createdAt descending.
// Equal timestamps keep reverse insertion order.
func (s *Store) projectsOf(ctx context.Context, userID string) ([]entity.Project, error) {
	projects, err := loadList[entity.Project](ctx, s.kv, KeyProjects)
	if err != nil {
		return nil, err
	}

	out := make([]entity.Project, 0, len(projects))
	for i := len(projects) - 1; i >= 0; i-- {
		if projects[i].UserID == userID {
			out = append(out, projects[i])
		}
	}
	slices.SortStableFunc(out, func(a, b entity.Project) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

func readSession(ctx context.Context, kv KVStore) (entity.PublicUser, bool, error) {
	raw, found, err := kv.Get(ctx, KeyCurrentUser)
	if err != nil {
		return entity.PublicUser{}, false, fmt.Errorf("failed to read %s: %w", KeyCurrentUser, err)
	}
	if !found || len(raw) == 0 {
		return entity.PublicUser{}, false, nil
	}
	var user entity.PublicUser
	if err := json.Unmarshal(raw, &user); err != nil {
		return entity.PublicUser{}, false, fmt.Errorf("failed to decode %s: %w", KeyCurrentUser, err)
	}
	return user, true, nil
}

func writeSession(ctx context.Context, kv KVStore, user entity.PublicUser) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", KeyCurrentUser, err)
	}
	if err := kv.Set(ctx, KeyCurrentUser, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", KeyCurrentUser, err)
	}
	return nil
}

func loadList[T any](ctx context.Context, kv KVStore, key string) ([]T, error) {
	raw, found, err := kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !found || len(raw) == 0 {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return items, nil
}

func saveList[T any](ctx context.Context, kv KVStore, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
