// Package memory holds the authoritative in-memory directory store. State
// lives for the life of the process only; persistence is explicitly out of
// scope.
package memory

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/adminpanel/rbac-directory/internal/core/domain"
)

const (
	userIDPrefix = "USR"
	roleIDPrefix = "ROL"
)

// Store owns the canonical User and Role collections. Users keep insertion
// order; roles are re-ranked after every mutation so the canonical order
// always reflects descending permission count. The mutex keeps each
// operation atomic even though callers are nominally sequential; the store
// sits behind an HTTP server.
type Store struct {
	mu     sync.Mutex
	users  []domain.User
	roles  []domain.Role
	nextID uint64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// mintID returns a fresh per-process-unique identifier. The counter is
// monotonic, so collisions cannot occur within a session.
func (s *Store) mintID(prefix string) string {
	s.nextID++
	return fmt.Sprintf("%s-%08X", prefix, s.nextID)
}

// Users returns a copy of the user collection in insertion order.
func (s *Store) Users() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out
}

// Roles returns a copy of the role collection in ranked order.
func (s *Store) Roles() []domain.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Role, len(s.roles))
	for i, r := range s.roles {
		out[i] = r.Clone()
	}
	return out
}

// GetUser returns the user with the given id.
func (s *Store) GetUser(id string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

// GetRole returns the role with the given id.
func (s *Store) GetRole(id string) (domain.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.roles {
		if r.ID == id {
			return r.Clone(), nil
		}
	}
	return domain.Role{}, domain.ErrRoleNotFound
}

// IsDuplicateUser reports whether a user other than excludeID already holds
// the given name or email, compared case-insensitively.
func (s *Store) IsDuplicateUser(name, email, excludeID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.duplicateUserLocked(name, email, excludeID)
}

func (s *Store) duplicateUserLocked(name, email, excludeID string) bool {
	for _, u := range s.users {
		if u.ID == excludeID {
			continue
		}
		if strings.EqualFold(u.Email, email) || strings.EqualFold(u.Name, name) {
			return true
		}
	}
	return false
}

// IsDuplicateRole reports whether a role other than excludeID already holds
// the given name, compared case-insensitively.
func (s *Store) IsDuplicateRole(name, excludeID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.duplicateRoleLocked(name, excludeID)
}

func (s *Store) duplicateRoleLocked(name, excludeID string) bool {
	for _, r := range s.roles {
		if r.ID == excludeID {
			continue
		}
		if strings.EqualFold(r.Name, name) {
			return true
		}
	}
	return false
}

// AddUser mints an id and stores the draft. Rejects drafts colliding with an
// existing user's name or email.
func (s *Store) AddUser(draft domain.UserDraft) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.duplicateUserLocked(draft.Name, draft.Email, "") {
		return domain.User{}, domain.ErrDuplicateUser
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:        s.mintID(userIDPrefix),
		Name:      draft.Name,
		Email:     draft.Email,
		Role:      draft.Role,
		Status:    draft.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.users = append(s.users, user)
	return user, nil
}

// UpdateUser merges the patch over the stored record and replaces it in
// place, keeping the id. Rejects merges colliding with a record other than
// the target itself.
func (s *Store) UpdateUser(id string, patch domain.UserPatch) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, u := range s.users {
		if u.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.User{}, domain.ErrUserNotFound
	}

	merged := patch.Apply(s.users[idx])
	if s.duplicateUserLocked(merged.Name, merged.Email, id) {
		return domain.User{}, domain.ErrDuplicateUser
	}

	merged.UpdatedAt = time.Now().UTC()
	s.users[idx] = merged
	return merged, nil
}

// DeleteUser removes the user if present and reports whether removal
// occurred. Missing ids are a no-op.
func (s *Store) DeleteUser(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return true
		}
	}
	return false
}

// AddRole mints an id, stores the draft, and re-ranks the collection.
func (s *Store) AddRole(draft domain.RoleDraft) (domain.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.duplicateRoleLocked(draft.Name, "") {
		return domain.Role{}, domain.ErrDuplicateRole
	}

	now := time.Now().UTC()
	role := domain.Role{
		ID:          s.mintID(roleIDPrefix),
		Name:        draft.Name,
		Permissions: append([]string(nil), draft.Permissions...),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.roles = domain.RankRoles(append(s.roles, role))
	return role.Clone(), nil
}

// UpdateRole merges the patch over the stored record, replaces it in place,
// and re-ranks the collection.
func (s *Store) UpdateRole(id string, patch domain.RolePatch) (domain.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, r := range s.roles {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Role{}, domain.ErrRoleNotFound
	}

	merged := patch.Apply(s.roles[idx].Clone())
	if s.duplicateRoleLocked(merged.Name, id) {
		return domain.Role{}, domain.ErrDuplicateRole
	}

	merged.UpdatedAt = time.Now().UTC()
	s.roles[idx] = merged
	s.roles = domain.RankRoles(s.roles)
	return merged.Clone(), nil
}

// DeleteRole removes the role if present. Users referencing the role by name
// are never touched; the dangling reference is allowed to persist.
func (s *Store) DeleteRole(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.roles {
		if r.ID == id {
			s.roles = append(s.roles[:i], s.roles[i+1:]...)
			return true
		}
	}
	return false
}
