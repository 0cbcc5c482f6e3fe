package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/adminpanel/rbac-directory/internal/core/domain"
	"github.com/adminpanel/rbac-directory/internal/core/ports"
)

// SessionState is the lifecycle state of an edit session.
type SessionState string

const (
	SessionClosed  SessionState = "closed"
	SessionEditing SessionState = "editing"
)

// ErrSessionNotOpen is returned when Submit is called on a closed session.
var ErrSessionNotOpen = errors.New("edit session not open")

// Field identifiers used by the user edit session.
const (
	FieldName   = "name"
	FieldEmail  = "email"
	FieldRole   = "role"
	FieldStatus = "status"
)

// UserSession drives the create/edit flow for a single user draft. It owns a
// transient copy only; nothing reaches the store before a valid Submit.
type UserSession struct {
	svc      ports.DirectoryService
	state    SessionState
	draft    domain.UserDraft
	original *domain.User
	errors   domain.FieldErrors
}

func NewUserSession(svc ports.DirectoryService) *UserSession {
	return &UserSession{svc: svc, state: SessionClosed, errors: domain.FieldErrors{}}
}

func (s *UserSession) State() SessionState { return s.state }

func (s *UserSession) Draft() domain.UserDraft { return s.draft }

// Errors returns a copy of the current field errors.
func (s *UserSession) Errors() domain.FieldErrors {
	out := make(domain.FieldErrors, len(s.errors))
	for k, v := range s.errors {
		out[k] = v
	}
	return out
}

// OpenForCreate starts a session with the empty default shape.
func (s *UserSession) OpenForCreate() {
	s.state = SessionEditing
	s.draft = domain.UserDraft{}
	s.original = nil
	s.errors = domain.FieldErrors{}
}

// OpenForEdit starts a session with a full copy of the target; the original
// is retained for diffing at submit time.
func (s *UserSession) OpenForEdit(u domain.User) {
	s.state = SessionEditing
	s.draft = domain.UserDraft{Name: u.Name, Email: u.Email, Role: u.Role, Status: u.Status}
	orig := u
	s.original = &orig
	s.errors = domain.FieldErrors{}
}

// SetField updates a draft field. Errors clear eagerly as soon as the field
// holds valid input; the email field re-validates its shape on every change
// and surfaces or clears the format error immediately.
func (s *UserSession) SetField(field, value string) {
	switch field {
	case FieldName:
		s.draft.Name = value
	case FieldEmail:
		s.draft.Email = value
	case FieldRole:
		s.draft.Role = value
	case FieldStatus:
		s.draft.Status = domain.Status(value)
	default:
		return
	}

	if strings.TrimSpace(value) == "" {
		return
	}
	if field == FieldEmail {
		if domain.ValidEmail(value) {
			delete(s.errors, FieldEmail)
		} else {
			s.errors[FieldEmail] = "Invalid email format."
		}
		return
	}
	delete(s.errors, field)
}

// Submit validates the draft and commits it. On validation failure every
// error is surfaced and the session stays open; on a duplicate the session
// also stays open. Only a successful commit closes the session.
func (s *UserSession) Submit(ctx context.Context) (domain.User, error) {
	if s.state != SessionEditing {
		return domain.User{}, ErrSessionNotOpen
	}

	var (
		user domain.User
		err  error
	)
	if s.original == nil {
		user, err = s.svc.CreateUser(ctx, s.draft)
	} else {
		user, err = s.svc.UpdateUser(ctx, s.original.ID, s.diff())
	}
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			s.errors = ve.Fields
		}
		return domain.User{}, err
	}

	s.Cancel()
	return user, nil
}

// Cancel discards the draft unconditionally and closes the session.
func (s *UserSession) Cancel() {
	s.state = SessionClosed
	s.draft = domain.UserDraft{}
	s.original = nil
	s.errors = domain.FieldErrors{}
}

// diff computes the changed-fields patch between draft and original. Fields
// equal to their original value are omitted.
func (s *UserSession) diff() domain.UserPatch {
	var p domain.UserPatch
	if s.draft.Name != s.original.Name {
		v := s.draft.Name
		p.Name = &v
	}
	if s.draft.Email != s.original.Email {
		v := s.draft.Email
		p.Email = &v
	}
	if s.draft.Role != s.original.Role {
		v := s.draft.Role
		p.Role = &v
	}
	if s.draft.Status != s.original.Status {
		v := s.draft.Status
		p.Status = &v
	}
	return p
}

// RoleSession drives the create/edit flow for a single role draft. An
// optional draft cache persists in-progress edits so an interrupted session
// can be recovered; cache failures are logged and never block editing.
type RoleSession struct {
	svc      ports.DirectoryService
	cache    ports.DraftCache
	log      zerolog.Logger
	state    SessionState
	draft    domain.RoleDraft
	original *domain.Role
	errors   domain.FieldErrors
}

func NewRoleSession(svc ports.DirectoryService, cache ports.DraftCache, log zerolog.Logger) *RoleSession {
	return &RoleSession{svc: svc, cache: cache, log: log, state: SessionClosed, errors: domain.FieldErrors{}}
}

func (s *RoleSession) State() SessionState { return s.state }

func (s *RoleSession) Draft() domain.RoleDraft {
	d := s.draft
	d.Permissions = append([]string(nil), s.draft.Permissions...)
	return d
}

// Errors returns a copy of the current field errors.
func (s *RoleSession) Errors() domain.FieldErrors {
	out := make(domain.FieldErrors, len(s.errors))
	for k, v := range s.errors {
		out[k] = v
	}
	return out
}

// OpenForCreate starts a session with the empty default shape.
func (s *RoleSession) OpenForCreate() {
	s.state = SessionEditing
	s.draft = domain.RoleDraft{}
	s.original = nil
	s.errors = domain.FieldErrors{}
}

// OpenForEdit starts a session with a full copy of the target role.
func (s *RoleSession) OpenForEdit(r domain.Role) {
	s.state = SessionEditing
	s.draft = domain.RoleDraft{Name: r.Name, Permissions: append([]string(nil), r.Permissions...)}
	orig := r.Clone()
	s.original = &orig
	s.errors = domain.FieldErrors{}
}

// Recover restores a cached draft into the current editing session and
// reports whether one was found.
func (s *RoleSession) Recover(ctx context.Context) bool {
	if s.cache == nil || s.state != SessionEditing {
		return false
	}
	draft, ok, err := s.cache.LoadRoleDraft(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("draft recovery failed")
		return false
	}
	if ok {
		s.draft = draft
	}
	return ok
}

// SetName updates the draft name, clearing its error as soon as the value is
// non-blank.
func (s *RoleSession) SetName(ctx context.Context, name string) {
	s.draft.Name = name
	if strings.TrimSpace(name) != "" {
		delete(s.errors, "name")
	}
	s.persist(ctx)
}

// TogglePermission adds or removes a permission from the draft set.
func (s *RoleSession) TogglePermission(ctx context.Context, perm string) {
	idx := -1
	for i, p := range s.draft.Permissions {
		if p == perm {
			idx = i
			break
		}
	}
	if idx >= 0 {
		s.draft.Permissions = append(s.draft.Permissions[:idx], s.draft.Permissions[idx+1:]...)
	} else {
		s.draft.Permissions = append(s.draft.Permissions, perm)
	}
	if len(s.draft.Permissions) > 0 {
		delete(s.errors, "permissions")
	}
	s.persist(ctx)
}

// Submit validates the draft and commits it, mirroring UserSession.Submit.
func (s *RoleSession) Submit(ctx context.Context) (domain.Role, error) {
	if s.state != SessionEditing {
		return domain.Role{}, ErrSessionNotOpen
	}

	var (
		role domain.Role
		err  error
	)
	if s.original == nil {
		role, err = s.svc.CreateRole(ctx, s.draft)
	} else {
		role, err = s.svc.UpdateRole(ctx, s.original.ID, s.diff())
	}
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			s.errors = ve.Fields
		}
		return domain.Role{}, err
	}

	s.Cancel(ctx)
	return role, nil
}

// Cancel discards the draft and any cached copy, then closes the session.
func (s *RoleSession) Cancel(ctx context.Context) {
	s.state = SessionClosed
	s.draft = domain.RoleDraft{}
	s.original = nil
	s.errors = domain.FieldErrors{}
	if s.cache != nil {
		if err := s.cache.ClearRoleDraft(ctx); err != nil {
			s.log.Warn().Err(err).Msg("draft cache clear failed")
		}
	}
}

// diff computes the changed-fields patch between draft and original. The
// permission set counts as changed when it differs in length or content.
func (s *RoleSession) diff() domain.RolePatch {
	var p domain.RolePatch
	if s.draft.Name != s.original.Name {
		v := s.draft.Name
		p.Name = &v
	}
	if !equalPermissions(s.draft.Permissions, s.original.Permissions) {
		// Always non-nil when changed: a drained set must reach validation
		// as an empty slice, not read as "unchanged".
		p.Permissions = append(make([]string, 0, len(s.draft.Permissions)), s.draft.Permissions...)
	}
	return p
}

// persist writes the in-progress draft to the cache on every change while a
// session is open, matching the write-through recovery behaviour.
func (s *RoleSession) persist(ctx context.Context) {
	if s.cache == nil || s.state != SessionEditing {
		return
	}
	if err := s.cache.SaveRoleDraft(ctx, s.draft); err != nil {
		s.log.Warn().Err(err).Msg("draft cache write failed")
	}
}

func equalPermissions(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
