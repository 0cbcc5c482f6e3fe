package ports

import (
	"context"

	"github.com/adminpanel/rbac-directory/internal/core/domain"
)

// NotificationKind discriminates user-visible notifications.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// Notifier delivers fire-and-forget user-visible notifications. Delivery is
// best effort; callers never block on it.
type Notifier interface {
	Notify(kind NotificationKind, title, message string)
}

// DraftCache recovers an in-progress role draft after an interrupted edit.
// It is an external convenience, not part of the directory's contract.
type DraftCache interface {
	SaveRoleDraft(ctx context.Context, draft domain.RoleDraft) error
	LoadRoleDraft(ctx context.Context) (domain.RoleDraft, bool, error)
	ClearRoleDraft(ctx context.Context) error
}
