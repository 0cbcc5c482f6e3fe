package domain

import (
	"regexp"
	"strings"
)

// emailPattern accepts the local-part@domain.tld shape. Deliberately loose:
// one non-blank local part, one @ and a dotted domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s matches the email shape rule.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidateUserDraft checks a create-mode draft: every field is required and
// must satisfy its rule.
func ValidateUserDraft(d UserDraft) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = "Name is required."
	}
	if strings.TrimSpace(d.Email) == "" {
		errs["email"] = "Email is required."
	} else if !ValidEmail(d.Email) {
		errs["email"] = "Invalid email format."
	}
	if strings.TrimSpace(d.Role) == "" {
		errs["role"] = "Role is required."
	}
	if d.Status == "" {
		errs["status"] = "Status is required."
	} else if !d.Status.IsValid() {
		errs["status"] = "Status must be Active or Inactive."
	}
	return errs
}

// ValidateUserPatch checks an update-mode patch against the original record.
// A field is validated only when the patch provides it with a value that
// differs from the original; untouched fields are exempt, so a partial edit
// never has to re-satisfy constraints it did not touch.
func ValidateUserPatch(p UserPatch, original User) FieldErrors {
	errs := FieldErrors{}
	if p.Name != nil && *p.Name != original.Name && strings.TrimSpace(*p.Name) == "" {
		errs["name"] = "Name is required."
	}
	if p.Email != nil && *p.Email != original.Email {
		if strings.TrimSpace(*p.Email) == "" {
			errs["email"] = "Email is required."
		} else if !ValidEmail(*p.Email) {
			errs["email"] = "Invalid email format."
		}
	}
	if p.Role != nil && *p.Role != original.Role && strings.TrimSpace(*p.Role) == "" {
		errs["role"] = "Role is required."
	}
	if p.Status != nil && *p.Status != original.Status && !p.Status.IsValid() {
		errs["status"] = "Status must be Active or Inactive."
	}
	return errs
}

// ValidateRoleDraft checks a create-mode role draft.
func ValidateRoleDraft(d RoleDraft) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = "Role name is required."
	}
	if len(d.Permissions) == 0 {
		errs["permissions"] = "Select at least one permission."
	}
	return errs
}

// ValidateRolePatch checks an update-mode role patch against the original,
// applying the same changed-fields-only rule as ValidateUserPatch.
func ValidateRolePatch(p RolePatch, original Role) FieldErrors {
	errs := FieldErrors{}
	if p.Name != nil && *p.Name != original.Name && strings.TrimSpace(*p.Name) == "" {
		errs["name"] = "Role name is required."
	}
	if p.Permissions != nil && len(p.Permissions) == 0 {
		errs["permissions"] = "Select at least one permission."
	}
	return errs
}
