package domain

import "testing"

func TestValidateUserDraft_AllFieldsRequired(t *testing.T) {
	errs := ValidateUserDraft(UserDraft{})
	for _, field := range []string{"name", "email", "role", "status"} {
		if errs[field] == "" {
			t.Errorf("expected error for %q, got none", field)
		}
	}
}

func TestValidateUserDraft_EmailShape(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"jane@x.com", true},
		{"jane.doe@sub.example.co", true},
		{"jane@x", false},
		{"jane", false},
		{"@x.com", false},
		{"jane @x.com", false},
		{"jane@x .com", false},
	}
	for _, tc := range cases {
		draft := UserDraft{Name: "Jane", Email: tc.email, Role: "Editor", Status: StatusActive}
		errs := ValidateUserDraft(draft)
		if tc.valid && errs["email"] != "" {
			t.Errorf("email %q: unexpected error %q", tc.email, errs["email"])
		}
		if !tc.valid && errs["email"] == "" {
			t.Errorf("email %q: expected format error", tc.email)
		}
	}
}

func TestValidateUserDraft_StatusEnum(t *testing.T) {
	draft := UserDraft{Name: "Jane", Email: "jane@x.com", Role: "Editor", Status: "Suspended"}
	if errs := ValidateUserDraft(draft); errs["status"] == "" {
		t.Fatalf("expected status enum error")
	}

	draft.Status = StatusInactive
	if errs := ValidateUserDraft(draft); !errs.Valid() {
		t.Fatalf("expected valid draft, got %v", errs)
	}
}

func TestValidateUserPatch_UnchangedFieldsExempt(t *testing.T) {
	// Historically invalid email must not be re-checked when left untouched.
	original := User{ID: "USR-1", Name: "Jane", Email: "not-an-email", Role: "Editor", Status: StatusActive}

	name := "Jane Doe"
	errs := ValidateUserPatch(UserPatch{Name: &name}, original)
	if !errs.Valid() {
		t.Fatalf("expected valid patch, got %v", errs)
	}
}

func TestValidateUserPatch_ChangedFieldsChecked(t *testing.T) {
	original := User{ID: "USR-1", Name: "Jane", Email: "jane@x.com", Role: "Editor", Status: StatusActive}

	blank := "   "
	errs := ValidateUserPatch(UserPatch{Name: &blank}, original)
	if errs["name"] == "" {
		t.Fatalf("expected name error for blank change")
	}

	bad := "nope"
	errs = ValidateUserPatch(UserPatch{Email: &bad}, original)
	if errs["email"] == "" {
		t.Fatalf("expected email format error")
	}

	// Patch equal to the original counts as untouched.
	same := "jane@x.com"
	errs = ValidateUserPatch(UserPatch{Email: &same}, original)
	if !errs.Valid() {
		t.Fatalf("expected valid patch, got %v", errs)
	}
}

func TestValidateRoleDraft(t *testing.T) {
	errs := ValidateRoleDraft(RoleDraft{})
	if errs["name"] == "" {
		t.Errorf("expected name error")
	}
	if errs["permissions"] == "" {
		t.Errorf("expected permissions error")
	}

	errs = ValidateRoleDraft(RoleDraft{Name: "Editor", Permissions: []string{PermEditContent}})
	if !errs.Valid() {
		t.Fatalf("expected valid draft, got %v", errs)
	}
}

func TestValidateRolePatch_EmptyPermissionSetRejected(t *testing.T) {
	original := Role{ID: "ROL-1", Name: "Editor", Permissions: []string{PermEditContent}}

	errs := ValidateRolePatch(RolePatch{Permissions: []string{}}, original)
	if errs["permissions"] == "" {
		t.Fatalf("expected permissions error for empty set")
	}

	// nil means unchanged, so no check runs.
	if errs := ValidateRolePatch(RolePatch{}, original); !errs.Valid() {
		t.Fatalf("expected valid empty patch, got %v", errs)
	}
}
