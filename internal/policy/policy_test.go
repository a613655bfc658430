package policy_test

import (
	"testing"

	"github.com/pdv-survey-api/internal/apperr"
	"github.com/pdv-survey-api/internal/models"
	"github.com/pdv-survey-api/internal/policy"
)

func newPolicy() *policy.Policy {
	return policy.New("ALTA PDV")
}

func admin() *models.Identity {
	return &models.Identity{Email: "admin@example.com", Level: models.LevelAdmin, Role: models.RoleAdmin, AllowedIDs: []string{}}
}

func supervisor() *models.Identity {
	return &models.Identity{Email: "super@example.com", Level: models.LevelSupervisor, Role: models.RoleSupervisor, AllowedIDs: []string{}}
}

func assignedUser(sheet string) *models.Identity {
	return &models.Identity{Email: "zona@example.com", Level: models.LevelUser, Role: models.RoleUser, AllowedIDs: []string{}, AssignedSheet: sheet}
}

func listUser(ids ...string) *models.Identity {
	return &models.Identity{Email: "campo@example.com", Level: models.LevelUser, Role: models.RoleUser, AllowedIDs: ids}
}

func TestAuthorizeReadAdmin(t *testing.T) {
	p := newPolicy()

	scope := p.AuthorizeRead(admin(), "Todos")
	if !scope.Combined {
		t.Error("admin requesting Todos should get the combined view")
	}

	scope = p.AuthorizeRead(admin(), "Zona Norte")
	if scope.Combined || scope.Tab != "Zona Norte" || scope.Filtered {
		t.Errorf("admin requesting a tab got %+v", scope)
	}

	scope = p.AuthorizeRead(admin(), "test")
	if scope.Tab != "test" {
		t.Errorf("admin may read the restricted tab, got %+v", scope)
	}
}

func TestAuthorizeReadSupervisorRestrictedTab(t *testing.T) {
	p := newPolicy()

	// the restricted tab is silently replaced by the combined view
	scope := p.AuthorizeRead(supervisor(), "test")
	if !scope.Combined {
		t.Errorf("supervisor requesting the restricted tab got %+v, want combined", scope)
	}

	scope = p.AuthorizeRead(supervisor(), "TEST")
	if !scope.Combined {
		t.Error("restricted-tab check must be case-insensitive")
	}

	scope = p.AuthorizeRead(supervisor(), "Zona Sur")
	if scope.Combined || scope.Tab != "Zona Sur" {
		t.Errorf("supervisor requesting an ordinary tab got %+v", scope)
	}
}

func TestAuthorizeReadAssignedUser(t *testing.T) {
	p := newPolicy()
	id := assignedUser("Zona Oeste")

	// whatever tab is requested, the assigned tab is served, unfiltered
	for _, requested := range []string{"", "Todos", "Zona Norte", "Zona Oeste"} {
		scope := p.AuthorizeRead(id, requested)
		if scope.Combined || scope.Filtered || scope.Tab != "Zona Oeste" {
			t.Errorf("assigned user requesting %q got %+v", requested, scope)
		}
	}

	// the registration tab is the one exception
	scope := p.AuthorizeRead(id, "ALTA PDV")
	if scope.Tab != "ALTA PDV" {
		t.Errorf("assigned user requesting the registration tab got %+v", scope)
	}
}

func TestAuthorizeReadListUser(t *testing.T) {
	p := newPolicy()

	scope := p.AuthorizeRead(listUser("101", "102"), "Todos")
	if !scope.Filtered || scope.Combined || scope.Tab != "" {
		t.Errorf("list user got %+v, want filtered default tab", scope)
	}
	if len(scope.AllowedIDs) != 2 {
		t.Errorf("allow-list not carried into scope: %v", scope.AllowedIDs)
	}

	// no grants at all still resolves to a filtered scope, which serves
	// zero rows rather than an error
	scope = p.AuthorizeRead(listUser(), "")
	if !scope.Filtered || len(scope.AllowedIDs) != 0 {
		t.Errorf("grantless user got %+v", scope)
	}
}

func TestAuthorizeWriteAdmin(t *testing.T) {
	p := newPolicy()

	target, err := p.AuthorizeWrite(admin(), "", "105")
	if err != nil || !target.Combined {
		t.Errorf("admin without a named tab got (%+v, %v), want combined scan", target, err)
	}

	target, err = p.AuthorizeWrite(admin(), "Zona Norte", "105")
	if err != nil || target.Tab != "Zona Norte" {
		t.Errorf("admin naming a tab got (%+v, %v)", target, err)
	}
}

func TestAuthorizeWriteSupervisorRestrictedTab(t *testing.T) {
	p := newPolicy()

	_, err := p.AuthorizeWrite(supervisor(), "test", "105")
	if apperr.KindOf(err) != apperr.Forbidden {
		t.Errorf("supervisor writing the restricted tab: err = %v, want Forbidden", err)
	}

	target, err := p.AuthorizeWrite(supervisor(), "", "105")
	if err != nil || !target.Combined {
		t.Errorf("supervisor without a named tab got (%+v, %v)", target, err)
	}
}

func TestAuthorizeWriteAssignedUser(t *testing.T) {
	p := newPolicy()
	id := assignedUser("Zona Oeste")

	// blanket write over the assigned tab, no allow-list involved
	target, err := p.AuthorizeWrite(id, "", "999")
	if err != nil || target.Tab != "Zona Oeste" {
		t.Errorf("assigned user got (%+v, %v)", target, err)
	}

	target, err = p.AuthorizeWrite(id, "zona oeste", "999")
	if err != nil || target.Tab != "Zona Oeste" {
		t.Errorf("tab-name match must be case-insensitive, got (%+v, %v)", target, err)
	}

	_, err = p.AuthorizeWrite(id, "Zona Norte", "999")
	if apperr.KindOf(err) != apperr.Forbidden {
		t.Errorf("assigned user naming another tab: err = %v, want Forbidden", err)
	}
}

func TestAuthorizeWriteListUser(t *testing.T) {
	p := newPolicy()
	id := listUser("101", "102")

	// membership grants the write, but only against the default tab
	target, err := p.AuthorizeWrite(id, "", "101")
	if err != nil || target.Combined || target.Tab != "" {
		t.Errorf("list user writing an allowed ID got (%+v, %v)", target, err)
	}

	// case-insensitive ID comparison
	if _, err := p.AuthorizeWrite(id, "", " 102 "); err != nil {
		t.Errorf("ID match must trim and fold case: %v", err)
	}

	_, err = p.AuthorizeWrite(id, "", "103")
	if apperr.KindOf(err) != apperr.Forbidden {
		t.Errorf("list user writing a foreign ID: err = %v, want Forbidden", err)
	}

	_, err = p.AuthorizeWrite(listUser(), "", "101")
	if apperr.KindOf(err) != apperr.Forbidden {
		t.Errorf("grantless user write: err = %v, want Forbidden", err)
	}
}

func TestPermissionTableAccess(t *testing.T) {
	p := newPolicy()

	if !p.CanReadAllPermissions(admin()) || !p.CanReadAllPermissions(supervisor()) {
		t.Error("admins and supervisors may read the whole permission table")
	}
	if p.CanReadAllPermissions(listUser("101")) {
		t.Error("ordinary users may not read the permission table")
	}

	if !p.CanWritePermissions(admin()) {
		t.Error("admins may write permissions")
	}
	if p.CanWritePermissions(supervisor()) {
		t.Error("supervisors read the table but never write it")
	}
}

func TestCanReadSheet(t *testing.T) {
	p := newPolicy()

	if !p.CanReadSheet(admin(), "test") {
		t.Error("admin may browse the restricted tab")
	}
	if p.CanReadSheet(supervisor(), "Test") {
		t.Error("supervisor may not browse the restricted tab")
	}
	if !p.CanReadSheet(supervisor(), "Zona Sur") {
		t.Error("supervisor may browse ordinary tabs")
	}
	if p.CanReadSheet(listUser("101"), "Zona Sur") {
		t.Error("ordinary users may not browse tabs")
	}
}

func TestEligibleTabs(t *testing.T) {
	p := newPolicy()
	tabs := []string{"Zona Norte", "test", "Zona Sur"}

	got := p.EligibleTabs(supervisor(), tabs)
	if len(got) != 2 || got[0] != "Zona Norte" || got[1] != "Zona Sur" {
		t.Errorf("supervisor eligible tabs = %v", got)
	}

	got = p.EligibleTabs(admin(), tabs)
	if len(got) != 3 {
		t.Errorf("admin eligible tabs = %v, want all", got)
	}
}

func TestFilterRows(t *testing.T) {
	rows := [][]string{
		{"101", "Kiosco A"},
		{"202", "Kiosco B"},
		{"303", "Kiosco C"},
	}

	got := policy.FilterRows(rows, []string{"303", "101"})
	if len(got) != 2 {
		t.Fatalf("FilterRows returned %d rows, want 2", len(got))
	}
	// sheet order is preserved, not allow-list order
	if got[0][0] != "101" || got[1][0] != "303" {
		t.Errorf("FilterRows order = [%s %s]", got[0][0], got[1][0])
	}
}

func TestFilterRowsDuplicateIDs(t *testing.T) {
	rows := [][]string{
		{"101", "first"},
		{"101", "duplicate"},
		{"102", "other"},
	}

	// a worksheet that repeats an ID must not inflate the result past the
	// allow-list size; the first occurrence wins
	got := policy.FilterRows(rows, []string{"101"})
	if len(got) != 1 {
		t.Fatalf("FilterRows returned %d rows, want 1", len(got))
	}
	if got[0][1] != "first" {
		t.Errorf("FilterRows kept %q, want the first occurrence", got[0][1])
	}
}

func TestFilterRowsCaseInsensitive(t *testing.T) {
	rows := [][]string{
		{"ABC-1", "x"},
		{"", "empty id"},
	}

	got := policy.FilterRows(rows, []string{" abc-1 "})
	if len(got) != 1 || got[0][0] != "ABC-1" {
		t.Errorf("FilterRows = %v, want the ABC-1 row", got)
	}
}
