package entities

import "strings"

// Role is the closed set of actor roles. Role assignment is owned by the
// identity collaborator; this core never mutates it.

type Role string

const (
	RoleSolicitante      Role = "Solicitante"
	RoleFiscalComum      Role = "FiscalComum"
	RoleFiscalAdmin      Role = "FiscalAdmin"
	RoleFinanceiro       Role = "Financeiro"
	RoleFinanceiroMaster Role = "FinanceiroMaster"
	RoleAdminMaster      Role = "AdminMaster"
)

// NormalizeRole maps an externally supplied role string onto the closed enum,
// defaulting unknown values to Solicitante (least privilege).
func NormalizeRole(role string) Role {
	switch Role(role) {
	case RoleSolicitante, RoleFiscalComum, RoleFiscalAdmin,
		RoleFinanceiro, RoleFinanceiroMaster, RoleAdminMaster:
		return Role(role)
	default:
		return RoleSolicitante
	}
}

// IsFiscal reports whether the role belongs to the compliance review family.
func (r Role) IsFiscal() bool {
	return r == RoleFiscalComum || r == RoleFiscalAdmin
}

// IsFinanceiro reports whether the role belongs to the finance family for
// queue/display purposes. AdminMaster sees the finance dashboards too.
func (r Role) IsFinanceiro() bool {
	return r == RoleFinanceiro || r == RoleFinanceiroMaster || r == RoleAdminMaster
}

// User is an actor as given by the identity collaborator.
type User struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email,omitempty"`
	Role  Role   `json:"role"`
}

// Analistas is the configured set of named analyst ids: distinguished finance
// identities that receive shared notes and are exempt from the
// "Compartilhado" masking. The source system hard-coded two identities; here
// the set comes from configuration.
type Analistas map[string]struct{}

// ParseAnalistas builds the set from a comma-separated id list.
func ParseAnalistas(csv string) Analistas {
	a := Analistas{}
	for _, id := range strings.Split(csv, ",") {
		if id = strings.TrimSpace(id); id != "" {
			a[id] = struct{}{}
		}
	}
	return a
}

// Contem reports whether the user id is a named analyst.
func (a Analistas) Contem(userID string) bool {
	_, ok := a[userID]
	return ok
}
