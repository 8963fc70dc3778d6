// Package visibility decides which notes a user sees and how each one is
// labeled. Both concerns are pure functions of (nota, viewer): the same
// stored state must read differently depending on whose queue it currently
// occupies, which avoids per-role status values in the record store.
package visibility

import "fluxo_notas/internal/domain/entities"

// Resolver evaluates inclusion and display rules against the configured set
// of named analysts.
type Resolver struct {
	analistas entities.Analistas
}

func NewResolver(analistas entities.Analistas) *Resolver {
	return &Resolver{analistas: analistas}
}

// Inclui reports whether the note belongs in the viewer's working set.
func (r *Resolver) Inclui(n entities.Nota, viewer entities.User) bool {
	switch viewer.Role {
	case entities.RoleAdminMaster, entities.RoleFiscalComum, entities.RoleFiscalAdmin:
		return true
	case entities.RoleSolicitante:
		return n.CriadaPor(viewer)
	case entities.RoleFinanceiro, entities.RoleFinanceiroMaster:
		// Sharing overrides the status filter: a shared note stays visible
		// even if its status would otherwise exclude it.
		if n.Compartilhada() {
			return true
		}
		switch n.Status {
		case entities.StatusAprovado, entities.StatusLancado,
			entities.StatusFaturado, entities.StatusErroFinanceiro:
			return true
		}
		return false
	default:
		return false
	}
}

// Exibicao resolves the status label and color class the viewer perceives,
// which can diverge from the stored status.
func (r *Resolver) Exibicao(n entities.Nota, viewer entities.User) (entities.NotaStatus, string) {
	label := r.label(n, viewer)
	return label, CorClasse(label)
}

func (r *Resolver) label(n entities.Nota, viewer entities.User) entities.NotaStatus {
	// Errors are never masked, regardless of sharing.
	if n.Status.IsErro() {
		return n.Status
	}

	if n.Compartilhada() && viewer.Role.IsFinanceiro() {
		if viewer.ID != "" && viewer.ID == n.CompartilhadoCom {
			// The designated recipient's action item.
			return entities.StatusPendente
		}
		if !r.analistas.Contem(viewer.ID) && viewer.Role != entities.RoleAdminMaster {
			// The organizational finance view sees it as routed elsewhere.
			return entities.StatusCompartilhado
		}
		// Named analyst or AdminMaster viewing someone else's share falls
		// through to the default mapping.
	}

	// The finance dashboards frame Aprovado as "awaiting my action".
	// AdminMaster is finance-family for the sharing rules above but sees
	// stored statuses verbatim here.
	if n.Status == entities.StatusAprovado &&
		(viewer.Role == entities.RoleFinanceiro || viewer.Role == entities.RoleFinanceiroMaster) {
		return entities.StatusPendente
	}
	return n.Status
}

// CorClasse maps a displayed label to its dashboard color class.
func CorClasse(s entities.NotaStatus) string {
	switch s {
	case entities.StatusPendente:
		return "warning"
	case entities.StatusAnalise:
		return "info"
	case entities.StatusAprovado:
		return "primary"
	case entities.StatusLancado, entities.StatusFaturado:
		return "success"
	case entities.StatusErroFiscal, entities.StatusErroFinanceiro:
		return "danger"
	case entities.StatusCompartilhado:
		return "secondary"
	default:
		return "muted"
	}
}
