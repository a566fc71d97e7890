package goaltracking

import (
	"github.com/jmfarina/sales-ops-api/internal/domain"
)

// CanAccess es la política de alcance de snapshots, única para lectura y
// para disparar un re-sync. Se evalúa en cada request: la pertenencia a un
// equipo puede cambiar entre requests y la decisión no se cachea.
//
//   - Uno mismo: siempre.
//   - Admin: cualquier usuario.
//   - Líder de equipo: solo con equipo propio asignado e igual al del
//     objetivo. Un líder sin equipo no alcanza a nadie más que a sí mismo.
//   - El resto: prohibido.
func CanAccess(viewer, target domain.Actor) bool {
	if viewer.ID == target.ID {
		return true
	}

	if viewer.RoleID == domain.RoleAdmin {
		return true
	}

	if viewer.RoleID == domain.RoleTeamLeader {
		if viewer.Team == nil || target.Team == nil {
			return false
		}
		return *viewer.Team == *target.Team
	}

	return false
}
