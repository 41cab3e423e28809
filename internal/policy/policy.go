// Package policy holds the pure authorization decisions. It knows
// nothing about storage or transport: role plus identifiers in,
// allow/deny out.
package policy

import "github.com/avega-dev/cronogramas/internal/domain/user"

// CanViewAll reports whether a role may list every cronograma.
// Coordinators see all rows, maestros only their own.
func CanViewAll(rol string) bool {
	return rol == user.RoleCoordinador
}

// CanModify reports whether the requester may update or delete a
// cronograma owned by ownerID: the owner itself, or any coordinator.
func CanModify(rol string, requesterID, ownerID int64) bool {
	if requesterID == ownerID {
		return true
	}
	return rol == user.RoleCoordinador
}
