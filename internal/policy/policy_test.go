package policy_test

import (
	"testing"

	"github.com/avega-dev/cronogramas/internal/policy"
)

func TestCanViewAll(t *testing.T) {
	if !policy.CanViewAll("coordinador") {
		t.Fatalf("coordinador should view all")
	}

	if policy.CanViewAll("maestro") {
		t.Fatalf("maestro should not view all")
	}
}

func TestCanModify(t *testing.T) {
	tests := []struct {
		name        string
		rol         string
		requesterID int64
		ownerID     int64
		want        bool
	}{
		{"owner_maestro", "maestro", 1, 1, true},
		{"other_maestro", "maestro", 1, 2, false},
		{"coordinador_any", "coordinador", 3, 2, true},
		{"coordinador_own", "coordinador", 3, 3, true},
		{"unknown_role_not_owner", "admin", 1, 2, false},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			got := policy.CanModify(tt.rol, tt.requesterID, tt.ownerID)

			if got != tt.want {
				t.Fatalf("CanModify(%q,%d,%d) = %v, want %v", tt.rol, tt.requesterID, tt.ownerID, got, tt.want)
			}
		})
	}
}
