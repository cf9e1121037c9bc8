package services

import "testing"

func TestOSStatusIndex(t *testing.T) {
	tests := []struct {
		status string
		want   int
	}{
		{OSStatusAwaitingMaterials, 0},
		{OSStatusInProduction, 1},
		{OSStatusReady, 2},
		{OSStatusInstalled, 3},
		{"Cancelada", -1},
		{"", -1},
	}

	for _, tt := range tests {
		if got := OSStatusIndex(tt.status); got != tt.want {
			t.Errorf("OSStatusIndex(%q) = %d, want %d", tt.status, got, tt.want)
		}
	}
}

func TestValidQuoteStatus(t *testing.T) {
	for _, status := range QuoteStatuses {
		if !ValidQuoteStatus(status) {
			t.Errorf("expected %q to be a valid quote status", status)
		}
	}
	if ValidQuoteStatus("Pendente") {
		t.Error("expected unknown status to be invalid")
	}
	if ValidQuoteStatus("") {
		t.Error("expected empty status to be invalid")
	}
}

func TestCanTransitionQuote(t *testing.T) {
	// The table currently allows every move between known statuses,
	// in both directions.
	for _, from := range QuoteStatuses {
		for _, to := range QuoteStatuses {
			if !CanTransitionQuote(from, to) {
				t.Errorf("expected transition %q -> %q to be allowed", from, to)
			}
		}
	}
	if CanTransitionQuote(QuoteStatusDraft, "Arquivado") {
		t.Error("expected transition to unknown status to be rejected")
	}
	if CanTransitionQuote("Arquivado", QuoteStatusDraft) {
		t.Error("expected transition from unknown status to be rejected")
	}
}

func TestCanTransitionOS(t *testing.T) {
	if !CanTransitionOS(OSStatusInstalled, OSStatusAwaitingMaterials) {
		t.Error("expected backwards move along the stepper to be allowed")
	}
	if CanTransitionOS(OSStatusReady, "Entregue") {
		t.Error("expected transition to unknown status to be rejected")
	}
}
