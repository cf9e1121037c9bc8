package services

// Quote statuses as the editor dropdown offers them.
const (
	QuoteStatusDraft    = "Rascunho"
	QuoteStatusSent     = "Enviado"
	QuoteStatusApproved = "Aprovado"
	QuoteStatusRejected = "Recusado"
)

// QuoteStatuses lists every quote status in display order.
var QuoteStatuses = []string{
	QuoteStatusDraft,
	QuoteStatusSent,
	QuoteStatusApproved,
	QuoteStatusRejected,
}

// Service order statuses, strictly ordered for the progress stepper.
const (
	OSStatusAwaitingMaterials = "Aguardando material"
	OSStatusInProduction      = "Em produção"
	OSStatusReady             = "Pronto"
	OSStatusInstalled         = "Instalado"
)

// OSStatuses lists the service order statuses in production order.
var OSStatuses = []string{
	OSStatusAwaitingMaterials,
	OSStatusInProduction,
	OSStatusReady,
	OSStatusInstalled,
}

// Customer statuses.
var CustomerStatuses = []string{"Lead", "Em negociação", "Ativo"}

// Technical visit statuses.
var VisitStatuses = []string{"Agendada", "Realizada", "Cancelada"}

// Project statuses (value → pt-BR label kept in the templates).
var ProjectStatuses = []string{
	"draft", "proposal", "approved", "in_progress", "completed", "cancelled",
}

// OSStatusIndex returns the position of a service order status in the
// stepper, or -1 for an unknown value.
func OSStatusIndex(status string) int {
	for i, s := range OSStatuses {
		if s == status {
			return i
		}
	}
	return -1
}

// ValidQuoteStatus reports whether s is one of the four quote statuses.
func ValidQuoteStatus(s string) bool {
	for _, v := range QuoteStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ValidOSStatus reports whether s is one of the four service order statuses.
func ValidOSStatus(s string) bool {
	for _, v := range OSStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// CanTransitionQuote is the quote status transition table. Every move
// between known statuses is currently allowed; tightening the rules later
// only means editing this function.
func CanTransitionQuote(from, to string) bool {
	return ValidQuoteStatus(from) && ValidQuoteStatus(to)
}

// CanTransitionOS is the service order transition table. Moves are allowed
// in both directions along the stepper.
func CanTransitionOS(from, to string) bool {
	return ValidOSStatus(from) && ValidOSStatus(to)
}
