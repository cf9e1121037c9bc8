package services

// MaterialCategory pairs the stored value with its display label.
type MaterialCategory struct {
	Value string
	Label string
}

// MaterialCategories returns the catalog categories as offered in the
// materials modal.
var MaterialCategories = []MaterialCategory{
	{"chapas", "Chapas/Painéis"},
	{"ferragens", "Ferragens"},
	{"acabamentos", "Acabamentos"},
	{"LED", "Iluminação/LED"},
	{"mão de obra", "Mão de Obra"},
}

// MaterialUnits lists the pricing units for catalog entries.
var MaterialUnits = []string{"m2", "un", "ml", "kg", "h"}

// TransactionCategories lists the ledger categories.
var TransactionCategories = []string{
	"Material",
	"Mão de Obra",
	"Pagamento Cliente",
	"Aluguel",
	"Energia/Internet",
	"Ferramentas",
	"Outros",
}

// CustomerOrigins lists where a lead came from.
var CustomerOrigins = []string{"WhatsApp", "Instagram", "Indicação", "Site", "Outro"}

// StandardProjectCategories lists the catalog template categories.
var StandardProjectCategories = []string{
	"cozinha", "quarto", "banheiro", "sala", "escritório", "outro",
}

// InteractionUrgencies lists the follow-up urgency levels.
var InteractionUrgencies = []string{"Baixa", "Média", "Alta"}

// MaterialCategoryLabel resolves a stored category value to its label,
// falling back to the raw value for unknown categories.
func MaterialCategoryLabel(value string) string {
	for _, c := range MaterialCategories {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}
