package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type materialDef struct {
	name      string
	category  string
	unit      string
	costPrice float64
}

// starterMaterials is the catalog a fresh workshop starts from. Prices are
// placeholders the owner adjusts to local supplier quotes.
var starterMaterials = []materialDef{
	{"MDF Branco TX 15mm", "chapas", "m2", 145.00},
	{"MDF Branco TX 18mm", "chapas", "m2", 165.00},
	{"MDF Amadeirado 18mm", "chapas", "m2", 210.00},
	{"Fita de Borda 22mm", "acabamentos", "ml", 2.50},
	{"Dobradiça 35mm com amortecedor", "ferragens", "un", 12.90},
	{"Corrediça telescópica 450mm (par)", "ferragens", "un", 28.00},
	{"Puxador perfil alumínio", "ferragens", "ml", 35.00},
	{"Fita LED 12V (metro)", "LED", "ml", 18.00},
	{"Fonte LED 12V 5A", "LED", "un", 45.00},
	{"Montagem e instalação", "mão de obra", "h", 80.00},
}

// Seed inserts the starter materials catalog when the collection is empty.
// It never overwrites records the owner already edited.
func Seed(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("materials")
	if err != nil {
		return fmt.Errorf("materials collection not found: %w", err)
	}

	existing, err := app.FindAllRecords(col)
	if err == nil && len(existing) > 0 {
		return nil
	}

	for _, def := range starterMaterials {
		record := core.NewRecord(col)
		record.Set("name", def.name)
		record.Set("category", def.category)
		record.Set("unit", def.unit)
		record.Set("cost_price", def.costPrice)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed material %q: %w", def.name, err)
		}
	}
	return nil
}
