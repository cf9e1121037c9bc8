// Package collections creates and seeds the application's PocketBase
// collections on startup.
package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures every collection the app uses.
// Creation order matters: relation fields need the target collection id.
func Setup(app *pocketbase.PocketBase) {
	usersID := usersCollectionID(app)

	customers := ensureCollection(app, "customers", func(c *core.Collection) {
		addOwnerField(c, usersID)
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.EmailField{Name: "email"})
		c.Fields.Add(&core.TextField{Name: "phone"})
		c.Fields.Add(&core.TextField{Name: "document"})
		c.Fields.Add(&core.TextField{Name: "address"})
		c.Fields.Add(&core.SelectField{
			Name:      "origin",
			Values:    []string{"WhatsApp", "Instagram", "Indicação", "Site", "Outro"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Values:    []string{"Lead", "Em negociação", "Ativo"},
			MaxSelect: 1,
		})
		addTimestamps(c)
	})

	materials := ensureCollection(app, "materials", func(c *core.Collection) {
		addOwnerField(c, usersID)
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "category",
			Required:  true,
			Values:    []string{"chapas", "ferragens", "acabamentos", "LED", "mão de obra"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "unit",
			Required:  true,
			Values:    []string{"m2", "un", "ml", "kg", "h"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "cost_price", Required: true})
		c.Fields.Add(&core.FileField{Name: "image", MaxSelect: 1, MaxSize: 5242880})
		addTimestamps(c)
	})

	quotes := ensureCollection(app, "quotes", func(c *core.Collection) {
		addOwnerField(c, usersID)
		c.Fields.Add(&core.RelationField{
			Name:         "customer",
			Required:     true,
			CollectionId: customers.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.NumberField{Name: "quote_number", Required: true, OnlyInt: true})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"Rascunho", "Enviado", "Aprovado", "Recusado"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "discount"})
		c.Fields.Add(&core.SelectField{
			Name:      "discount_type",
			Values:    []string{"R$", "%"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "payment_conditions"})
		c.Fields.Add(&core.TextField{Name: "notes"})
		c.Fields.Add(&core.NumberField{Name: "total"})
		c.Fields.Add(&core.DateField{Name: "approved_at"})
		addTimestamps(c)
	})

	ensureCollection(app, "quote_items", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "quote",
			Required:      true,
			CollectionId:  quotes.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "material",
			CollectionId: materials.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "description"})
		c.Fields.Add(&core.NumberField{Name: "quantity", Required: true})
		c.Fields.Add(&core.NumberField{Name: "unit_price"})
		c.Fields.Add(&core.NumberField{Name: "subtotal"})
		addTimestamps(c)
	})

	projects := ensureCollection(app, "projects", func(c *core.Collection) {
		addOwnerField(c, usersID)
		c.Fields.Add(&core.RelationField{
			Name:         "customer",
			CollectionId: customers.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "source_quote",
			CollectionId: quotes.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "title", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Values:    []string{"draft", "proposal", "approved", "in_progress", "completed", "cancelled"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "description"})
		c.Fields.Add(&core.NumberField{Name: "budget_estimated"})
		c.Fields.Add(&core.DateField{Name: "start_date"})
		c.Fields.Add(&core.DateField{Name: "deadline"})
		addTimestamps(c)
		// One derived project per approved quote; NULLs stay exempt so
		// manually created projects are unlimited.
		c.AddIndex("idx_projects_source_quote", true, "source_quote", "source_quote != ''")
	})

	ensureCollection(app, "service_orders", func(c *core.Collection) {
		addOwnerField(c, usersID)
		c.Fields.Add(&core.RelationField{
			Name:         "quote",
			Required:     true,
			CollectionId: quotes.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.NumberField{Name: "os_number", Required: true, OnlyInt: true})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"Aguardando material", "Em produção", "Pronto", "Instalado"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "responsible"})
		c.Fields.Add(&core.DateField{Name: "start_date"})
		c.Fields.Add(&core.DateField{Name: "end_date"})
		c.Fields.Add(&core.TextField{Name: "technical_notes"})
		c.Fields.Add(&core.FileField{Name: "photos", MaxSelect: 20, MaxSize: 5242880})
		addTimestamps(c)
		c.AddIndex("idx_service_orders_quote", true, "quote", "")
	})

	ensureCollection(app, "technical_visits", func(c *core.Collection) {
		addOwnerField(c, usersID)
		c.Fields.Add(&core.RelationField{
			Name:         "customer",
			Required:     true,
			CollectionId: customers.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.DateField{Name: "scheduled_date", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"Agendada", "Realizada", "Cancelada"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "notes"})
		c.Fields.Add(&core.TextField{Name: "measure_height"})
		c.Fields.Add(&core.TextField{Name: "measure_width"})
		c.Fields.Add(&core.TextField{Name: "measure_depth"})
		c.Fields.Add(&core.TextField{Name: "color"})
		c.Fields.Add(&core.TextField{Name: "hardware_type"})
		c.Fields.Add(&core.BoolField{Name: "led"})
		c.Fields.Add(&core.TextField{Name: "led_color"})
		c.Fields.Add(&core.TextField{Name: "hinges_type"})
		c.Fields.Add(&core.TextField{Name: "slides_type"})
		c.Fields.Add(&core.TextField{Name: "mdf_thickness"})
		c.Fields.Add(&core.FileField{Name: "photos", MaxSelect: 20, MaxSize: 5242880})
		addTimestamps(c)
	})

	ensureCollection(app, "transactions", func(c *core.Collection) {
		addOwnerField(c, usersID)
		c.Fields.Add(&core.SelectField{
			Name:      "type",
			Required:  true,
			Values:    []string{"income", "expense"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:     "category",
			Required: true,
			Values: []string{
				"Material", "Mão de Obra", "Pagamento Cliente",
				"Aluguel", "Energia/Internet", "Ferramentas", "Outros",
			},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "description", Required: true})
		c.Fields.Add(&core.NumberField{Name: "amount", Required: true})
		c.Fields.Add(&core.DateField{Name: "date", Required: true})
		c.Fields.Add(&core.RelationField{
			Name:         "project",
			CollectionId: projects.Id,
			MaxSelect:    1,
		})
		addTimestamps(c)
	})

	ensureCollection(app, "standard_projects", func(c *core.Collection) {
		addOwnerField(c, usersID)
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "category",
			Required:  true,
			Values:    []string{"cozinha", "quarto", "banheiro", "sala", "escritório", "outro"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "description"})
		c.Fields.Add(&core.NumberField{Name: "base_price"})
		c.Fields.Add(&core.TextField{Name: "execution_time"})
		c.Fields.Add(&core.FileField{Name: "images", MaxSelect: 10, MaxSize: 5242880})
		addTimestamps(c)
	})

	ensureCollection(app, "fixed_costs", func(c *core.Collection) {
		addOwnerField(c, usersID)
		c.Fields.Add(&core.NumberField{Name: "monthly_rent"})
		c.Fields.Add(&core.NumberField{Name: "monthly_energy"})
		c.Fields.Add(&core.NumberField{Name: "monthly_internet"})
		c.Fields.Add(&core.NumberField{Name: "labor_cost_per_hour"})
		c.Fields.Add(&core.NumberField{Name: "profit_margin_percent"})
		c.Fields.Add(&core.NumberField{Name: "taxes_percent"})
		addTimestamps(c)
		c.AddIndex("idx_fixed_costs_owner", true, "owner", "owner != ''")
	})

	ensureCollection(app, "interactions", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "customer",
			Required:      true,
			CollectionId:  customers.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "type", Required: true})
		c.Fields.Add(&core.TextField{Name: "channel"})
		c.Fields.Add(&core.TextField{Name: "description", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "urgency",
			Values:    []string{"Baixa", "Média", "Alta"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "timeline"})
		addTimestamps(c)
	})
}

// usersCollectionID resolves the built-in auth collection used for owner
// stamping. It always exists on a bootstrapped app.
func usersCollectionID(app *pocketbase.PocketBase) string {
	users, err := app.FindCollectionByNameOrId("users")
	if err != nil {
		log.Printf("users collection not found, owner fields will be unbound: %v", err)
		return ""
	}
	return users.Id
}

func addOwnerField(c *core.Collection, usersID string) {
	if usersID == "" {
		return
	}
	c.Fields.Add(&core.RelationField{
		Name:         "owner",
		CollectionId: usersID,
		MaxSelect:    1,
	})
}

func addTimestamps(c *core.Collection) {
	c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
