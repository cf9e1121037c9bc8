package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"marcenaria/collections"
	"marcenaria/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed the starter catalog on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		se.Router.BindFunc(handlers.SessionMiddleware(app))

		// ── Dashboard ────────────────────────────────────────────
		se.Router.GET("/", handlers.HandleDashboard(app))

		// ── Customers and interactions ───────────────────────────
		se.Router.GET("/customers", handlers.HandleCustomerList(app))
		se.Router.GET("/customers/new", handlers.HandleCustomerCreate(app))
		se.Router.POST("/customers", handlers.HandleCustomerSave(app))
		se.Router.GET("/customers/{id}/edit", handlers.HandleCustomerEdit(app))
		se.Router.POST("/customers/{id}/save", handlers.HandleCustomerUpdate(app))
		se.Router.DELETE("/customers/{id}", handlers.HandleCustomerDelete(app))
		se.Router.POST("/customers/{id}/interactions", handlers.HandleInteractionSave(app))
		se.Router.GET("/customers/{id}", handlers.HandleCustomerView(app))

		// ── Technical visits ─────────────────────────────────────
		se.Router.GET("/visits", handlers.HandleVisitList(app))
		se.Router.GET("/visits/new", handlers.HandleVisitCreate(app))
		se.Router.GET("/visits/new/{customerId}", handlers.HandleVisitCreate(app))
		se.Router.POST("/visits", handlers.HandleVisitSave(app))
		se.Router.GET("/visits/{id}/edit", handlers.HandleVisitEdit(app))
		se.Router.POST("/visits/{id}/save", handlers.HandleVisitUpdate(app))
		se.Router.DELETE("/visits/{id}", handlers.HandleVisitDelete(app))

		// ── Materials catalog ────────────────────────────────────
		se.Router.GET("/finance/materials", handlers.HandleMaterialList(app))
		se.Router.POST("/finance/materials", handlers.HandleMaterialSave(app))
		se.Router.POST("/finance/materials/{id}/save", handlers.HandleMaterialSave(app))
		se.Router.DELETE("/finance/materials/{id}", handlers.HandleMaterialDelete(app))

		// ── Standard projects catalog ────────────────────────────
		se.Router.GET("/catalog", handlers.HandleStandardProjectList(app))
		se.Router.POST("/catalog", handlers.HandleStandardProjectSave(app))
		se.Router.POST("/catalog/{id}/save", handlers.HandleStandardProjectSave(app))
		se.Router.DELETE("/catalog/{id}", handlers.HandleStandardProjectDelete(app))

		// ── Quotes ───────────────────────────────────────────────
		se.Router.GET("/finance/quotes", handlers.HandleQuoteList(app))
		se.Router.GET("/finance/quotes/new", handlers.HandleQuoteCreate(app))
		se.Router.POST("/finance/quotes", handlers.HandleQuoteSave(app))
		se.Router.GET("/finance/quotes/{id}/edit", handlers.HandleQuoteEdit(app))
		se.Router.POST("/finance/quotes/{id}/save", handlers.HandleQuoteSave(app))
		se.Router.GET("/finance/quotes/{id}/print", handlers.HandleQuotePrint(app))
		se.Router.GET("/finance/quotes/{id}/export/pdf", handlers.HandleQuoteExportPDF(app))
		se.Router.DELETE("/finance/quotes/{id}", handlers.HandleQuoteDelete(app))

		// ── Service orders ───────────────────────────────────────
		se.Router.GET("/finance/os", handlers.HandleOSList(app))
		se.Router.POST("/finance/os/{id}/save", handlers.HandleOSSave(app))
		se.Router.POST("/finance/os/{id}/photos", handlers.HandleOSPhotoAdd(app))
		se.Router.DELETE("/finance/os/{id}/photos/{index}", handlers.HandleOSPhotoRemove(app))
		se.Router.GET("/finance/os/{id}", handlers.HandleOSView(app))

		// ── Projects ─────────────────────────────────────────────
		se.Router.GET("/projects", handlers.HandleProjectList(app))
		se.Router.GET("/projects/new", handlers.HandleProjectCreate(app))
		se.Router.POST("/projects", handlers.HandleProjectSave(app))
		se.Router.DELETE("/projects/{id}", handlers.HandleProjectDelete(app))

		// ── Finance ledger and workshop costs ────────────────────
		se.Router.GET("/finance", handlers.HandleTransactionList(app))
		se.Router.POST("/finance/transactions", handlers.HandleTransactionSave(app))
		se.Router.DELETE("/finance/transactions/{id}", handlers.HandleTransactionDelete(app))
		se.Router.GET("/finance/costs", handlers.HandleFixedCosts(app))
		se.Router.POST("/finance/costs", handlers.HandleFixedCostsSave(app))

		// ── Reports ──────────────────────────────────────────────
		se.Router.GET("/reports", handlers.HandleReport(app))
		se.Router.GET("/reports/export", handlers.HandleReportExportExcel(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
