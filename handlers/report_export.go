package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"marcenaria/services"
)

func HandleReportExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		from, to, status := reportFilters(e)

		records := reportQuotes(app, from, to, status)
		names := customerNames(app)

		data := services.ReportExportData{
			PeriodStart: from,
			PeriodEnd:   to,
		}

		var summaries []services.QuoteSummary
		for _, rec := range records {
			summaries = append(summaries, services.QuoteSummary{
				Total:  rec.GetFloat("total"),
				Status: rec.GetString("status"),
			})
			data.Rows = append(data.Rows, services.ReportRow{
				QuoteNumber:  rec.GetInt("quote_number"),
				CustomerName: names[rec.GetString("customer")],
				Status:       rec.GetString("status"),
				CreatedDate:  rec.GetDateTime("created").Time().Format("02/01/2006"),
				Total:        rec.GetFloat("total"),
			})
		}
		data.Stats = services.CalcReportStats(summaries)

		xlsx, err := services.GenerateReportExcel(data)
		if err != nil {
			log.Printf("report_export: could not generate Excel: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Falha ao gerar a planilha")
		}

		filename := fmt.Sprintf("relatorio-orcamentos-%s-a-%s.xlsx", from, to)
		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		_, err = e.Response.Write(xlsx)
		return err
	}
}
