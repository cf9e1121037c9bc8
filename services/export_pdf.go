package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotePDF creates the proposal PDF for a quote using maroto/v2.
// It returns the raw PDF bytes or an error.
func GenerateQuotePDF(data QuoteExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, data)
	addItemsTableHeader(m)
	for _, item := range data.Items {
		addItemRow(m, item)
	}
	addQuoteSummary(m, data)
	addQuoteConditions(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addQuoteHeader(m core.Maroto, data QuoteExportData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Orçamento #%d", data.QuoteNumber), props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Cliente: %s", data.CustomerName), props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Data: %s", data.CreatedDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	if data.CustomerPhone != "" || data.CustomerAddress != "" {
		m.AddRows(
			row.New(6).Add(
				col.New(6).Add(
					text.New(data.CustomerPhone, props.Text{
						Size:  8,
						Align: align.Left,
						Color: &props.Color{Red: 120, Green: 120, Blue: 120},
					}),
				),
				col.New(6).Add(
					text.New(data.CustomerAddress, props.Text{
						Size:  8,
						Align: align.Right,
						Color: &props.Color{Red: 120, Green: 120, Blue: 120},
					}),
				),
			),
		)
	}

	m.AddRows(row.New(4))
}

func addItemsTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(text.New("Descrição", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Qtd", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Unitário", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Subtotal", headerText)).WithStyle(&headerCell),
		),
	)
}

func addItemRow(m core.Maroto, item QuoteExportItem) {
	cellText := props.Text{Size: 8, Align: align.Center}
	cellTextLeft := props.Text{Size: 8, Align: align.Left}
	cellTextRight := props.Text{Size: 8, Align: align.Right}

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New(item.Description, cellTextLeft)),
			col.New(2).Add(text.New(fmt.Sprintf("%.2f", item.Quantity), cellText)),
			col.New(2).Add(text.New(FormatBRL(item.UnitPrice), cellTextRight)),
			col.New(2).Add(text.New(FormatBRL(item.Subtotal), cellTextRight)),
		),
	)
}

func addQuoteSummary(m core.Maroto, data QuoteExportData) {
	m.AddRows(row.New(4))

	labelText := props.Text{Size: 9, Align: align.Right}
	valueText := props.Text{Size: 9, Align: align.Right}

	m.AddRows(
		row.New(6).Add(
			col.New(8).Add(text.New("Subtotal", labelText)),
			col.New(4).Add(text.New(FormatBRL(data.Subtotal), valueText)),
		),
	)

	discountLabel := "Desconto"
	if data.DiscountType == DiscountPercent {
		discountLabel = fmt.Sprintf("Desconto (%.0f%%)", data.Discount)
	}
	m.AddRows(
		row.New(6).Add(
			col.New(8).Add(text.New(discountLabel, labelText)),
			col.New(4).Add(text.New(formatDiscount(data), valueText)),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(text.New("Valor Final", props.Text{
				Size:  11,
				Style: fontstyle.Bold,
				Align: align.Right,
			})),
			col.New(4).Add(text.New(FormatBRL(data.Total), props.Text{
				Size:  11,
				Style: fontstyle.Bold,
				Align: align.Right,
			})),
		),
	)
}

func formatDiscount(data QuoteExportData) string {
	if data.DiscountType == DiscountPercent {
		return FormatBRL(data.Subtotal - data.Total)
	}
	return FormatBRL(data.Discount)
}

func addQuoteConditions(m core.Maroto, data QuoteExportData) {
	if data.PaymentConditions == "" {
		return
	}

	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New("Condições de Pagamento", props.Text{
					Size:  9,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
		row.New(10).Add(
			col.New(12).Add(
				text.New(data.PaymentConditions, props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)
}
