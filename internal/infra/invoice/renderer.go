package invoice

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"shoppos/internal/domain/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const dateLayout = "02 Jan 2006, 15:04"

// PDFRenderer は注文+店舗から請求書PDFを作る。
// 作成日時は注文日時に固定するので、同じ入力なら同じバイト列になる。
type PDFRenderer struct {
	printer *message.Printer
}

func NewPDFRenderer(locale string) *PDFRenderer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &PDFRenderer{printer: message.NewPrinter(tag)}
}

// Rs. 1,234.50 の形（小数2桁）。floatを通さずdecimalの文字列から作る
func (r *PDFRenderer) Money(d decimal.Decimal) string {
	d = d.Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	whole, frac, _ := strings.Cut(d.Abs().StringFixed(2), ".")

	// 桁区切りだけロケールに任せる
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return "Rs. " + sign + whole + "." + frac
	}
	return "Rs. " + sign + r.printer.Sprintf("%d", n) + "." + frac
}

func (r *PDFRenderer) Render(order model.Order, shop model.Shop) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(order.Date)
	pdf.SetModificationDate(order.Date)
	pdf.SetCatalogSort(true)
	pdf.SetTitle("Invoice "+order.ID, false)
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// 店舗ヘッダ
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, tr(shop.Name), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(shop.Address), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 8, "INVOICE", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	meta := [][2]string{
		{"Invoice #", order.ID},
		{"Customer", order.CustomerName},
		{"Date", order.Date.Format(dateLayout)},
		{"Billed by", order.BillerName},
	}
	for _, m := range meta {
		pdf.CellFormat(30, 6, m[0]+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, tr(m[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// 明細
	widths := []float64{80, 25, 37.5, 37.5}
	headers := []string{"Item", "Quantity", "Unit Price", "Total"}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	for i, h := range headers {
		align := "R"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(widths[i], 8, h, "B", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, it := range order.Items {
		pdf.CellFormat(widths[0], 7, tr(it.NameSnapshot), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, fmt.Sprintf("%d", it.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 7, r.Money(it.PriceSnapshot), "", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, r.Money(it.LineTotal()), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(widths[0]+widths[1]+widths[2], 8, "Grand Total", "T", 0, "R", false, 0, "")
	pdf.CellFormat(widths[3], 8, r.Money(order.TotalRevenue), "T", 1, "R", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, "Thank you for your business!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice %s: %w", order.ID, err)
	}
	return buf.Bytes(), nil
}
