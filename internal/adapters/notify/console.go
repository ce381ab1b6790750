package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/alejandrodnm/dealsim/internal/domain"
)

// Console implementa ports.Presenter.
type Console struct {
	out   io.Writer
	table bool
}

// NewConsole crea un presentador que escribe a stdout.
func NewConsole(table bool) *Console {
	return &Console{out: os.Stdout, table: table}
}

// NewConsoleWriter crea un presentador para tests.
func NewConsoleWriter(w io.Writer, table bool) *Console {
	return &Console{out: w, table: table}
}

// ShowScenario imprime la ficha del escenario generado.
func (c *Console) ShowScenario(_ context.Context, sc domain.Scenario) error {
	p := sc.Property
	f := sc.Financials

	fmt.Fprintf(c.out, "\n=== %s ===\n", sc.Title)
	fmt.Fprintf(c.out, "%s — %d bed / %d bath, %d sqft (%d)\n",
		p.Address, p.Bedrooms, p.Bathrooms, p.SqFt, p.YearBuilt)

	if !c.table {
		fmt.Fprintf(c.out, "FMV $%.0f | owed $%.0f | payment $%.0f/mo | equity $%.0f (LTV %.1f%%)\n",
			p.FMV, p.OwedAmount, p.MonthlyPayment, f.Equity, f.LTV)
		fmt.Fprintf(c.out, "Seller: %s (%d) — flexibility %s\n", sc.Seller.Name, sc.Seller.Age, sc.Seller.Flexibility)
		return nil
	}

	t := tablewriter.NewWriter(c.out)
	t.Header("Field", "Value")
	t.Append("FMV", money(p.FMV))
	t.Append("Owed", money(p.OwedAmount))
	t.Append("Monthly payment", money(p.MonthlyPayment))
	t.Append("Market rent", money(p.RentalIncome))
	t.Append("Equity", money(f.Equity))
	t.Append("LTV", fmt.Sprintf("%.1f%%", f.LTV))
	t.Append("Condition", string(p.Condition))
	t.Append("Repairs", fmt.Sprintf("%s (%s)", money(p.RepairCosts), p.RepairCategory))
	if f.ArrearsMonths > 0 {
		t.Append("Arrears", fmt.Sprintf("%s (%d months)", money(f.ArrearsAmount), f.ArrearsMonths))
	}
	if f.MonthsOnMarket > 0 {
		t.Append("Months on market", fmt.Sprintf("%d", f.MonthsOnMarket))
	}
	t.Append("Seller", fmt.Sprintf("%s (%d), flexibility %s", sc.Seller.Name, sc.Seller.Age, sc.Seller.Flexibility))
	if len(sc.Seller.AdditionalAssets) > 0 {
		t.Append("Tradeable assets", strings.Join(sc.Seller.AdditionalAssets, "; "))
	}
	t.Render()
	return nil
}

// ShowConversation imprime un intercambio pregunta/respuesta con el
// vendedor.
func (c *Console) ShowConversation(_ context.Context, prompt, response string) error {
	fmt.Fprintf(c.out, "\n> %s\n  %s\n", prompt, response)
	return nil
}

// ShowDeal imprime la estructura activa, el agregado y los documentos.
func (c *Console) ShowDeal(_ context.Context, techniques []domain.Technique, total domain.TotalStructure, docs []domain.Document) error {
	names := make([]string, len(techniques))
	for i, tech := range techniques {
		names[i] = string(tech)
	}
	fmt.Fprintf(c.out, "\nDeal structure: %s\n", strings.Join(names, " + "))

	t := tablewriter.NewWriter(c.out)
	t.Header("Metric", "Amount")
	t.Append("Purchase price", money(total.PurchasePrice))
	t.Append("Total down payment", money(total.TotalDownPayment))
	t.Append("Buyer pays monthly", money(total.BuyerMonthlyPayment))
	t.Append("Seller receives monthly", money(total.SellerMonthlyIncome))
	t.Append("Your monthly profit", money(total.UserMonthlyProfit))
	t.Render()

	if len(docs) == 0 {
		return nil
	}
	dt := tablewriter.NewWriter(c.out)
	dt.Header("Document", "Status")
	for _, d := range docs {
		dt.Append(d.Name, string(d.Status))
	}
	dt.Render()
	return nil
}

// ShowAnalysis imprime métricas, DISREET y clasificación de deuda.
func (c *Console) ShowAnalysis(_ context.Context, m domain.CalculatedMetrics, dis domain.DISREETResult, debt domain.DebtAnalysis) error {
	fmt.Fprintf(c.out, "\n--- Financial analysis ---\n")

	t := tablewriter.NewWriter(c.out)
	t.Header("Metric", "Value")
	t.Append("LTV", fmt.Sprintf("%.1f%%", m.LTV))
	t.Append("Equity", money(m.Equity))
	t.Append("Monthly cashflow", money(m.MonthlyCashflow))
	t.Append("Annual cashflow", money(m.AnnualCashflow))
	t.Append("Total investment", money(m.TotalInvestment))
	t.Append("ROI", fmt.Sprintf("%.1f%%", m.ROI))
	t.Render()

	dt := tablewriter.NewWriter(c.out)
	dt.Header("Profit component", "Amount")
	dt.Append("Discount at purchase", money(dis.Discount))
	dt.Append("Rent cashflow", money(dis.RentCashflow))
	dt.Append("Market appreciation", money(dis.MarketAppreciation))
	dt.Append("Loan paydown", money(dis.LoanPaydown))
	dt.Append("Tax depreciation", money(dis.TaxDepreciation))
	dt.Append("Total profit", money(dis.TotalProfit))
	dt.Append("Annualized return", fmt.Sprintf("%.1f%%", dis.AnnualizedReturn))
	dt.Render()

	fmt.Fprintf(c.out, "Debt: %s — good %s / bad %s (coverage %.2f)\n",
		strings.ToUpper(string(debt.Classification)),
		money(debt.GoodDebt), money(debt.BadDebt), debt.DebtServiceCoverage)
	for _, r := range debt.Reasoning {
		fmt.Fprintf(c.out, "  • %s\n", r)
	}
	return nil
}

// ShowLedger imprime el estado post-closing y el ledger de pagos.
func (c *Console) ShowLedger(_ context.Context, prop domain.PostClosingProperty, status domain.BuyerStatus, payments []domain.PaymentRecord) error {
	fmt.Fprintf(c.out, "\n%s — month %d, buyer %s\n", prop.Address, prop.MonthsOwned, status)
	fmt.Fprintf(c.out, "Value %s | balance %s | equity %s\n",
		money(prop.CurrentValue), money(prop.LoanBalance), money(prop.Equity()))

	if len(payments) == 0 {
		return nil
	}
	t := tablewriter.NewWriter(c.out)
	t.Header("Month", "Amount", "Received", "Days late", "Penalty")
	for _, p := range payments {
		received := "yes"
		if !p.Received {
			received = "MISSED"
		}
		late := "-"
		if p.DaysLate > 0 {
			late = fmt.Sprintf("%d", p.DaysLate)
		}
		penalty := "-"
		if p.Penalty > 0 {
			penalty = money(p.Penalty)
		}
		t.Append(fmt.Sprintf("%d", p.Month), money(p.Amount), received, late, penalty)
	}
	t.Render()
	return nil
}

// ShowOffers imprime las ofertas de refinanciación y las vías de salida.
func (c *Console) ShowOffers(_ context.Context, refi []domain.RefinancingOffer, sales []domain.SaleOption) error {
	if len(refi) > 0 {
		fmt.Fprintf(c.out, "\n[%s] Refinancing offers\n", time.Now().Format("15:04:05"))
		t := tablewriter.NewWriter(c.out)
		t.Header("Lender", "Loan", "Rate", "Payment", "Cash out", "Closing")
		for _, o := range refi {
			t.Append(
				o.Lender,
				money(o.LoanAmount),
				fmt.Sprintf("%.2f%%", o.InterestRate),
				money(o.MonthlyPayment),
				money(o.CashOut),
				money(o.ClosingCosts),
			)
		}
		t.Render()
	}

	if len(sales) > 0 {
		t := tablewriter.NewWriter(c.out)
		t.Header("Exit", "Buyer", "Offer", "Net profit", "Timeframe")
		for _, s := range sales {
			t.Append(
				string(s.Type),
				s.Buyer,
				money(s.OfferPrice),
				money(s.NetProfit),
				s.Timeframe,
			)
		}
		t.Render()
	}
	return nil
}

// money formatea un importe en dólares sin decimales.
func money(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.0f", -v)
	}
	return fmt.Sprintf("$%.0f", v)
}
