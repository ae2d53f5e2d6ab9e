package finance

import (
	"github.com/shopspring/decimal"

	"aga_techserv/internal/domain/entities"
)

// Rollup recomputation for every financial document.
//
// These are pure functions: callers pass the document in, get a copy with
// freshly derived totals back, and only then persist. Stored totals are
// never trusted; monetary arithmetic runs through decimal and is rounded to
// two places before landing back in the float64 fields the entities carry.

func lineTotal(quantity, unitPrice float64) float64 {
	total := decimal.NewFromFloat(quantity).Mul(decimal.NewFromFloat(unitPrice))
	f, _ := total.Round(2).Float64()
	return f
}

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

// RecomputeEstimation rederives every line total, the estimated amount and,
// once a quotation amount is recorded, the profit. Profit may be negative.
func RecomputeEstimation(e entities.Estimation) entities.Estimation {
	sum := decimal.Zero
	for i := range e.Materials {
		e.Materials[i].Total = lineTotal(e.Materials[i].Quantity, e.Materials[i].UnitPrice)
		sum = sum.Add(decimal.NewFromFloat(e.Materials[i].Total))
	}
	for i := range e.Labour {
		e.Labour[i].Total = lineTotal(e.Labour[i].Days, e.Labour[i].Price)
		sum = sum.Add(decimal.NewFromFloat(e.Labour[i].Total))
	}
	for i := range e.Terms {
		e.Terms[i].Total = lineTotal(e.Terms[i].Quantity, e.Terms[i].UnitPrice)
		sum = sum.Add(decimal.NewFromFloat(e.Terms[i].Total))
	}
	e.EstimatedAmount = round2(sum)

	if e.QuotationAmount != nil {
		profit := decimal.NewFromFloat(*e.QuotationAmount).
			Sub(decimal.NewFromFloat(e.EstimatedAmount)).
			Sub(decimal.NewFromFloat(e.CommissionAmount))
		p := round2(profit)
		e.Profit = &p
	} else {
		e.Profit = nil
	}
	return e
}

// RecomputeQuotation rederives item totals, subtotal, VAT and net amount.
// VATAmount = subtotal * vatPercentage / 100 rounded to 2dp; NetAmount is
// the rounded subtotal plus that VAT.
func RecomputeQuotation(q entities.Quotation) entities.Quotation {
	subtotal := decimal.Zero
	for i := range q.Items {
		q.Items[i].Total = lineTotal(q.Items[i].Quantity, q.Items[i].UnitPrice)
		subtotal = subtotal.Add(decimal.NewFromFloat(q.Items[i].Total))
	}
	q.Subtotal = round2(subtotal)

	vat := decimal.NewFromFloat(q.Subtotal).
		Mul(decimal.NewFromFloat(q.VATPercentage)).
		Div(decimal.NewFromInt(100))
	q.VATAmount = round2(vat)
	q.NetAmount = round2(decimal.NewFromFloat(q.Subtotal).Add(decimal.NewFromFloat(q.VATAmount)))
	return q
}

// RecomputeLPO rederives item totals and the order's total amount.
func RecomputeLPO(l entities.LPO) entities.LPO {
	sum := decimal.Zero
	for i := range l.Items {
		l.Items[i].Total = lineTotal(l.Items[i].Quantity, l.Items[i].UnitPrice)
		sum = sum.Add(decimal.NewFromFloat(l.Items[i].Total))
	}
	l.TotalAmount = round2(sum)
	return l
}

// RecomputeExpense rederives material and miscellaneous totals from the
// line items, and the labor block from daily rate times days present. Days
// present are expected to be populated from the attendance collaborator
// before calling.
func RecomputeExpense(e entities.Expense) entities.Expense {
	materials := decimal.Zero
	for i := range e.Materials {
		e.Materials[i].Total = lineTotal(e.Materials[i].Quantity, e.Materials[i].UnitPrice)
		materials = materials.Add(decimal.NewFromFloat(e.Materials[i].Total))
	}
	e.TotalMaterialCost = round2(materials)

	misc := decimal.Zero
	for i := range e.Miscellaneous {
		e.Miscellaneous[i].Total = lineTotal(e.Miscellaneous[i].Quantity, e.Miscellaneous[i].UnitPrice)
		misc = misc.Add(decimal.NewFromFloat(e.Miscellaneous[i].Total))
	}
	e.TotalMiscellaneousCost = round2(misc)

	labor := decimal.Zero
	for i := range e.LaborDetails {
		e.LaborDetails[i].Total = lineTotal(float64(e.LaborDetails[i].DaysPresent), e.LaborDetails[i].DailyRate)
		labor = labor.Add(decimal.NewFromFloat(e.LaborDetails[i].Total))
	}
	e.TotalLaborCost = round2(labor)
	return e
}
