package finance

import (
	"testing"

	"aga_techserv/internal/domain/entities"
)

func TestRecomputeEstimation_Totals(t *testing.T) {
	e := entities.Estimation{
		Materials: []entities.MaterialItem{
			{Description: "cement", Quantity: 2, UnitPrice: 50},
			{Description: "sand", Quantity: 3, UnitPrice: 10.5},
		},
		Labour: []entities.LabourItem{
			{Description: "mason", Days: 4, Price: 120},
		},
		Terms: []entities.TermItem{
			{Description: "transport", Quantity: 1, UnitPrice: 75.25},
		},
	}

	got := RecomputeEstimation(e)

	if got.Materials[0].Total != 100 || got.Materials[1].Total != 31.5 {
		t.Fatalf("unexpected material totals: %+v", got.Materials)
	}
	if got.Labour[0].Total != 480 {
		t.Fatalf("unexpected labour total: %+v", got.Labour)
	}
	if got.Terms[0].Total != 75.25 {
		t.Fatalf("unexpected term total: %+v", got.Terms)
	}
	if got.EstimatedAmount != 686.75 {
		t.Fatalf("expected estimated amount 686.75, got %v", got.EstimatedAmount)
	}
	if got.Profit != nil {
		t.Fatalf("profit must stay unset without a quotation amount")
	}
}

func TestRecomputeEstimation_Profit(t *testing.T) {
	quotation := 1000.0
	e := entities.Estimation{
		Materials:        []entities.MaterialItem{{Quantity: 2, UnitPrice: 50}},
		QuotationAmount:  &quotation,
		CommissionAmount: 150,
	}

	got := RecomputeEstimation(e)

	if got.EstimatedAmount != 100 {
		t.Fatalf("expected estimated amount 100, got %v", got.EstimatedAmount)
	}
	if got.Profit == nil || *got.Profit != 750 {
		t.Fatalf("expected profit 750, got %v", got.Profit)
	}
}

func TestRecomputeEstimation_NegativeProfit(t *testing.T) {
	quotation := 100.0
	e := entities.Estimation{
		Materials:        []entities.MaterialItem{{Quantity: 4, UnitPrice: 50}},
		QuotationAmount:  &quotation,
		CommissionAmount: 20,
	}

	got := RecomputeEstimation(e)

	if got.Profit == nil || *got.Profit != -120 {
		t.Fatalf("expected profit -120, got %v", got.Profit)
	}
}

func TestRecomputeEstimation_Idempotent(t *testing.T) {
	e := entities.Estimation{
		Materials: []entities.MaterialItem{{Quantity: 2, UnitPrice: 50, Total: 999}},
	}

	first := RecomputeEstimation(e)
	second := RecomputeEstimation(first)

	if first.EstimatedAmount != 100 || second.EstimatedAmount != 100 {
		t.Fatalf("recompute must be idempotent: %v then %v", first.EstimatedAmount, second.EstimatedAmount)
	}
}

func TestRecomputeQuotation_VAT(t *testing.T) {
	q := entities.Quotation{
		Items: []entities.QuotationItem{
			{Description: "ac unit", UOM: "pcs", Quantity: 3, UnitPrice: 100},
		},
		VATPercentage: 5,
	}

	got := RecomputeQuotation(q)

	if got.Subtotal != 300 {
		t.Fatalf("expected subtotal 300, got %v", got.Subtotal)
	}
	if got.VATAmount != 15 {
		t.Fatalf("expected vat 15, got %v", got.VATAmount)
	}
	if got.NetAmount != 315 {
		t.Fatalf("expected net 315, got %v", got.NetAmount)
	}
}

func TestRecomputeQuotation_RoundsVAT(t *testing.T) {
	q := entities.Quotation{
		Items:         []entities.QuotationItem{{Quantity: 1, UnitPrice: 99.99}},
		VATPercentage: 7.5,
	}

	got := RecomputeQuotation(q)

	// 99.99 * 0.075 = 7.49925 -> 7.5 after rounding.
	if got.VATAmount != 7.5 {
		t.Fatalf("expected vat 7.5, got %v", got.VATAmount)
	}
	if got.NetAmount != 107.49 {
		t.Fatalf("expected net 107.49, got %v", got.NetAmount)
	}
}

func TestRecomputeQuotation_ZeroVAT(t *testing.T) {
	q := entities.Quotation{
		Items: []entities.QuotationItem{{Quantity: 2, UnitPrice: 10}},
	}

	got := RecomputeQuotation(q)

	if got.VATAmount != 0 || got.NetAmount != 20 {
		t.Fatalf("unexpected zero-vat rollup: %+v", got)
	}
}

func TestRecomputeLPO(t *testing.T) {
	l := entities.LPO{
		Items: []entities.LPOItem{
			{Quantity: 10, UnitPrice: 12.5},
			{Quantity: 2, UnitPrice: 100},
		},
	}

	got := RecomputeLPO(l)

	if got.Items[0].Total != 125 || got.Items[1].Total != 200 {
		t.Fatalf("unexpected item totals: %+v", got.Items)
	}
	if got.TotalAmount != 325 {
		t.Fatalf("expected total 325, got %v", got.TotalAmount)
	}
}

func TestRecomputeExpense(t *testing.T) {
	e := entities.Expense{
		Materials:     []entities.ExpenseItem{{Quantity: 5, UnitPrice: 20}},
		Miscellaneous: []entities.ExpenseItem{{Quantity: 1, UnitPrice: 33.33}},
		LaborDetails: []entities.LaborDetail{
			{UserID: "w-1", DailyRate: 80, DaysPresent: 6},
			{UserID: "d-1", DailyRate: 60, DaysPresent: 3},
		},
	}

	got := RecomputeExpense(e)

	if got.TotalMaterialCost != 100 {
		t.Fatalf("expected material cost 100, got %v", got.TotalMaterialCost)
	}
	if got.TotalMiscellaneousCost != 33.33 {
		t.Fatalf("expected misc cost 33.33, got %v", got.TotalMiscellaneousCost)
	}
	if got.LaborDetails[0].Total != 480 || got.LaborDetails[1].Total != 180 {
		t.Fatalf("unexpected labor totals: %+v", got.LaborDetails)
	}
	if got.TotalLaborCost != 660 {
		t.Fatalf("expected labor cost 660, got %v", got.TotalLaborCost)
	}
}
