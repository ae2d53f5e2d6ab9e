package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"aga_techserv/internal/domain/entities"
	"aga_techserv/internal/domain/workflow"
	mock_interfaces "aga_techserv/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestInvoiceUseCase_CreateInvoice(t *testing.T) {
	t.Run("quotation not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotations := mock_interfaces.NewMockIQuotationRepository(ctrl)
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewInvoiceUseCase(nil, quotations, projects, nil, nil, nil, nil, workflow.NewGraph(), nil, nil)

		projects.EXPECT().GetByID(gomock.Any(), "p-1").
			Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusClientHandover}, nil)
		quotations.EXPECT().GetByProjectID(gomock.Any(), "p-1").
			Return(entities.Quotation{ID: "q-1"}, nil)

		_, err := uc.CreateInvoice(context.Background(), "admin-1", "p-1")
		if !errors.Is(err, ErrQuotationNotApproved) {
			t.Fatalf("expected ErrQuotationNotApproved, got %v", err)
		}
	})

	t.Run("requires client_handover", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		quotations := mock_interfaces.NewMockIQuotationRepository(ctrl)
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewInvoiceUseCase(invoices, quotations, projects, nil, nil, nil, nil, workflow.NewGraph(), nil, nil)

		projects.EXPECT().GetByID(gomock.Any(), "p-1").
			Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusQualityCheck}, nil)
		quotations.EXPECT().GetByProjectID(gomock.Any(), "p-1").
			Return(entities.Quotation{ID: "q-1", IsApproved: true}, nil)
		invoices.EXPECT().GetByProjectID(gomock.Any(), "p-1").Return(entities.Invoice{}, nil)

		_, err := uc.CreateInvoice(context.Background(), "admin-1", "p-1")
		if !errors.Is(err, workflow.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("create success bills the quotation net amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		quotations := mock_interfaces.NewMockIQuotationRepository(ctrl)
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		comments := mock_interfaces.NewMockICommentRepository(ctrl)
		uc := NewInvoiceUseCase(invoices, quotations, projects, comments, nil, nil, nil, workflow.NewGraph(), nil, nil)

		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{
			ID: "p-1", ProjectNumber: "PRJAGA250012", Status: entities.ProjectStatusClientHandover,
		}, nil)
		quotations.EXPECT().GetByProjectID(gomock.Any(), "p-1").
			Return(entities.Quotation{ID: "q-1", IsApproved: true, NetAmount: 315}, nil)
		invoices.EXPECT().GetByProjectID(gomock.Any(), "p-1").Return(entities.Invoice{}, nil)
		invoices.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Invoice{})).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.InvoiceNumber != "INV250012" || inv.Amount != 315 {
					t.Fatalf("unexpected invoice: %+v", inv)
				}
				if inv.PaymentStatus != entities.InvoicePaymentPending || inv.IssuedAt.IsZero() {
					t.Fatalf("unexpected invoice state: %+v", inv)
				}
				return inv, nil
			},
		)
		projects.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.Status != entities.ProjectStatusFinalInvoiceSent {
					t.Fatalf("expected final_invoice_sent, got %s", p.Status)
				}
				return p, nil
			},
		)
		comments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Comment{}, nil)

		if _, err := uc.CreateInvoice(context.Background(), "admin-1", "p-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestInvoiceUseCase_SettleInvoice(t *testing.T) {
	pendingInvoice := entities.Invoice{
		ID: "inv-1", ProjectID: "p-1", InvoiceNumber: "INV250012",
		Amount: 315, PaymentStatus: entities.InvoicePaymentPending,
	}

	t.Run("not pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(invoices, nil, nil, nil, nil, nil, nil, workflow.NewGraph(), nil, nil)

		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").
			Return(entities.Invoice{ID: "inv-1", PaymentStatus: entities.InvoicePaymentApproved}, nil)

		_, err := uc.SettleInvoice(context.Background(), "admin-1", "inv-1", nil)
		if !errors.Is(err, ErrInvoiceNotPending) {
			t.Fatalf("expected ErrInvoiceNotPending, got %v", err)
		}
	})

	t.Run("gateway error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoiceUseCase(invoices, nil, nil, nil, gateway, nil, nil, workflow.NewGraph(), nil, nil)

		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(pendingInvoice, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", json.RawMessage(nil), errors.New("provider timeout"))

		_, err := uc.SettleInvoice(context.Background(), "admin-1", "inv-1", json.RawMessage(`{}`))
		if err == nil || err.Error() != "provider timeout" {
			t.Fatalf("expected provider error, got %v", err)
		}
	})

	t.Run("denied payment is recorded and reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoiceUseCase(invoices, nil, nil, nil, gateway, nil, nil, workflow.NewGraph(), nil, nil)

		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(pendingInvoice, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("mp-9", "rejected", json.RawMessage(`{"status":"rejected"}`), nil)
		invoices.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Invoice{})).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.PaymentStatus != entities.InvoicePaymentDenied || inv.ProviderPaymentID != "mp-9" {
					t.Fatalf("unexpected invoice state: %+v", inv)
				}
				return inv, nil
			},
		)

		_, err := uc.SettleInvoice(context.Background(), "admin-1", "inv-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrPaymentDenied) {
			t.Fatalf("expected ErrPaymentDenied, got %v", err)
		}
	})

	t.Run("approved payment settles and closes out the billing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		comments := mock_interfaces.NewMockICommentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoiceUseCase(invoices, nil, projects, comments, gateway, nil, nil, workflow.NewGraph(), nil, nil)

		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(pendingInvoice, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("invalid enriched payload: %v", err)
				}
				if req["external_reference"] != "INV250012" || req["transaction_amount"] != 315.0 {
					t.Fatalf("unexpected enriched payload: %v", req)
				}
				return "mp-1", "approved", json.RawMessage(`{"status":"approved"}`), nil
			},
		)
		invoices.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Invoice{})).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.PaymentStatus != entities.InvoicePaymentApproved || inv.PaidAt == nil {
					t.Fatalf("unexpected invoice state: %+v", inv)
				}
				return inv, nil
			},
		)
		projects.EXPECT().GetByID(gomock.Any(), "p-1").
			Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusFinalInvoiceSent}, nil)
		projects.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.Status != entities.ProjectStatusPaymentReceived {
					t.Fatalf("expected payment_received, got %s", p.Status)
				}
				return p, nil
			},
		)
		comments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Comment{}, nil)

		if _, err := uc.SettleInvoice(context.Background(), "admin-1", "inv-1", json.RawMessage(`{"payment_method_id":"visa"}`)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestInvoiceUseCase_RenderAndArchive(t *testing.T) {
	t.Run("renders and uploads the artifact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
		storage := mock_interfaces.NewMockIObjectStorage(ctrl)
		uc := NewInvoiceUseCase(invoices, nil, projects, nil, nil, renderer, storage, workflow.NewGraph(), nil, nil)

		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").
			Return(entities.Invoice{ID: "inv-1", ProjectID: "p-1", InvoiceNumber: "INV250012", Amount: 315}, nil)
		projects.EXPECT().GetByID(gomock.Any(), "p-1").
			Return(entities.Project{ID: "p-1", ProjectNumber: "PRJAGA250012", Name: "Villa AC retrofit"}, nil)
		renderer.EXPECT().RenderHTML(gomock.Any(), gomock.Any()).Return([]byte("%PDF-1.7"), nil)
		storage.EXPECT().Upload(gomock.Any(), "invoices/INV250012.pdf", []byte("%PDF-1.7"), "application/pdf").Return(nil)

		pdf, err := uc.RenderAndArchive(context.Background(), "inv-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(pdf) != "%PDF-1.7" {
			t.Fatalf("unexpected artifact: %q", pdf)
		}
	})

	t.Run("upload failure does not lose the artifact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
		storage := mock_interfaces.NewMockIObjectStorage(ctrl)
		uc := NewInvoiceUseCase(invoices, nil, projects, nil, nil, renderer, storage, workflow.NewGraph(), nil, nil)

		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").
			Return(entities.Invoice{ID: "inv-1", ProjectID: "p-1", InvoiceNumber: "INV250012"}, nil)
		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1"}, nil)
		renderer.EXPECT().RenderHTML(gomock.Any(), gomock.Any()).Return([]byte("%PDF-1.7"), nil)
		storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("s3 down"))

		pdf, err := uc.RenderAndArchive(context.Background(), "inv-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(pdf) == 0 {
			t.Fatalf("expected artifact bytes")
		}
	})
}
