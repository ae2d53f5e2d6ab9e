package routes

import (
	"aga_techserv/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects    = "/projects"
	PathEstimations = "/estimations"
	PathQuotations  = "/quotations"
	PathLPOs        = "/lpos"
	PathExpenses    = "/expenses"
	PathInvoices    = "/invoices"
)

type workflowHandlers struct {
	projects    *handlers.ProjectHandler
	estimations *handlers.EstimationHandler
	quotations  *handlers.QuotationHandler
	lpos        *handlers.LPOHandler
	expenses    *handlers.ExpenseHandler
	invoices    *handlers.InvoiceHandler
}

func addWorkflowRoutes(rg *gin.RouterGroup, h workflowHandlers) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", h.projects.CreateProject)
		projects.GET("/:id", h.projects.GetProject)
		projects.PATCH("/:id/status", h.projects.UpdateStatus)
		projects.PATCH("/:id/team", h.projects.AssignTeam)
		projects.PATCH("/:id/progress", h.projects.UpdateProgress)
		projects.PATCH("/:id/work-dates", h.projects.SetWorkDates)
		projects.DELETE("/:id", h.projects.DeleteProject)
		projects.GET("/:id/activity", h.projects.ListActivity)

		// Project-scoped document lookups.
		projects.GET("/:id/estimation", h.estimations.GetEstimationByProject)
		projects.GET("/:id/quotation", h.quotations.GetQuotationByProject)
		projects.GET("/:id/lpo", h.lpos.GetLPOByProject)
		projects.GET("/:id/expense", h.expenses.GetExpenseByProject)
		projects.GET("/:id/invoice", h.invoices.GetInvoiceByProject)
	}

	estimations := rg.Group(PathEstimations)
	{
		estimations.POST("", h.estimations.CreateEstimation)
		estimations.GET("/:id", h.estimations.GetEstimation)
		estimations.PUT("/:id", h.estimations.UpdateEstimation)
		estimations.PATCH("/:id/check", h.estimations.CheckEstimation)
		estimations.PATCH("/:id/approve", h.estimations.ApproveEstimation)
		estimations.PATCH("/:id/reject", h.estimations.RejectEstimation)
		estimations.DELETE("/:id", h.estimations.DeleteEstimation)
	}

	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", h.quotations.CreateQuotation)
		quotations.GET("/:id", h.quotations.GetQuotation)
		quotations.PUT("/:id", h.quotations.UpdateQuotation)
		quotations.PATCH("/:id/approve", h.quotations.ApproveQuotation)
		quotations.PATCH("/:id/reject", h.quotations.RejectQuotation)
		quotations.DELETE("/:id", h.quotations.DeleteQuotation)
	}

	lpos := rg.Group(PathLPOs)
	{
		lpos.POST("", h.lpos.CreateLPO)
		lpos.GET("/:id", h.lpos.GetLPO)
		lpos.POST("/:id/documents", h.lpos.UploadDocument)
		lpos.DELETE("/:id/documents", h.lpos.DeleteDocument)
	}

	expenses := rg.Group(PathExpenses)
	{
		expenses.PUT("", h.expenses.RecordExpense)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", h.invoices.CreateInvoice)
		invoices.GET("/:id", h.invoices.GetInvoice)
		invoices.POST("/:id/settlement", h.invoices.SettleInvoice)
		invoices.GET("/:id/pdf", h.invoices.DownloadInvoice)
	}
}
