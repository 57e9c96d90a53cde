package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/taller-api/internal/application/auth"
	"github.com/jhoicas/taller-api/internal/application/billing"
	"github.com/jhoicas/taller-api/internal/application/payroll"
	"github.com/jhoicas/taller-api/internal/application/usecase"
	"github.com/jhoicas/taller-api/internal/application/workshop"
	"github.com/jhoicas/taller-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	WorkerUC        *usecase.WorkerUseCase
	VehicleUC       *usecase.VehicleUseCase
	JobUC           *usecase.JobUseCase
	SupplierUC      *usecase.SupplierUseCase
	InvoiceUC       *usecase.InvoiceUseCase
	VacationUC      *payroll.VacationUseCase
	SalaryAdvanceUC *payroll.SalaryAdvanceUseCase
	AdvanceUC       *workshop.AdvanceUseCase
	PaymentUC       *billing.PaymentUseCase
	StatementUC     *billing.StatementUseCase
	AuthUC          *auth.AuthUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Workers (protegido)
	workers := protected.Group("/workers")
	workerHandler := NewWorkerHandler(deps.WorkerUC, deps.VacationUC)
	workers.Post("/", workerHandler.Create)
	workers.Get("/", workerHandler.List)
	workers.Get("/:id", workerHandler.GetByID)
	workers.Put("/:id", workerHandler.Update)
	workers.Delete("/:id", adminOnly, workerHandler.Delete)
	workers.Get("/:id/vacation-balance", workerHandler.VacationBalance)

	// Vacations (protegido)
	vacations := protected.Group("/vacations")
	vacationHandler := NewVacationHandler(deps.VacationUC)
	vacations.Post("/", vacationHandler.Create)
	vacations.Get("/", vacationHandler.List)
	vacations.Get("/:id", vacationHandler.GetByID)
	vacations.Put("/:id", vacationHandler.Update)
	vacations.Delete("/:id", adminOnly, vacationHandler.Delete)

	// Salary advances (protegido)
	salaryAdvances := protected.Group("/salary-advances")
	salaryAdvanceHandler := NewSalaryAdvanceHandler(deps.SalaryAdvanceUC)
	salaryAdvances.Post("/", salaryAdvanceHandler.Create)
	salaryAdvances.Get("/", salaryAdvanceHandler.List)
	// Las rutas de worker van antes de :id para que "worker" no matchee como ID.
	salaryAdvances.Get("/worker/:workerId", salaryAdvanceHandler.ListByWorker)
	salaryAdvances.Get("/worker/:workerId/available", salaryAdvanceHandler.Available)
	salaryAdvances.Get("/:id", salaryAdvanceHandler.GetByID)
	salaryAdvances.Delete("/:id", adminOnly, salaryAdvanceHandler.Delete)

	// Vehicles (protegido)
	vehicles := protected.Group("/vehicles")
	vehicleHandler := NewVehicleHandler(deps.VehicleUC)
	vehicles.Post("/", vehicleHandler.Create)
	vehicles.Get("/", vehicleHandler.List)
	vehicles.Get("/:id", vehicleHandler.GetByID)
	vehicles.Put("/:id", vehicleHandler.Update)
	vehicles.Delete("/:id", adminOnly, vehicleHandler.Delete)

	// Jobs y sus adelantos (protegido)
	jobs := protected.Group("/jobs")
	jobHandler := NewJobHandler(deps.JobUC, deps.AdvanceUC)
	jobs.Post("/", jobHandler.Create)
	jobs.Get("/", jobHandler.List)
	jobs.Get("/:id", jobHandler.GetByID)
	jobs.Put("/:id", jobHandler.Update)
	jobs.Delete("/:id", adminOnly, jobHandler.Delete)
	jobs.Post("/:id/advances", jobHandler.CreateAdvance)
	jobs.Get("/:id/advances", jobHandler.ListAdvances)

	// Advances (protegido, consultas y borrado directo)
	advances := protected.Group("/advances")
	advances.Get("/", jobHandler.ListAllAdvances)
	advances.Get("/:id", jobHandler.GetAdvance)
	advances.Delete("/:id", adminOnly, jobHandler.DeleteAdvance)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC, deps.StatementUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", adminOnly, supplierHandler.Delete)
	suppliers.Get("/:id/statement", supplierHandler.DownloadStatement)

	// Invoices, pagos y conciliación masiva (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PaymentUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	// batch-pay y payments van antes de :id para que no matcheen como ID.
	invoices.Post("/batch-pay", invoiceHandler.BatchPay)
	invoices.Delete("/payments/:id", adminOnly, invoiceHandler.DeletePayment)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", adminOnly, invoiceHandler.Delete)
	invoices.Post("/:id/payments", invoiceHandler.CreatePayment)
	invoices.Get("/:id/payments", invoiceHandler.ListPayments)
}
