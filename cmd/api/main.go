package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/taller-api/internal/application/auth"
	appbilling "github.com/jhoicas/taller-api/internal/application/billing"
	apppayroll "github.com/jhoicas/taller-api/internal/application/payroll"
	"github.com/jhoicas/taller-api/internal/application/usecase"
	"github.com/jhoicas/taller-api/internal/application/workshop"
	infrapdf "github.com/jhoicas/taller-api/internal/infrastructure/pdf"
	"github.com/jhoicas/taller-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/taller-api/internal/interfaces/http"
	"github.com/jhoicas/taller-api/pkg/config"
	"github.com/jhoicas/taller-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	workerRepo := postgres.NewWorkerRepository(pool)
	vacationRepo := postgres.NewVacationRepository(pool)
	salaryAdvanceRepo := postgres.NewSalaryAdvanceRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	jobRepo := postgres.NewJobRepository(pool)
	advanceRepo := postgres.NewAdvanceRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	paymentRepo := postgres.NewInvoicePaymentRepository(pool)

	workshopTx := postgres.NewWorkshopTxRunner(pool)
	billingTx := postgres.NewBillingTxRunner(pool)

	workerUC := usecase.NewWorkerUseCase(workerRepo)
	vehicleUC := usecase.NewVehicleUseCase(vehicleRepo)
	jobUC := usecase.NewJobUseCase(jobRepo, vehicleRepo, workerRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo, supplierRepo)

	vacationUC := apppayroll.NewVacationUseCase(workerRepo, vacationRepo)
	salaryAdvanceUC := apppayroll.NewSalaryAdvanceUseCase(workerRepo, salaryAdvanceRepo)
	advanceUC := workshop.NewAdvanceUseCase(workshopTx, advanceRepo, jobRepo)
	paymentUC := appbilling.NewPaymentUseCase(billingTx, paymentRepo, invoiceRepo)

	// PDF: estado de cuenta del proveedor
	statementGenerator := infrapdf.NewMarotoStatementGenerator()
	statementUC := appbilling.NewStatementUseCase(
		supplierRepo, invoiceRepo, paymentRepo, statementGenerator,
	)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Taller API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		WorkerUC:        workerUC,
		VehicleUC:       vehicleUC,
		JobUC:           jobUC,
		SupplierUC:      supplierUC,
		InvoiceUC:       invoiceUC,
		VacationUC:      vacationUC,
		SalaryAdvanceUC: salaryAdvanceUC,
		AdvanceUC:       advanceUC,
		PaymentUC:       paymentUC,
		StatementUC:     statementUC,
		AuthUC:          authUC,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
