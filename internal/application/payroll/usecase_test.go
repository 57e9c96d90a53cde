package payroll_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apppayroll "github.com/jhoicas/taller-api/internal/application/payroll"
	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeWorkerRepo struct {
	workers map[string]*entity.Worker
}

func newFakeWorkerRepo(workers ...*entity.Worker) *fakeWorkerRepo {
	m := make(map[string]*entity.Worker)
	for _, w := range workers {
		m[w.ID] = w
	}
	return &fakeWorkerRepo{workers: m}
}

func (r *fakeWorkerRepo) Create(w *entity.Worker) error { r.workers[w.ID] = w; return nil }
func (r *fakeWorkerRepo) GetByID(id string) (*entity.Worker, error) {
	return r.workers[id], nil
}
func (r *fakeWorkerRepo) List(limit, offset int) ([]*entity.Worker, error) { return nil, nil }
func (r *fakeWorkerRepo) Update(w *entity.Worker) error                    { r.workers[w.ID] = w; return nil }
func (r *fakeWorkerRepo) Delete(id string) (bool, error) {
	_, ok := r.workers[id]
	delete(r.workers, id)
	return ok, nil
}

type fakeVacationRepo struct {
	vacations []*entity.Vacation
}

func (r *fakeVacationRepo) Create(v *entity.Vacation) error {
	r.vacations = append(r.vacations, v)
	return nil
}
func (r *fakeVacationRepo) GetByID(id string) (*entity.Vacation, error) {
	for _, v := range r.vacations {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, nil
}
func (r *fakeVacationRepo) List(limit, offset int) ([]*entity.Vacation, error) {
	return r.vacations, nil
}
func (r *fakeVacationRepo) ListByWorker(workerID string, statuses ...string) ([]*entity.Vacation, error) {
	var out []*entity.Vacation
	for _, v := range r.vacations {
		if v.WorkerID != workerID {
			continue
		}
		if len(statuses) == 0 {
			out = append(out, v)
			continue
		}
		for _, s := range statuses {
			if v.Status == s {
				out = append(out, v)
				break
			}
		}
	}
	return out, nil
}
func (r *fakeVacationRepo) Update(v *entity.Vacation) error { return nil }
func (r *fakeVacationRepo) Delete(id string) (bool, error) {
	for i, v := range r.vacations {
		if v.ID == id {
			r.vacations = append(r.vacations[:i], r.vacations[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeSalaryAdvanceRepo struct {
	advances []*entity.SalaryAdvance
}

func (r *fakeSalaryAdvanceRepo) Create(a *entity.SalaryAdvance) error {
	r.advances = append(r.advances, a)
	return nil
}
func (r *fakeSalaryAdvanceRepo) GetByID(id string) (*entity.SalaryAdvance, error) {
	for _, a := range r.advances {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}
func (r *fakeSalaryAdvanceRepo) List(limit, offset int) ([]*entity.SalaryAdvance, error) {
	return r.advances, nil
}
func (r *fakeSalaryAdvanceRepo) ListByWorker(workerID string, periodStart, periodEnd time.Time) ([]*entity.SalaryAdvance, error) {
	var out []*entity.SalaryAdvance
	for _, a := range r.advances {
		if a.WorkerID != workerID {
			continue
		}
		if !periodStart.IsZero() || !periodEnd.IsZero() {
			if a.PaymentPeriodStart.After(periodEnd) || a.PaymentPeriodEnd.Before(periodStart) {
				continue
			}
		}
		out = append(out, a)
	}
	return out, nil
}
func (r *fakeSalaryAdvanceRepo) TotalForPeriod(workerID string, periodStart, periodEnd time.Time) (decimal.Decimal, error) {
	list, _ := r.ListByWorker(workerID, periodStart, periodEnd)
	total := decimal.Zero
	for _, a := range list {
		total = total.Add(a.Amount)
	}
	return total, nil
}
func (r *fakeSalaryAdvanceRepo) Delete(id string) (bool, error) {
	for i, a := range r.advances {
		if a.ID == id {
			r.advances = append(r.advances[:i], r.advances[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func directWorker(id string, hire time.Time, salary string, frequency string) *entity.Worker {
	s := decimal.RequireFromString(salary)
	return &entity.Worker{
		ID:               id,
		FirstName:        "Carlos",
		LastName:         "Mendoza",
		HireDate:         &hire,
		BaseSalary:       &s,
		PaymentFrequency: frequency,
		WorkerType:       entity.WorkerTypeDirect,
		IsActive:         true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// VacationUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestVacationBalance_TrabajadorConHistorial(t *testing.T) {
	// 5 meses trabajados, 2 días usados (approved), 1 pendiente (requested)
	// -> 5 acumulados, disponible 2.
	hire := date(2023, time.October, 1)
	workerRepo := newFakeWorkerRepo(directWorker("w1", hire, "1200000", entity.PaymentFrequencyMonthly))
	vacationRepo := &fakeVacationRepo{vacations: []*entity.Vacation{
		{ID: "v1", WorkerID: "w1", TotalDays: 2, Status: entity.VacationStatusApproved},
		{ID: "v2", WorkerID: "w1", TotalDays: 1, Status: entity.VacationStatusRequested},
		{ID: "v3", WorkerID: "otro", TotalDays: 9, Status: entity.VacationStatusApproved},
	}}
	uc := apppayroll.NewVacationUseCase(workerRepo, vacationRepo)

	balance, err := uc.Balance("w1", date(2024, time.March, 1))
	require.NoError(t, err)
	assert.Equal(t, 5, balance.MonthsWorked)
	assert.Equal(t, 5, balance.AccruedDays)
	assert.Equal(t, 2, balance.UsedDays)
	assert.Equal(t, 1, balance.PendingDays)
	assert.Equal(t, 2, balance.AvailableDays)
}

func TestVacationBalance_SinFechaDeIngreso(t *testing.T) {
	worker := &entity.Worker{ID: "w1", WorkerType: entity.WorkerTypeDirect}
	uc := apppayroll.NewVacationUseCase(newFakeWorkerRepo(worker), &fakeVacationRepo{})

	_, err := uc.Balance("w1", time.Now())
	assert.ErrorIs(t, err, domain.ErrMissingHireDate)
}

func TestVacationBalance_TrabajadorInexistente(t *testing.T) {
	uc := apppayroll.NewVacationUseCase(newFakeWorkerRepo(), &fakeVacationRepo{})

	_, err := uc.Balance("no-existe", time.Now())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateVacation_SaldoExacto(t *testing.T) {
	// 3 meses -> 3 días disponibles; pedir exactamente 3 es válido (límite inclusivo).
	hire := date(2024, time.January, 10)
	workerRepo := newFakeWorkerRepo(directWorker("w1", hire, "1000000", entity.PaymentFrequencyMonthly))
	vacationRepo := &fakeVacationRepo{}
	uc := apppayroll.NewVacationUseCase(workerRepo, vacationRepo)

	resp, err := uc.Create(dto.CreateVacationRequest{
		WorkerID:  "w1",
		StartDate: date(2024, time.May, 1),
		EndDate:   date(2024, time.May, 3),
		TotalDays: 3,
	}, date(2024, time.April, 10))
	require.NoError(t, err)
	assert.Equal(t, entity.VacationStatusRequested, resp.Status)
	assert.Len(t, vacationRepo.vacations, 1)
}

func TestCreateVacation_ExcedeSaldo(t *testing.T) {
	// 3 días disponibles, pedir 4 -> rechazo con detalle de días.
	hire := date(2024, time.January, 10)
	workerRepo := newFakeWorkerRepo(directWorker("w1", hire, "1000000", entity.PaymentFrequencyMonthly))
	vacationRepo := &fakeVacationRepo{}
	uc := apppayroll.NewVacationUseCase(workerRepo, vacationRepo)

	_, err := uc.Create(dto.CreateVacationRequest{
		WorkerID:  "w1",
		StartDate: date(2024, time.May, 1),
		EndDate:   date(2024, time.May, 4),
		TotalDays: 4,
	}, date(2024, time.April, 10))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	var insufErr *domain.InsufficientDaysError
	require.True(t, errors.As(err, &insufErr))
	assert.Equal(t, 4, insufErr.RequestedDays)
	assert.Equal(t, 3, insufErr.AvailableDays)
	assert.Empty(t, vacationRepo.vacations, "no debe persistir nada al rechazar")
}

func TestCreateVacation_LasPendientesDescuentan(t *testing.T) {
	// 3 acumulados, 2 en requested -> solo queda 1 disponible.
	hire := date(2024, time.January, 10)
	workerRepo := newFakeWorkerRepo(directWorker("w1", hire, "1000000", entity.PaymentFrequencyMonthly))
	vacationRepo := &fakeVacationRepo{vacations: []*entity.Vacation{
		{ID: "v1", WorkerID: "w1", TotalDays: 2, Status: entity.VacationStatusRequested},
	}}
	uc := apppayroll.NewVacationUseCase(workerRepo, vacationRepo)

	_, err := uc.Create(dto.CreateVacationRequest{
		WorkerID:  "w1",
		StartDate: date(2024, time.May, 1),
		EndDate:   date(2024, time.May, 2),
		TotalDays: 2,
	}, date(2024, time.April, 10))
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestCreateVacation_RechazadasNoDescuentan(t *testing.T) {
	hire := date(2024, time.January, 10)
	workerRepo := newFakeWorkerRepo(directWorker("w1", hire, "1000000", entity.PaymentFrequencyMonthly))
	vacationRepo := &fakeVacationRepo{vacations: []*entity.Vacation{
		{ID: "v1", WorkerID: "w1", TotalDays: 10, Status: entity.VacationStatusRejected},
	}}
	uc := apppayroll.NewVacationUseCase(workerRepo, vacationRepo)

	resp, err := uc.Create(dto.CreateVacationRequest{
		WorkerID:  "w1",
		StartDate: date(2024, time.May, 1),
		EndDate:   date(2024, time.May, 3),
		TotalDays: 3,
	}, date(2024, time.April, 10))
	require.NoError(t, err)
	assert.NotNil(t, resp)
}

// ──────────────────────────────────────────────────────────────────────────────
// SalaryAdvanceUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestAvailableAdvance_SinAnticipos(t *testing.T) {
	hire := date(2023, time.January, 1)
	workerRepo := newFakeWorkerRepo(directWorker("w1", hire, "2000000", entity.PaymentFrequencyMonthly))
	uc := apppayroll.NewSalaryAdvanceUseCase(workerRepo, &fakeSalaryAdvanceRepo{})

	resp, err := uc.Available("w1", date(2024, time.June, 12))
	require.NoError(t, err)
	assert.True(t, resp.AvailableAmount.Equal(decimal.RequireFromString("2000000")))
	assert.True(t, resp.TotalAdvances.IsZero())
	assert.Equal(t, date(2024, time.June, 1), resp.CurrentPeriodStart)
	assert.Equal(t, 30, resp.CurrentPeriodEnd.Day())
}

func TestAvailableAdvance_DescuentaLosDelPeriodo(t *testing.T) {
	hire := date(2023, time.January, 1)
	workerRepo := newFakeWorkerRepo(directWorker("w1", hire, "2000000", entity.PaymentFrequencyMonthly))
	advanceRepo := &fakeSalaryAdvanceRepo{advances: []*entity.SalaryAdvance{
		{ID: "a1", WorkerID: "w1", Amount: decimal.RequireFromString("500000"),
			PaymentPeriodStart: date(2024, time.June, 1), PaymentPeriodEnd: date(2024, time.June, 30)},
		// Período anterior: no cuenta.
		{ID: "a2", WorkerID: "w1", Amount: decimal.RequireFromString("300000"),
			PaymentPeriodStart: date(2024, time.May, 1), PaymentPeriodEnd: date(2024, time.May, 31)},
	}}
	uc := apppayroll.NewSalaryAdvanceUseCase(workerRepo, advanceRepo)

	resp, err := uc.Available("w1", date(2024, time.June, 12))
	require.NoError(t, err)
	assert.True(t, resp.TotalAdvances.Equal(decimal.RequireFromString("500000")))
	assert.True(t, resp.AvailableAmount.Equal(decimal.RequireFromString("1500000")))
}

func TestAvailableAdvance_ContratistaNoElegible(t *testing.T) {
	salary := decimal.RequireFromString("1000000")
	worker := &entity.Worker{ID: "w1", WorkerType: entity.WorkerTypeContract, BaseSalary: &salary}
	uc := apppayroll.NewSalaryAdvanceUseCase(newFakeWorkerRepo(worker), &fakeSalaryAdvanceRepo{})

	_, err := uc.Available("w1", time.Now())
	assert.ErrorIs(t, err, domain.ErrNotEligible)
}

func TestAvailableAdvance_SinSalarioBaseNoElegible(t *testing.T) {
	worker := &entity.Worker{ID: "w1", WorkerType: entity.WorkerTypeDirect}
	uc := apppayroll.NewSalaryAdvanceUseCase(newFakeWorkerRepo(worker), &fakeSalaryAdvanceRepo{})

	_, err := uc.Available("w1", time.Now())
	assert.ErrorIs(t, err, domain.ErrNotEligible)
}

func TestCreateSalaryAdvance_DentroDelDisponible(t *testing.T) {
	hire := date(2023, time.January, 1)
	workerRepo := newFakeWorkerRepo(directWorker("w1", hire, "1000000", entity.PaymentFrequencyBiweekly))
	advanceRepo := &fakeSalaryAdvanceRepo{}
	uc := apppayroll.NewSalaryAdvanceUseCase(workerRepo, advanceRepo)

	now := date(2024, time.June, 10)
	resp, err := uc.Create(dto.CreateSalaryAdvanceRequest{
		WorkerID: "w1",
		Amount:   decimal.RequireFromString("400000"),
	}, now)
	require.NoError(t, err)
	// Quincena 1-15: la ventana queda grabada en el anticipo.
	assert.Equal(t, 1, resp.PaymentPeriodStart.Day())
	assert.Equal(t, 15, resp.PaymentPeriodEnd.Day())
	assert.Len(t, advanceRepo.advances, 1)
}

func TestCreateSalaryAdvance_ExcedeDisponible(t *testing.T) {
	hire := date(2023, time.January, 1)
	workerRepo := newFakeWorkerRepo(directWorker("w1", hire, "1000000", entity.PaymentFrequencyMonthly))
	advanceRepo := &fakeSalaryAdvanceRepo{advances: []*entity.SalaryAdvance{
		{ID: "a1", WorkerID: "w1", Amount: decimal.RequireFromString("800000"),
			PaymentPeriodStart: date(2024, time.June, 1), PaymentPeriodEnd: date(2024, time.June, 30)},
	}}
	uc := apppayroll.NewSalaryAdvanceUseCase(workerRepo, advanceRepo)

	_, err := uc.Create(dto.CreateSalaryAdvanceRequest{
		WorkerID: "w1",
		Amount:   decimal.RequireFromString("300000"),
	}, date(2024, time.June, 12))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	var excErr *domain.ExceedsAvailableAdvanceError
	require.True(t, errors.As(err, &excErr))
	assert.True(t, excErr.Available.Equal(decimal.RequireFromString("200000")))
	assert.Len(t, advanceRepo.advances, 1, "no debe persistir el anticipo rechazado")
}

func TestCreateSalaryAdvance_MontoExactoDisponible(t *testing.T) {
	// Anticipar exactamente el disponible es válido (límite inclusivo).
	hire := date(2023, time.January, 1)
	workerRepo := newFakeWorkerRepo(directWorker("w1", hire, "1000000", entity.PaymentFrequencyMonthly))
	advanceRepo := &fakeSalaryAdvanceRepo{}
	uc := apppayroll.NewSalaryAdvanceUseCase(workerRepo, advanceRepo)

	_, err := uc.Create(dto.CreateSalaryAdvanceRequest{
		WorkerID: "w1",
		Amount:   decimal.RequireFromString("1000000"),
	}, date(2024, time.June, 12))
	assert.NoError(t, err)
}

func TestCreateSalaryAdvance_MontoNoPositivo(t *testing.T) {
	hire := date(2023, time.January, 1)
	workerRepo := newFakeWorkerRepo(directWorker("w1", hire, "1000000", entity.PaymentFrequencyMonthly))
	uc := apppayroll.NewSalaryAdvanceUseCase(workerRepo, &fakeSalaryAdvanceRepo{})

	_, err := uc.Create(dto.CreateSalaryAdvanceRequest{
		WorkerID: "w1",
		Amount:   decimal.Zero,
	}, time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListByWorker_SoloPeriodoActual(t *testing.T) {
	hire := date(2023, time.January, 1)
	workerRepo := newFakeWorkerRepo(directWorker("w1", hire, "1000000", entity.PaymentFrequencyMonthly))
	advanceRepo := &fakeSalaryAdvanceRepo{advances: []*entity.SalaryAdvance{
		{ID: "a1", WorkerID: "w1", Amount: decimal.RequireFromString("100000"),
			PaymentPeriodStart: date(2024, time.June, 1), PaymentPeriodEnd: date(2024, time.June, 30)},
		{ID: "a2", WorkerID: "w1", Amount: decimal.RequireFromString("200000"),
			PaymentPeriodStart: date(2024, time.May, 1), PaymentPeriodEnd: date(2024, time.May, 31)},
	}}
	uc := apppayroll.NewSalaryAdvanceUseCase(workerRepo, advanceRepo)

	all, err := uc.ListByWorker("w1", false, date(2024, time.June, 12))
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)

	current, err := uc.ListByWorker("w1", true, date(2024, time.June, 12))
	require.NoError(t, err)
	require.Len(t, current.Items, 1)
	assert.Equal(t, "a1", current.Items[0].ID)
}
