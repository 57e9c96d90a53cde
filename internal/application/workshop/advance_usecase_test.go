package workshop_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/application/workshop"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El fakeTxRunner toma un snapshot antes de ejecutar el
// callback y lo restaura si falla, imitando el rollback de una tx real.
// ──────────────────────────────────────────────────────────────────────────────

type fakeAdvanceRepo struct {
	advances map[string]*entity.Advance
}

func newFakeAdvanceRepo() *fakeAdvanceRepo {
	return &fakeAdvanceRepo{advances: make(map[string]*entity.Advance)}
}

func (r *fakeAdvanceRepo) Create(a *entity.Advance) error { r.advances[a.ID] = a; return nil }
func (r *fakeAdvanceRepo) GetByID(id string) (*entity.Advance, error) {
	return r.advances[id], nil
}
func (r *fakeAdvanceRepo) List(limit, offset int) ([]*entity.Advance, error) {
	out := make([]*entity.Advance, 0, len(r.advances))
	for _, a := range r.advances {
		out = append(out, a)
	}
	return out, nil
}
func (r *fakeAdvanceRepo) ListByJob(jobID string) ([]*entity.Advance, error) {
	var out []*entity.Advance
	for _, a := range r.advances {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	return out, nil
}
func (r *fakeAdvanceRepo) Delete(id string) (bool, error) {
	_, ok := r.advances[id]
	delete(r.advances, id)
	return ok, nil
}

type fakeJobRepo struct {
	jobs map[string]*entity.Job
}

func newFakeJobRepo(jobs ...*entity.Job) *fakeJobRepo {
	m := make(map[string]*entity.Job)
	for _, j := range jobs {
		m[j.ID] = j
	}
	return &fakeJobRepo{jobs: m}
}

func (r *fakeJobRepo) Create(j *entity.Job) error                 { r.jobs[j.ID] = j; return nil }
func (r *fakeJobRepo) GetByID(id string) (*entity.Job, error)     { return r.jobs[id], nil }
func (r *fakeJobRepo) GetForUpdate(id string) (*entity.Job, error) { return r.jobs[id], nil }
func (r *fakeJobRepo) List(limit, offset int) ([]*entity.Job, error) {
	out := make([]*entity.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, j)
	}
	return out, nil
}
func (r *fakeJobRepo) ListByWorker(workerID string) ([]*entity.Job, error) { return nil, nil }
func (r *fakeJobRepo) Update(j *entity.Job) error                          { r.jobs[j.ID] = j; return nil }
func (r *fakeJobRepo) UpdateAmounts(id string, advanceAmount decimal.Decimal, status string) error {
	job, ok := r.jobs[id]
	if !ok {
		return domain.ErrNotFound
	}
	job.AdvanceAmount = advanceAmount
	job.Status = status
	return nil
}
func (r *fakeJobRepo) Delete(id string) (bool, error) {
	_, ok := r.jobs[id]
	delete(r.jobs, id)
	return ok, nil
}

type fakeTxRunner struct {
	advanceRepo *fakeAdvanceRepo
	jobRepo     *fakeJobRepo
}

func (tr *fakeTxRunner) Run(_ context.Context, fn func(repository.AdvanceRepository, repository.JobRepository) error) error {
	advSnap := make(map[string]*entity.Advance, len(tr.advanceRepo.advances))
	for k, v := range tr.advanceRepo.advances {
		c := *v
		advSnap[k] = &c
	}
	jobSnap := make(map[string]*entity.Job, len(tr.jobRepo.jobs))
	for k, v := range tr.jobRepo.jobs {
		c := *v
		jobSnap[k] = &c
	}
	if err := fn(tr.advanceRepo, tr.jobRepo); err != nil {
		tr.advanceRepo.advances = advSnap
		tr.jobRepo.jobs = jobSnap
		return err
	}
	return nil
}

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newAdvanceUseCase(jobs ...*entity.Job) (*workshop.AdvanceUseCase, *fakeAdvanceRepo, *fakeJobRepo) {
	advanceRepo := newFakeAdvanceRepo()
	jobRepo := newFakeJobRepo(jobs...)
	tx := &fakeTxRunner{advanceRepo: advanceRepo, jobRepo: jobRepo}
	return workshop.NewAdvanceUseCase(tx, advanceRepo, jobRepo), advanceRepo, jobRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateAdvance_SumaAlAcumulado(t *testing.T) {
	uc, advanceRepo, jobRepo := newAdvanceUseCase(&entity.Job{
		ID: "j1", TotalAmount: money("1000"), AdvanceAmount: decimal.Zero,
		Status: entity.JobStatusInProgress,
	})

	resp, err := uc.Create(context.Background(), dto.CreateAdvanceRequest{
		JobID: "j1", Amount: money("200"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Len(t, advanceRepo.advances, 1)

	job := jobRepo.jobs["j1"]
	assert.True(t, job.AdvanceAmount.Equal(money("200")))
	assert.Equal(t, entity.JobStatusInProgress, job.Status, "200 de 1000 no completa el trabajo")
}

func TestCreateAdvance_CompletaElTrabajoAlCubrirElTotal(t *testing.T) {
	uc, _, jobRepo := newAdvanceUseCase(&entity.Job{
		ID: "j1", TotalAmount: money("500"), AdvanceAmount: money("200"),
		Status: entity.JobStatusInProgress,
	})

	_, err := uc.Create(context.Background(), dto.CreateAdvanceRequest{
		JobID: "j1", Amount: money("300"),
	})
	require.NoError(t, err)

	job := jobRepo.jobs["j1"]
	assert.True(t, job.AdvanceAmount.Equal(money("500")))
	assert.Equal(t, entity.JobStatusCompleted, job.Status, "200+300 alcanza el total de 500")
}

func TestCreateAdvance_ExcederElTotalNoRechaza(t *testing.T) {
	// Superar el total registra igual (solo deja warning) y completa el trabajo.
	uc, advanceRepo, jobRepo := newAdvanceUseCase(&entity.Job{
		ID: "j1", TotalAmount: money("500"), AdvanceAmount: money("400"),
		Status: entity.JobStatusInProgress,
	})

	_, err := uc.Create(context.Background(), dto.CreateAdvanceRequest{
		JobID: "j1", Amount: money("300"),
	})
	require.NoError(t, err)
	assert.Len(t, advanceRepo.advances, 1)

	job := jobRepo.jobs["j1"]
	assert.True(t, job.AdvanceAmount.Equal(money("700")))
	assert.Equal(t, entity.JobStatusCompleted, job.Status)
}

func TestCreateAdvance_TrabajoInexistenteHaceRollback(t *testing.T) {
	uc, advanceRepo, _ := newAdvanceUseCase()

	_, err := uc.Create(context.Background(), dto.CreateAdvanceRequest{
		JobID: "no-existe", Amount: money("100"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, advanceRepo.advances)
}

func TestCreateAdvance_MontoInvalido(t *testing.T) {
	uc, _, _ := newAdvanceUseCase(&entity.Job{ID: "j1", TotalAmount: money("1000")})

	_, err := uc.Create(context.Background(), dto.CreateAdvanceRequest{JobID: "j1", Amount: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateAdvanceRequest{JobID: "j1", Amount: money("-50")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteAdvance_DescuentaSinRevertirEstado(t *testing.T) {
	// El trabajo se completó por adelantos; borrar uno descuenta el monto
	// pero el estado sigue completed.
	uc, advanceRepo, jobRepo := newAdvanceUseCase(&entity.Job{
		ID: "j1", TotalAmount: money("500"), AdvanceAmount: money("500"),
		Status: entity.JobStatusCompleted,
	})
	advanceRepo.advances["a1"] = &entity.Advance{ID: "a1", JobID: "j1", Amount: money("300")}

	deleted, err := uc.Delete(context.Background(), "a1")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Empty(t, advanceRepo.advances)

	job := jobRepo.jobs["j1"]
	assert.True(t, job.AdvanceAmount.Equal(money("200")))
	assert.Equal(t, entity.JobStatusCompleted, job.Status, "el estado no se revierte al borrar")
}

func TestDeleteAdvance_Inexistente(t *testing.T) {
	uc, _, _ := newAdvanceUseCase(&entity.Job{ID: "j1", TotalAmount: money("500")})

	deleted, err := uc.Delete(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.False(t, deleted, "borrar algo que no existe no es un error")
}

// ──────────────────────────────────────────────────────────────────────────────
// ListByJob
// ──────────────────────────────────────────────────────────────────────────────

func TestListByJob_TrabajoInexistente(t *testing.T) {
	uc, _, _ := newAdvanceUseCase()

	_, err := uc.ListByJob("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListByJob_SoloLosDelTrabajo(t *testing.T) {
	uc, advanceRepo, _ := newAdvanceUseCase(
		&entity.Job{ID: "j1", TotalAmount: money("1000")},
		&entity.Job{ID: "j2", TotalAmount: money("800")},
	)
	advanceRepo.advances["a1"] = &entity.Advance{ID: "a1", JobID: "j1", Amount: money("100")}
	advanceRepo.advances["a2"] = &entity.Advance{ID: "a2", JobID: "j2", Amount: money("200")}

	resp, err := uc.ListByJob("j1")
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "a1", resp.Items[0].ID)
}
