package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivanirao5/Medical-claim/constants"
	"github.com/shivanirao5/Medical-claim/internal/common"
	"github.com/shivanirao5/Medical-claim/internal/entity"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "runs.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleRun() *entity.AnalysisResult {
	return &entity.AnalysisResult{
		RunID: uuid.New(),
		Items: []entity.AnalysisItem{
			{ID: "item-1", ItemName: "Paracetamol 500mg Tablet", ClaimedPrice: 25,
				Status: constants.StatusAdmissible, ApprovedPrice: 25, ReimbursementAmount: 25,
				Category: constants.CategoryMedicine},
		},
		Patient:   entity.PatientInfo{Name: "Ramesh Kumar", Relation: constants.RelationSelf},
		Documents: []entity.StructuredDocument{},
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}

func TestSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	run := sampleRun()

	require.NoError(t, s.Save(ctx, run))

	got, err := s.Get(ctx, run.RunID)
	require.NoError(t, err)
	assert.Equal(t, run.RunID, got.RunID)
	assert.Equal(t, run.Patient, got.Patient)
	require.Len(t, got.Items, 1)
	assert.Equal(t, run.Items[0], got.Items[0])
	assert.True(t, run.CreatedAt.Equal(got.CreatedAt))
}

func TestGetUnknownRun(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
	assert.Equal(t, "NotFound", common.ErrorKind(err))
}

func TestSaveIsUpsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	run := sampleRun()

	require.NoError(t, s.Save(ctx, run))
	run.Items[0].ApprovedPrice = 10
	require.NoError(t, s.Save(ctx, run))

	got, err := s.Get(ctx, run.RunID)
	require.NoError(t, err)
	assert.InDelta(t, 10, got.Items[0].ApprovedPrice, 0.001)

	runs, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, runs, 1, "re-saving does not duplicate")
}

func TestListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	older := sampleRun()
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	newer := sampleRun()
	newer.Patient.Name = "Anita Desai"

	require.NoError(t, s.Save(ctx, older))
	require.NoError(t, s.Save(ctx, newer))

	runs, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, newer.RunID, runs[0].ID)
	assert.Equal(t, "Anita Desai", runs[0].PatientName)
	assert.Equal(t, 1, runs[0].ItemCount)
	assert.Equal(t, older.RunID, runs[1].ID)
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	run := sampleRun()

	require.NoError(t, s.Save(ctx, run))
	require.NoError(t, s.Delete(ctx, run.RunID))

	_, err := s.Get(ctx, run.RunID)
	assert.True(t, errors.Is(err, common.ErrNotFound))

	// deleting an absent run is not an error
	assert.NoError(t, s.Delete(ctx, uuid.New()))
}
