package service

import (
	"testing"

	"go-kerat-tracking/internal/apperr"
	"go-kerat-tracking/internal/model"
	"go-kerat-tracking/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeratGenerate_Sequence(t *testing.T) {
	db := setupTestDB(t)
	svc := NewKeratService(db, repository.NewKeratRepo(db))

	first, err := svc.Generate()
	require.NoError(t, err)
	assert.Equal(t, "K001", first.ID)

	second, err := svc.Generate()
	require.NoError(t, err)
	assert.Equal(t, "K002", second.ID)
}

func TestKeratGenerate_ContinuesFromHighest(t *testing.T) {
	db := setupTestDB(t)
	svc := NewKeratService(db, repository.NewKeratRepo(db))

	require.NoError(t, db.Create(&model.Kerat{ID: "K009"}).Error)

	kerat, err := svc.Generate()
	require.NoError(t, err)
	assert.Equal(t, "K010", kerat.ID)
}

func TestKeratGenerate_MalformedLatestState(t *testing.T) {
	db := setupTestDB(t)
	svc := NewKeratService(db, repository.NewKeratRepo(db))

	// Row korup di tabel: urutan string menempatkannya paling atas
	require.NoError(t, db.Create(&model.Kerat{ID: "KXX"}).Error)

	_, err := svc.Generate()
	assert.ErrorIs(t, err, apperr.ErrStore)
}

func TestKeratGetLatest_Empty(t *testing.T) {
	db := setupTestDB(t)
	svc := NewKeratService(db, repository.NewKeratRepo(db))

	_, err := svc.GetLatest()
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestKeratGenerateN(t *testing.T) {
	db := setupTestDB(t)
	svc := NewKeratService(db, repository.NewKeratRepo(db))

	kerats, err := svc.GenerateN(3)
	require.NoError(t, err)
	require.Len(t, kerats, 3)
	assert.Equal(t, "K003", kerats[2].ID)

	_, err = svc.GenerateN(0)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}
