package repository

import (
	"context"
	"testing"

	"smart_learning_path/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.LearningPathRecord{}))
	return db
}

func TestGormStoreContract(t *testing.T) {
	runStoreContract(t, func(t *testing.T) LearningPathStore {
		return NewGormLearningPathStore(newSQLiteDB(t), nil)
	})
}

func TestGormStoreModeAndColumns(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	s := NewGormLearningPathStore(db, nil)
	assert.Equal(t, "sqlite", s.Mode())

	id, err := s.Create(ctx, samplePath("columns"))
	require.NoError(t, err)

	var rec model.LearningPathRecord
	require.NoError(t, db.First(&rec, "id = ?", id).Error)
	assert.Equal(t, "columns", rec.PathTitle)
	assert.Equal(t, 2, rec.TotalWeeks)
	assert.InDelta(t, 20, rec.TotalHours, 0.001)
}

func TestGormStoreQuarantinesInvalidRows(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	s := NewGormLearningPathStore(db, nil)

	good, err := s.Create(ctx, samplePath("good"))
	require.NoError(t, err)

	bad := model.LearningPathRecord{
		ID:       "ffffffff-ffff-7fff-bfff-ffffffffffff",
		Document: datatypes.JSON(`{"path_title":"old shape","weekly":"nope"}`),
	}
	require.NoError(t, db.Create(&bad).Error)

	list, err := s.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, good, list[0].ID)

	_, err = s.Get(ctx, bad.ID)
	assert.ErrorIs(t, err, ErrInvalidRecord)
}
