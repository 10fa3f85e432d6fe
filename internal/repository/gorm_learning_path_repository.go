package repository

import (
	"context"
	"errors"

	"smart_learning_path/internal/model"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GormLearningPathStore keeps learning paths in a SQL table (mysql, postgres
// or sqlite), one JSON document per row.
type GormLearningPathStore struct {
	DB      *gorm.DB
	dialect string
	log     *zap.Logger
}

func NewGormLearningPathStore(db *gorm.DB, log *zap.Logger) *GormLearningPathStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &GormLearningPathStore{DB: db, dialect: db.Dialector.Name(), log: log}
}

func (r *GormLearningPathStore) Create(ctx context.Context, p *model.LearningPath) (string, error) {
	id := newID()
	doc, err := encodeDocument(id, p)
	if err != nil {
		return "", &StoreError{Op: "create", Err: err}
	}

	rec := model.LearningPathRecord{
		ID:         id,
		PathTitle:  p.PathTitle,
		TotalWeeks: p.TotalWeeks,
		TotalHours: p.TotalHours,
		Document:   datatypes.JSON(doc),
		CreatedAt:  p.CreatedAt,
	}
	if err := r.DB.WithContext(ctx).Create(&rec).Error; err != nil {
		return "", &StoreError{Op: "create", Err: err}
	}
	return id, nil
}

func (r *GormLearningPathStore) Get(ctx context.Context, id string) (*model.LearningPath, error) {
	var rec model.LearningPathRecord
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &StoreError{Op: "get", Err: err}
	}

	p, err := decodeDocument(rec.ID, rec.Document)
	if err != nil {
		return nil, &StoreError{Op: "get", Err: err}
	}
	return p, nil
}

func (r *GormLearningPathStore) List(ctx context.Context, limit int) ([]model.LearningPath, error) {
	out := []model.LearningPath{}
	if limit <= 0 {
		return out, nil
	}

	var recs []model.LearningPathRecord
	if err := r.DB.WithContext(ctx).Order("id asc").Limit(limit).Find(&recs).Error; err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}

	for _, rec := range recs {
		p, err := decodeDocument(rec.ID, rec.Document)
		if err != nil {
			r.log.Warn("skipping invalid learning path row", zap.String("id", rec.ID), zap.Error(err))
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *GormLearningPathStore) Delete(ctx context.Context, id string) (bool, error) {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&model.LearningPathRecord{})
	if res.Error != nil {
		return false, &StoreError{Op: "delete", Err: res.Error}
	}
	return res.RowsAffected > 0, nil
}

func (r *GormLearningPathStore) Mode() string { return r.dialect }
