package animations

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/eduviz/internal/domain/content"
	"github.com/yungbote/eduviz/internal/pkg/dbctx"
	pkgerrors "github.com/yungbote/eduviz/internal/pkg/errors"
	"github.com/yungbote/eduviz/internal/platform/logger"
)

const maxListLimit = 100

type AnimationRepo interface {
	Create(dbc dbctx.Context, row *content.Animation) (*content.Animation, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*content.Animation, error)
	ListRecent(dbc dbctx.Context, subject content.SubjectTag, limit int) ([]*content.Animation, error)
	UpdateObjects(dbc dbctx.Context, id uuid.UUID, objects datatypes.JSON) error
	SoftDelete(dbc dbctx.Context, id uuid.UUID) error
}

type animationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAnimationRepo(db *gorm.DB, baseLog *logger.Logger) AnimationRepo {
	return &animationRepo{db: db, log: baseLog.With("repo", "AnimationRepo")}
}

func (r *animationRepo) tx(dbc dbctx.Context) *gorm.DB {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if dbc.Ctx != nil {
		t = t.WithContext(dbc.Ctx)
	}
	return t
}

func (r *animationRepo) Create(dbc dbctx.Context, row *content.Animation) (*content.Animation, error) {
	if row == nil {
		return nil, fmt.Errorf("animation row required: %w", pkgerrors.ErrInvalidArgument)
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if len(row.Objects) == 0 {
		row.Objects = datatypes.JSON([]byte("[]"))
	}
	if len(row.Context) == 0 {
		row.Context = datatypes.JSON([]byte("{}"))
	}
	if err := r.tx(dbc).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// GetByID returns nil, nil when no live row has the id.
func (r *animationRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*content.Animation, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var out []*content.Animation
	if err := r.tx(dbc).Where("id = ?", id).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

// ListRecent returns the newest rows first; an empty subject matches every subject.
func (r *animationRepo) ListRecent(dbc dbctx.Context, subject content.SubjectTag, limit int) ([]*content.Animation, error) {
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}
	q := r.tx(dbc)
	if subject != "" {
		q = q.Where("subject = ?", string(subject))
	}
	var out []*content.Animation
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *animationRepo) UpdateObjects(dbc dbctx.Context, id uuid.UUID, objects datatypes.JSON) error {
	if id == uuid.Nil {
		return pkgerrors.ErrNotFound
	}
	if len(objects) == 0 {
		objects = datatypes.JSON([]byte("[]"))
	}
	res := r.tx(dbc).
		Model(&content.Animation{}).
		Where("id = ?", id).
		Update("objects", objects)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pkgerrors.NotFoundf("animation %s", id)
	}
	return nil
}

func (r *animationRepo) SoftDelete(dbc dbctx.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.ErrNotFound
	}
	res := r.tx(dbc).Where("id = ?", id).Delete(&content.Animation{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pkgerrors.NotFoundf("animation %s", id)
	}
	return nil
}
