package animations

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/eduviz/internal/data/repos/testutil"
	"github.com/yungbote/eduviz/internal/domain/content"
	"github.com/yungbote/eduviz/internal/pkg/dbctx"
	pkgerrors "github.com/yungbote/eduviz/internal/pkg/errors"
)

func TestAnimationRepo(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	dbc := dbctx.For(ctx)
	repo := NewAnimationRepo(db, testutil.Logger(t))

	created, err := repo.Create(dbc, &content.Animation{
		Prompt:        "show me force and motion",
		Subject:       "physics",
		AnimationType: "physics",
		PrimitiveType: "sphere",
		GeneratedText: "The visualization shows how force and motion works in physics.",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatalf("Create did not assign an id")
	}
	if string(created.Objects) != "[]" {
		t.Fatalf("objects default=%s", created.Objects)
	}

	got, err := repo.GetByID(dbc, created.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID: got=%v err=%v", got, err)
	}
	if got.Prompt != created.Prompt || got.Subject != "physics" {
		t.Fatalf("GetByID returned %+v", got)
	}

	objects := datatypes.JSON([]byte(`[{"id":"a1","type":"cube","x":1,"y":2}]`))
	if err := repo.UpdateObjects(dbc, created.ID, objects); err != nil {
		t.Fatalf("UpdateObjects: %v", err)
	}
	got, err = repo.GetByID(dbc, created.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID after update: got=%v err=%v", got, err)
	}
	if string(got.Objects) != string(objects) {
		t.Fatalf("objects=%s", got.Objects)
	}

	if err := repo.UpdateObjects(dbc, uuid.New(), objects); !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("UpdateObjects unknown id: err=%v", err)
	}
	if missing, err := repo.GetByID(dbc, uuid.New()); err != nil || missing != nil {
		t.Fatalf("GetByID unknown id: got=%v err=%v", missing, err)
	}
}

func TestAnimationRepoListAndDelete(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	dbc := dbctx.For(ctx)
	repo := NewAnimationRepo(db, testutil.Logger(t))

	a := testutil.SeedAnimation(t, ctx, db, "cell", content.SubjectBiology)
	testutil.SeedAnimation(t, ctx, db, "atom", content.SubjectChemistry)
	testutil.SeedAnimation(t, ctx, db, "vector", content.SubjectMath)

	rows, err := repo.ListRecent(dbc, "", 2)
	if err != nil || len(rows) != 2 {
		t.Fatalf("ListRecent: err=%v len=%d", err, len(rows))
	}
	rows, err = repo.ListRecent(dbc, "", 0)
	if err != nil || len(rows) != 3 {
		t.Fatalf("ListRecent(0): err=%v len=%d", err, len(rows))
	}
	rows, err = repo.ListRecent(dbc, content.SubjectChemistry, 0)
	if err != nil || len(rows) != 1 || rows[0].Prompt != "atom" {
		t.Fatalf("ListRecent(chemistry): err=%v rows=%v", err, rows)
	}

	if err := repo.SoftDelete(dbc, a.ID); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}
	if got, err := repo.GetByID(dbc, a.ID); err != nil || got != nil {
		t.Fatalf("GetByID after delete: got=%v err=%v", got, err)
	}
	if err := repo.UpdateObjects(dbc, a.ID, nil); !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("UpdateObjects after delete: err=%v", err)
	}
	if err := repo.SoftDelete(dbc, a.ID); !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("SoftDelete twice: err=%v", err)
	}
	rows, err = repo.ListRecent(dbc, content.SubjectBiology, 0)
	if err != nil || len(rows) != 0 {
		t.Fatalf("ListRecent(biology) after delete: err=%v len=%d", err, len(rows))
	}
}

func TestAnimationRepoTxRollback(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := NewAnimationRepo(db, testutil.Logger(t))

	tx := db.Begin()
	if tx.Error != nil {
		t.Fatalf("begin: %v", tx.Error)
	}
	row, err := repo.Create(dbctx.For(ctx).WithTx(tx), &content.Animation{Prompt: "x", Subject: "default", AnimationType: "rotate", PrimitiveType: "cube", GeneratedText: "x"})
	if err != nil {
		t.Fatalf("Create in tx: %v", err)
	}
	if err := tx.Rollback().Error; err != nil {
		t.Fatalf("rollback: %v", err)
	}
	if got, err := repo.GetByID(dbctx.For(ctx), row.ID); err != nil || got != nil {
		t.Fatalf("row survived rollback: got=%v err=%v", got, err)
	}
}
