package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"qa-board-sync/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func setupRepository(t *testing.T) *implRepository {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "board.sqlite")
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	if err := Migrate(db); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return New(db, &mockLogger{})
}

func sampleMapping(projectID int) model.ColumnMapping {
	return model.ColumnMapping{
		ProjectID:   projectID,
		OwnerUserID: "u1",
		Columns: []model.Column{
			{ID: "pending", Order: 0, Label: "qa::ready", Type: model.ColumnTypePending},
			{ID: "passed", Order: 1, Label: "qa::passed", Type: model.ColumnTypePassed},
			{ID: "failed", Order: 2, Label: "qa::failed", Type: model.ColumnTypeFailed},
		},
	}
}

func TestSaveAndGetMapping(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	t.Run("unknown project returns zero value without error", func(t *testing.T) {
		got, err := repo.GetMapping(ctx, 999)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ProjectID != 0 || len(got.Columns) != 0 {
			t.Errorf("expected zero value, got %+v", got)
		}
	})

	t.Run("round trip preserves columns in position order", func(t *testing.T) {
		if _, err := repo.SaveMapping(ctx, sampleMapping(500)); err != nil {
			t.Fatalf("save: %v", err)
		}

		got, err := repo.GetMapping(ctx, 500)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.OwnerUserID != "u1" {
			t.Errorf("unexpected owner %q", got.OwnerUserID)
		}
		wantIDs := []string{"pending", "passed", "failed"}
		if len(got.Columns) != len(wantIDs) {
			t.Fatalf("expected %d columns, got %d", len(wantIDs), len(got.Columns))
		}
		for i, c := range got.Columns {
			if c.ID != wantIDs[i] {
				t.Errorf("column %d: expected %s, got %s", i, wantIDs[i], c.ID)
			}
			if c.Order != i {
				t.Errorf("column %d: expected order %d, got %d", i, i, c.Order)
			}
		}
	})

	t.Run("resave replaces the column set", func(t *testing.T) {
		if _, err := repo.SaveMapping(ctx, sampleMapping(600)); err != nil {
			t.Fatalf("save: %v", err)
		}

		next := model.ColumnMapping{
			ProjectID:   600,
			OwnerUserID: "u2",
			Columns: []model.Column{
				{ID: "todo", Order: 0, Label: "qa::todo", Type: model.ColumnTypePending},
				{ID: "done", Order: 1, Label: "qa::done", Type: model.ColumnTypePassed},
				{ID: "broken", Order: 2, Label: "qa::broken", Type: model.ColumnTypeFailed},
			},
		}
		if _, err := repo.SaveMapping(ctx, next); err != nil {
			t.Fatalf("resave: %v", err)
		}

		got, err := repo.GetMapping(ctx, 600)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.OwnerUserID != "u2" {
			t.Errorf("owner not updated: %q", got.OwnerUserID)
		}
		if len(got.Columns) != 3 || got.Columns[0].ID != "todo" {
			t.Errorf("old column set survived: %+v", got.Columns)
		}
	})

	t.Run("projects do not leak into each other", func(t *testing.T) {
		if _, err := repo.SaveMapping(ctx, sampleMapping(700)); err != nil {
			t.Fatalf("save: %v", err)
		}
		if _, err := repo.SaveMapping(ctx, sampleMapping(701)); err != nil {
			t.Fatalf("save: %v", err)
		}

		got, err := repo.GetMapping(ctx, 700)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if len(got.Columns) != 3 {
			t.Errorf("expected 3 columns for project 700, got %d", len(got.Columns))
		}
	})
}
