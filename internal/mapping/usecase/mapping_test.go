package usecase

import (
	"context"
	"testing"

	"qa-board-sync/internal/mapping"
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

type mockRepo struct {
	stored model.ColumnMapping
	saves  int
}

func (m *mockRepo) GetMapping(ctx context.Context, projectID int) (model.ColumnMapping, error) {
	return m.stored, nil
}

func (m *mockRepo) SaveMapping(ctx context.Context, mp model.ColumnMapping) (model.ColumnMapping, error) {
	m.stored = mp
	m.saves++
	return mp, nil
}

type mockInvalidator struct {
	invalidated []int
}

func (m *mockInvalidator) Invalidate(projectID int) {
	m.invalidated = append(m.invalidated, projectID)
}

func validColumns() []model.Column {
	return []model.Column{
		{ID: "pending", Order: 0, Label: "qa::ready", Type: model.ColumnTypePending},
		{ID: "passed", Order: 1, Label: "qa::passed", Type: model.ColumnTypePassed},
		{ID: "failed", Order: 2, Label: "qa::failed", Type: model.ColumnTypeFailed},
	}
}

func TestSave(t *testing.T) {
	ctx := context.Background()

	t.Run("valid mapping persists and invalidates cache", func(t *testing.T) {
		repo := &mockRepo{}
		inv := &mockInvalidator{}
		uc := New(repo, inv, &mockLogger{})

		out, err := uc.Save(ctx, mapping.SaveMappingInput{
			ProjectID:   500,
			OwnerUserID: "u1",
			Columns:     validColumns(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.saves != 1 {
			t.Errorf("expected 1 save, got %d", repo.saves)
		}
		if len(inv.invalidated) != 1 || inv.invalidated[0] != 500 {
			t.Errorf("expected cache invalidation for project 500, got %v", inv.invalidated)
		}
		if len(out.Mapping.Columns) != 3 {
			t.Errorf("expected 3 columns, got %d", len(out.Mapping.Columns))
		}
	})

	t.Run("two passed and no failed is rejected before write", func(t *testing.T) {
		repo := &mockRepo{stored: model.ColumnMapping{
			ProjectID:   500,
			OwnerUserID: "u1",
			Columns:     validColumns(),
		}}
		uc := New(repo, &mockInvalidator{}, &mockLogger{})

		cols := []model.Column{
			{ID: "a", Order: 0, Label: "qa::passed", Type: model.ColumnTypePassed},
			{ID: "b", Order: 1, Label: "qa::verified", Type: model.ColumnTypePassed},
		}
		_, err := uc.Save(ctx, mapping.SaveMappingInput{ProjectID: 500, OwnerUserID: "u1", Columns: cols})
		if err != mapping.ErrPassedColumnCount {
			t.Errorf("expected ErrPassedColumnCount, got %v", err)
		}
		if repo.saves != 0 {
			t.Errorf("expected no write, got %d saves", repo.saves)
		}
		// prior mapping untouched
		if len(repo.stored.Columns) != 3 {
			t.Errorf("prior mapping was modified")
		}
	})

	t.Run("empty mapping is rejected", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockInvalidator{}, &mockLogger{})
		_, err := uc.Save(ctx, mapping.SaveMappingInput{ProjectID: 1, OwnerUserID: "u1"})
		if err != mapping.ErrEmptyMapping {
			t.Errorf("expected ErrEmptyMapping, got %v", err)
		}
	})

	t.Run("duplicate ids are rejected", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockInvalidator{}, &mockLogger{})
		cols := validColumns()
		cols[2].ID = cols[0].ID
		_, err := uc.Save(ctx, mapping.SaveMappingInput{ProjectID: 1, OwnerUserID: "u1", Columns: cols})
		if err != mapping.ErrDuplicateColumnID {
			t.Errorf("expected ErrDuplicateColumnID, got %v", err)
		}
	})

	t.Run("missing failed column is rejected", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockInvalidator{}, &mockLogger{})
		cols := []model.Column{
			{ID: "pending", Order: 0, Label: "qa::ready", Type: model.ColumnTypePending},
			{ID: "passed", Order: 1, Label: "qa::passed", Type: model.ColumnTypePassed},
		}
		_, err := uc.Save(ctx, mapping.SaveMappingInput{ProjectID: 1, OwnerUserID: "u1", Columns: cols})
		if err != mapping.ErrFailedColumnCount {
			t.Errorf("expected ErrFailedColumnCount, got %v", err)
		}
	})

	t.Run("sparse order values are normalized dense zero-based", func(t *testing.T) {
		repo := &mockRepo{}
		uc := New(repo, &mockInvalidator{}, &mockLogger{})

		cols := []model.Column{
			{ID: "failed", Order: 30, Label: "qa::failed", Type: model.ColumnTypeFailed},
			{ID: "pending", Order: 5, Label: "qa::ready", Type: model.ColumnTypePending},
			{ID: "passed", Order: 12, Label: "qa::passed", Type: model.ColumnTypePassed},
		}
		out, err := uc.Save(ctx, mapping.SaveMappingInput{ProjectID: 1, OwnerUserID: "u1", Columns: cols})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"pending", "passed", "failed"}
		for i, c := range out.Mapping.Columns {
			if c.Order != i {
				t.Errorf("column %d: expected order %d, got %d", i, i, c.Order)
			}
			if c.ID != want[i] {
				t.Errorf("column %d: expected %s, got %s", i, want[i], c.ID)
			}
		}
	})
}

func TestGet(t *testing.T) {
	ctx := context.Background()

	t.Run("unconfigured project gets defaults", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockInvalidator{}, &mockLogger{})
		out, err := uc.Get(ctx, 42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Defaulted {
			t.Error("expected Defaulted")
		}
		if len(out.Mapping.Columns) != 3 {
			t.Errorf("expected 3 default columns, got %d", len(out.Mapping.Columns))
		}
	})

	t.Run("configured project gets stored mapping", func(t *testing.T) {
		repo := &mockRepo{stored: model.ColumnMapping{
			ProjectID:   42,
			OwnerUserID: "u1",
			Columns:     validColumns(),
		}}
		uc := New(repo, &mockInvalidator{}, &mockLogger{})
		out, err := uc.Get(ctx, 42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Defaulted {
			t.Error("expected stored mapping, not defaults")
		}
		if out.Mapping.OwnerUserID != "u1" {
			t.Errorf("unexpected owner %q", out.Mapping.OwnerUserID)
		}
	})
}
