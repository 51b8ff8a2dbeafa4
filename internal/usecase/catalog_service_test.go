package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/mailajoket/stats-api/internal/tablestore"
)

func TestCatalogService_Seasons_NewestFirst(t *testing.T) {
	t.Parallel()

	service := NewCatalogService(fixtureProvider(t), "Mailajoket")

	got, err := service.Seasons(context.Background())
	if err != nil {
		t.Fatalf("Seasons error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 seasons, got %d", len(got))
	}
	if got[0].Label != "2015-2016" || got[1].Label != "2014-2015" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestCatalogService_Selected_ViaAlias(t *testing.T) {
	t.Parallel()

	service := NewCatalogService(fixtureProvider(t), "mj")

	got, err := service.Selected(context.Background())
	if err != nil {
		t.Fatalf("Selected error: %v", err)
	}
	if got.ID != 1 || got.Name != "Mailajoket" {
		t.Fatalf("unexpected team: %+v", got)
	}
}

func TestCatalogService_Selected_NotFound(t *testing.T) {
	t.Parallel()

	service := NewCatalogService(fixtureProvider(t), "Ei Ketään")

	_, err := service.Selected(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalogService_Opponents(t *testing.T) {
	t.Parallel()

	service := NewCatalogService(fixtureProvider(t), "Mailajoket")

	got, err := service.Opponents(context.Background())
	if err != nil {
		t.Fatalf("Opponents error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 opponents, got %+v", got)
	}
	if got[0].TeamID != 2 || got[0].Name != "Kiekkokarhut" {
		t.Fatalf("unexpected first opponent: %+v", got[0])
	}
	if got[1].TeamID != 3 || got[1].Name != "Sudet" {
		t.Fatalf("unexpected second opponent: %+v", got[1])
	}
}

func TestCatalogService_Schema(t *testing.T) {
	t.Parallel()

	store := &tablestore.Store{Schema: map[string]tablestore.TableSchema{}}
	service := NewCatalogService(&stubProvider{store: store}, "Mailajoket")

	got, err := service.Schema(context.Background())
	if err != nil {
		t.Fatalf("Schema error: %v", err)
	}
	if got.Valid {
		t.Fatalf("empty schema cannot be valid: %+v", got)
	}
	if len(got.Problems) != len(tablestore.RequiredColumns) {
		t.Fatalf("expected one problem per table, got %+v", got.Problems)
	}
}
