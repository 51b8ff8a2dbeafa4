package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/mailajoket/stats-api/internal/domain/team"
	"github.com/mailajoket/stats-api/internal/tablestore"
)

// LabeledSeason is a season with its display label, for filter UIs.
type LabeledSeason struct {
	SeasonID int64  `json:"seasonId"`
	Label    string `json:"label"`
}

// Opponent is one opposing team the selected team has faced.
type Opponent struct {
	TeamID int64  `json:"teamId"`
	Name   string `json:"name"`
}

// CatalogService serves the reference lists the filter surfaces are
// built from, plus the schema validation report.
type CatalogService struct {
	provider StoreProvider
	teamName string
}

func NewCatalogService(provider StoreProvider, teamName string) *CatalogService {
	return &CatalogService{provider: provider, teamName: teamName}
}

// Seasons returns every season labeled, newest first. Seasons without
// years sort last, by id descending.
func (s *CatalogService) Seasons(ctx context.Context) ([]LabeledSeason, error) {
	ctx, span := startUsecaseSpan(ctx, "CatalogService.Seasons")
	defer span.End()

	store, err := resolveStore(ctx, s.provider)
	if err != nil {
		return nil, err
	}

	rows := make([]LabeledSeason, 0, len(store.Seasons))
	starts := make(map[int64]*int, len(store.Seasons))
	for _, row := range store.Seasons {
		rows = append(rows, LabeledSeason{SeasonID: row.ID, Label: row.Label()})
		starts[row.ID] = row.StartYear
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := starts[rows[i].SeasonID], starts[rows[j].SeasonID]
		switch {
		case a != nil && b != nil:
			if *a != *b {
				return *a > *b
			}
		case a != nil:
			return true
		case b != nil:
			return false
		}
		return rows[i].SeasonID > rows[j].SeasonID
	})

	return rows, nil
}

// Teams returns the Teams table as loaded.
func (s *CatalogService) Teams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "CatalogService.Teams")
	defer span.End()

	store, err := resolveStore(ctx, s.provider)
	if err != nil {
		return nil, err
	}

	out := make([]team.Team, len(store.Teams))
	copy(out, store.Teams)
	return out, nil
}

// Selected resolves the configured team against the workbook, aliases
// included.
func (s *CatalogService) Selected(ctx context.Context) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "CatalogService.Selected")
	defer span.End()

	store, err := resolveStore(ctx, s.provider)
	if err != nil {
		return team.Team{}, err
	}

	id := selectedTeamID(store, s.teamName)
	if id == nil {
		return team.Team{}, fmt.Errorf("%w: team %q is not in the workbook", ErrNotFound, s.teamName)
	}
	return team.Team{ID: *id, Name: store.TeamName(*id)}, nil
}

// Opponents lists the distinct opponents of the selected team, sorted by
// id. An unresolved selected team has no opponents.
func (s *CatalogService) Opponents(ctx context.Context) ([]Opponent, error) {
	ctx, span := startUsecaseSpan(ctx, "CatalogService.Opponents")
	defer span.End()

	store, err := resolveStore(ctx, s.provider)
	if err != nil {
		return nil, err
	}

	teamID := selectedTeamID(store, s.teamName)
	if teamID == nil {
		return []Opponent{}, nil
	}

	ids := store.Opponents(*teamID)
	out := make([]Opponent, 0, len(ids))
	for _, id := range ids {
		out = append(out, Opponent{TeamID: id, Name: store.TeamName(id)})
	}
	return out, nil
}

// Schema returns the validation report for the loaded store.
func (s *CatalogService) Schema(ctx context.Context) (tablestore.ValidationReport, error) {
	ctx, span := startUsecaseSpan(ctx, "CatalogService.Schema")
	defer span.End()

	store, err := resolveStore(ctx, s.provider)
	if err != nil {
		return tablestore.ValidationReport{}, err
	}
	return store.Validate(), nil
}
