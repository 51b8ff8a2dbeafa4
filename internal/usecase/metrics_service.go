package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/mailajoket/stats-api/internal/domain/match"
	"github.com/mailajoket/stats-api/internal/tablestore"
)

// Summary is the aggregate record over a set of enriched matches. Rows
// whose perspective is not applicable are excluded from every figure.
type Summary struct {
	GamesPlayed         int     `json:"gamesPlayed"`
	Wins                int     `json:"wins"`
	Draws               int     `json:"draws"`
	Losses              int     `json:"losses"`
	GoalsFor            int     `json:"goalsFor"`
	GoalsAgainst        int     `json:"goalsAgainst"`
	GoalDiff            int     `json:"goalDiff"`
	Points              int     `json:"points"`
	PointsPerGame       float64 `json:"pointsPerGame"`
	GoalsForPerGame     float64 `json:"goalsForPerGame"`
	GoalsAgainstPerGame float64 `json:"goalsAgainstPerGame"`
}

// MatchHighlight is one singled-out match: the best win or the worst loss.
type MatchHighlight struct {
	Date         *time.Time `json:"date"`
	Opponent     string     `json:"opponent"`
	GoalsFor     int        `json:"goalsFor"`
	GoalsAgainst int        `json:"goalsAgainst"`
	GoalDiff     int        `json:"goalDiff"`
}

// Form is the record over the last N applicable rows. Record reads
// "W-D-L"; it is "N/A" when no row applies.
type Form struct {
	Record string `json:"record"`
	Wins   int    `json:"wins"`
	Draws  int    `json:"draws"`
	Losses int    `json:"losses"`
	Points int    `json:"points"`
}

// FormNotAvailable marks a form computed over zero applicable rows.
const FormNotAvailable = "N/A"

// OpponentRecord is the head-to-head record against one opponent.
type OpponentRecord struct {
	OpponentID int64   `json:"opponentId"`
	Opponent   string  `json:"opponent"`
	Games      int     `json:"games"`
	Wins       int     `json:"wins"`
	Draws      int     `json:"draws"`
	Losses     int     `json:"losses"`
	WinPct     float64 `json:"winPct"`
}

// TrendPoint is one step of the cumulative points series.
type TrendPoint struct {
	Date   time.Time `json:"date"`
	Points int       `json:"points"`
}

// OutcomePoint is one step of the cumulative outcome counts.
type OutcomePoint struct {
	Date   time.Time `json:"date"`
	Wins   int       `json:"wins"`
	Draws  int       `json:"draws"`
	Losses int       `json:"losses"`
}

// Overview bundles the summary endpoint payload.
type Overview struct {
	Summary   Summary         `json:"summary"`
	BestWin   *MatchHighlight `json:"bestWin"`
	WorstLoss *MatchHighlight `json:"worstLoss"`
	Form      Form            `json:"form"`
}

// MetricsService computes the aggregate views over the filtered matches.
// Every method fails soft on data shape: empty input yields zero values.
type MetricsService struct {
	provider   StoreProvider
	teamName   string
	formWindow int
}

func NewMetricsService(provider StoreProvider, teamName string, formWindow int) *MetricsService {
	if formWindow <= 0 {
		formWindow = 5
	}
	return &MetricsService{provider: provider, teamName: teamName, formWindow: formWindow}
}

func (s *MetricsService) view(ctx context.Context, criteria Criteria) ([]EnrichedMatch, *int64, error) {
	store, err := resolveStore(ctx, s.provider)
	if err != nil {
		return nil, nil, err
	}

	teamID := selectedTeamID(store, s.teamName)
	rows := EnrichMatches(store, teamID, FilterMatches(store, teamID, criteria))
	SortMatchesByDate(rows)

	return rows, teamID, nil
}

// Overview returns the summary, best win, worst loss and recent form for
// the filtered view. lastN overrides the configured form window when
// positive.
func (s *MetricsService) Overview(ctx context.Context, criteria Criteria, lastN int) (Overview, error) {
	ctx, span := startUsecaseSpan(ctx, "MetricsService.Overview")
	defer span.End()

	rows, teamID, err := s.view(ctx, criteria)
	if err != nil {
		return Overview{}, err
	}

	window := s.formWindow
	if lastN > 0 {
		window = lastN
	}

	best, worst := CalculateBestWorst(rows, teamID)
	return Overview{
		Summary:   CalculateSummary(rows),
		BestWin:   best,
		WorstLoss: worst,
		Form:      CalculateForm(rows, window),
	}, nil
}

// PointsTrend returns the cumulative points series for the filtered view.
func (s *MetricsService) PointsTrend(ctx context.Context, criteria Criteria) ([]TrendPoint, error) {
	ctx, span := startUsecaseSpan(ctx, "MetricsService.PointsTrend")
	defer span.End()

	rows, _, err := s.view(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return CalculateCumulativePoints(rows), nil
}

// OutcomeTrend returns the cumulative W/D/L series for the filtered view.
func (s *MetricsService) OutcomeTrend(ctx context.Context, criteria Criteria) ([]OutcomePoint, error) {
	ctx, span := startUsecaseSpan(ctx, "MetricsService.OutcomeTrend")
	defer span.End()

	rows, _, err := s.view(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return CalculateCumulativeOutcomes(rows), nil
}

// OpponentBreakdown returns the per-opponent records for the filtered
// view, most-played opponents first.
func (s *MetricsService) OpponentBreakdown(ctx context.Context, criteria Criteria) ([]OpponentRecord, error) {
	ctx, span := startUsecaseSpan(ctx, "MetricsService.OpponentBreakdown")
	defer span.End()

	rows, teamID, err := s.view(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return CalculateOpponentBreakdown(rows, teamID), nil
}

// CalculateSummary aggregates the applicable rows. Per-game rates are
// rounded to two decimals; with zero games every figure is zero.
func CalculateSummary(rows []EnrichedMatch) Summary {
	var out Summary
	for _, row := range rows {
		p := row.Perspective
		if !p.Applicable {
			continue
		}
		out.GamesPlayed++
		switch p.Outcome {
		case match.OutcomeWin:
			out.Wins++
		case match.OutcomeDraw:
			out.Draws++
		case match.OutcomeLoss:
			out.Losses++
		}
		out.GoalsFor += p.GoalsFor
		out.GoalsAgainst += p.GoalsAgainst
		out.Points += p.Points()
	}

	out.GoalDiff = out.GoalsFor - out.GoalsAgainst
	if out.GamesPlayed > 0 {
		games := float64(out.GamesPlayed)
		out.PointsPerGame = round2(float64(out.Points) / games)
		out.GoalsForPerGame = round2(float64(out.GoalsFor) / games)
		out.GoalsAgainstPerGame = round2(float64(out.GoalsAgainst) / games)
	}

	return out
}

// CalculateBestWorst picks the win with the largest goal difference and
// the loss with the smallest. Ties keep the first row encountered. Either
// highlight is nil when no qualifying row exists.
func CalculateBestWorst(rows []EnrichedMatch, teamID *int64) (best, worst *MatchHighlight) {
	for i := range rows {
		row := rows[i]
		p := row.Perspective
		if !p.Applicable {
			continue
		}

		switch p.Outcome {
		case match.OutcomeWin:
			if best == nil || p.GoalDiff() > best.GoalDiff {
				best = highlight(row, teamID)
			}
		case match.OutcomeLoss:
			if worst == nil || p.GoalDiff() < worst.GoalDiff {
				worst = highlight(row, teamID)
			}
		}
	}
	return best, worst
}

func highlight(row EnrichedMatch, teamID *int64) *MatchHighlight {
	return &MatchHighlight{
		Date:         row.Date,
		Opponent:     opponentName(row, teamID),
		GoalsFor:     row.Perspective.GoalsFor,
		GoalsAgainst: row.Perspective.GoalsAgainst,
		GoalDiff:     row.Perspective.GoalDiff(),
	}
}

func opponentName(row EnrichedMatch, teamID *int64) string {
	if teamID == nil || row.HomeTeamID == nil || row.AwayTeamID == nil {
		return tablestore.Unknown
	}
	switch *teamID {
	case *row.HomeTeamID:
		return row.AwayTeamName
	case *row.AwayTeamID:
		return row.HomeTeamName
	default:
		return tablestore.Unknown
	}
}

// CalculateForm tallies the last n applicable rows in the order received.
func CalculateForm(rows []EnrichedMatch, n int) Form {
	applicable := make([]match.Perspective, 0, len(rows))
	for _, row := range rows {
		if row.Perspective.Applicable {
			applicable = append(applicable, row.Perspective)
		}
	}
	if len(applicable) == 0 || n <= 0 {
		return Form{Record: FormNotAvailable}
	}

	if len(applicable) > n {
		applicable = applicable[len(applicable)-n:]
	}

	var out Form
	for _, p := range applicable {
		switch p.Outcome {
		case match.OutcomeWin:
			out.Wins++
		case match.OutcomeDraw:
			out.Draws++
		case match.OutcomeLoss:
			out.Losses++
		}
		out.Points += p.Points()
	}
	out.Record = formRecord(out.Wins, out.Draws, out.Losses)

	return out
}

func formRecord(wins, draws, losses int) string {
	return fmt.Sprintf("%d-%d-%d", wins, draws, losses)
}

// CalculateOpponentBreakdown groups applicable rows by opponent, ordered
// by games descending with first-seen order breaking ties. Win percentage
// is rounded to one decimal.
func CalculateOpponentBreakdown(rows []EnrichedMatch, teamID *int64) []OpponentRecord {
	if teamID == nil {
		return nil
	}

	index := make(map[int64]int)
	out := make([]OpponentRecord, 0)
	for _, row := range rows {
		if !row.Perspective.Applicable {
			continue
		}
		opponentID, ok := row.OpponentID(*teamID)
		if !ok {
			continue
		}

		i, seen := index[opponentID]
		if !seen {
			i = len(out)
			index[opponentID] = i
			out = append(out, OpponentRecord{
				OpponentID: opponentID,
				Opponent:   opponentName(row, teamID),
			})
		}

		out[i].Games++
		switch row.Perspective.Outcome {
		case match.OutcomeWin:
			out[i].Wins++
		case match.OutcomeDraw:
			out[i].Draws++
		case match.OutcomeLoss:
			out[i].Losses++
		}
	}

	for i := range out {
		out[i].WinPct = round1(float64(out[i].Wins) / float64(out[i].Games) * 100)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Games > out[j].Games })

	return out
}

// CalculateCumulativePoints builds the running points sum over the dated
// applicable rows. Input order is kept, so pass date-sorted rows for a
// chronological series. The series never decreases.
func CalculateCumulativePoints(rows []EnrichedMatch) []TrendPoint {
	out := make([]TrendPoint, 0, len(rows))
	total := 0
	for _, row := range rows {
		if !row.Perspective.Applicable || row.Date == nil {
			continue
		}
		total += row.Perspective.Points()
		out = append(out, TrendPoint{Date: *row.Date, Points: total})
	}
	return out
}

// CalculateCumulativeOutcomes builds the running W/D/L counts over the
// dated applicable rows.
func CalculateCumulativeOutcomes(rows []EnrichedMatch) []OutcomePoint {
	out := make([]OutcomePoint, 0, len(rows))
	var wins, draws, losses int
	for _, row := range rows {
		if !row.Perspective.Applicable || row.Date == nil {
			continue
		}
		switch row.Perspective.Outcome {
		case match.OutcomeWin:
			wins++
		case match.OutcomeDraw:
			draws++
		case match.OutcomeLoss:
			losses++
		}
		out = append(out, OutcomePoint{Date: *row.Date, Wins: wins, Draws: draws, Losses: losses})
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
