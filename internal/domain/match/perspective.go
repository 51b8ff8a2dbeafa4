package match

// Outcome classifies a match relative to a chosen team.
type Outcome string

const (
	OutcomeWin  Outcome = "W"
	OutcomeDraw Outcome = "D"
	OutcomeLoss Outcome = "L"
)

// Points is the league points awarded for the outcome: win 2, draw 1,
// loss 0.
func (o Outcome) Points() int {
	switch o {
	case OutcomeWin:
		return 2
	case OutcomeDraw:
		return 1
	default:
		return 0
	}
}

// Perspective is the view of one match from a chosen team's side. The zero
// value means the match is not applicable to that team: either a team id is
// missing or the team played on neither side.
type Perspective struct {
	Applicable   bool
	Outcome      Outcome
	GoalsFor     int
	GoalsAgainst int
}

func (p Perspective) GoalDiff() int {
	return p.GoalsFor - p.GoalsAgainst
}

func (p Perspective) Points() int {
	if !p.Applicable {
		return 0
	}
	return p.Outcome.Points()
}

// PerspectiveFor computes the team-relative view of a match. Exactly one of
// win/draw/loss is assigned when the team id equals either side and both
// sides are known; otherwise the result is not applicable.
func PerspectiveFor(m Match, teamID int64) Perspective {
	if m.HomeTeamID == nil || m.AwayTeamID == nil {
		return Perspective{}
	}

	switch teamID {
	case *m.HomeTeamID:
		return perspective(m.HomeGoals, m.AwayGoals)
	case *m.AwayTeamID:
		return perspective(m.AwayGoals, m.HomeGoals)
	default:
		return Perspective{}
	}
}

func perspective(goalsFor, goalsAgainst int) Perspective {
	outcome := OutcomeDraw
	switch {
	case goalsFor > goalsAgainst:
		outcome = OutcomeWin
	case goalsFor < goalsAgainst:
		outcome = OutcomeLoss
	}

	return Perspective{
		Applicable:   true,
		Outcome:      outcome,
		GoalsFor:     goalsFor,
		GoalsAgainst: goalsAgainst,
	}
}
