package match

import "testing"

func id(v int64) *int64 { return &v }

func TestPerspectiveFor_AssignsExactlyOneOutcome(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		m            Match
		teamID       int64
		applicable   bool
		outcome      Outcome
		goalsFor     int
		goalsAgainst int
		points       int
	}{
		{
			name:       "home win",
			m:          Match{HomeTeamID: id(1), AwayTeamID: id(2), HomeGoals: 3, AwayGoals: 1},
			teamID:     1,
			applicable: true, outcome: OutcomeWin, goalsFor: 3, goalsAgainst: 1, points: 2,
		},
		{
			name:       "away draw",
			m:          Match{HomeTeamID: id(2), AwayTeamID: id(1), HomeGoals: 2, AwayGoals: 2},
			teamID:     1,
			applicable: true, outcome: OutcomeDraw, goalsFor: 2, goalsAgainst: 2, points: 1,
		},
		{
			name:       "home loss",
			m:          Match{HomeTeamID: id(1), AwayTeamID: id(2), HomeGoals: 0, AwayGoals: 4},
			teamID:     1,
			applicable: true, outcome: OutcomeLoss, goalsFor: 0, goalsAgainst: 4, points: 0,
		},
		{
			name:   "foreign match",
			m:      Match{HomeTeamID: id(2), AwayTeamID: id(3), HomeGoals: 1, AwayGoals: 0},
			teamID: 1,
		},
		{
			name:   "missing home id",
			m:      Match{AwayTeamID: id(1), HomeGoals: 1, AwayGoals: 0},
			teamID: 1,
		},
		{
			name:   "missing away id",
			m:      Match{HomeTeamID: id(1), HomeGoals: 1, AwayGoals: 0},
			teamID: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := PerspectiveFor(tc.m, tc.teamID)
			if got.Applicable != tc.applicable {
				t.Fatalf("applicable=%v, want %v", got.Applicable, tc.applicable)
			}
			if !tc.applicable {
				if got.Points() != 0 {
					t.Fatalf("inapplicable perspective must carry zero points, got %d", got.Points())
				}
				return
			}
			if got.Outcome != tc.outcome {
				t.Fatalf("outcome=%q, want %q", got.Outcome, tc.outcome)
			}
			if got.GoalsFor != tc.goalsFor || got.GoalsAgainst != tc.goalsAgainst {
				t.Fatalf("goals=%d-%d, want %d-%d", got.GoalsFor, got.GoalsAgainst, tc.goalsFor, tc.goalsAgainst)
			}
			if diff := got.GoalDiff(); diff != tc.goalsFor-tc.goalsAgainst {
				t.Fatalf("goal diff=%d, want %d", diff, tc.goalsFor-tc.goalsAgainst)
			}
			if got.Points() != tc.points {
				t.Fatalf("points=%d, want %d", got.Points(), tc.points)
			}
		})
	}
}

func TestOpponentID(t *testing.T) {
	t.Parallel()

	m := Match{HomeTeamID: id(1), AwayTeamID: id(2)}

	if opp, ok := m.OpponentID(1); !ok || opp != 2 {
		t.Fatalf("OpponentID(1)=%d,%v, want 2,true", opp, ok)
	}
	if opp, ok := m.OpponentID(2); !ok || opp != 1 {
		t.Fatalf("OpponentID(2)=%d,%v, want 1,true", opp, ok)
	}
	if _, ok := m.OpponentID(3); ok {
		t.Fatal("expected no opponent for uninvolved team")
	}
	if _, ok := (Match{AwayTeamID: id(2)}).OpponentID(2); ok {
		t.Fatal("expected no opponent when home id is missing")
	}
}

func TestNormalizeSide(t *testing.T) {
	t.Parallel()

	if NormalizeSide(" Home ") != SideHome {
		t.Fatal("expected home")
	}
	if NormalizeSide("AWAY") != SideAway {
		t.Fatal("expected away")
	}
	if NormalizeSide("all") != "" || NormalizeSide("") != "" {
		t.Fatal("expected no restriction")
	}
}
