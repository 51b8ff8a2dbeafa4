package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mailajoket/stats-api/internal/usecase"
)

// matchQuery is the decoded shared filter query string.
type matchQuery struct {
	Criteria    usecase.Criteria
	Perspective bool
	Last        int

	HomeAway string `validate:"omitempty,oneof=home away all"`
	LastRaw  int    `validate:"omitempty,min=1,max=100"`
}

func parseMatchQuery(r *http.Request, validate *validator.Validate) (matchQuery, error) {
	query := r.URL.Query()
	out := matchQuery{Perspective: true}

	for _, raw := range query["season_id"] {
		id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return out, fmt.Errorf("%w: season_id %q is not an integer", usecase.ErrInvalidInput, raw)
		}
		out.Criteria.SeasonIDs = append(out.Criteria.SeasonIDs, id)
	}

	out.Criteria.Stage = strings.TrimSpace(query.Get("stage"))

	if raw := strings.TrimSpace(query.Get("opponent_id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return out, fmt.Errorf("%w: opponent_id %q is not an integer", usecase.ErrInvalidInput, raw)
		}
		out.Criteria.OpponentID = &id
	}

	out.HomeAway = strings.ToLower(strings.TrimSpace(query.Get("home_away")))
	out.Criteria.HomeAway = out.HomeAway

	if raw := strings.TrimSpace(query.Get("perspective")); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return out, fmt.Errorf("%w: perspective %q is not a boolean", usecase.ErrInvalidInput, raw)
		}
		out.Perspective = value
	}

	if raw := strings.TrimSpace(query.Get("last")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return out, fmt.Errorf("%w: last %q is not an integer", usecase.ErrInvalidInput, raw)
		}
		out.LastRaw = value
		out.Last = value
	}

	if err := validate.Struct(out); err != nil {
		return out, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}

	return out, nil
}

func parseLimit(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("%w: limit %q is not a non-negative integer", usecase.ErrInvalidInput, raw)
	}
	return value, nil
}

func parsePathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", usecase.ErrInvalidInput, name, raw)
	}
	return id, nil
}
