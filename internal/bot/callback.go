package bot

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Callback action discriminants, carried in the "type" field of the
// serialized payload attached to inline buttons.
const (
	actionToggleFavorite = "tff"
	actionShowCinemas    = "sc"
	actionShowOnMap      = "scm"
	actionShowFilms      = "sf"
)

// callbackAction is the tagged payload behind every inline button that
// is not a plain URL. Only the fields relevant to Type are set.
type callbackAction struct {
	Type        string   `json:"type"`
	FilmUUID    string   `json:"filmUuid,omitempty"`
	IsFav       bool     `json:"isFav,omitempty"`
	CinemaUUIDs []string `json:"cinemaUuid,omitempty"`
	FilmUUIDs   []string `json:"filmsUuid,omitempty"`
	Lat         float64  `json:"lat,omitempty"`
	Lon         float64  `json:"lon,omitempty"`
}

// parseCallbackAction decodes the payload once, at the boundary.
// Malformed data is an explicit error value for the dispatcher to log.
func parseCallbackAction(data string) (callbackAction, error) {
	var a callbackAction
	if err := json.Unmarshal([]byte(data), &a); err != nil {
		return callbackAction{}, fmt.Errorf("callback payload: %w", err)
	}
	if a.Type == "" {
		return callbackAction{}, errors.New("callback payload: missing type")
	}
	return a, nil
}

func (a callbackAction) encode() string {
	b, _ := json.Marshal(a)
	return string(b)
}
