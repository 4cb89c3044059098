package bot

import (
	"fmt"
	"strconv"
	"strings"

	"kinomap-tg-bot/internal/storage"
)

// Mode selects between rich-text (Telegram HTML) and plain rendering.
type Mode int

const (
	ModePlain Mode = iota
	ModeHTML
)

// List renderers are pure: one line per record, joined by a single
// newline, each line prefixed with its 1-based rank. Empty input
// renders an empty string.

func FilmList(films []storage.Film, mode Mode) string {
	lines := make([]string, len(films))
	for i, f := range films {
		lines[i] = fmt.Sprintf("%s %s - /f%s", rank(i, mode), f.Name, f.UUID)
	}
	return strings.Join(lines, "\n")
}

func FavouriteFilmList(films []storage.Film, mode Mode) string {
	lines := make([]string, len(films))
	for i, f := range films {
		lines[i] = fmt.Sprintf("%s %s - %s (/f%s)", rank(i, mode), f.Name, wrap(formatRate(f.Rate), "b", mode), f.UUID)
	}
	return strings.Join(lines, "\n")
}

func CinemaList(cinemas []storage.Cinema, mode Mode) string {
	lines := make([]string, len(cinemas))
	for i, c := range cinemas {
		lines[i] = fmt.Sprintf("%s %s - /c%s", rank(i, mode), c.Name, c.UUID)
	}
	return strings.Join(lines, "\n")
}

func NearbyCinemaList(items []NearbyCinema, mode Mode) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = fmt.Sprintf("%s %s. %s - %s km. /c%s",
			rank(i, mode), it.Name, wrap("Distance", "em", mode), wrap(formatKm(it.DistanceKm), "strong", mode), it.UUID)
	}
	return strings.Join(lines, "\n")
}

// FilmCaption is the descriptive block used for film details and
// inline results.
func FilmCaption(f storage.Film) string {
	return fmt.Sprintf("Name: %s\nYear: %d\nRating: %s\nLength: %s\nCountry: %s",
		f.Name, f.Year, formatRate(f.Rate), f.Length, f.Country)
}

func rank(i int, mode Mode) string {
	n := strconv.Itoa(i + 1)
	if mode == ModeHTML {
		return "<b>" + n + "</b>"
	}
	return n
}

func wrap(s, tag string, mode Mode) string {
	if mode == ModeHTML {
		return "<" + tag + ">" + s + "</" + tag + ">"
	}
	return s
}

func formatRate(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func formatKm(km float64) string {
	return strconv.FormatFloat(km, 'f', 1, 64)
}
