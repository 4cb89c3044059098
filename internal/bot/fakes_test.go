package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"kinomap-tg-bot/internal/storage"
)

type memoryCatalog struct {
	films   []storage.Film
	cinemas []storage.Cinema
}

func (m *memoryCatalog) FilmByUUID(_ context.Context, uuid string) (*storage.Film, error) {
	for i := range m.films {
		if m.films[i].UUID == uuid {
			f := m.films[i]
			return &f, nil
		}
	}
	return nil, nil
}

func (m *memoryCatalog) FilmsByType(_ context.Context, filmType string) ([]storage.Film, error) {
	out := make([]storage.Film, 0)
	for _, f := range m.films {
		if filmType == "" || f.Type == filmType {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memoryCatalog) FilmsByUUIDs(_ context.Context, uuids []string) ([]storage.Film, error) {
	want := make(map[string]bool, len(uuids))
	for _, u := range uuids {
		want[u] = true
	}
	out := make([]storage.Film, 0)
	for _, f := range m.films {
		if want[f.UUID] {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memoryCatalog) CinemaByUUID(_ context.Context, uuid string) (*storage.Cinema, error) {
	for i := range m.cinemas {
		if m.cinemas[i].UUID == uuid {
			c := m.cinemas[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memoryCatalog) CinemasByUUIDs(_ context.Context, uuids []string) ([]storage.Cinema, error) {
	want := make(map[string]bool, len(uuids))
	for _, u := range uuids {
		want[u] = true
	}
	out := make([]storage.Cinema, 0)
	for _, c := range m.cinemas {
		if want[c.UUID] {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memoryCatalog) AllCinemas(_ context.Context) ([]storage.Cinema, error) {
	return append([]storage.Cinema(nil), m.cinemas...), nil
}

type memoryUsers struct {
	users map[int64]*storage.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: make(map[int64]*storage.User)}
}

func (m *memoryUsers) UserByTelegramID(_ context.Context, telegramID int64) (*storage.User, error) {
	u, ok := m.users[telegramID]
	if !ok {
		return nil, nil
	}
	cp := *u
	cp.Films = append([]string(nil), u.Films...)
	return &cp, nil
}

func (m *memoryUsers) SaveUser(_ context.Context, u *storage.User) error {
	cp := *u
	cp.Films = append([]string(nil), u.Films...)
	m.users[u.TelegramID] = &cp
	return nil
}

// recordingAPI captures outbound payloads instead of talking to the
// Bot API.
type recordingAPI struct {
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
}

func (r *recordingAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	r.sent = append(r.sent, c)
	return tgbotapi.Message{}, nil
}

func (r *recordingAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	r.requests = append(r.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func newTestBot(catalog *memoryCatalog) (*Bot, *recordingAPI, *memoryUsers) {
	api := &recordingAPI{}
	users := newMemoryUsers()
	return New(api, catalog, users), api, users
}
