package bot

import (
	"context"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"kinomap-tg-bot/internal/storage"
)

// CatalogStore is the read-only film/cinema catalog. Lookups by
// identifier return nil, nil on a miss.
type CatalogStore interface {
	FilmByUUID(ctx context.Context, uuid string) (*storage.Film, error)
	FilmsByType(ctx context.Context, filmType string) ([]storage.Film, error)
	FilmsByUUIDs(ctx context.Context, uuids []string) ([]storage.Film, error)
	CinemaByUUID(ctx context.Context, uuid string) (*storage.Cinema, error)
	CinemasByUUIDs(ctx context.Context, uuids []string) ([]storage.Cinema, error)
	AllCinemas(ctx context.Context) ([]storage.Cinema, error)
}

// UserStore holds per-user favorites.
type UserStore interface {
	UserByTelegramID(ctx context.Context, telegramID int64) (*storage.User, error)
	SaveUser(ctx context.Context, u *storage.User) error
}

// Sender is the slice of the Bot API client the handlers use.
// *tgbotapi.BotAPI satisfies it.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Bot struct {
	api     Sender
	catalog CatalogStore
	users   UserStore
}

func New(api Sender, catalog CatalogStore, users UserStore) *Bot {
	return &Bot{api: api, catalog: catalog, users: users}
}

// Detail commands: a one-character type prefix followed by the raw
// identifier, taken verbatim.
const (
	filmCmdPrefix   = "/f"
	cinemaCmdPrefix = "/c"
	startCmd        = "/start"
)

// HandleUpdate routes one inbound update to exactly one handler.
// Handler failures are logged and dropped; nothing is retried and
// nothing beyond an explicit not-found reply reaches the user.
func (b *Bot) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	switch {
	case upd.InlineQuery != nil:
		if err := b.handleInlineQuery(ctx, upd.InlineQuery); err != nil {
			log.Printf("inline query %s: %v", upd.InlineQuery.ID, err)
		}
	case upd.CallbackQuery != nil:
		if err := b.handleCallback(ctx, upd.CallbackQuery); err != nil {
			log.Printf("callback %s: %v", upd.CallbackQuery.ID, err)
		}
	case upd.Message != nil:
		if err := b.handleMessage(ctx, upd.Message); err != nil {
			log.Printf("message in chat %d: %v", upd.Message.Chat.ID, err)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	chatID := msg.Chat.ID
	var userID int64
	if msg.From != nil {
		userID = msg.From.ID
	}

	var err error
	switch text := msg.Text; {
	case text == startCmd || strings.HasPrefix(text, startCmd+" "):
		err = b.sendGreeting(msg)
	case text == btnFilms:
		err = b.sendPrompt(chatID, textChooseGenre, filmsKeyboard)
	case text == btnCinemas:
		err = b.sendPrompt(chatID, textShareLocation, cinemasKeyboard)
	case text == btnFavourites:
		err = b.sendFavouriteFilms(ctx, chatID, userID)
	case text == btnRandom:
		err = b.sendFilmsByType(ctx, chatID, "")
	case text == btnAction:
		err = b.sendFilmsByType(ctx, chatID, "action")
	case text == btnComedy:
		err = b.sendFilmsByType(ctx, chatID, "comedy")
	case text == btnBack:
		err = b.sendPrompt(chatID, textWhatToWatch, homeKeyboard)
	case strings.HasPrefix(text, filmCmdPrefix) && text != filmCmdPrefix:
		err = b.sendFilmDetail(ctx, chatID, userID, strings.TrimPrefix(text, filmCmdPrefix))
	case strings.HasPrefix(text, cinemaCmdPrefix) && text != cinemaCmdPrefix:
		err = b.sendCinemaDetail(ctx, chatID, strings.TrimPrefix(text, cinemaCmdPrefix))
	}

	// A shared location is handled in addition to any text match.
	if msg.Location != nil {
		if lerr := b.sendNearbyCinemas(ctx, chatID, msg.Location.Latitude, msg.Location.Longitude); lerr != nil && err == nil {
			err = lerr
		}
	}
	return err
}

func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) error {
	action, err := parseCallbackAction(cq.Data)
	if err != nil {
		return err
	}

	userID := cq.From.ID
	chatID := userID
	if cq.Message != nil && cq.Message.Chat.ID != 0 {
		chatID = cq.Message.Chat.ID
	}

	switch action.Type {
	case actionToggleFavorite:
		return b.toggleFavouriteFilm(ctx, userID, cq.ID, action.FilmUUID)
	case actionShowOnMap:
		_, err := b.api.Send(tgbotapi.NewLocation(chatID, action.Lat, action.Lon))
		return err
	case actionShowCinemas:
		return b.sendCinemasByUUIDs(ctx, chatID, action.CinemaUUIDs)
	case actionShowFilms:
		return b.sendFilmsByUUIDs(ctx, chatID, action.FilmUUIDs)
	default:
		return errUnknownAction(action.Type)
	}
}
