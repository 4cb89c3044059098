package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"kinomap-tg-bot/internal/storage"
)

const (
	textGreeting      = "Hi, %s!\nPick a section to get started"
	textChooseGenre   = "Pick a genre:"
	textShareLocation = "Share your location to find cinemas nearby"
	textWhatToWatch   = "What would you like to watch?"
	textNothingAdded  = "You have not added anything yet"
	textNotFound      = "Not found"
	textShowCinemas   = "Show cinemas"
	textShowFilms     = "Show films"
	textShowOnMap     = "Show on map"
	textAddFav        = "Add to favourites"
	textRemoveFav     = "Remove from favourites"
	ackAdded          = "Added"
	ackRemoved        = "Removed"
)

func errUnknownAction(t string) error {
	return fmt.Errorf("callback payload: unknown type %q", t)
}

func (b *Bot) sendGreeting(msg *tgbotapi.Message) error {
	name := ""
	if msg.From != nil {
		name = msg.From.FirstName
	}
	return b.sendPrompt(msg.Chat.ID, fmt.Sprintf(textGreeting, name), homeKeyboard)
}

// sendPrompt sends plain text with a static reply keyboard attached.
func (b *Bot) sendPrompt(chatID int64, text string, kb tgbotapi.ReplyKeyboardMarkup) error {
	out := tgbotapi.NewMessage(chatID, text)
	out.ReplyMarkup = kb
	_, err := b.api.Send(out)
	return err
}

// sendHTML sends a rich-text block, optionally re-attaching a reply
// keyboard. An empty listing goes out as-is; the transport rejects it
// and the error is logged upstream like any other send failure.
func (b *Bot) sendHTML(chatID int64, text string, kb *tgbotapi.ReplyKeyboardMarkup) error {
	out := tgbotapi.NewMessage(chatID, text)
	out.ParseMode = tgbotapi.ModeHTML
	if kb != nil {
		out.ReplyMarkup = *kb
	}
	_, err := b.api.Send(out)
	return err
}

func (b *Bot) sendFilmsByType(ctx context.Context, chatID int64, filmType string) error {
	films, err := b.catalog.FilmsByType(ctx, filmType)
	if err != nil {
		return err
	}
	return b.sendHTML(chatID, FilmList(films, ModeHTML), &filmsKeyboard)
}

func (b *Bot) sendFilmsByUUIDs(ctx context.Context, chatID int64, uuids []string) error {
	films, err := b.catalog.FilmsByUUIDs(ctx, uuids)
	if err != nil {
		return err
	}
	return b.sendHTML(chatID, FilmList(films, ModeHTML), &homeKeyboard)
}

func (b *Bot) sendCinemasByUUIDs(ctx context.Context, chatID int64, uuids []string) error {
	cinemas, err := b.catalog.CinemasByUUIDs(ctx, uuids)
	if err != nil {
		return err
	}
	return b.sendHTML(chatID, CinemaList(cinemas, ModeHTML), &homeKeyboard)
}

func (b *Bot) sendFavouriteFilms(ctx context.Context, chatID int64, userID int64) error {
	user, err := b.users.UserByTelegramID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil || len(user.Films) == 0 {
		return b.sendHTML(chatID, textNothingAdded, &homeKeyboard)
	}
	films, err := b.catalog.FilmsByUUIDs(ctx, user.Films)
	if err != nil {
		return err
	}
	if len(films) == 0 {
		return b.sendHTML(chatID, textNothingAdded, &homeKeyboard)
	}
	return b.sendHTML(chatID, FavouriteFilmList(films, ModeHTML), &homeKeyboard)
}

func (b *Bot) sendFilmDetail(ctx context.Context, chatID int64, userID int64, uuid string) error {
	film, err := b.catalog.FilmByUUID(ctx, uuid)
	if err != nil {
		return err
	}
	if film == nil {
		return b.sendPrompt(chatID, textNotFound, homeKeyboard)
	}
	user, err := b.users.UserByTelegramID(ctx, userID)
	if err != nil {
		return err
	}

	isFav := user.HasFilm(film.UUID)
	favText := textAddFav
	if isFav {
		favText = textRemoveFav
	}
	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(favText, callbackAction{
				Type:     actionToggleFavorite,
				FilmUUID: film.UUID,
				IsFav:    isFav,
			}.encode()),
			tgbotapi.NewInlineKeyboardButtonData(textShowCinemas, callbackAction{
				Type:        actionShowCinemas,
				CinemaUUIDs: film.Cinemas,
			}.encode()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("More about "+film.Name, film.Link),
		),
	)

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(film.Picture))
	photo.Caption = FilmCaption(*film)
	photo.ReplyMarkup = markup
	_, err = b.api.Send(photo)
	return err
}

func (b *Bot) sendCinemaDetail(ctx context.Context, chatID int64, uuid string) error {
	cinema, err := b.catalog.CinemaByUUID(ctx, uuid)
	if err != nil {
		return err
	}
	if cinema == nil {
		return b.sendPrompt(chatID, textNotFound, homeKeyboard)
	}

	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(cinema.Name, cinema.URL),
			tgbotapi.NewInlineKeyboardButtonData(textShowOnMap, callbackAction{
				Type: actionShowOnMap,
				Lat:  cinema.Location.Latitude,
				Lon:  cinema.Location.Longitude,
			}.encode()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(textShowFilms, callbackAction{
				Type:      actionShowFilms,
				FilmUUIDs: cinema.Films,
			}.encode()),
		),
	)

	out := tgbotapi.NewMessage(chatID, "Cinema "+cinema.Name)
	out.ReplyMarkup = markup
	_, err = b.api.Send(out)
	return err
}

// toggleFavouriteFilm flips membership of the film in the user's
// favorites. Truth comes from the stored record, not the client-echoed
// flag, so stale taps cannot introduce duplicates. The one-shot
// acknowledgment reflects the action actually taken.
func (b *Bot) toggleFavouriteFilm(ctx context.Context, userID int64, callbackID string, filmUUID string) error {
	user, err := b.users.UserByTelegramID(ctx, userID)
	if err != nil {
		return err
	}

	added := true
	switch {
	case user == nil:
		user = &storage.User{TelegramID: userID, Films: []string{filmUUID}}
	case user.HasFilm(filmUUID):
		user.RemoveFilm(filmUUID)
		added = false
	default:
		user.Films = append(user.Films, filmUUID)
	}
	if err := b.users.SaveUser(ctx, user); err != nil {
		return err
	}

	text := ackRemoved
	if added {
		text = ackAdded
	}
	_, err = b.api.Request(tgbotapi.NewCallback(callbackID, text))
	return err
}

func (b *Bot) sendNearbyCinemas(ctx context.Context, chatID int64, lat, lon float64) error {
	cinemas, err := b.catalog.AllCinemas(ctx)
	if err != nil {
		return err
	}
	ranked := RankByDistance(cinemas, lat, lon)
	return b.sendHTML(chatID, NearbyCinemaList(ranked, ModeHTML), &homeKeyboard)
}

func (b *Bot) handleInlineQuery(ctx context.Context, q *tgbotapi.InlineQuery) error {
	films, err := b.catalog.FilmsByType(ctx, "")
	if err != nil {
		return err
	}
	results := make([]interface{}, 0, len(films))
	for _, f := range films {
		markup := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonURL("More about "+f.Name, f.Link),
			),
		)
		results = append(results, tgbotapi.InlineQueryResultPhoto{
			Type:        "photo",
			ID:          f.UUID,
			URL:         f.Picture,
			ThumbURL:    f.Picture,
			Caption:     FilmCaption(f),
			ReplyMarkup: &markup,
		})
	}
	_, err = b.api.Request(tgbotapi.InlineConfig{
		InlineQueryID: q.ID,
		Results:       results,
		CacheTime:     0,
	})
	return err
}
