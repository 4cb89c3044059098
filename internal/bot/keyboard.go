package bot

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// Menu labels double as dispatch keys for plain-text messages.
const (
	btnFilms      = "Films"
	btnCinemas    = "Cinemas"
	btnFavourites = "Favourites"
	btnRandom     = "Random"
	btnAction     = "Action"
	btnComedy     = "Comedy"
	btnBack       = "Back"

	btnSendLocation = "Send location"
)

var homeKeyboard = tgbotapi.NewReplyKeyboard(
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(btnFilms),
		tgbotapi.NewKeyboardButton(btnCinemas),
	),
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(btnFavourites),
	),
)

var filmsKeyboard = tgbotapi.NewReplyKeyboard(
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(btnRandom),
	),
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(btnAction),
		tgbotapi.NewKeyboardButton(btnComedy),
	),
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(btnBack),
	),
)

var cinemasKeyboard = tgbotapi.NewReplyKeyboard(
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButtonLocation(btnSendLocation),
	),
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(btnBack),
	),
)
