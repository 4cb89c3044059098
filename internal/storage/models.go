package storage

import "go.mongodb.org/mongo-driver/bson/primitive"

// Film is a read-only catalog record.
type Film struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UUID    string             `bson:"uuid" json:"uuid"`
	Name    string             `bson:"name" json:"name"`
	Year    int                `bson:"year" json:"year"`
	Rate    float64            `bson:"rate" json:"rate"`
	Length  string             `bson:"length" json:"length"`
	Country string             `bson:"country" json:"country"`
	Picture string             `bson:"picture" json:"picture"`
	Link    string             `bson:"link" json:"link"`
	Cinemas []string           `bson:"cinemas" json:"cinemas"`
	Type    string             `bson:"type" json:"type"`
}

type GeoPoint struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// Cinema is a read-only catalog record.
type Cinema struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UUID     string             `bson:"uuid" json:"uuid"`
	Name     string             `bson:"name" json:"name"`
	URL      string             `bson:"url" json:"url"`
	Location GeoPoint           `bson:"location" json:"location"`
	Films    []string           `bson:"films" json:"films"`
}

// User holds the per-user favorites set, keyed by the Telegram user id.
// Created lazily on the first favorite toggle.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	TelegramID int64              `bson:"telegram_id" json:"telegram_id"`
	Films      []string           `bson:"films" json:"films"`
}

func (u *User) HasFilm(uuid string) bool {
	if u == nil {
		return false
	}
	for _, f := range u.Films {
		if f == uuid {
			return true
		}
	}
	return false
}

func (u *User) RemoveFilm(uuid string) {
	if u == nil {
		return
	}
	out := u.Films[:0]
	for _, f := range u.Films {
		if f != uuid {
			out = append(out, f)
		}
	}
	u.Films = out
}
