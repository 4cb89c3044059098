package storage

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo serves the film/cinema catalog and the per-user favorites.
type Mongo struct {
	client  *mongo.Client
	films   *mongo.Collection
	cinemas *mongo.Collection
	users   *mongo.Collection
}

func NewMongo(ctx context.Context, uri string, dbName string) (*Mongo, error) {
	if uri == "" {
		return nil, errors.New("mongo uri is empty")
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	db := client.Database(dbName)
	m := &Mongo{
		client:  client,
		films:   db.Collection("films"),
		cinemas: db.Collection("cinemas"),
		users:   db.Collection("users"),
	}
	uniq := options.Index().SetUnique(true)
	_, _ = m.films.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{bson.E{Key: "uuid", Value: 1}}, Options: uniq})
	_, _ = m.cinemas.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{bson.E{Key: "uuid", Value: 1}}, Options: uniq})
	_, _ = m.users.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{bson.E{Key: "telegram_id", Value: 1}}, Options: options.Index().SetUnique(true)})
	return m, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *Mongo) FilmByUUID(ctx context.Context, uuid string) (*Film, error) {
	var f Film
	err := m.films.FindOne(ctx, bson.M{"uuid": uuid}).Decode(&f)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// FilmsByType returns films carrying the genre tag; an empty type
// means no filter at all.
func (m *Mongo) FilmsByType(ctx context.Context, filmType string) ([]Film, error) {
	filter := bson.M{}
	if filmType != "" {
		filter["type"] = filmType
	}
	return m.findFilms(ctx, filter)
}

func (m *Mongo) FilmsByUUIDs(ctx context.Context, uuids []string) ([]Film, error) {
	return m.findFilms(ctx, bson.M{"uuid": bson.M{"$in": uuids}})
}

func (m *Mongo) findFilms(ctx context.Context, filter bson.M) ([]Film, error) {
	cur, err := m.films.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	films := make([]Film, 0)
	for cur.Next(ctx) {
		var f Film
		if err := cur.Decode(&f); err != nil {
			continue
		}
		films = append(films, f)
	}
	return films, cur.Err()
}

func (m *Mongo) CinemaByUUID(ctx context.Context, uuid string) (*Cinema, error) {
	var c Cinema
	err := m.cinemas.FindOne(ctx, bson.M{"uuid": uuid}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (m *Mongo) CinemasByUUIDs(ctx context.Context, uuids []string) ([]Cinema, error) {
	return m.findCinemas(ctx, bson.M{"uuid": bson.M{"$in": uuids}})
}

func (m *Mongo) AllCinemas(ctx context.Context) ([]Cinema, error) {
	return m.findCinemas(ctx, bson.M{})
}

func (m *Mongo) findCinemas(ctx context.Context, filter bson.M) ([]Cinema, error) {
	cur, err := m.cinemas.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	cinemas := make([]Cinema, 0)
	for cur.Next(ctx) {
		var c Cinema
		if err := cur.Decode(&c); err != nil {
			continue
		}
		cinemas = append(cinemas, c)
	}
	return cinemas, cur.Err()
}

func (m *Mongo) UserByTelegramID(ctx context.Context, telegramID int64) (*User, error) {
	var u User
	err := m.users.FindOne(ctx, bson.M{"telegram_id": telegramID}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// SaveUser inserts or replaces the user record keyed by telegram id.
func (m *Mongo) SaveUser(ctx context.Context, u *User) error {
	_, err := m.users.ReplaceOne(ctx, bson.M{"telegram_id": u.TelegramID}, u, options.Replace().SetUpsert(true))
	return err
}

func (m *Mongo) UpsertFilm(ctx context.Context, f *Film) error {
	_, err := m.films.ReplaceOne(ctx, bson.M{"uuid": f.UUID}, f, options.Replace().SetUpsert(true))
	return err
}

func (m *Mongo) UpsertCinema(ctx context.Context, c *Cinema) error {
	_, err := m.cinemas.ReplaceOne(ctx, bson.M{"uuid": c.UUID}, c, options.Replace().SetUpsert(true))
	return err
}
