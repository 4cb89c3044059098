// Command seed loads a catalog fixture into Mongo. Records without a
// uuid get one assigned; existing records are replaced by uuid, so the
// tool is safe to re-run.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"kinomap-tg-bot/internal/storage"
)

type fixture struct {
	Films   []storage.Film   `json:"films"`
	Cinemas []storage.Cinema `json:"cinemas"`
}

func main() {
	file := flag.String("file", "database.json", "catalog fixture to load")
	flag.Parse()

	_ = godotenv.Load()
	mongoURI := os.Getenv("MONGODB_URI")
	dbName := os.Getenv("MONGODB_DATABASE")
	if dbName == "" {
		dbName = "kinomap"
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("read fixture: %v", err)
	}
	var fx fixture
	if err := json.Unmarshal(raw, &fx); err != nil {
		log.Fatalf("decode fixture: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := storage.NewMongo(ctx, mongoURI, dbName)
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	defer db.Close(ctx)

	for i := range fx.Films {
		f := &fx.Films[i]
		if f.UUID == "" {
			f.UUID = uuid.NewString()
		}
		if err := db.UpsertFilm(ctx, f); err != nil {
			log.Fatalf("upsert film %s: %v", f.UUID, err)
		}
	}
	for i := range fx.Cinemas {
		c := &fx.Cinemas[i]
		if c.UUID == "" {
			c.UUID = uuid.NewString()
		}
		if err := db.UpsertCinema(ctx, c); err != nil {
			log.Fatalf("upsert cinema %s: %v", c.UUID, err)
		}
	}

	log.Printf("seeded %d films, %d cinemas from %s", len(fx.Films), len(fx.Cinemas), *file)
}
