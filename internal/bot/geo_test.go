package bot

import (
	"testing"

	"kinomap-tg-bot/internal/storage"
)

func TestRankByDistanceNonDecreasing(t *testing.T) {
	cinemas := []storage.Cinema{
		{UUID: "far", Location: storage.GeoPoint{Latitude: 0.5}},
		{UUID: "near", Location: storage.GeoPoint{Latitude: 0.1}},
		{UUID: "mid", Location: storage.GeoPoint{Latitude: 0.3}},
	}
	ranked := RankByDistance(cinemas, 0, 0)
	if len(ranked) != 3 {
		t.Fatalf("got %d items, want 3", len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].DistanceKm < ranked[i-1].DistanceKm {
			t.Fatalf("distances decrease at %d: %v then %v", i, ranked[i-1].DistanceKm, ranked[i].DistanceKm)
		}
	}
	if ranked[0].UUID != "near" || ranked[1].UUID != "mid" || ranked[2].UUID != "far" {
		t.Fatalf("order = %s, %s, %s", ranked[0].UUID, ranked[1].UUID, ranked[2].UUID)
	}
}

func TestRankByDistanceStableOnTies(t *testing.T) {
	same := storage.GeoPoint{Latitude: 1, Longitude: 1}
	cinemas := []storage.Cinema{
		{UUID: "first", Location: same},
		{UUID: "second", Location: same},
	}
	ranked := RankByDistance(cinemas, 0, 0)
	if ranked[0].UUID != "first" || ranked[1].UUID != "second" {
		t.Fatalf("tie order changed: %s, %s", ranked[0].UUID, ranked[1].UUID)
	}
}
