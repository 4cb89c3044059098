package bot

import (
	"sort"

	"github.com/umahmood/haversine"

	"kinomap-tg-bot/internal/storage"
)

// NearbyCinema is a cinema annotated with its great-circle distance
// from a reference point.
type NearbyCinema struct {
	storage.Cinema
	DistanceKm float64
}

// RankByDistance sorts cinemas by ascending distance from (lat, lon).
// The sort is stable so equidistant cinemas keep store order.
func RankByDistance(cinemas []storage.Cinema, lat, lon float64) []NearbyCinema {
	from := haversine.Coord{Lat: lat, Lon: lon}
	items := make([]NearbyCinema, len(cinemas))
	for i, c := range cinemas {
		_, km := haversine.Distance(from, haversine.Coord{Lat: c.Location.Latitude, Lon: c.Location.Longitude})
		items[i] = NearbyCinema{Cinema: c, DistanceKm: km}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].DistanceKm < items[j].DistanceKm })
	return items
}
