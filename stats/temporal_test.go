package stats

import (
	"testing"
	"time"

	"github.com/rushteam/lenskit/core"
)

func statMovies() []core.MovieRecord {
	return []core.MovieRecord{
		{ID: 1, Title: "Toy Story (1995)", Genres: []string{"Adventure", "Comedy"}},
		{ID: 2, Title: "Heat (1995)", Genres: []string{"Action"}},
		{ID: 3, Title: "Untagged (2001)", Genres: []string{core.GenreSentinel}},
	}
}

func TestTemporalPatterns(t *testing.T) {
	// Unix 0 = 1970-01-01（周四）00:00 UTC
	ratings := []core.RatingRecord{
		{UserID: 1, MovieID: 1, Rating: 4.0, Timestamp: 0},
		{UserID: 2, MovieID: 1, Rating: 3.0, Timestamp: 30 * 60},
		{UserID: 3, MovieID: 2, Rating: 5.0, Timestamp: 3600},
	}

	cells := TemporalPatterns(ratings, statMovies(), "")
	if len(cells) != 2 {
		t.Fatalf("cells len = %d, want 2", len(cells))
	}

	thursday := int(time.Unix(0, 0).UTC().Weekday())
	if cells[0].DayOfWeek != thursday || cells[0].Hour != 0 || cells[0].Count != 2 {
		t.Errorf("cells[0] = %+v, want day %d hour 0 count 2", cells[0], thursday)
	}
	if cells[1].Hour != 1 || cells[1].Count != 1 {
		t.Errorf("cells[1] = %+v, want hour 1 count 1", cells[1])
	}
}

func TestTemporalPatterns_GenreFilter(t *testing.T) {
	ratings := []core.RatingRecord{
		{UserID: 1, MovieID: 1, Rating: 4.0, Timestamp: 0},
		{UserID: 2, MovieID: 2, Rating: 3.0, Timestamp: 0},
	}

	cells := TemporalPatterns(ratings, statMovies(), "Action")
	if len(cells) != 1 || cells[0].Count != 1 {
		t.Fatalf("cells = %+v, want single cell count 1", cells)
	}
}

func TestTemporalPatterns_SentinelNeverMatches(t *testing.T) {
	ratings := []core.RatingRecord{
		{UserID: 1, MovieID: 3, Rating: 4.0, Timestamp: 0},
	}
	if cells := TemporalPatterns(ratings, statMovies(), core.GenreSentinel); len(cells) != 0 {
		t.Errorf("cells = %+v, want empty (sentinel filter matches nothing)", cells)
	}
}

func TestGenreDistribution(t *testing.T) {
	ratings := []core.RatingRecord{
		{UserID: 1, MovieID: 1, Rating: 4.0, Timestamp: 0},
		{UserID: 2, MovieID: 1, Rating: 3.0, Timestamp: 0},
		{UserID: 3, MovieID: 2, Rating: 5.0, Timestamp: 0},
		{UserID: 4, MovieID: 3, Rating: 2.0, Timestamp: 0}, // 哨兵，不计
	}

	dist := GenreDistribution(ratings, statMovies())
	want := []core.GenreCount{
		{Name: "Adventure", Count: 2},
		{Name: "Comedy", Count: 2},
		{Name: "Action", Count: 1},
	}
	if len(dist) != len(want) {
		t.Fatalf("dist = %+v, want %+v", dist, want)
	}
	for i := range want {
		if dist[i] != want[i] {
			t.Errorf("dist[%d] = %+v, want %+v", i, dist[i], want[i])
		}
	}
}

func TestSummary(t *testing.T) {
	ratings := []core.RatingRecord{
		{UserID: 1, MovieID: 1, Rating: 4.0},
		{UserID: 1, MovieID: 2, Rating: 2.0},
		{UserID: 2, MovieID: 1, Rating: 3.0},
	}

	s := Summary(statMovies(), ratings)
	if s.Movies != 3 || s.Ratings != 3 || s.Users != 2 {
		t.Errorf("summary = %+v", s)
	}
	if s.MeanRating != 3.0 {
		t.Errorf("MeanRating = %v, want 3.0", s.MeanRating)
	}
}

func TestSummary_Empty(t *testing.T) {
	s := Summary(nil, nil)
	if s.MeanRating != 0 {
		t.Errorf("MeanRating = %v, want 0 for empty dataset", s.MeanRating)
	}
}
