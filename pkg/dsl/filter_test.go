package dsl

import (
	"testing"

	"github.com/rushteam/lenskit/core"
)

func TestNewFilter_Empty(t *testing.T) {
	f, err := NewFilter("")
	if err != nil {
		t.Fatalf("NewFilter error: %v", err)
	}
	if f != nil {
		t.Errorf("empty expression should yield nil filter")
	}
}

func TestNewFilter_CompileError(t *testing.T) {
	if _, err := NewFilter("rating.rating >="); err == nil {
		t.Errorf("expected compile error")
	}
}

func TestFilter_Match(t *testing.T) {
	movie := core.MovieRecord{ID: 1, Title: "Toy Story (1995)", Genres: []string{"Adventure", "Comedy"}}
	tests := []struct {
		name   string
		expr   string
		rating core.RatingRecord
		want   bool
	}{
		{
			name:   "rating threshold pass",
			expr:   "rating.rating >= 4.0",
			rating: core.RatingRecord{UserID: 1, MovieID: 1, Rating: 4.5},
			want:   true,
		},
		{
			name:   "rating threshold fail",
			expr:   "rating.rating >= 4.0",
			rating: core.RatingRecord{UserID: 1, MovieID: 1, Rating: 2.0},
			want:   false,
		},
		{
			name:   "genre membership",
			expr:   "'Comedy' in movie.genres",
			rating: core.RatingRecord{UserID: 1, MovieID: 1, Rating: 3.0},
			want:   true,
		},
		{
			name:   "conjunction",
			expr:   "rating.rating >= 3.0 && 'Horror' in movie.genres",
			rating: core.RatingRecord{UserID: 1, MovieID: 1, Rating: 3.0},
			want:   false,
		},
		{
			name:   "title contains",
			expr:   "movie.title.contains('Story')",
			rating: core.RatingRecord{UserID: 1, MovieID: 1, Rating: 3.0},
			want:   true,
		},
		{
			name:   "timestamp compare",
			expr:   "rating.timestamp > 100",
			rating: core.RatingRecord{UserID: 1, MovieID: 1, Rating: 3.0, Timestamp: 200},
			want:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFilter(tt.expr)
			if err != nil {
				t.Fatalf("NewFilter error: %v", err)
			}
			got, err := f.Match(tt.rating, movie)
			if err != nil {
				t.Fatalf("Match error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Match = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_NonBoolean(t *testing.T) {
	f, err := NewFilter("rating.rating + 1.0")
	if err != nil {
		t.Fatalf("NewFilter error: %v", err)
	}
	if _, err := f.Match(core.RatingRecord{Rating: 3.0}, core.MovieRecord{}); err == nil {
		t.Errorf("expected error for non-boolean expression")
	}
}
