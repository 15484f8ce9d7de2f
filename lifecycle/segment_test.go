package lifecycle

import (
	"math"
	"testing"
	"time"

	"github.com/rushteam/lenskit/core"
)

func ts(s string) int64 {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t.Unix()
}

func TestParseReleaseYear(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		wantYear int
		wantErr  bool
	}{
		{name: "plain", title: "Toy Story (1995)", wantYear: 1995},
		{name: "parenthesized alias, year last", title: "Seven (a.k.a. Se7en) (1995)", wantYear: 1995},
		{name: "digits in title", title: "Fahrenheit 9/11 (2004)", wantYear: 2004},
		{name: "no year", title: "Untitled Project", wantErr: true},
		{name: "two-digit parens", title: "Catch (22)", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, err := ParseReleaseYear(tt.title)
			if tt.wantErr {
				if !core.IsInvalidInput(err) {
					t.Fatalf("err = %v, want INVALID_INPUT", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseReleaseYear error: %v", err)
			}
			if year != tt.wantYear {
				t.Errorf("year = %d, want %d", year, tt.wantYear)
			}
		})
	}
}

func TestSegmenter_SingleRating(t *testing.T) {
	// 2000 年上映 + 2000-01-15 的一条评分：恰好一个窗口
	s := &Segmenter{}
	ratings := []core.LifecycleRating{{Timestamp: ts("2000-01-15T00:00:00Z"), Rating: 4.5}}

	segments := s.Segment(ratings, 2000)
	if len(segments) != 1 {
		t.Fatalf("segments len = %d, want 1", len(segments))
	}
	seg := segments[0]
	if seg.StartTime != Anchor(2000) {
		t.Errorf("StartTime = %d, want anchor %d", seg.StartTime, Anchor(2000))
	}
	if seg.EndTime != seg.StartTime+core.SegmentWidth {
		t.Errorf("EndTime = %d, want start+width", seg.EndTime)
	}
	if seg.RatingCount != 1 {
		t.Errorf("RatingCount = %d, want 1", seg.RatingCount)
	}
	if seg.AverageRating != 4.5 {
		t.Errorf("AverageRating = %v, want 4.5", seg.AverageRating)
	}
}

func TestSegmenter_SparseWindows(t *testing.T) {
	s := &Segmenter{}
	anchor := Anchor(2000)
	ratings := []core.LifecycleRating{
		{Timestamp: anchor + 10, Rating: 3.0},
		{Timestamp: anchor + 20, Rating: 5.0},
		// 窗口 1 为空
		{Timestamp: anchor + 2*core.SegmentWidth + 100, Rating: 1.0},
	}

	segments := s.Segment(ratings, 2000)
	if len(segments) != 2 {
		t.Fatalf("segments len = %d, want 2 (empty window omitted)", len(segments))
	}

	if segments[0].RatingCount != 2 || math.Abs(segments[0].AverageRating-4.0) > 1e-9 {
		t.Errorf("segment 0 = %+v, want count 2 avg 4.0", segments[0])
	}
	if segments[1].RatingCount != 1 || segments[1].AverageRating != 1.0 {
		t.Errorf("segment 1 = %+v, want count 1 avg 1.0", segments[1])
	}

	// 递增且互不重叠
	for i := 1; i < len(segments); i++ {
		if segments[i].StartTime <= segments[i-1].StartTime {
			t.Errorf("segments not strictly increasing")
		}
		if segments[i].StartTime < segments[i-1].EndTime {
			t.Errorf("segments overlap")
		}
	}
}

func TestSegmenter_EmptyRatings(t *testing.T) {
	segments := (&Segmenter{}).Segment(nil, 2000)
	if len(segments) != 0 {
		t.Errorf("segments len = %d, want 0", len(segments))
	}
}

func TestSegmenter_RatingsBeforeAnchor(t *testing.T) {
	// 上映年份之前的评分不落入任何窗口
	ratings := []core.LifecycleRating{{Timestamp: ts("1999-06-01T00:00:00Z"), Rating: 3.0}}
	segments := (&Segmenter{}).Segment(ratings, 2000)
	if len(segments) != 0 {
		t.Errorf("segments len = %d, want 0", len(segments))
	}
}

func TestSegmenter_Build(t *testing.T) {
	s := &Segmenter{}
	movie := core.MovieRecord{ID: 1, Title: "Toy Story (1995)", Genres: []string{"Comedy"}}
	ratings := []core.RatingRecord{
		{UserID: 2, MovieID: 1, Rating: 3.0, Timestamp: ts("1996-03-01T00:00:00Z")},
		{UserID: 1, MovieID: 1, Rating: 5.0, Timestamp: ts("1995-02-01T00:00:00Z")},
	}

	lc, err := s.Build(movie, ratings)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if lc.Movie.Title != movie.Title || lc.Movie.ReleaseYear != 1995 {
		t.Errorf("movie header = %+v", lc.Movie)
	}
	if len(lc.Ratings) != 2 || lc.Ratings[0].Timestamp > lc.Ratings[1].Timestamp {
		t.Errorf("ratings not ordered by timestamp: %+v", lc.Ratings)
	}
	if len(lc.TimeSegments) == 0 {
		t.Errorf("expected time segments")
	}
}

func TestSegmenter_BuildNoYear(t *testing.T) {
	movie := core.MovieRecord{ID: 1, Title: "Untitled"}
	if _, err := (&Segmenter{}).Build(movie, nil); !core.IsInvalidInput(err) {
		t.Errorf("err = %v, want INVALID_INPUT", err)
	}
}

func TestSegmenter_BuildZeroRatings(t *testing.T) {
	movie := core.MovieRecord{ID: 1, Title: "Toy Story (1995)"}
	lc, err := (&Segmenter{}).Build(movie, nil)
	if err != nil {
		t.Fatalf("Build error: %v (zero ratings is not an error)", err)
	}
	if len(lc.Ratings) != 0 || len(lc.TimeSegments) != 0 {
		t.Errorf("want empty sequences, got %d ratings / %d segments", len(lc.Ratings), len(lc.TimeSegments))
	}
}
