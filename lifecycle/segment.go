package lifecycle

import (
	"sort"
	"time"

	"github.com/rushteam/lenskit/core"
)

// Segmenter 把单部电影的评分历史切成固定宽度的时间窗口。
//
// 锚点是上映年份的 1 月 1 日 00:00 UTC；窗口宽度固定 30 天
// （2,592,000 秒），不按日历月对齐。候选窗口数为
// ceil((max(timestamp) - anchor) / width)，逐个窗口过滤
// [start, end) 内的评分，只有非空窗口才输出（稀疏，不补齐）。
// 窗口按起始时间递增输出，无需额外排序。
//
// 早于锚点的评分（数据集中存在上映前打分的记录）不落入任何窗口。
type Segmenter struct {
	// Width 窗口宽度（秒），<=0 时取 core.SegmentWidth
	Width int64
}

// Anchor 返回上映年份对应的分段锚点（该年 1 月 1 日 00:00 UTC）。
func Anchor(releaseYear int) int64 {
	return time.Date(releaseYear, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
}

// Segment 把评分序列按锚点切窗并计算每窗聚合。
// 评分为空时返回空序列（不是错误）。
func (s *Segmenter) Segment(ratings []core.LifecycleRating, releaseYear int) []core.TimeSegment {
	if len(ratings) == 0 {
		return []core.TimeSegment{}
	}

	width := s.Width
	if width <= 0 {
		width = core.SegmentWidth
	}

	anchor := Anchor(releaseYear)
	maxTS := ratings[0].Timestamp
	for _, r := range ratings[1:] {
		if r.Timestamp > maxTS {
			maxTS = r.Timestamp
		}
	}

	span := maxTS - anchor
	if span <= 0 {
		// 全部评分不晚于锚点：没有候选窗口
		return []core.TimeSegment{}
	}
	count := span / width
	if span%width != 0 {
		count++
	}

	segments := make([]core.TimeSegment, 0)
	for i := int64(0); i < count; i++ {
		start := anchor + i*width
		end := start + width

		var sum float64
		n := 0
		for _, r := range ratings {
			if r.Timestamp >= start && r.Timestamp < end {
				sum += r.Rating
				n++
			}
		}
		if n == 0 {
			continue
		}
		segments = append(segments, core.TimeSegment{
			StartTime:     start,
			EndTime:       end,
			RatingCount:   n,
			AverageRating: sum / float64(n),
		})
	}
	return segments
}

// Build 组装单部电影的完整生命周期视图：
// 按时间排序的评分序列 + 分段聚合。零评分电影得到两个空序列。
func (s *Segmenter) Build(movie core.MovieRecord, ratings []core.RatingRecord) (*core.MovieLifecycle, error) {
	year, err := ParseReleaseYear(movie.Title)
	if err != nil {
		return nil, err
	}

	lr := make([]core.LifecycleRating, 0, len(ratings))
	for _, r := range ratings {
		lr = append(lr, core.LifecycleRating{Timestamp: r.Timestamp, Rating: r.Rating})
	}
	sort.Slice(lr, func(i, j int) bool { return lr[i].Timestamp < lr[j].Timestamp })

	lc := &core.MovieLifecycle{
		Ratings:      lr,
		TimeSegments: s.Segment(lr, year),
	}
	lc.Movie.Title = movie.Title
	lc.Movie.ReleaseYear = year
	return lc, nil
}
