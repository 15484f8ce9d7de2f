package stats

import (
	"sort"

	"github.com/rushteam/lenskit/core"
)

// GenreDistribution 统计每个类型累计的评分条数（哨兵标签排除），
// 按条数降序排列，并列时按名称升序。
func GenreDistribution(ratings []core.RatingRecord, movies []core.MovieRecord) []core.GenreCount {
	byID := make(map[int64]core.MovieRecord, len(movies))
	for _, m := range movies {
		byID[m.ID] = m
	}

	counts := make(map[string]int)
	for _, r := range ratings {
		m, ok := byID[r.MovieID]
		if !ok {
			continue
		}
		for _, g := range m.EffectiveGenres() {
			counts[g]++
		}
	}

	out := make([]core.GenreCount, 0, len(counts))
	for g, n := range counts {
		out = append(out, core.GenreCount{Name: g, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Summary 计算数据集整体概览：电影/评分/用户数与总体平均分。
// 空数据集的平均分为 0。
func Summary(movies []core.MovieRecord, ratings []core.RatingRecord) core.DatasetSummary {
	users := make(map[int64]struct{})
	var sum float64
	for _, r := range ratings {
		users[r.UserID] = struct{}{}
		sum += r.Rating
	}

	s := core.DatasetSummary{
		Movies:  len(movies),
		Ratings: len(ratings),
		Users:   len(users),
	}
	if len(ratings) > 0 {
		s.MeanRating = sum / float64(len(ratings))
	}
	return s
}
