package stats

import (
	"sort"
	"time"

	"github.com/rushteam/lenskit/core"
)

// TemporalPatterns 把评分按“星期几 × 小时”分桶，输出稀疏的 7×24 网格
// （只含非空格子），按 (dayOfWeek, hour) 升序排列。
//
// 分桶按 UTC 计算：数据集时间戳是 Unix 秒，没有携带时区，按本地时区
// 分桶会让结果依赖运行环境。dayOfWeek 取值 0=周日 .. 6=周六。
//
// genre 非空时只统计带该类型电影的评分；哨兵标签永远不匹配任何过滤，
// 传哨兵等于过滤出空集。
func TemporalPatterns(ratings []core.RatingRecord, movies []core.MovieRecord, genre string) []core.TemporalCell {
	var byID map[int64]core.MovieRecord
	if genre != "" {
		byID = make(map[int64]core.MovieRecord, len(movies))
		for _, m := range movies {
			byID[m.ID] = m
		}
	}

	grid := make(map[[2]int]int)
	for _, r := range ratings {
		if genre != "" {
			m, ok := byID[r.MovieID]
			if !ok || !m.HasGenre(genre) {
				continue
			}
		}
		t := time.Unix(r.Timestamp, 0).UTC()
		grid[[2]int{int(t.Weekday()), t.Hour()}]++
	}

	cells := make([]core.TemporalCell, 0, len(grid))
	for k, n := range grid {
		cells = append(cells, core.TemporalCell{DayOfWeek: k[0], Hour: k[1], Count: n})
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].DayOfWeek != cells[j].DayOfWeek {
			return cells[i].DayOfWeek < cells[j].DayOfWeek
		}
		return cells[i].Hour < cells[j].Hour
	})
	return cells
}
