package cluster

import (
	"fmt"
	"sort"

	"github.com/rushteam/lenskit/core"
)

// topGenreCount 是每个聚类解释保留的类型数上限
const topGenreCount = 5

// Interpret 把聚类标签聚合成可读摘要。
//
// 只为实际出现的聚类 id 生成条目（空聚类没有条目），按 id 升序排列。
// TopGenres 只统计成员的样例评分（不是完整评分历史）：
// 汇集全部样例评分的类型标签（哨兵排除），按出现次数算占比，
// 降序取前 5；占比并列时按名称升序，保证结果稳定。
func Interpret(labels []int, prefs []core.UserPreferenceVector) ([]core.ClusterInterpretation, error) {
	if len(labels) != len(prefs) {
		return nil, core.NewDomainError(core.ModuleCluster, core.ErrorCodeInvalidInput, "cluster: labels and preferences must be index-aligned")
	}

	members := make(map[int][]int) // 聚类 id -> 成员下标
	for i, c := range labels {
		members[c] = append(members[c], i)
	}

	ids := make([]int, 0, len(members))
	for id := range members {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]core.ClusterInterpretation, 0, len(ids))
	for _, id := range ids {
		counts := make(map[string]int)
		total := 0
		for _, idx := range members[id] {
			for _, sample := range prefs[idx].SampleRatings {
				for _, g := range sample.Genres {
					if g == core.GenreSentinel {
						continue
					}
					counts[g]++
					total++
				}
			}
		}

		shares := make([]core.GenreShare, 0, len(counts))
		for g, n := range counts {
			shares = append(shares, core.GenreShare{
				Name:       g,
				Percentage: float64(n) / float64(total) * 100,
			})
		}
		sort.Slice(shares, func(i, j int) bool {
			if shares[i].Percentage != shares[j].Percentage {
				return shares[i].Percentage > shares[j].Percentage
			}
			return shares[i].Name < shares[j].Name
		})
		if len(shares) > topGenreCount {
			shares = shares[:topGenreCount]
		}

		out = append(out, core.ClusterInterpretation{
			ID:          id,
			Size:        len(members[id]),
			Description: fmt.Sprintf("Cluster %d", id),
			TopGenres:   shares,
		})
	}
	return out, nil
}
