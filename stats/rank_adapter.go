package stats

import (
	"context"

	"github.com/rushteam/lenskit/core"
)

// GenreRank 是基于 core.KeyValueStore 有序集合的类型热度排行。
// 离线把类型分布发布为 zset，在线用 ZRange 直接读 TopN，
// 不用每次重算完整分布。
type GenreRank struct {
	store core.KeyValueStore

	// Key 是有序集合的 key，空时取 "genres:rank"
	Key string
}

// NewGenreRank 创建类型排行适配器。
func NewGenreRank(s core.KeyValueStore, key string) *GenreRank {
	if key == "" {
		key = "genres:rank"
	}
	return &GenreRank{store: s, Key: key}
}

// Publish 把类型分布写入有序集合（score 为评分条数）。
func (g *GenreRank) Publish(ctx context.Context, dist []core.GenreCount) error {
	for _, gc := range dist {
		if err := g.store.ZAdd(ctx, g.Key, float64(gc.Count), gc.Name); err != nil {
			return err
		}
	}
	return nil
}

// Top 按评分条数降序返回前 n 个类型名。
func (g *GenreRank) Top(ctx context.Context, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	return g.store.ZRange(ctx, g.Key, 0, int64(n-1))
}

// Count 返回单个类型已发布的评分条数。
func (g *GenreRank) Count(ctx context.Context, genre string) (int, error) {
	score, err := g.store.ZScore(ctx, g.Key, genre)
	if err != nil {
		return 0, err
	}
	return int(score), nil
}
