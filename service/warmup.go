package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/lenskit/projection"
)

// Warmup 并发预热缓存：两种投影策略的聚类结果与解释、
// 时间模式、类型分布与数据集概览。
//
// 单次管线运行内部是串行的（k-means 逐轮依赖上一轮），
// 但相互独立的管线（trig 聚类 vs pca 聚类 vs 时间模式）
// 可以并发执行。
func (c *CachedAnalytics) Warmup(ctx context.Context, strategies ...string) error {
	if len(strategies) == 0 {
		strategies = []string{projection.StrategyTrig, projection.StrategyPCA}
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, s := range strategies {
		s := s
		g.Go(func() error {
			_, err := c.UserTasteClusters(ctx, s)
			return err
		})
		g.Go(func() error {
			_, err := c.ClusterInterpretations(ctx, s)
			return err
		})
	}
	g.Go(func() error {
		_, err := c.TemporalRatingPatterns(ctx, "")
		return err
	})
	g.Go(func() error {
		dist, err := c.GenreDistribution(ctx)
		if err != nil {
			return err
		}
		if c.Rank != nil {
			return c.Rank.Publish(ctx, dist)
		}
		return nil
	})
	g.Go(func() error {
		_, err := c.DatasetSummary(ctx)
		return err
	})
	return g.Wait()
}
