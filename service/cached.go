package service

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/rushteam/lenskit/core"
	"github.com/rushteam/lenskit/stats"
)

// CachedAnalytics 是 Service 的 cache-aside 装饰器：
// 先查缓存，未命中时计算并回填。缓存逻辑不侵入算法本身，
// 核心管线可以脱离缓存依赖单独测试。
//
// 并发契约：get-or-compute-then-set，无事务保证。同一未缓存 key 的
// 并发请求可能都计算、都写入——结果是数据集快照的纯函数，
// 后写覆盖即可接受。计算失败不回填缓存。
//
// 注意：key 空间按部署配置划分（同一 KeyPrefix 下假定数据集与
// 切片表达式固定）；数据集替换时应换前缀或清空缓存。
type CachedAnalytics struct {
	inner Service
	store core.Store

	// TTL 缓存过期秒数，<=0 时取默认 600
	TTL int

	// KeyPrefix 缓存 key 前缀，空时取 "lenskit"
	KeyPrefix string

	// Rank 可选的类型热度排行适配器；设置后 Warmup 会把类型分布
	// 发布到有序集合，TopGenres 直接读排行
	Rank *stats.GenreRank
}

const defaultCacheTTL = 600

// NewCachedAnalytics 包装一个 Service，结果经 store 缓存（JSON 编码）。
func NewCachedAnalytics(inner Service, store core.Store, ttlSeconds int) *CachedAnalytics {
	return &CachedAnalytics{inner: inner, store: store, TTL: ttlSeconds}
}

func (c *CachedAnalytics) UserTasteClusters(ctx context.Context, strategy string) ([]core.UserClusterPoint, error) {
	return getOrCompute(ctx, c, "clusters:"+strategy, func() ([]core.UserClusterPoint, error) {
		return c.inner.UserTasteClusters(ctx, strategy)
	})
}

func (c *CachedAnalytics) ClusterInterpretations(ctx context.Context, strategy string) ([]core.ClusterInterpretation, error) {
	return getOrCompute(ctx, c, "interpretations:"+strategy, func() ([]core.ClusterInterpretation, error) {
		return c.inner.ClusterInterpretations(ctx, strategy)
	})
}

func (c *CachedAnalytics) TemporalRatingPatterns(ctx context.Context, genre string) ([]core.TemporalCell, error) {
	key := "temporal"
	if genre != "" {
		key += ":" + genre
	}
	return getOrCompute(ctx, c, key, func() ([]core.TemporalCell, error) {
		return c.inner.TemporalRatingPatterns(ctx, genre)
	})
}

func (c *CachedAnalytics) MovieRatingLifecycle(ctx context.Context, movieID int64) (*core.MovieLifecycle, error) {
	return getOrCompute(ctx, c, "lifecycle:"+strconv.FormatInt(movieID, 10), func() (*core.MovieLifecycle, error) {
		return c.inner.MovieRatingLifecycle(ctx, movieID)
	})
}

func (c *CachedAnalytics) DatasetSummary(ctx context.Context) (core.DatasetSummary, error) {
	return getOrCompute(ctx, c, "summary", func() (core.DatasetSummary, error) {
		return c.inner.DatasetSummary(ctx)
	})
}

func (c *CachedAnalytics) GenreDistribution(ctx context.Context) ([]core.GenreCount, error) {
	return getOrCompute(ctx, c, "genres", func() ([]core.GenreCount, error) {
		return c.inner.GenreDistribution(ctx)
	})
}

// TopGenres 返回评分条数最多的前 n 个类型名。
// 配置了 Rank 且排行已发布时直接读有序集合，
// 否则退化为按完整分布截取。
func (c *CachedAnalytics) TopGenres(ctx context.Context, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	if c.Rank != nil {
		if top, err := c.Rank.Top(ctx, n); err == nil && len(top) > 0 {
			return top, nil
		}
	}

	dist, err := c.GenreDistribution(ctx)
	if err != nil {
		return nil, err
	}
	if n > len(dist) {
		n = len(dist)
	}
	out := make([]string, 0, n)
	for _, gc := range dist[:n] {
		out = append(out, gc.Name)
	}
	return out, nil
}

func (c *CachedAnalytics) key(suffix string) string {
	prefix := c.KeyPrefix
	if prefix == "" {
		prefix = "lenskit"
	}
	return prefix + ":" + suffix
}

func (c *CachedAnalytics) ttl() int {
	if c.TTL > 0 {
		return c.TTL
	}
	return defaultCacheTTL
}

// getOrCompute 是 cache-aside 的通用骨架：
// Get 失败（不存在或后端错误）与反序列化失败都按未命中处理，
// 重新计算并尽力回填（回填失败不影响返回结果）。
func getOrCompute[T any](ctx context.Context, c *CachedAnalytics, suffix string, compute func() (T, error)) (T, error) {
	key := c.key(suffix)

	if data, err := c.store.Get(ctx, key); err == nil {
		var v T
		if err := json.Unmarshal(data, &v); err == nil {
			return v, nil
		}
	}

	v, err := compute()
	if err != nil {
		var zero T
		return zero, err
	}

	if data, err := json.Marshal(v); err == nil {
		_ = c.store.Set(ctx, key, data, c.ttl())
	}
	return v, nil
}

// 确保 CachedAnalytics 实现了 Service 接口
var _ Service = (*CachedAnalytics)(nil)
