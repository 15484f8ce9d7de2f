package config

import (
	"fmt"

	"github.com/rushteam/lenskit/cluster"
	"github.com/rushteam/lenskit/core"
	"github.com/rushteam/lenskit/dataset"
	"github.com/rushteam/lenskit/feature"
	"github.com/rushteam/lenskit/pkg/conv"
	"github.com/rushteam/lenskit/pkg/dsl"
	"github.com/rushteam/lenskit/service"
	"github.com/rushteam/lenskit/stats"
	"github.com/rushteam/lenskit/store"
)

// BuildStore 根据配置构建缓存后端。
func BuildStore(cfg *Config) (core.KeyValueStore, error) {
	switch cfg.Store.Type {
	case "", "memory":
		return store.NewMemoryStore(), nil
	case "redis":
		return store.NewRedisStore(cfg.Store.Addr, cfg.Store.DB)
	default:
		return nil, fmt.Errorf("unknown store type: %s", cfg.Store.Type)
	}
}

// BuildAnalytics 根据配置构建分析服务：
// 加载 CSV 数据集，按 options 装配聚类/特征/过滤参数。
func BuildAnalytics(cfg *Config) (*service.Analytics, error) {
	ds, err := dataset.LoadCSV(cfg.Dataset.Movies, cfg.Dataset.Ratings)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	opts := cfg.Analytics.Options

	km := cluster.KMeans{
		K:             int(conv.ConfigGetInt64(opts, "clusters", 0)),
		MaxIterations: int(conv.ConfigGetInt64(opts, "max_iterations", 0)),
		Seed:          conv.ConfigGetInt64(opts, "seed", 0),
	}

	a := &service.Analytics{
		Dataset: ds,
		Builder: &feature.Builder{
			SampleSize: int(conv.ConfigGetInt64(opts, "sample_size", 0)),
		},
		KMeans: km,
	}

	if expr := conv.ConfigGet[string](opts, "filter", ""); expr != "" {
		filter, err := dsl.NewFilter(expr)
		if err != nil {
			return nil, fmt.Errorf("build filter: %w", err)
		}
		a.Filter = filter
	}
	return a, nil
}

// BuildCachedAnalytics 构建带 cache-aside 装饰的分析服务。
func BuildCachedAnalytics(cfg *Config) (*service.CachedAnalytics, core.KeyValueStore, error) {
	a, err := BuildAnalytics(cfg)
	if err != nil {
		return nil, nil, err
	}
	kv, err := BuildStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	ttl := int(conv.ConfigGetInt64(cfg.Analytics.Options, "cache_ttl", 0))
	cached := service.NewCachedAnalytics(a, kv, ttl)
	cached.Rank = stats.NewGenreRank(kv, "")
	return cached, kv, nil
}
