package service

import (
	"context"

	"github.com/rushteam/lenskit/cluster"
	"github.com/rushteam/lenskit/core"
	"github.com/rushteam/lenskit/feature"
	"github.com/rushteam/lenskit/lifecycle"
	"github.com/rushteam/lenskit/pkg/dsl"
	"github.com/rushteam/lenskit/projection"
	"github.com/rushteam/lenskit/stats"
)

// Service 是分析服务对外的操作集合。
// Analytics 是直接实现，CachedAnalytics 是 cache-aside 装饰器。
type Service interface {
	// UserTasteClusters 按指定投影策略聚类用户口味，
	// 返回每个用户的二维坐标、聚类归属与样例评分
	UserTasteClusters(ctx context.Context, strategy string) ([]core.UserClusterPoint, error)

	// ClusterInterpretations 返回每个非空聚类的可读摘要
	ClusterInterpretations(ctx context.Context, strategy string) ([]core.ClusterInterpretation, error)

	// TemporalRatingPatterns 返回稀疏的 7×24 评分时间模式网格，
	// genre 非空时只统计该类型（UTC 分桶，见 stats.TemporalPatterns）
	TemporalRatingPatterns(ctx context.Context, genre string) ([]core.TemporalCell, error)

	// MovieRatingLifecycle 返回单部电影的评分生命周期
	MovieRatingLifecycle(ctx context.Context, movieID int64) (*core.MovieLifecycle, error)

	// DatasetSummary 返回数据集整体概览
	DatasetSummary(ctx context.Context) (core.DatasetSummary, error)

	// GenreDistribution 返回每个类型累计的评分条数（降序）
	GenreDistribution(ctx context.Context) ([]core.GenreCount, error)
}

// Analytics 是分析服务的直接实现：每个操作都是数据集快照上的
// 纯函数，请求级无共享可变状态，单次管线运行内部串行。
//
// 字段均可零值使用，方法内解析默认值（未设置的投影表取内置的
// trig/pca 两种策略，K 取默认 5，样例条数取默认 5）。
type Analytics struct {
	// Dataset 数据集协作方，必填
	Dataset core.Dataset

	// Builder 偏好向量构建器，空时用默认配置
	Builder *feature.Builder

	// Projectors 策略名 -> 投影实现；空时注册内置的 trig 与 pca
	Projectors map[string]projection.Projector

	// KMeans 聚类配置（值类型），K<=0 时取默认 5
	KMeans cluster.KMeans

	// Segmenter 生命周期分段器，空时用默认 30 天窗口
	Segmenter *lifecycle.Segmenter

	// Filter 可选的评分切片表达式，应用于聚类与时间模式的输入
	Filter *dsl.Filter
}

// defaultClusterCount 与参考实现的 n_clusters=5 对齐
const defaultClusterCount = 5

func (a *Analytics) UserTasteClusters(ctx context.Context, strategy string) ([]core.UserClusterPoint, error) {
	prefs, points, labels, err := a.clusterPipeline(ctx, strategy)
	if err != nil {
		return nil, err
	}

	out := make([]core.UserClusterPoint, len(prefs))
	for i := range prefs {
		out[i] = core.UserClusterPoint{
			UserID:        prefs[i].UserID,
			X:             points[i].X,
			Y:             points[i].Y,
			Cluster:       labels[i],
			SampleRatings: prefs[i].SampleRatings,
		}
	}
	return out, nil
}

func (a *Analytics) ClusterInterpretations(ctx context.Context, strategy string) ([]core.ClusterInterpretation, error) {
	prefs, _, labels, err := a.clusterPipeline(ctx, strategy)
	if err != nil {
		return nil, err
	}
	return cluster.Interpret(labels, prefs)
}

func (a *Analytics) TemporalRatingPatterns(ctx context.Context, genre string) ([]core.TemporalCell, error) {
	movies, ratings, err := a.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	ratings, err = a.applyFilter(movies, ratings)
	if err != nil {
		return nil, err
	}
	return stats.TemporalPatterns(ratings, movies, genre), nil
}

func (a *Analytics) MovieRatingLifecycle(ctx context.Context, movieID int64) (*core.MovieLifecycle, error) {
	movie, err := a.Dataset.Movie(ctx, movieID)
	if err != nil {
		return nil, err
	}
	ratings, err := a.Dataset.MovieRatings(ctx, movieID)
	if err != nil {
		return nil, err
	}

	seg := a.Segmenter
	if seg == nil {
		seg = &lifecycle.Segmenter{}
	}
	return seg.Build(movie, ratings)
}

func (a *Analytics) DatasetSummary(ctx context.Context) (core.DatasetSummary, error) {
	movies, ratings, err := a.snapshot(ctx)
	if err != nil {
		return core.DatasetSummary{}, err
	}
	return stats.Summary(movies, ratings), nil
}

func (a *Analytics) GenreDistribution(ctx context.Context) ([]core.GenreCount, error) {
	movies, ratings, err := a.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return stats.GenreDistribution(ratings, movies), nil
}

// PreferenceVectors 暴露偏好向量构建结果，供离线持久化
// （core.PreferenceStore）或调试使用。
func (a *Analytics) PreferenceVectors(ctx context.Context) ([]core.UserPreferenceVector, error) {
	prefs, _, err := a.preferences(ctx)
	return prefs, err
}

// clusterPipeline 执行共享的聚类管线：特征 → 投影 → k-means。
// 三个返回序列逐下标对齐。
func (a *Analytics) clusterPipeline(ctx context.Context, strategy string) ([]core.UserPreferenceVector, []core.Point2D, []int, error) {
	prefs, universe, err := a.preferences(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	if len(prefs) == 0 {
		return nil, nil, nil, core.ErrEmptyDataset
	}

	projector, err := a.projector(strategy)
	if err != nil {
		return nil, nil, nil, err
	}
	points, err := projector.Project(prefs, universe)
	if err != nil {
		return nil, nil, nil, err
	}

	km := a.KMeans
	if km.K <= 0 {
		km.K = defaultClusterCount
	}
	labels, err := km.Fit(points)
	if err != nil {
		return nil, nil, nil, err
	}
	return prefs, points, labels, nil
}

func (a *Analytics) preferences(ctx context.Context) ([]core.UserPreferenceVector, []string, error) {
	movies, ratings, err := a.snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	ratings, err = a.applyFilter(movies, ratings)
	if err != nil {
		return nil, nil, err
	}

	builder := a.Builder
	if builder == nil {
		builder = &feature.Builder{}
	}
	prefs, universe := builder.BuildPreferences(ratings, movies)
	return prefs, universe, nil
}

// snapshot 一次性取出数据集快照，后续计算不再访问数据源。
func (a *Analytics) snapshot(ctx context.Context) ([]core.MovieRecord, []core.RatingRecord, error) {
	movies, err := a.Dataset.Movies(ctx)
	if err != nil {
		return nil, nil, err
	}
	ratings, err := a.Dataset.Ratings(ctx)
	if err != nil {
		return nil, nil, err
	}
	return movies, ratings, nil
}

// applyFilter 对评分应用可选的 CEL 切片表达式。
// 评分指向的电影不存在时该评分被跳过（与特征构建的宽松策略一致）。
func (a *Analytics) applyFilter(movies []core.MovieRecord, ratings []core.RatingRecord) ([]core.RatingRecord, error) {
	if a.Filter == nil {
		return ratings, nil
	}

	byID := make(map[int64]core.MovieRecord, len(movies))
	for _, m := range movies {
		byID[m.ID] = m
	}

	out := make([]core.RatingRecord, 0, len(ratings))
	for _, r := range ratings {
		m, ok := byID[r.MovieID]
		if !ok {
			continue
		}
		match, err := a.Filter.Match(r, m)
		if err != nil {
			return nil, err
		}
		if match {
			out = append(out, r)
		}
	}
	return out, nil
}

func (a *Analytics) projector(strategy string) (projection.Projector, error) {
	projectors := a.Projectors
	if projectors == nil {
		projectors = map[string]projection.Projector{
			projection.StrategyTrig: projection.Trig{},
			projection.StrategyPCA:  projection.PCA{},
		}
	}
	p, ok := projectors[strategy]
	if !ok {
		return nil, projection.ErrUnknownStrategy
	}
	return p, nil
}

// 确保 Analytics 实现了 Service 接口
var _ Service = (*Analytics)(nil)
