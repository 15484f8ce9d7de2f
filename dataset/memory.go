package dataset

import (
	"context"

	"github.com/rushteam/lenskit/core"
)

// Memory 是内存实现的 Dataset：一次性装入全部记录并建好索引。
// 数据集规模（MovieLens small/full 的子集）允许整体驻留内存，
// 分析管线在快照上同步计算。
type Memory struct {
	movies  []core.MovieRecord
	ratings []core.RatingRecord
	byID    map[int64]core.MovieRecord
	byMovie map[int64][]core.RatingRecord
}

// NewMemory 从已解析的记录构建内存数据集。
func NewMemory(movies []core.MovieRecord, ratings []core.RatingRecord) *Memory {
	m := &Memory{
		movies:  movies,
		ratings: ratings,
		byID:    make(map[int64]core.MovieRecord, len(movies)),
		byMovie: make(map[int64][]core.RatingRecord),
	}
	for _, mv := range movies {
		m.byID[mv.ID] = mv
	}
	for _, r := range ratings {
		m.byMovie[r.MovieID] = append(m.byMovie[r.MovieID], r)
	}
	return m
}

func (m *Memory) Name() string { return "memory" }

func (m *Memory) Movies(_ context.Context) ([]core.MovieRecord, error) {
	return m.movies, nil
}

func (m *Memory) Movie(_ context.Context, movieID int64) (core.MovieRecord, error) {
	mv, ok := m.byID[movieID]
	if !ok {
		return core.MovieRecord{}, core.ErrMovieNotFound
	}
	return mv, nil
}

func (m *Memory) Ratings(_ context.Context) ([]core.RatingRecord, error) {
	return m.ratings, nil
}

func (m *Memory) MovieRatings(_ context.Context, movieID int64) ([]core.RatingRecord, error) {
	// 没有评分的电影返回空切片，不是错误
	return m.byMovie[movieID], nil
}

// 确保 Memory 实现了 core.Dataset 接口
var _ core.Dataset = (*Memory)(nil)
