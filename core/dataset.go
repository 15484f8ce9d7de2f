package core

import "context"

// Dataset 是评分数据集协作方的领域接口。
//
// 设计原则：
//   - 定义在领域层（core），由基础设施层（dataset）实现
//   - 分析管线对数据来源（CSV、内存、数据库）无感知
//   - 返回的记录视为不可变快照：分析是快照上的纯函数
//
// 实现：
//   - dataset.Memory 实现此接口（内存快照，测试/原型）
//   - dataset.LoadCSV 从 MovieLens 格式 CSV 构建 dataset.Memory
type Dataset interface {
	// Name 返回数据集来源名称（用于日志/监控）
	Name() string

	// Movies 返回全部电影记录
	Movies(ctx context.Context) ([]MovieRecord, error)

	// Movie 按 id 返回单部电影；不存在返回 ErrMovieNotFound
	Movie(ctx context.Context, movieID int64) (MovieRecord, error)

	// Ratings 返回全部评分记录
	Ratings(ctx context.Context) ([]RatingRecord, error)

	// MovieRatings 返回指定电影的全部评分（可能为空，不是错误）
	MovieRatings(ctx context.Context, movieID int64) ([]RatingRecord, error)
}

// Dataset 错误定义
var (
	// ErrMovieNotFound 表示请求的电影 id 没有匹配的记录
	ErrMovieNotFound = NewDomainError(ModuleDataset, ErrorCodeNotFound, "dataset: movie not found")

	// ErrEmptyDataset 表示数据集为空，无法完成所需计算
	ErrEmptyDataset = NewDomainError(ModuleDataset, ErrorCodeNotFound, "dataset: no records available")
)
