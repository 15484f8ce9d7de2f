package core

// GenreShare 是聚类解释中单个类型的占比。
type GenreShare struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// ClusterInterpretation 是对单个聚类的可读摘要。
// 只为实际出现的聚类 id 生成（空聚类不产生条目）。
type ClusterInterpretation struct {
	// ID 是聚类编号，取值 [0, k)
	ID int `json:"id"`

	// Size 是聚类成员数
	Size int `json:"size"`

	// Description 默认为 "Cluster {id}"，是可人工改写的标签挂点，
	// 不做语义化自动命名
	Description string `json:"description"`

	// TopGenres 是成员样例评分中出现最多的类型（最多 5 个，按占比降序）
	TopGenres []GenreShare `json:"topGenres"`
}

// UserClusterPoint 是聚类管线对外的单用户结果：
// 二维坐标 + 所属聚类 + 样例评分。
type UserClusterPoint struct {
	UserID        int64          `json:"userId"`
	X             float64        `json:"x"`
	Y             float64        `json:"y"`
	Cluster       int            `json:"cluster"`
	SampleRatings []SampleRating `json:"sampleRatings"`
}
