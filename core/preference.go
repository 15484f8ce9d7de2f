package core

// SampleRating 是保留在用户偏好向量中的样例评分，
// 带上对应电影的标题与完整类型集合，用于聚类结果解释。
type SampleRating struct {
	MovieID int64    `json:"movieId"`
	Title   string   `json:"title"`
	Rating  float64  `json:"rating"`
	Genres  []string `json:"genres"`
}

// UserPreferenceVector 是单个用户的类型偏好分布。
//
// 不变式：
//   - GenrePreferences 的取值在 [0,1]，且全部取值之和为 1.0
//     （用户至少有一条带非哨兵类型的评分时才会生成此向量）
//   - SampleRatings 最多保留 5 条，按输入顺序取最先出现的评分
//
// 每次管线运行时重建（或从缓存读取），构建后只读。
type UserPreferenceVector struct {
	UserID           int64              `json:"userId"`
	GenrePreferences map[string]float64 `json:"genrePreferences"`
	SampleRatings    []SampleRating     `json:"sampleRatings"`
}
