package core

// RatingRecord 是一条用户对电影的评分记录。
// Rating 取值 0.5–5.0，步长 0.5；Timestamp 为 Unix 秒。
// 解析完成后不可变：所有分析组件只读，不修改。
type RatingRecord struct {
	UserID    int64
	MovieID   int64
	Rating    float64
	Timestamp int64
}
