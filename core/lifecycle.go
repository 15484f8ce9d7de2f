package core

// SegmentWidth 是生命周期分段的固定宽度：30 天（秒）。
// 固定宽度，不按日历月对齐。
const SegmentWidth int64 = 2_592_000

// TimeSegment 是电影评分历史中的一个时间窗口。
// 窗口区间为 [StartTime, EndTime)，EndTime 不含。
// 序列按 StartTime 递增、互不重叠；零评分的窗口不输出（稀疏，不补齐）。
type TimeSegment struct {
	StartTime     int64   `json:"startTime"`
	EndTime       int64   `json:"endTime"`
	RatingCount   int     `json:"ratingCount"`
	AverageRating float64 `json:"averageRating"`
}

// LifecycleRating 是生命周期视图中的一条评分（只保留时间与分值）。
type LifecycleRating struct {
	Timestamp int64   `json:"timestamp"`
	Rating    float64 `json:"rating"`
}

// MovieLifecycle 是单部电影的评分生命周期：
// 按时间排序的评分序列 + 锚定在上映年份的 30 天分段聚合。
type MovieLifecycle struct {
	Movie struct {
		Title       string `json:"title"`
		ReleaseYear int    `json:"releaseYear"`
	} `json:"movie"`
	Ratings      []LifecycleRating `json:"ratings"`
	TimeSegments []TimeSegment     `json:"timeSegments"`
}
