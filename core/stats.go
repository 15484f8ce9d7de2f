package core

// TemporalCell 是 7×24 评分时间模式网格中的一个非空格子。
// DayOfWeek 取值 0=周日 .. 6=周六，Hour 取值 0–23。
// 分桶按 UTC 计算（见 stats.TemporalPatterns 的说明）。
type TemporalCell struct {
	DayOfWeek int `json:"dayOfWeek"`
	Hour      int `json:"hour"`
	Count     int `json:"count"`
}

// GenreCount 是单个类型累计的评分条数。
type GenreCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DatasetSummary 是数据集的整体概览。
type DatasetSummary struct {
	Movies     int     `json:"movies"`
	Ratings    int     `json:"ratings"`
	Users      int     `json:"users"`
	MeanRating float64 `json:"meanRating"`
}
