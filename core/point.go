package core

// Point2D 是降维后的二维坐标。
// 除了在序列中的下标没有其他标识：整个聚类管线中必须与
// 来源 UserPreferenceVector 序列保持下标对齐。
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
