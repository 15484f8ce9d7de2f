package core

import "context"

// PreferenceStore 是派生偏好向量持久化的领域接口。
//
// 偏好向量是每次管线运行可重建的派生数据，持久化是可选优化：
// 离线构建一次，在线直接读取。
//
// 实现：
//   - feature.StorePreferenceAdapter 实现此接口（基于 core.KeyValueStore）
type PreferenceStore interface {
	// Name 返回存储后端名称（用于日志/监控）
	Name() string

	// SavePreferences 持久化一批偏好向量，保留输入顺序
	SavePreferences(ctx context.Context, prefs []UserPreferenceVector) error

	// LoadPreferences 按保存时的顺序读回全部偏好向量；
	// 从未保存过时返回 ErrStoreNotFound
	LoadPreferences(ctx context.Context) ([]UserPreferenceVector, error)
}
