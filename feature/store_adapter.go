package feature

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/rushteam/lenskit/core"
)

// StorePreferenceAdapter 是基于 core.KeyValueStore 的偏好向量持久化适配器。
// 实现 core.PreferenceStore 接口：离线构建一次偏好向量，在线直接读取。
//
// 存储布局：
//   - 向量本体：Hash {KeyPrefix}:prefs，field 为 userID，value 为 JSON
//   - 用户顺序：{KeyPrefix}:users，JSON 编码的 userID 列表
//
// 顺序单独存一份：投影/聚类要求偏好向量序列的下标稳定，
// Hash 本身不保序。
type StorePreferenceAdapter struct {
	store core.KeyValueStore

	// KeyPrefix 是存储 key 的前缀，空时取 "prefs"
	KeyPrefix string
}

// NewStorePreferenceAdapter 创建偏好向量存储适配器。
func NewStorePreferenceAdapter(s core.KeyValueStore, keyPrefix string) *StorePreferenceAdapter {
	if keyPrefix == "" {
		keyPrefix = "prefs"
	}
	return &StorePreferenceAdapter{store: s, KeyPrefix: keyPrefix}
}

func (a *StorePreferenceAdapter) Name() string { return "store_preference_adapter" }

func (a *StorePreferenceAdapter) SavePreferences(ctx context.Context, prefs []core.UserPreferenceVector) error {
	hashKey := a.KeyPrefix + ":prefs"
	order := make([]int64, 0, len(prefs))
	for _, p := range prefs {
		data, err := json.Marshal(p)
		if err != nil {
			return err
		}
		if err := a.store.HSet(ctx, hashKey, strconv.FormatInt(p.UserID, 10), data); err != nil {
			return err
		}
		order = append(order, p.UserID)
	}

	orderData, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return a.store.Set(ctx, a.KeyPrefix+":users", orderData)
}

func (a *StorePreferenceAdapter) LoadPreferences(ctx context.Context) ([]core.UserPreferenceVector, error) {
	orderData, err := a.store.Get(ctx, a.KeyPrefix+":users")
	if err != nil {
		return nil, err // 包含 ErrStoreNotFound：从未保存过
	}
	var order []int64
	if err := json.Unmarshal(orderData, &order); err != nil {
		return nil, err
	}

	fields, err := a.store.HGetAll(ctx, a.KeyPrefix+":prefs")
	if err != nil {
		return nil, err
	}

	prefs := make([]core.UserPreferenceVector, 0, len(order))
	for _, userID := range order {
		data, ok := fields[strconv.FormatInt(userID, 10)]
		if !ok {
			continue
		}
		var p core.UserPreferenceVector
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		prefs = append(prefs, p)
	}
	return prefs, nil
}

// 确保 StorePreferenceAdapter 实现了 core.PreferenceStore 接口
var _ core.PreferenceStore = (*StorePreferenceAdapter)(nil)
