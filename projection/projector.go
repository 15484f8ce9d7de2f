package projection

import "github.com/rushteam/lenskit/core"

// Projector 是降维策略的抽象接口：
// 把一组用户偏好向量映射为下标对齐的二维坐标序列。
//
// universe 是类型全集（由 feature.Builder 产出，顺序即规范类型下标）。
// 输出序列必须与输入序列逐下标对齐——Point2D 没有别的标识。
type Projector interface {
	// Name 返回策略名称（"trig" / "pca"），用于策略选择与缓存 key
	Name() string

	// Project 产出与 prefs 下标对齐的二维坐标序列
	Project(prefs []core.UserPreferenceVector, universe []string) ([]core.Point2D, error)
}

// 策略名称常量
const (
	StrategyTrig = "trig"
	StrategyPCA  = "pca"
)

// ErrUnknownStrategy 表示请求了未注册的投影策略
var ErrUnknownStrategy = core.NewDomainError(core.ModuleProjection, core.ErrorCodeNotSupported, "projection: unknown strategy")
