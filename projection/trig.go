package projection

import (
	"math"

	"github.com/rushteam/lenskit/core"
)

// Trig 是三角函数投影策略：无外部依赖、给定输入顺序时完全确定。
//
// 对用户的偏好值 v_0..v_{n-1}（按类型全集顺序取该用户实际持有的类型，
// n 是该用户的类型数，不是全局类型数）：
//
//	x = Σ v_i·cos(i)，y = Σ v_i·sin(i)，i 以弧度计
//
// 这是一个粗糙的非正交嵌入：同一个类型在不同用户里可能落在不同的
// 下标 i 上（i 依赖于该用户持有哪些类型），数值只对可视化有意义，
// 不是有几何意义的嵌入。这是有意保留的简化，不是待修的缺陷；
// 需要跨用户可比的嵌入时用 PCA 策略。
type Trig struct{}

func (Trig) Name() string { return StrategyTrig }

func (Trig) Project(prefs []core.UserPreferenceVector, universe []string) ([]core.Point2D, error) {
	points := make([]core.Point2D, len(prefs))
	for idx, p := range prefs {
		var x, y float64
		i := 0
		for _, g := range universe {
			v, ok := p.GenrePreferences[g]
			if !ok {
				continue
			}
			// i 是用户内局部下标：只对该用户持有的类型递增
			x += v * math.Cos(float64(i))
			y += v * math.Sin(float64(i))
			i++
		}
		points[idx] = core.Point2D{X: x, Y: y}
	}
	return points, nil
}

// 确保 Trig 实现了 Projector 接口
var _ Projector = Trig{}
