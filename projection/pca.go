package projection

import (
	"gonum.org/v1/gonum/mat"

	"github.com/rushteam/lenskit/core"
)

// Reducer 是降维能力的抽象：输入特征矩阵，输出每行两列的坐标矩阵。
// 特征分解委托给数值库实现（见 GonumReducer），不手写。
type Reducer interface {
	// Name 返回降维实现名称
	Name() string

	// ReduceTo2D 把 n×d 矩阵降为 n×2 矩阵，行顺序保持不变
	ReduceTo2D(m *mat.Dense) (*mat.Dense, error)
}

// PCA 是主成分分析投影策略。
//
// 本层负责矩阵构建：行 = 用户（按输入顺序），列 = 类型全集
// （按全局固定顺序），用户没有的类型填 0。降维本身委托给 Reducer。
type PCA struct {
	// Reducer 为空时使用默认的 GonumReducer
	Reducer Reducer
}

func (PCA) Name() string { return StrategyPCA }

func (p PCA) Project(prefs []core.UserPreferenceVector, universe []string) ([]core.Point2D, error) {
	if len(prefs) == 0 {
		return []core.Point2D{}, nil
	}
	if len(universe) == 0 {
		return nil, core.NewDomainError(core.ModuleProjection, core.ErrorCodeInvalidInput, "projection: empty genre universe")
	}

	matrix := buildMatrix(prefs, universe)

	reducer := p.Reducer
	if reducer == nil {
		reducer = GonumReducer{}
	}
	reduced, err := reducer.ReduceTo2D(matrix)
	if err != nil {
		return nil, err
	}

	rows, _ := reduced.Dims()
	points := make([]core.Point2D, rows)
	for i := 0; i < rows; i++ {
		points[i] = core.Point2D{X: reduced.At(i, 0), Y: reduced.At(i, 1)}
	}
	return points, nil
}

// buildMatrix 构建稠密偏好矩阵：缺失类型填 0。
func buildMatrix(prefs []core.UserPreferenceVector, universe []string) *mat.Dense {
	m := mat.NewDense(len(prefs), len(universe), nil)
	for i, p := range prefs {
		for j, g := range universe {
			if v, ok := p.GenrePreferences[g]; ok {
				m.Set(i, j, v)
			}
		}
	}
	return m
}

// 确保 PCA 实现了 Projector 接口
var _ Projector = PCA{}
