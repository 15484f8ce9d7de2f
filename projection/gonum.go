package projection

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/rushteam/lenskit/core"
)

// GonumReducer 是基于 gonum 的默认 Reducer 实现：
// 列标准化（均值 0、方差 1，等价于 sklearn 的 StandardScaler）
// 之后做主成分分析，投影到前两个主成分。
type GonumReducer struct{}

func (GonumReducer) Name() string { return "gonum_pca" }

func (GonumReducer) ReduceTo2D(m *mat.Dense) (*mat.Dense, error) {
	rows, cols := m.Dims()
	if rows < 2 {
		return nil, core.NewDomainError(core.ModuleProjection, core.ErrorCodeInvalidInput, "projection: pca needs at least 2 rows")
	}

	scaled := standardize(m)

	var pc stat.PC
	if ok := pc.PrincipalComponents(scaled, nil); !ok {
		return nil, core.NewDomainError(core.ModuleProjection, core.ErrorCodeDegenerate, "projection: pca decomposition failed")
	}

	var vecs mat.Dense
	pc.VectorsTo(&vecs)

	// 主成分矩阵为 cols×min(rows,cols)，列是方向向量
	_, nc := vecs.Dims()
	k := 2
	if nc < k {
		k = nc
	}

	var proj mat.Dense
	proj.Mul(scaled, vecs.Slice(0, cols, 0, k))
	if k == 2 {
		return &proj, nil
	}

	// 可用成分不足 2 个（类型全集退化为 1 列）：第二维补 0
	out := mat.NewDense(rows, 2, nil)
	for i := 0; i < rows; i++ {
		out.Set(i, 0, proj.At(i, 0))
	}
	return out, nil
}

// standardize 逐列减均值、除标准差；零方差列保持为 0。
func standardize(m *mat.Dense) *mat.Dense {
	rows, cols := m.Dims()
	out := mat.NewDense(rows, cols, nil)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, m)

		var mean float64
		for _, v := range col {
			mean += v
		}
		mean /= float64(rows)

		var variance float64
		for _, v := range col {
			d := v - mean
			variance += d * d
		}
		variance /= float64(rows)

		if variance == 0 {
			continue // 常量列：标准化后全 0
		}
		std := math.Sqrt(variance)
		for i := 0; i < rows; i++ {
			out.Set(i, j, (col[i]-mean)/std)
		}
	}
	return out
}

// 确保 GonumReducer 实现了 Reducer 接口
var _ Reducer = GonumReducer{}
