package cluster

import (
	"math/rand"
	"time"

	"github.com/rushteam/lenskit/core"
)

// KMeans 是二维点集的 k-means 聚类引擎。
//
// 算法流程：
//  1. 初始化：从输入点中带放回均匀采样 k 个作为初始质心
//     （可能重复——朴素做法，不做 k-means++ 播种）
//  2. 分配：每个点归入欧氏距离最近的质心（并列取下标最小者）
//  3. 更新：质心取成员点的逐维算术平均；零成员质心保持原位，
//     不重新初始化也不丢弃
//  4. 重复直到标签序列与上一轮完全一致（按整数序列逐位比较，
//     不是质心收敛判据）
//
// 与参考行为的偏差：参考实现没有迭代上限，退化/循环分配时可能
// 不终止。这里加了安全上限（默认 300 轮），超限时返回
// DEGENERATE 错误而不是挂起或静默返回不稳定结果。
//
// k > 点数时质心必然重复（带放回采样），允许，不是错误。
type KMeans struct {
	// K 聚类数，必须 > 0
	K int

	// MaxIterations 安全迭代上限，<=0 时取默认值 300
	MaxIterations int

	// Seed 随机种子，非 0 时初始质心采样可复现；
	// 0 时使用时间种子。每次 Fit 构造独立的随机源，
	// 同一配置可被并发的管线安全复用
	Seed int64
}

const defaultMaxIterations = 300

// ErrNotConverged 表示超过安全迭代上限仍未收敛
var ErrNotConverged = core.NewDomainError(core.ModuleCluster, core.ErrorCodeDegenerate, "cluster: k-means exceeded iteration cap without converging")

// Fit 对点集聚类，返回与输入下标对齐的聚类标签序列（取值 [0, K)）。
func (km *KMeans) Fit(points []core.Point2D) ([]int, error) {
	if km.K <= 0 {
		return nil, core.NewDomainError(core.ModuleCluster, core.ErrorCodeInvalidInput, "cluster: k must be positive")
	}
	if len(points) == 0 {
		return []int{}, nil
	}

	seed := km.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))
	maxIter := km.MaxIterations
	if maxIter <= 0 {
		maxIter = defaultMaxIterations
	}

	// 初始化：带放回均匀采样
	centroids := make([]core.Point2D, km.K)
	for i := range centroids {
		centroids[i] = points[r.Intn(len(points))]
	}

	var prev []int
	for iter := 0; iter < maxIter; iter++ {
		labels := assign(points, centroids)
		if prev != nil && equalLabels(labels, prev) {
			return labels, nil
		}
		prev = labels
		centroids = update(points, labels, centroids)
	}
	return nil, ErrNotConverged
}

// assign 把每个点归入最近的质心，并列取下标最小者（严格小于才换）。
func assign(points []core.Point2D, centroids []core.Point2D) []int {
	labels := make([]int, len(points))
	for i, p := range points {
		best := 0
		// 平方距离与欧氏距离同序，免开方
		bestDist := sqDist(p, centroids[0])
		for c := 1; c < len(centroids); c++ {
			if d := sqDist(p, centroids[c]); d < bestDist {
				best = c
				bestDist = d
			}
		}
		labels[i] = best
	}
	return labels
}

// update 重算质心：成员点的逐维平均；零成员质心保持原位。
func update(points []core.Point2D, labels []int, centroids []core.Point2D) []core.Point2D {
	sums := make([]core.Point2D, len(centroids))
	counts := make([]int, len(centroids))
	for i, p := range points {
		c := labels[i]
		sums[c].X += p.X
		sums[c].Y += p.Y
		counts[c]++
	}

	next := make([]core.Point2D, len(centroids))
	for c := range centroids {
		if counts[c] == 0 {
			next[c] = centroids[c]
			continue
		}
		next[c] = core.Point2D{
			X: sums[c].X / float64(counts[c]),
			Y: sums[c].Y / float64(counts[c]),
		}
	}
	return next
}

func sqDist(a, b core.Point2D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

func equalLabels(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
