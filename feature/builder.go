package feature

import (
	"github.com/rushteam/lenskit/core"
)

// Builder 把原始评分转换为归一化的用户类型偏好向量。
//
// 算法流程：
//  1. 按 userId 分组评分
//  2. 对每条评分查电影，对电影的每个非哨兵类型累加评分分值
//     （按分值加权，不是按次数——衡量“有多喜欢”，而非“看了多少”）
//  3. 按该用户全部类型的累计总和归一化，得到概率式分布
//  4. 按输入顺序保留最先遇到的 SampleSize 条评分作为样例
//
// 边界情况：用户的所有评分电影都只有哨兵类型时，累计总和为零，
// 该用户被直接剔除（不报错，只是不生成向量），避免除零。
type Builder struct {
	// SampleSize 每个用户保留的样例评分条数，<=0 时取默认值 5
	SampleSize int
}

const defaultSampleSize = 5

// BuildPreferences 为每个至少有一条带类型评分的用户生成偏好向量。
//
// 返回值：
//   - 偏好向量序列，按用户在评分输入中首次出现的顺序排列（稳定）
//   - 类型全集，按类型在整个数据集中首次出现的顺序排列
//
// 类型全集的顺序就是投影策略使用的规范“类型下标”：
// 给定相同的输入顺序，结果是确定的。
func (b *Builder) BuildPreferences(ratings []core.RatingRecord, movies []core.MovieRecord) ([]core.UserPreferenceVector, []string) {
	sampleSize := b.SampleSize
	if sampleSize <= 0 {
		sampleSize = defaultSampleSize
	}

	byID := make(map[int64]core.MovieRecord, len(movies))
	for _, m := range movies {
		byID[m.ID] = m
	}

	var (
		userOrder []int64
		accum     = make(map[int64]map[string]float64)
		totals    = make(map[int64]float64)
		samples   = make(map[int64][]core.SampleRating)
		universe  []string
		seen      = make(map[string]bool)
	)

	for _, r := range ratings {
		movie, ok := byID[r.MovieID]
		if !ok {
			// 评分指向未知电影：摄取层的宽松策略延续到这里，跳过
			continue
		}

		if _, ok := accum[r.UserID]; !ok {
			userOrder = append(userOrder, r.UserID)
			accum[r.UserID] = make(map[string]float64)
		}

		if len(samples[r.UserID]) < sampleSize {
			samples[r.UserID] = append(samples[r.UserID], core.SampleRating{
				MovieID: r.MovieID,
				Title:   movie.Title,
				Rating:  r.Rating,
				Genres:  movie.Genres,
			})
		}

		for _, g := range movie.EffectiveGenres() {
			accum[r.UserID][g] += r.Rating
			totals[r.UserID] += r.Rating
			if !seen[g] {
				seen[g] = true
				universe = append(universe, g)
			}
		}
	}

	prefs := make([]core.UserPreferenceVector, 0, len(userOrder))
	for _, userID := range userOrder {
		total := totals[userID]
		if total <= 0 {
			continue // 只有哨兵类型评分的用户
		}
		genrePrefs := make(map[string]float64, len(accum[userID]))
		for g, sum := range accum[userID] {
			genrePrefs[g] = sum / total
		}
		prefs = append(prefs, core.UserPreferenceVector{
			UserID:           userID,
			GenrePreferences: genrePrefs,
			SampleRatings:    samples[userID],
		})
	}
	return prefs, universe
}
