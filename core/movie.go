package core

// GenreSentinel 是数据集中表示“无类型”的哨兵标签。
// 带此标签的电影不参与任何按类型的聚合（偏好向量、类型分布、时间模式过滤）。
const GenreSentinel = "(no genres listed)"

// MovieRecord 是一部电影的元数据。
// Title 可能在末尾括号中内嵌 4 位上映年份（如 "Toy Story (1995)"）。
// 解析完成后不可变。
type MovieRecord struct {
	ID     int64
	Title  string
	Genres []string
}

// EffectiveGenres 返回去除哨兵标签后的类型列表。
// 只有哨兵标签的电影返回空切片。
func (m MovieRecord) EffectiveGenres() []string {
	out := make([]string, 0, len(m.Genres))
	for _, g := range m.Genres {
		if g == GenreSentinel {
			continue
		}
		out = append(out, g)
	}
	return out
}

// HasGenre 判断电影是否带有指定类型（哨兵标签永远返回 false）。
func (m MovieRecord) HasGenre(genre string) bool {
	if genre == GenreSentinel {
		return false
	}
	for _, g := range m.Genres {
		if g == genre {
			return true
		}
	}
	return false
}
