package lifecycle

import (
	"regexp"
	"strconv"

	"github.com/rushteam/lenskit/core"
)

// 标题中的上映年份形如 "Toy Story (1995)"；标题本身也可能含
// 括号数字（如 "Fahrenheit 9/11 (2004)"），取最后一个匹配。
var yearPattern = regexp.MustCompile(`\((\d{4})\)`)

// ErrNoReleaseYear 表示标题中没有可解析的 4 位上映年份，
// 缺少分段锚点时生命周期无法计算。
var ErrNoReleaseYear = core.NewDomainError(core.ModuleLifecycle, core.ErrorCodeInvalidInput, "lifecycle: no parseable release year in title")

// ParseReleaseYear 从电影标题解析上映年份。
func ParseReleaseYear(title string) (int, error) {
	matches := yearPattern.FindAllStringSubmatch(title, -1)
	if len(matches) == 0 {
		return 0, ErrNoReleaseYear
	}
	year, err := strconv.Atoi(matches[len(matches)-1][1])
	if err != nil {
		return 0, ErrNoReleaseYear
	}
	return year, nil
}
