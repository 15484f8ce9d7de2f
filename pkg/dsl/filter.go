package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/lenskit/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
)

// initCELEnv 初始化 CEL 环境，定义变量
func initCELEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("rating", cel.DynType),
		cel.Variable("movie", cel.DynType),
	)
}

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	var err error
	celEnvOnce.Do(func() {
		celEnv, err = initCELEnv()
	})
	if celEnv == nil && err == nil {
		err = fmt.Errorf("cel env not initialized")
	}
	return celEnv, err
}

// Filter 是评分切片的谓词，使用 CEL (Common Expression Language) 实现。
// 用于在时间模式 / 聚类管线前按表达式裁剪数据集，是按类型过滤的泛化。
//
// 表达式语法（CEL 标准语法）：
//   - 数值：rating.rating >= 4.0 / rating.timestamp > 1000000000
//   - 成员：'Comedy' in movie.genres
//   - 逻辑：rating.rating >= 4.0 && 'Comedy' in movie.genres
//   - 文本：movie.title.contains('Story')
//
// 表达式在 NewFilter 时编译一次，Match 可被并发复用。
type Filter struct {
	expr string
	prg  cel.Program
}

// NewFilter 编译一个评分过滤表达式。空表达式返回 (nil, nil)：
// 调用方把 nil Filter 视为“不过滤”。
func NewFilter(expr string) (*Filter, error) {
	if expr == "" {
		return nil, nil
	}

	env, err := getCELEnv()
	if err != nil {
		return nil, err
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %v", issues.Err())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %v", err)
	}
	return &Filter{expr: expr, prg: prg}, nil
}

// Expr 返回原始表达式（用于缓存 key 等场景）。
func (f *Filter) Expr() string { return f.expr }

// Match 对单条评分及其电影求值，返回表达式是否成立。
func (f *Filter) Match(r core.RatingRecord, m core.MovieRecord) (bool, error) {
	out, _, err := f.prg.Eval(buildInput(r, m))
	if err != nil {
		return false, fmt.Errorf("eval error: %v", err)
	}
	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}
	return result, nil
}

// buildInput 构建 CEL 表达式的输入数据
func buildInput(r core.RatingRecord, m core.MovieRecord) map[string]any {
	return map[string]any{
		"rating": map[string]any{
			"user_id":   r.UserID,
			"movie_id":  r.MovieID,
			"rating":    r.Rating,
			"timestamp": r.Timestamp,
		},
		"movie": map[string]any{
			"id":     m.ID,
			"title":  m.Title,
			"genres": m.Genres,
		},
	}
}
