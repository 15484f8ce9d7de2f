package core

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 所有领域层错误都使用此类型
//   - 提供错误代码（Code）和消息（Message）
//   - 支持错误检查函数（IsXXX）
//
// 错误分层（§错误处理策略）：
//   - 摄取层逐行错误就地吸收（坏行丢弃，不中断批次），不产生 DomainError
//   - 管线层错误（电影不存在、年份不可解析、聚类不收敛）以带类型的
//     DomainError 上抛，由边界层映射为相应响应
type DomainError struct {
	Code    string // 错误代码（如 "NOT_FOUND", "DEGENERATE"）
	Message string // 错误消息
	Module  string // 模块名称（如 "dataset", "cluster"）
}

func (e *DomainError) Error() string {
	return e.Message
}

// GetDomainError 获取 DomainError，如果不是则返回 nil
func GetDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	if domainErr, ok := err.(*DomainError); ok {
		return domainErr
	}
	return nil
}

// NewDomainError 创建新的领域错误
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// 错误代码常量
const (
	ErrorCodeNotFound     = "NOT_FOUND"     // 资源不存在（电影、空数据集）
	ErrorCodeNotSupported = "NOT_SUPPORTED" // 操作不支持（未注册的投影策略等）
	ErrorCodeInvalidInput = "INVALID_INPUT" // 输入无效（年份不可解析、k 非法）
	ErrorCodeDegenerate   = "DEGENERATE"    // 计算退化（k-means 超过安全迭代上限）
	ErrorCodeInternal     = "INTERNAL"      // 内部错误
)

// 模块名称常量
const (
	ModuleDataset    = "dataset"
	ModuleFeature    = "feature"
	ModuleProjection = "projection"
	ModuleCluster    = "cluster"
	ModuleLifecycle  = "lifecycle"
	ModuleStore      = "store"
	ModuleService    = "service"
)

// IsNotFound 检查错误是否为 NOT_FOUND
func IsNotFound(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeNotFound
	}
	return false
}

// IsNotSupported 检查错误是否为 NOT_SUPPORTED
func IsNotSupported(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeNotSupported
	}
	return false
}

// IsInvalidInput 检查错误是否为 INVALID_INPUT
func IsInvalidInput(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeInvalidInput
	}
	return false
}

// IsDegenerate 检查错误是否为计算退化（如 k-means 不收敛）
func IsDegenerate(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeDegenerate
	}
	return false
}
