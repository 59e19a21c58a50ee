package domain

// ListFilter 管理后台列表的过滤条件，零值表示不过滤
type ListFilter struct {
	Offset  int
	Limit   int
	Keyword string
	// IsActive 为 nil 的时候不过滤
	IsActive   *bool
	Degree     Degree
	CategoryId int64
	TestCaseId int64
}
