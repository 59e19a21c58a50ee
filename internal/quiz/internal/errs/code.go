package errs

var (
	SystemError            = ErrorCode{Code: 530001, Msg: "系统错误"}
	AuthenticationRequired = ErrorCode{Code: 530002, Msg: "需要先登录"}
	InvalidCredentials     = ErrorCode{Code: 530003, Msg: "邮箱或密码错误"}
	TestNotFound           = ErrorCode{Code: 530004, Msg: "测试不存在"}
	// UnknownError 数据不一致的时候，不把细节暴露给用户
	UnknownError   = ErrorCode{Code: 530005, Msg: "未知错误"}
	AlreadyStarted = ErrorCode{Code: 530006, Msg: "你已经开始过这个测试了"}

	// 以下是管理后台使用的
	NoValidAnswer  = ErrorCode{Code: 530101, Msg: "至少需要一个正确答案"}
	InvalidDegree  = ErrorCode{Code: 530102, Msg: "难度不合法"}
	EmailDuplicate = ErrorCode{Code: 530103, Msg: "邮箱已经被占用"}
	RecordNotFound = ErrorCode{Code: 530104, Msg: "记录不存在"}
	PasswordEmpty  = ErrorCode{Code: 530105, Msg: "密码不能为空"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
