package errs

var (
	SystemError            = ErrorCode{Code: 501001, Msg: "系统错误"}
	DuplicateEmail         = ErrorCode{Code: 501002, Msg: "邮箱已被注册"}
	InvalidEmailOrPassword = ErrorCode{Code: 501003, Msg: "邮箱或密码不正确"}
	UserNotFound           = ErrorCode{Code: 501004, Msg: "用户不存在"}
	InvalidResetToken      = ErrorCode{Code: 501005, Msg: "重置令牌错误或已过期"}
	InvalidInput           = ErrorCode{Code: 501006, Msg: "非法输入"}
	Forbidden              = ErrorCode{Code: 501007, Msg: "没有权限"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
