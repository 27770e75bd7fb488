package test

// Result 和 ginx.Result 同构，泛型化之后断言 Data 不用再手动转型
type Result[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}
