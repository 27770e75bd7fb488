package web

type SignupReq struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordReq struct {
	Email string `json:"email"`
}

type ResetPasswordReq struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type EditProfileReq struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

type UpdatePasswordReq struct {
	Password string `json:"password"`
}

type DeleteUserReq struct {
	Uid int64 `json:"uid"`
}

// Profile 永远不带密码字段
type Profile struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Role      string `json:"role"`
	Ctime     int64  `json:"ctime"`
}
