package service

type RegisterInput struct {
	Email    string
	Password string
	Phone    *string
}

type LoginInput struct {
	Email     string
	Password  string
	IPAddress *string
	UserAgent *string
}

type LoginResult struct {
	AccessToken string
	ExpiresIn   int64
}

type ResetPasswordInput struct {
	Email       string
	Code        string
	NewPassword string
	IPAddress   *string
}
