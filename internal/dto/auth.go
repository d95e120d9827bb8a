package dto

// ── 认证模块 DTO ──

// RegisterRequest 注册请求
type RegisterRequest struct {
	AttendanceNo    int    `json:"attendance_no"    binding:"required,min=0"`
	Nickname        string `json:"nickname"         binding:"required,min=1,max=50"`
	Password        string `json:"password"         binding:"required,min=8,max=72"`
	PasswordConfirm string `json:"password_confirm" binding:"required"`
}

// LoginRequest 登录请求（出席番号 + 密码）
type LoginRequest struct {
	AttendanceNo int    `json:"attendance_no" binding:"min=0"`
	Password     string `json:"password"      binding:"required"`
}

// RefreshTokenRequest 刷新 Token 请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse Token 对响应
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"` // Access Token 有效期（秒）
	User         UserResponse `json:"user"`
}

// RegisterResponse 注册成功响应
type RegisterResponse struct {
	ID           string `json:"id"`
	AttendanceNo int    `json:"attendance_no"`
	Nickname     string `json:"nickname"`
}

// UserResponse 用户信息响应（脱敏）
type UserResponse struct {
	ID           string `json:"id"`
	AttendanceNo int    `json:"attendance_no"`
	Nickname     string `json:"nickname"`
	Role         string `json:"role"`
}
