package request

import "strings"

type OtpRequestRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Phone  string `json:"phone" binding:"required"`
}

func (r OtpRequestRequest) ResolveUserID() string {
	return strings.TrimSpace(r.UserID)
}

func (r OtpRequestRequest) ResolvePhone() string {
	return strings.TrimSpace(r.Phone)
}

type OtpVerifyRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Phone  string `json:"phone" binding:"required"`
	Code   string `json:"code" binding:"required"`
}

func (r OtpVerifyRequest) ResolveUserID() string {
	return strings.TrimSpace(r.UserID)
}

func (r OtpVerifyRequest) ResolvePhone() string {
	return strings.TrimSpace(r.Phone)
}

func (r OtpVerifyRequest) ResolveCode() string {
	return strings.TrimSpace(r.Code)
}
