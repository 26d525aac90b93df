package response

type OtpRequestedResponse struct {
	Message   string `json:"message"`
	ExpiresIn int    `json:"expires_in"`
}

func NewOtpRequested(expiresInSeconds int) OtpRequestedResponse {
	return OtpRequestedResponse{
		Message:   "verification code sent",
		ExpiresIn: expiresInSeconds,
	}
}

type OtpVerifiedResponse struct {
	Verified bool `json:"verified"`
}
