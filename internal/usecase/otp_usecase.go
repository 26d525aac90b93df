package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"sama-store/internal/domain/entities"
	"sama-store/internal/usecase/interfaces"
	"sama-store/internal/util"

	"github.com/google/uuid"
)

var (
	ErrInvalidPhone        = errors.New("invalid phone number format")
	ErrOtpRateLimited      = errors.New("too many otp requests")
	ErrOtpDispatchFailed   = errors.New("failed to send otp")
	ErrOtpNotFound         = errors.New("no otp issued for this phone")
	ErrOtpExpired          = errors.New("otp expired")
	ErrOtpMismatch         = errors.New("otp code does not match")
	ErrSmsNotConfigured    = errors.New("sms provider not configured")
	ErrOtpInvalidInput     = errors.New("invalid otp input")
)

const (
	otpTTL                  = 10 * time.Minute
	rateLimitWindow         = 60 * time.Second
	maxOtpRequestsPerWindow = 3

	// verifiedPhoneTTL bounds how long a verified phone stays usable for
	// checkout before the user has to verify again.
	verifiedPhoneTTL = 30 * time.Minute
)

// phonePattern accepts 10-15 digits with an optional leading country code.
var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{9,14}$`)

// IOtpUseCase exposes phone verification operations.
//
// RequestOtp never returns the generated code to the caller; the only way to
// learn it is the SMS. VerifyOtp consumes the record on success and marks the
// phone verified for the order flow.

type IOtpUseCase interface {
	RequestOtp(ctx context.Context, userID, phone string) error
	VerifyOtp(ctx context.Context, userID, phone, code string) error
}

// OtpConfig carries the rate-limiter policy.
//
// FailOpenOnStoreError keeps OTP issuance available when the rate-limit count
// query itself fails: the error is logged and the request proceeds. This
// trades strict enforcement for availability; the 3-per-minute threshold is
// advisory, not security-critical.
type OtpConfig struct {
	FailOpenOnStoreError bool
}

func DefaultOtpConfig() OtpConfig {
	return OtpConfig{FailOpenOnStoreError: true}
}

type OtpUseCase struct {
	repo  interfaces.IOtpRepository
	sms   interfaces.ISmsSender
	cache interfaces.IVerificationCache
	cfg   OtpConfig
}

var _ IOtpUseCase = (*OtpUseCase)(nil)

func NewOtpUseCase(repo interfaces.IOtpRepository, sms interfaces.ISmsSender, cache interfaces.IVerificationCache, cfg OtpConfig) *OtpUseCase {
	return &OtpUseCase{repo: repo, sms: sms, cache: cache, cfg: cfg}
}

func (u *OtpUseCase) RequestOtp(ctx context.Context, userID, phone string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrOtpInvalidInput
	}

	phone = normalizePhone(phone)
	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}

	if u.sms == nil {
		util.Error("otp request rejected: sms provider not configured", util.String("user_id", userID))
		return ErrSmsNotConfigured
	}

	// Sliding-window rate limit: recomputed per request over the OTP store,
	// no separate counter storage.
	cutoff := time.Now().UTC().Add(-rateLimitWindow)
	count, err := u.repo.CountByUserSince(ctx, userID, cutoff)
	if err != nil {
		if !u.cfg.FailOpenOnStoreError {
			return fmt.Errorf("rate limit check failed: %w", err)
		}
		util.Warn("rate limit check failed; continuing (fail-open)",
			util.String("user_id", userID),
			util.ErrorField(err))
	} else if count >= maxOtpRequestsPerWindow {
		util.Info("otp request rate limited",
			util.String("user_id", userID),
			util.Int("recent_requests", count))
		return ErrOtpRateLimited
	}

	code, err := generateOtpCode()
	if err != nil {
		return fmt.Errorf("failed to generate otp: %w", err)
	}

	now := time.Now().UTC()
	record := entities.OtpVerification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Phone:     phone,
		Code:      code,
		ExpiresAt: now.Add(otpTTL),
		CreatedAt: now,
	}
	if _, err := u.repo.Create(ctx, record); err != nil {
		return fmt.Errorf("failed to store otp: %w", err)
	}

	body := fmt.Sprintf("Your SAMA verification code is: %s. Valid for 10 minutes.", code)
	if err := u.sms.Send(ctx, phone, body); err != nil {
		// The record stays behind but is unusable without the code; the
		// caller may retry, subject to rate limiting.
		util.Error("otp sms dispatch failed",
			util.String("user_id", userID),
			util.String("phone", maskPhone(phone)),
			util.ErrorField(err))
		return fmt.Errorf("%w: %v", ErrOtpDispatchFailed, err)
	}

	util.Info("otp sent",
		util.String("user_id", userID),
		util.String("phone", maskPhone(phone)))
	return nil
}

func (u *OtpUseCase) VerifyOtp(ctx context.Context, userID, phone, code string) error {
	userID = strings.TrimSpace(userID)
	code = strings.TrimSpace(code)
	phone = normalizePhone(phone)
	if userID == "" || code == "" || phone == "" {
		return ErrOtpInvalidInput
	}

	record, err := u.repo.LatestByUserPhone(ctx, userID, phone)
	if err != nil {
		return fmt.Errorf("failed to load otp record: %w", err)
	}
	if record.ID == "" {
		return ErrOtpNotFound
	}
	if record.ExpiredAt(time.Now().UTC()) {
		return ErrOtpExpired
	}
	if record.Code != code {
		return ErrOtpMismatch
	}

	// Consume before opening the gate so a stored code can never be replayed.
	if err := u.repo.MarkConsumed(ctx, record.ID); err != nil {
		return fmt.Errorf("failed to consume otp record: %w", err)
	}
	if err := u.cache.MarkVerified(ctx, userID, phone, verifiedPhoneTTL); err != nil {
		return fmt.Errorf("failed to mark phone verified: %w", err)
	}

	util.Info("phone verified",
		util.String("user_id", userID),
		util.String("phone", maskPhone(phone)))
	return nil
}

func normalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")
	return phone
}

func maskPhone(phone string) string {
	if len(phone) <= 4 {
		return "****"
	}
	return phone[:4] + "****"
}

func generateOtpCode() (string, error) {
	// 6 digits, first digit never zero.
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
