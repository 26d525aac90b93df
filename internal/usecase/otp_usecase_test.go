package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"sama-store/internal/domain/entities"
	mock_interfaces "sama-store/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newOtpUseCaseForTest(ctrl *gomock.Controller) (*OtpUseCase, *mock_interfaces.MockIOtpRepository, *mock_interfaces.MockISmsSender, *mock_interfaces.MockIVerificationCache) {
	repo := mock_interfaces.NewMockIOtpRepository(ctrl)
	sms := mock_interfaces.NewMockISmsSender(ctrl)
	cache := mock_interfaces.NewMockIVerificationCache(ctrl)
	return NewOtpUseCase(repo, sms, cache, DefaultOtpConfig()), repo, sms, cache
}

func TestOtpUseCase_RequestOtp(t *testing.T) {
	ctx := context.Background()

	t.Run("empty user id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newOtpUseCaseForTest(ctrl)

		if err := uc.RequestOtp(ctx, "   ", "+919876543210"); !errors.Is(err, ErrOtpInvalidInput) {
			t.Fatalf("expected ErrOtpInvalidInput, got %v", err)
		}
	})

	t.Run("invalid phone writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newOtpUseCaseForTest(ctrl)

		for _, phone := range []string{"", "abc", "12345", "+0123456789", "98765-4321"} {
			if err := uc.RequestOtp(ctx, "user-1", phone); !errors.Is(err, ErrInvalidPhone) {
				t.Fatalf("phone %q: expected ErrInvalidPhone, got %v", phone, err)
			}
		}
	})

	t.Run("sms provider not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOtpRepository(ctrl)
		cache := mock_interfaces.NewMockIVerificationCache(ctrl)
		uc := NewOtpUseCase(repo, nil, cache, DefaultOtpConfig())

		if err := uc.RequestOtp(ctx, "user-1", "+919876543210"); !errors.Is(err, ErrSmsNotConfigured) {
			t.Fatalf("expected ErrSmsNotConfigured, got %v", err)
		}
	})

	t.Run("rate limited after three requests in window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newOtpUseCaseForTest(ctrl)

		repo.EXPECT().CountByUserSince(gomock.Any(), "user-1", gomock.Any()).Return(3, nil)

		if err := uc.RequestOtp(ctx, "user-1", "+919876543210"); !errors.Is(err, ErrOtpRateLimited) {
			t.Fatalf("expected ErrOtpRateLimited, got %v", err)
		}
	})

	t.Run("count error fails open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, sms, _ := newOtpUseCaseForTest(ctrl)

		repo.EXPECT().CountByUserSince(gomock.Any(), "user-1", gomock.Any()).Return(0, errors.New("dynamo down"))
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.OtpVerification) (entities.OtpVerification, error) {
				return v, nil
			})
		sms.EXPECT().Send(gomock.Any(), "+919876543210", gomock.Any()).Return(nil)

		if err := uc.RequestOtp(ctx, "user-1", "+919876543210"); err != nil {
			t.Fatalf("expected fail-open success, got %v", err)
		}
	})

	t.Run("count error fails closed when configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOtpRepository(ctrl)
		sms := mock_interfaces.NewMockISmsSender(ctrl)
		cache := mock_interfaces.NewMockIVerificationCache(ctrl)
		uc := NewOtpUseCase(repo, sms, cache, OtpConfig{FailOpenOnStoreError: false})

		repo.EXPECT().CountByUserSince(gomock.Any(), "user-1", gomock.Any()).Return(0, errors.New("dynamo down"))

		if err := uc.RequestOtp(ctx, "user-1", "+919876543210"); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("sms dispatch failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, sms, _ := newOtpUseCaseForTest(ctrl)

		repo.EXPECT().CountByUserSince(gomock.Any(), "user-1", gomock.Any()).Return(0, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.OtpVerification) (entities.OtpVerification, error) {
				return v, nil
			})
		sms.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("twilio 500"))

		if err := uc.RequestOtp(ctx, "user-1", "+919876543210"); !errors.Is(err, ErrOtpDispatchFailed) {
			t.Fatalf("expected ErrOtpDispatchFailed, got %v", err)
		}
	})

	t.Run("success normalizes phone and sends six digit code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, sms, _ := newOtpUseCaseForTest(ctrl)

		var stored entities.OtpVerification
		repo.EXPECT().CountByUserSince(gomock.Any(), "user-1", gomock.Any()).Return(1, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.OtpVerification) (entities.OtpVerification, error) {
				stored = v
				return v, nil
			})

		var sentBody string
		sms.EXPECT().Send(gomock.Any(), "+919876543210", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, body string) error {
				sentBody = body
				return nil
			})

		if err := uc.RequestOtp(ctx, "user-1", " +91 98765-43210 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if stored.Phone != "+919876543210" {
			t.Fatalf("expected normalized phone, got %q", stored.Phone)
		}
		if !regexp.MustCompile(`^[1-9]\d{5}$`).MatchString(stored.Code) {
			t.Fatalf("expected 6 digit code, got %q", stored.Code)
		}
		if !strings.Contains(sentBody, stored.Code) {
			t.Fatalf("sms body %q does not contain code %q", sentBody, stored.Code)
		}
		if got := stored.ExpiresAt.Sub(stored.CreatedAt); got != 10*time.Minute {
			t.Fatalf("expected 10 minute expiry, got %v", got)
		}
		if stored.Consumed {
			t.Fatal("new record must not be consumed")
		}
	})
}

func TestOtpUseCase_VerifyOtp(t *testing.T) {
	ctx := context.Background()

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newOtpUseCaseForTest(ctrl)

		if err := uc.VerifyOtp(ctx, "", "+919876543210", "123456"); !errors.Is(err, ErrOtpInvalidInput) {
			t.Fatalf("expected ErrOtpInvalidInput, got %v", err)
		}
		if err := uc.VerifyOtp(ctx, "user-1", "+919876543210", "  "); !errors.Is(err, ErrOtpInvalidInput) {
			t.Fatalf("expected ErrOtpInvalidInput, got %v", err)
		}
	})

	t.Run("no otp issued", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newOtpUseCaseForTest(ctrl)

		repo.EXPECT().LatestByUserPhone(gomock.Any(), "user-1", "+919876543210").Return(entities.OtpVerification{}, nil)

		if err := uc.VerifyOtp(ctx, "user-1", "+919876543210", "123456"); !errors.Is(err, ErrOtpNotFound) {
			t.Fatalf("expected ErrOtpNotFound, got %v", err)
		}
	})

	t.Run("expired code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newOtpUseCaseForTest(ctrl)

		repo.EXPECT().LatestByUserPhone(gomock.Any(), "user-1", "+919876543210").Return(entities.OtpVerification{
			ID:        "otp-1",
			Code:      "123456",
			ExpiresAt: time.Now().UTC().Add(-time.Minute),
		}, nil)

		if err := uc.VerifyOtp(ctx, "user-1", "+919876543210", "123456"); !errors.Is(err, ErrOtpExpired) {
			t.Fatalf("expected ErrOtpExpired, got %v", err)
		}
	})

	t.Run("wrong code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newOtpUseCaseForTest(ctrl)

		repo.EXPECT().LatestByUserPhone(gomock.Any(), "user-1", "+919876543210").Return(entities.OtpVerification{
			ID:        "otp-1",
			Code:      "123456",
			ExpiresAt: time.Now().UTC().Add(5 * time.Minute),
		}, nil)

		if err := uc.VerifyOtp(ctx, "user-1", "+919876543210", "654321"); !errors.Is(err, ErrOtpMismatch) {
			t.Fatalf("expected ErrOtpMismatch, got %v", err)
		}
	})

	t.Run("success consumes record and opens gate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, cache := newOtpUseCaseForTest(ctrl)

		repo.EXPECT().LatestByUserPhone(gomock.Any(), "user-1", "+919876543210").Return(entities.OtpVerification{
			ID:        "otp-1",
			UserID:    "user-1",
			Phone:     "+919876543210",
			Code:      "123456",
			ExpiresAt: time.Now().UTC().Add(5 * time.Minute),
		}, nil)
		repo.EXPECT().MarkConsumed(gomock.Any(), "otp-1").Return(nil)
		cache.EXPECT().MarkVerified(gomock.Any(), "user-1", "+919876543210", 30*time.Minute).Return(nil)

		if err := uc.VerifyOtp(ctx, "user-1", "+91 98765 43210", "123456"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("consume failure does not open gate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newOtpUseCaseForTest(ctrl)

		repo.EXPECT().LatestByUserPhone(gomock.Any(), "user-1", "+919876543210").Return(entities.OtpVerification{
			ID:        "otp-1",
			Code:      "123456",
			ExpiresAt: time.Now().UTC().Add(5 * time.Minute),
		}, nil)
		repo.EXPECT().MarkConsumed(gomock.Any(), "otp-1").Return(errors.New("dynamo down"))

		if err := uc.VerifyOtp(ctx, "user-1", "+919876543210", "123456"); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestGenerateOtpCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := generateOtpCode()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !regexp.MustCompile(`^[1-9]\d{5}$`).MatchString(code) {
			t.Fatalf("expected 6 digit code with non-zero first digit, got %q", code)
		}
	}
}
