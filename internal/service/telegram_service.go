package service

import (
	"context"
	"errors"

	"storefront-service/internal/entity"
)

var ErrEmptyVerificationCode = errors.New("verification code must not be empty")

// TelegramLinker is the linking service surface used by the
// preference manager.
type TelegramLinker interface {
	RequestCode(ctx context.Context, token string) (string, error)
	LinkAccount(ctx context.Context, token, code string) (*entity.LinkAccountResponse, error)
	Status(ctx context.Context, token string) (*entity.LinkStatus, error)
	Unlink(ctx context.Context, token string) error
}

// TelegramService manages the optional notification opt-in flow. Link
// status is never cached: the customer can unlink from inside the bot
// without this service hearing about it, so every read asks the
// linking service.
type TelegramService struct {
	linker TelegramLinker
	promos PromoStore
}

// NewTelegramService creates a new instance of TelegramService.
func NewTelegramService(linker TelegramLinker, promos PromoStore) *TelegramService {
	return &TelegramService{linker: linker, promos: promos}
}

func (s *TelegramService) RequestCode(ctx context.Context, token string) (string, error) {
	code, err := s.linker.RequestCode(ctx, token)
	if err != nil {
		logger.Error().Err(err).Msg("Error requesting verification code")
		return "", err
	}
	return code, nil
}

// LinkAccount verifies the code upstream and, on success, records the
// bot as configured for the promotion flow.
func (s *TelegramService) LinkAccount(ctx context.Context, token, userID, code string) (*entity.LinkAccountResponse, error) {
	if code == "" {
		return nil, ErrEmptyVerificationCode
	}

	resp, err := s.linker.LinkAccount(ctx, token, code)
	if err != nil {
		logger.Error().Err(err).Str("userId", userID).Msg("Error linking Telegram account")
		return nil, err
	}

	if resp.Success {
		if err := s.promos.MarkBotConfigured(ctx, userID); err != nil {
			logger.Error().Err(err).Str("userId", userID).Msg("Error marking bot as configured")
		}
	}
	return resp, nil
}

// Status asks the linking service for the current link state.
func (s *TelegramService) Status(ctx context.Context, token string) (*entity.LinkStatus, error) {
	return s.linker.Status(ctx, token)
}

func (s *TelegramService) Unlink(ctx context.Context, token string) error {
	if err := s.linker.Unlink(ctx, token); err != nil {
		logger.Error().Err(err).Msg("Error unlinking Telegram account")
		return err
	}
	return nil
}

// Promotion reports the customer's standing for the first-order
// discount.
func (s *TelegramService) Promotion(ctx context.Context, userID string) (*entity.TelegramPromotion, error) {
	configured, err := s.promos.BotConfigured(ctx, userID)
	if err != nil {
		return nil, err
	}
	ordered, err := s.promos.HasOrdered(ctx, userID)
	if err != nil {
		return nil, err
	}
	used, err := s.promos.PromoUsed(ctx, userID)
	if err != nil {
		return nil, err
	}

	eligible := configured && !ordered && !used
	promo := &entity.TelegramPromotion{
		IsEligible:       eligible,
		Code:             entity.TelegramPromoCode,
		HasConfiguredBot: configured,
		IsFirstOrder:     !ordered,
		MinOrder:         entity.TelegramPromoMinOrder,
	}
	if eligible {
		promo.Discount = entity.TelegramPromoPercent
	}
	return promo, nil
}

func (s *TelegramService) BannerDismissed(ctx context.Context, userID string) (bool, error) {
	return s.promos.BannerDismissed(ctx, userID)
}

func (s *TelegramService) DismissBanner(ctx context.Context, userID string) error {
	return s.promos.DismissBanner(ctx, userID)
}
