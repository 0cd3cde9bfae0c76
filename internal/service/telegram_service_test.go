package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-service/internal/entity"
	"storefront-service/internal/service"
)

type stubLinker struct {
	code        string
	linkResp    *entity.LinkAccountResponse
	status      *entity.LinkStatus
	err         error
	statusCalls int
}

func (s *stubLinker) RequestCode(_ context.Context, _ string) (string, error) {
	return s.code, s.err
}

func (s *stubLinker) LinkAccount(_ context.Context, _, _ string) (*entity.LinkAccountResponse, error) {
	return s.linkResp, s.err
}

func (s *stubLinker) Status(_ context.Context, _ string) (*entity.LinkStatus, error) {
	s.statusCalls++
	return s.status, s.err
}

func (s *stubLinker) Unlink(_ context.Context, _ string) error {
	return s.err
}

func TestLinkAccountMarksBotConfigured(t *testing.T) {
	linker := &stubLinker{linkResp: &entity.LinkAccountResponse{Success: true, ChatID: "12345"}}
	promos := newMemPromoStore()
	svc := service.NewTelegramService(linker, promos)
	ctx := context.Background()

	resp, err := svc.LinkAccount(ctx, "tok", "user-1", "ABC123")
	require.NoError(t, err)
	assert.True(t, resp.Success)

	configured, err := promos.BotConfigured(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, configured)
}

func TestLinkAccountFailureLeavesFlagsAlone(t *testing.T) {
	linker := &stubLinker{linkResp: &entity.LinkAccountResponse{Success: false, Message: "invalid code"}}
	promos := newMemPromoStore()
	svc := service.NewTelegramService(linker, promos)
	ctx := context.Background()

	resp, err := svc.LinkAccount(ctx, "tok", "user-1", "WRONG")
	require.NoError(t, err)
	assert.False(t, resp.Success)

	configured, err := promos.BotConfigured(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, configured)
}

func TestLinkAccountRejectsEmptyCode(t *testing.T) {
	svc := service.NewTelegramService(&stubLinker{}, newMemPromoStore())

	_, err := svc.LinkAccount(context.Background(), "tok", "user-1", "")
	assert.ErrorIs(t, err, service.ErrEmptyVerificationCode)
}

func TestStatusIsNeverCached(t *testing.T) {
	linker := &stubLinker{status: &entity.LinkStatus{IsLinked: true, ChatID: "12345"}}
	svc := service.NewTelegramService(linker, newMemPromoStore())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		status, err := svc.Status(ctx, "tok")
		require.NoError(t, err)
		assert.True(t, status.IsLinked)
	}
	assert.Equal(t, 3, linker.statusCalls, "every read asks the linking service")
}

func TestPromotionStanding(t *testing.T) {
	promos := newMemPromoStore()
	svc := service.NewTelegramService(&stubLinker{}, promos)
	ctx := context.Background()

	promo, err := svc.Promotion(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, promo.IsEligible, "requires a configured bot")
	assert.Equal(t, entity.TelegramPromoCode, promo.Code)

	require.NoError(t, promos.MarkBotConfigured(ctx, "user-1"))
	promo, err = svc.Promotion(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, promo.IsEligible)
	assert.Equal(t, entity.TelegramPromoPercent, promo.Discount)

	require.NoError(t, promos.MarkOrdered(ctx, "user-1"))
	promo, err = svc.Promotion(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, promo.IsEligible, "first order only")
	assert.False(t, promo.IsFirstOrder)
}

func TestBannerDismissal(t *testing.T) {
	svc := service.NewTelegramService(&stubLinker{}, newMemPromoStore())
	ctx := context.Background()

	dismissed, err := svc.BannerDismissed(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, dismissed)

	require.NoError(t, svc.DismissBanner(ctx, "user-1"))
	dismissed, err = svc.BannerDismissed(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, dismissed)
}
