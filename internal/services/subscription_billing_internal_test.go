package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/sealpoint/billing-api/internal/clock"
	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/mocks"
)

func newPartialCreditFixture(t *testing.T) (*SubscriptionBillingService, *mocks.MockQuerier) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	querier := mocks.NewMockQuerier(ctrl)

	log := zap.NewNop()
	credits := NewCreditService(log)
	billing := &SubscriptionBillingService{logger: log, credits: credits}
	return billing, querier
}

func TestIssuePartialMonthCredit_LastDayOfThirtyDayMonth(t *testing.T) {
	billing, querier := newPartialCreditFixture(t)
	// June 30th: one day used, twenty-nine unused.
	clk := clock.NewFixedClock(time.Date(2025, 6, 30, 10, 0, 0, 0, time.UTC))
	service := db.ServiceInstance{ServiceType: db.ServiceTypeSeal}

	querier.EXPECT().
		CreateCustomerCredit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateCustomerCreditParams) (db.CustomerCredit, error) {
			assert.Equal(t, int64(900*29/30), arg.OriginalAmountUsdCents)
			assert.Equal(t, db.CreditReasonReconciliation, arg.Reason)
			// Never expires.
			assert.False(t, arg.ExpiresAt.Valid)
			return db.CustomerCredit{}, nil
		})

	err := billing.issuePartialMonthCredit(context.Background(), querier, clk, 7, service, db.ServiceTierStarter, 900)
	require.NoError(t, err)
}

func TestIssuePartialMonthCredit_FirstOfMonthSkips(t *testing.T) {
	billing, querier := newPartialCreditFixture(t)
	// On the 1st the whole month is used, so there is nothing to give back.
	clk := clock.NewFixedClock(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	service := db.ServiceInstance{ServiceType: db.ServiceTypeSeal}

	err := billing.issuePartialMonthCredit(context.Background(), querier, clk, 7, service, db.ServiceTierPro, 2900)
	require.NoError(t, err)
}

func TestIssuePartialMonthCredit_ZeroPriceSkips(t *testing.T) {
	billing, querier := newPartialCreditFixture(t)
	clk := clock.NewFixedClock(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	service := db.ServiceInstance{ServiceType: db.ServiceTypeSeal}

	err := billing.issuePartialMonthCredit(context.Background(), querier, clk, 7, service, db.ServiceTierStarter, 0)
	require.NoError(t, err)
}
