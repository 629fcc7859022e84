//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"eiffel-bike-client/internal/pkg/clock"
	"eiffel-bike-client/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifierShow(t *testing.T) {
	t.Parallel()

	clk := clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	notifier := usecase.NewNotifier(time.Minute, clk)

	notifier.Show("Bike returned.", usecase.SeveritySuccess)

	alert := notifier.Current()
	require.NotNil(t, alert)
	assert.Equal(t, "Bike returned.", alert.Message)
	assert.Equal(t, usecase.SeveritySuccess, alert.Severity)
	assert.Equal(t, clk.Now(), alert.At)
}

func TestNotifierNewestWins(t *testing.T) {
	t.Parallel()

	clk := clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	notifier := usecase.NewNotifier(time.Minute, clk)

	notifier.Show("first", usecase.SeverityInfo)
	notifier.Show("second", usecase.SeverityError)

	alert := notifier.Current()
	require.NotNil(t, alert)
	assert.Equal(t, "second", alert.Message)
	assert.Equal(t, usecase.SeverityError, alert.Severity)
}

func TestNotifierDismiss(t *testing.T) {
	t.Parallel()

	clk := clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	notifier := usecase.NewNotifier(time.Minute, clk)

	notifier.Show("visible", usecase.SeverityInfo)
	notifier.Dismiss()

	assert.Nil(t, notifier.Current())
}

func TestNotifierAutoDismiss(t *testing.T) {
	t.Parallel()

	clk := clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	notifier := usecase.NewNotifier(20*time.Millisecond, clk)

	notifier.Show("short-lived", usecase.SeverityInfo)
	require.NotNil(t, notifier.Current())

	assert.Eventually(t, func() bool {
		return notifier.Current() == nil
	}, time.Second, 5*time.Millisecond)
}
