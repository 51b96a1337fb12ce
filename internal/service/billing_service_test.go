package service

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/daybill/internal/app"
	"github.com/alexanderramin/daybill/internal/billing"
	"github.com/alexanderramin/daybill/internal/domain"
	"github.com/alexanderramin/daybill/internal/importer"
	"github.com/alexanderramin/daybill/internal/schedule"
	"github.com/alexanderramin/daybill/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.events = append(r.events, event)
}

func newTestService(obs ...UseCaseObserver) BillingService {
	return NewBillingService(billing.DefaultCostTable(), zerolog.Nop(), obs...)
}

func fixtureInputs(t *testing.T) []app.ProjectSetInput {
	t.Helper()
	sets, err := importer.LoadFixtures(filepath.Join("..", "..", "data", "projects.fixtures.yml"))
	require.NoError(t, err)
	require.Empty(t, importer.ValidateFixtures(sets))
	return app.NewProjectSetInputs(sets)
}

func TestEvaluate_FixtureFile(t *testing.T) {
	obs := &recordingObserver{}
	svc := newTestService(obs)

	resp, err := svc.Evaluate(context.Background(), app.EvaluateRequest{Sets: fixtureInputs(t)})
	require.NoError(t, err)
	require.Len(t, resp.Reports, 6)
	assert.NotEmpty(t, resp.RunID)

	second := resp.Reports[1]
	assert.Equal(t, "Set 2", second.Description)
	assert.Equal(t, 3, second.Projects)
	assert.Equal(t, 8, second.Days)
	assert.Equal(t, schedule.Counts{LowTravel: 2, LowFull: 1, HighFull: 5}, second.Counts)
	assert.Equal(t, 590, second.Total)

	empty := resp.Reports[5]
	assert.Equal(t, app.SetReport{Description: "Empty set"}, empty)

	require.Len(t, obs.events, 1)
	assert.Equal(t, "evaluate", obs.events[0].Name)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, resp.RunID, obs.events[0].RunID)
	assert.Equal(t, 165+590+1390+185+360, obs.events[0].Fields["total"])
}

func TestEvaluate_InvalidSetHaltsWithSetError(t *testing.T) {
	obs := &recordingObserver{}
	svc := newTestService(obs)

	req := app.EvaluateRequest{Sets: []app.ProjectSetInput{
		{Description: "ok", Records: []billing.Record{testutil.NewTestRecord("A")}},
		{Description: "broken", Records: []billing.Record{
			testutil.NewTestRecord("B", testutil.WithRawDates("9/3/15", "9/1/15")),
		}},
	}}

	resp, err := svc.Evaluate(context.Background(), req)
	require.Error(t, err)
	assert.Nil(t, resp, "no partial results")

	var setErr *app.SetError
	require.ErrorAs(t, err, &setErr)
	assert.Equal(t, 1, setErr.Index)
	assert.Equal(t, "broken", setErr.Description)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
	assert.Error(t, obs.events[0].Err)
}

func TestEvaluate_UsesConfiguredCostTable(t *testing.T) {
	table := billing.DefaultCostTable()
	table[domain.TierLow][domain.DayTravel] = 50
	svc := NewBillingService(table, zerolog.Nop())

	resp, err := svc.Evaluate(context.Background(), app.EvaluateRequest{Sets: []app.ProjectSetInput{
		{Description: "one", Records: []billing.Record{testutil.NewTestRecord("A")}},
	}})
	require.NoError(t, err)
	assert.Equal(t, 50, resp.Reports[0].Total)
}

func TestVerify_FixtureFilePasses(t *testing.T) {
	resp, err := newTestService().Verify(context.Background(), app.VerifyRequest{Sets: fixtureInputs(t)})
	require.NoError(t, err)

	assert.True(t, resp.OK())
	assert.Equal(t, 6, resp.Passed)
	assert.Equal(t, 0, resp.Failed)
	for _, r := range resp.Results {
		assert.Equal(t, app.VerifyPassed, r.Status, r.Report.Description)
		assert.Empty(t, r.Mismatches)
	}
}

func TestVerify_ReportsMismatchesAndSkips(t *testing.T) {
	req := app.VerifyRequest{Sets: []app.ProjectSetInput{
		{
			Description: "wrong",
			Records: []billing.Record{
				testutil.NewTestRecord("A", testutil.WithTier(domain.TierHigh), testutil.WithRawDates("9/1/15", "9/3/15")),
			},
			Expected: &app.Expectation{Counts: schedule.Counts{HighTravel: 2, HighFull: 1}, Total: 200},
		},
		{
			Description: "unchecked",
			Records:     []billing.Record{testutil.NewTestRecord("B")},
		},
	}}

	resp, err := newTestService().Verify(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, resp.OK())
	assert.Equal(t, 1, resp.Failed)
	assert.Equal(t, 1, resp.Skipped)

	failed := resp.Results[0]
	assert.Equal(t, app.VerifyFailed, failed.Status)
	assert.Equal(t, []string{"total: expected 200, got 195"}, failed.Mismatches)
	assert.Equal(t, app.VerifySkipped, resp.Results[1].Status)
}

func TestSchedule_PricesEachDay(t *testing.T) {
	req := app.ScheduleRequest{Set: app.ProjectSetInput{
		Description: "gap",
		Records: []billing.Record{
			testutil.NewTestRecord("A", testutil.WithTier(domain.TierLow), testutil.WithRawDates("9/1/15", "9/3/15")),
			testutil.NewTestRecord("B", testutil.WithTier(domain.TierHigh), testutil.WithRawDates("9/5/15", "9/5/15")),
		},
	}}

	resp, err := newTestService().Schedule(context.Background(), req)
	require.NoError(t, err)

	prices := make([]int, 0, len(resp.Days))
	for _, d := range resp.Days {
		prices = append(prices, d.Price)
	}
	assert.Equal(t, []int{45, 75, 45, 55}, prices)
	assert.Equal(t, 220, resp.Report.Total)
	require.Len(t, resp.Runs, 2)
	assert.Equal(t, 3, resp.Runs[0].Days)
	assert.True(t, testutil.Date(2015, 9, 5).Equal(resp.Runs[1].Start))
}

func TestSchedule_ListsProjectsWithRecordDates(t *testing.T) {
	req := app.ScheduleRequest{Set: app.ProjectSetInput{
		Description: "padded",
		Records: []billing.Record{
			testutil.NewTestRecord("A", testutil.WithRawDates("09/01/15", " 9/2/15 ")),
		},
	}}

	resp, err := newTestService().Schedule(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []app.ProjectView{
		{Name: "A", Tier: domain.TierLow, StartRaw: "09/01/15", EndRaw: "9/2/15", Days: 2},
	}, resp.Projects)
}

func TestLogUseCaseObserver_WritesStructuredEvent(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(zerolog.New(&buf))
	svc := newTestService(obs)

	_, err := svc.Evaluate(context.Background(), app.EvaluateRequest{})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"use_case":"evaluate"`)
	assert.Contains(t, out, `"success":true`)
	assert.Contains(t, out, `"run_id":"`)
	assert.Contains(t, out, `"message":"service_use_case"`)
}
