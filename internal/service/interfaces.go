package service

import "github.com/alexanderramin/daybill/internal/app"

// BillingService evaluates project sets into schedules and costs.
type BillingService interface {
	app.EvaluateUseCase
	app.VerifyUseCase
	app.ScheduleUseCase
}
