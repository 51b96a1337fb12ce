package app

import "context"

type EvaluateUseCase interface {
	Evaluate(ctx context.Context, req EvaluateRequest) (*EvaluateResponse, error)
}

type VerifyUseCase interface {
	Verify(ctx context.Context, req VerifyRequest) (*VerifyResponse, error)
}

type ScheduleUseCase interface {
	Schedule(ctx context.Context, req ScheduleRequest) (*ScheduleResponse, error)
}
