package app

import "github.com/alexanderramin/daybill/internal/schedule"

type ScheduleRequest struct {
	Set ProjectSetInput
}

type ScheduleResponse struct {
	Report   SetReport
	Projects []ProjectView
	Days     []DayView
	Runs     []schedule.Run
}
