package app

type EvaluateRequest struct {
	Sets []ProjectSetInput
}

type EvaluateResponse struct {
	RunID   string
	Reports []SetReport
}
