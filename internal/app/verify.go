package app

type VerifyStatus string

const (
	VerifyPassed  VerifyStatus = "passed"
	VerifyFailed  VerifyStatus = "failed"
	VerifySkipped VerifyStatus = "skipped"
)

type VerifyRequest struct {
	Sets []ProjectSetInput
}

type VerifyResult struct {
	Report     SetReport
	Expected   *Expectation
	Status     VerifyStatus
	Mismatches []string
}

type VerifyResponse struct {
	RunID   string
	Results []VerifyResult
	Passed  int
	Failed  int
	Skipped int
}

// OK reports whether no set failed verification.
func (r *VerifyResponse) OK() bool {
	return r.Failed == 0
}
