package core

import "context"

type (
	// RemarkRequest describes one assessment a qualitative remark is wanted for.
	RemarkRequest struct {
		StudentName string
		SubjectName string
		Level       string
		Score       int
	}

	// RemarkService is any service that can produce a short report-card remark.
	//
	// Implementations absorb every failure at this boundary: Generate always
	// returns a usable remark string, falling back to a canned one when the
	// backing service misbehaves. The domain never sees an error from here.
	RemarkService interface {
		Generate(ctx context.Context, req RemarkRequest) string
	}
)

// Fallback remarks returned when the backing service yields nothing or fails.
const (
	RemarkFallbackEmpty  = "Good progress made this term."
	RemarkFallbackFailed = "Consistently working towards goals."
)
