package dummyremark

import (
	"context"
	"sync"

	"github.com/officialmikal/cbc-edutrac-automation/core"
)

var (
	Requests = make([]core.RemarkRequest, 0)
	mu       sync.Mutex
)

type service struct {
	remark string
}

var _ core.RemarkService = (*service)(nil)

func NewService(remark string) core.RemarkService {
	return &service{remark: remark}
}

func (svc service) Generate(_ context.Context, req core.RemarkRequest) string {
	mu.Lock()
	Requests = append(Requests, req)
	mu.Unlock()
	return svc.remark
}
