package remarksvc

import (
	"context"
	"fmt"
	"log"

	"github.com/officialmikal/cbc-edutrac-automation/core"
)

// consoleService stands in for Gemini in DEV mode: it logs the request
// and answers with a canned remark so marks entry stays usable offline.
type consoleService struct {
	disableOutput bool
}

var _ core.RemarkService = (*consoleService)(nil)

func NewConsoleService() core.RemarkService {
	return &consoleService{}
}

func (svc consoleService) Generate(_ context.Context, req core.RemarkRequest) string {
	if !svc.disableOutput {
		log.Println(fmt.Sprintf("remark requested: %s, %s, %d/100, %s", req.StudentName, req.SubjectName, req.Score, req.Level))
	}
	return core.RemarkFallbackEmpty
}

type consoleServiceMock struct {
	consoleService
}

func NewConsoleServiceMock() core.RemarkService {
	return &consoleServiceMock{consoleService{disableOutput: true}}
}
