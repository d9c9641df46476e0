package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/diegoclair/wardrobe-notifier/internal/handlers"
	"github.com/diegoclair/wardrobe-notifier/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type ServiceMocks struct {
	UserServiceMock     *mocks.MockUserService
	ScheduleServiceMock *mocks.MockScheduleService
	SettingsServiceMock *mocks.MockSettingsService
	HistoryServiceMock  *mocks.MockHistoryService
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler http.Handler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		UserServiceMock:     mocks.NewMockUserService(ctrl),
		ScheduleServiceMock: mocks.NewMockScheduleService(ctrl),
		SettingsServiceMock: mocks.NewMockSettingsService(ctrl),
		HistoryServiceMock:  mocks.NewMockHistoryService(ctrl),
	}

	h := handlers.New(handlers.Services{
		User:     m.UserServiceMock,
		Schedule: m.ScheduleServiceMock,
		Settings: m.SettingsServiceMock,
		History:  m.HistoryServiceMock,
	}, zap.NewNop())
	handler = h.Routes(nil)

	return
}

// CreateRequest builds an API request on behalf of userID. body is encoded as
// JSON unless it is nil.
func CreateRequest(t *testing.T, method, path string, userID int64, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")
	if userID > 0 {
		req.Header.Set("X-User-ID", strconv.FormatInt(userID, 10))
	}

	return req
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
