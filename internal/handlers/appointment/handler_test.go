package appointment_test

import (
	"appointly/infras/otel/mocks"
	appointmentMocks "appointly/internal/domains/appointment/mocks"
	"appointly/internal/domains/appointment/model/dto"
	"appointly/internal/handlers/appointment"
	"appointly/shared/constant"
	"appointly/shared/failure"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (http.Handler, *appointmentMocks.MockAppointmentService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	svc := appointmentMocks.NewMockAppointmentService(ctrl)
	handler := appointment.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return router, svc
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	request = request.WithContext(context.WithValue(request.Context(), constant.ContextKeyUserID, "owner-1"))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func TestHandler_GetAvailableTimes(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		setupMock func(svc *appointmentMocks.MockAppointmentService)
		wantCode  int
	}{
		{
			name:   "available times",
			target: "/v1/appointments/available/studio-noa?date=2099-01-05&duration=30&staffId=staff-1",
			setupMock: func(svc *appointmentMocks.MockAppointmentService) {
				svc.EXPECT().Available(gomock.Any(), "studio-noa", dto.AvailabilityRequest{
					Date:            "2099-01-05",
					DurationMinutes: 30,
					StaffID:         "staff-1",
				}).Return(dto.AvailabilityResponse{Date: "2099-01-05", Times: []string{"09:00", "09:30"}}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "duration is not a number",
			target:    "/v1/appointments/available/studio-noa?date=2099-01-05&duration=half-hour",
			setupMock: func(_ *appointmentMocks.MockAppointmentService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "malformed date",
			target:    "/v1/appointments/available/studio-noa?date=05-01-2099&duration=30",
			setupMock: func(_ *appointmentMocks.MockAppointmentService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "unknown business",
			target: "/v1/appointments/available/nobody?date=2099-01-05&duration=30",
			setupMock: func(svc *appointmentMocks.MockAppointmentService) {
				svc.EXPECT().Available(gomock.Any(), "nobody", gomock.Any()).Return(dto.AvailabilityResponse{}, failure.NotFound("business not found"))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := setup(t)
			tt.setupMock(svc)

			recorder := serve(router, http.MethodGet, tt.target, "")

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantCode == http.StatusOK {
				var body struct {
					Data dto.AvailabilityResponse `json:"data"`
				}

				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				assert.Equal(t, []string{"09:00", "09:30"}, body.Data.Times)
			}
		})
	}
}

func TestHandler_CreatePublicAppointment(t *testing.T) {
	router, svc := setup(t)

	svc.EXPECT().CreatePublic(gomock.Any(), "studio-noa", gomock.Any()).Return(dto.AppointmentResponse{ID: "appt-1", Status: "pending"}, nil)
	svc.EXPECT().CreatePublic(gomock.Any(), "studio-noa", gomock.Any()).Return(dto.AppointmentResponse{}, failure.Conflict("time slot is already booked"))

	body := `{"customer_name":"Dana","date":"2099-01-05","start_time":"10:00","duration_minutes":30}`

	recorder := serve(router, http.MethodPost, "/v1/public/studio-noa/appointments", body)
	assert.Equal(t, http.StatusCreated, recorder.Code)

	recorder = serve(router, http.MethodPost, "/v1/public/studio-noa/appointments", body)
	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "time slot is already booked")

	recorder = serve(router, http.MethodPost, "/v1/public/studio-noa/appointments", `{"customer_name":"Dana","date":"2099-01-05","start_time":"10 am"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_CancelAppointment(t *testing.T) {
	router, svc := setup(t)

	svc.EXPECT().Cancel(gomock.Any(), "appt-1").Return(nil)
	svc.EXPECT().Cancel(gomock.Any(), "appt-2").Return(failure.Forbidden("appointments can only be cancelled 24 hours in advance"))

	assert.Equal(t, http.StatusOK, serve(router, http.MethodDelete, "/v1/appointments/appt-1", "").Code)
	assert.Equal(t, http.StatusForbidden, serve(router, http.MethodDelete, "/v1/appointments/appt-2", "").Code)
}

func TestHandler_UpdateStatus(t *testing.T) {
	router, svc := setup(t)

	svc.EXPECT().UpdateStatus(gomock.Any(), "appt-1", dto.UpdateStatusRequest{Status: "confirmed"}).
		Return(dto.AppointmentResponse{ID: "appt-1", Status: "confirmed"}, nil)

	assert.Equal(t, http.StatusOK, serve(router, http.MethodPatch, "/v1/appointments/appt-1/status", `{"status":"confirmed"}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodPatch, "/v1/appointments/appt-1/status", `{"status":"blocked"}`).Code)
}

func TestHandler_CancelRecurring(t *testing.T) {
	router, svc := setup(t)

	svc.EXPECT().CancelRecurring(gomock.Any(), "grp-1", "2099-01-10").Return(dto.CancelRecurringResponse{Cancelled: 3}, nil)

	recorder := serve(router, http.MethodDelete, "/v1/appointments/recurring/grp-1?as_of=2099-01-10", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{"cancelled":3}}`, recorder.Body.String())
}

func TestHandler_ExportCalendar(t *testing.T) {
	router, svc := setup(t)

	svc.EXPECT().ExportCalendar(gomock.Any(), "2099-01-01", "").Return([]byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"), nil)

	recorder := serve(router, http.MethodGet, "/v1/appointments/calendar.ics?from=2099-01-01", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, constant.ContentTypeCalendar, recorder.Header().Get(constant.RequestHeaderContentType))
	assert.Contains(t, recorder.Header().Get(constant.RequestHeaderContentDisposition), "appointments.ics")
	assert.Contains(t, recorder.Body.String(), "BEGIN:VCALENDAR")
}

func TestHandler_CancelRecurringUnknownGroup(t *testing.T) {
	router, svc := setup(t)

	svc.EXPECT().CancelRecurring(gomock.Any(), "typo", "").Return(dto.CancelRecurringResponse{}, failure.NotFound("recurrence group not found"))

	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodDelete, "/v1/appointments/recurring/typo", "").Code)
}

func TestHandler_PublishCalendar(t *testing.T) {
	router, svc := setup(t)

	svc.EXPECT().PublishCalendar(gomock.Any(), "", "", false).
		Return(dto.CalendarResponse{URL: "https://cdn.example.com/calendars/k3v9q0xw.ics"}, nil)
	svc.EXPECT().PublishCalendar(gomock.Any(), "2099-01-01", "", true).
		Return(dto.CalendarResponse{URL: "https://cdn.example.com/calendars/p5z8r1t4.ics"}, nil)

	recorder := serve(router, http.MethodPost, "/v1/appointments/calendar/publish", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "k3v9q0xw.ics")

	recorder = serve(router, http.MethodPost, "/v1/appointments/calendar/publish?from=2099-01-01&rotate=true", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "p5z8r1t4.ics")
}
