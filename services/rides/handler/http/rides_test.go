package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftcab/swiftcab/internal/pkg/models"
	"github.com/swiftcab/swiftcab/services/rides"
	"github.com/swiftcab/swiftcab/services/rides/mocks"
)

func newContext(e *echo.Echo, method, body, rideID string) (echo.Context, *httptest.ResponseRecorder) {
	request := httptest.NewRequest(method, "/", bytes.NewBufferString(body))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)
	c.SetParamNames("rideID")
	c.SetParamValues(rideID)
	return c, recorder
}

func TestGetRide_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockUC)

	rideID := uuid.New()
	mockUC.EXPECT().GetRide(gomock.Any(), rideID.String()).Return(&models.Ride{
		RideID: rideID,
		Status: models.RideStatusRequested,
	}, nil)

	e := echo.New()
	c, rec := newContext(e, http.MethodGet, "", rideID.String())

	require.NoError(t, handler.GetRide(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetRide_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockUC)

	mockUC.EXPECT().GetRide(gomock.Any(), "missing").Return(nil, rides.ErrRideNotFound)

	e := echo.New()
	c, rec := newContext(e, http.MethodGet, "", "missing")

	require.NoError(t, handler.GetRide(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAcceptRide_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockUC)

	rideID := uuid.New()
	driverID := uuid.New()
	mockUC.EXPECT().AcceptRide(gomock.Any(), rideID.String(), driverID.String()).
		Return(&models.Ride{RideID: rideID, Status: models.RideStatusAccepted}, nil)

	body, _ := json.Marshal(map[string]string{"driver_id": driverID.String()})
	e := echo.New()
	c, rec := newContext(e, http.MethodPost, string(body), rideID.String())

	require.NoError(t, handler.AcceptRide(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAcceptRide_ConflictWhenUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockUC)

	rideID := uuid.NewString()
	driverID := uuid.NewString()
	mockUC.EXPECT().AcceptRide(gomock.Any(), rideID, driverID).
		Return(nil, rides.ErrRideUnavailable)

	body, _ := json.Marshal(map[string]string{"driver_id": driverID})
	e := echo.New()
	c, rec := newContext(e, http.MethodPost, string(body), rideID)

	require.NoError(t, handler.AcceptRide(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAcceptRide_MissingDriverID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewRidesHandler(mocks.NewMockRideUC(ctrl))

	e := echo.New()
	c, rec := newContext(e, http.MethodPost, "{}", uuid.NewString())

	require.NoError(t, handler.AcceptRide(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStartRide_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockUC)

	rideID := uuid.New()
	mockUC.EXPECT().VerifyAndStart(gomock.Any(), rideID.String(), 4321).
		Return(&models.Ride{RideID: rideID, Status: models.RideStatusStarted}, nil)

	e := echo.New()
	c, rec := newContext(e, http.MethodPost, `{"otp":4321}`, rideID.String())

	require.NoError(t, handler.StartRide(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStartRide_OTPMismatchIsUnauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockUC)

	rideID := uuid.NewString()
	mockUC.EXPECT().VerifyAndStart(gomock.Any(), rideID, 1111).
		Return(nil, rides.ErrOTPMismatch)

	e := echo.New()
	c, rec := newContext(e, http.MethodPost, `{"otp":1111}`, rideID)

	require.NoError(t, handler.StartRide(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestStartRide_InvalidStateIsConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockUC)

	rideID := uuid.NewString()
	mockUC.EXPECT().VerifyAndStart(gomock.Any(), rideID, 4321).
		Return(nil, rides.ErrInvalidState)

	e := echo.New()
	c, rec := newContext(e, http.MethodPost, `{"otp":4321}`, rideID)

	require.NoError(t, handler.StartRide(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCompleteRide_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockUC)

	rideID := uuid.New()
	mockUC.EXPECT().CompleteRide(gomock.Any(), rideID.String()).
		Return(&models.Ride{RideID: rideID, Status: models.RideStatusCompleted}, nil)

	e := echo.New()
	c, rec := newContext(e, http.MethodPost, "", rideID.String())

	require.NoError(t, handler.CompleteRide(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
