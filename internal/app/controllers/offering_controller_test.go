package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appdevg5/schedease/internal/app/models"
	"github.com/appdevg5/schedease/internal/app/models/dto"
)

// stubOfferingService returns canned results so handler behavior can be
// tested without repositories.
type stubOfferingService struct {
	report      *models.ClearReport
	clearErr    error
	deleteFound bool
	deleteErr   error
	created     *models.Offering
}

func (s *stubOfferingService) CreateOffering(ctx context.Context, offering *models.Offering) error {
	offering.ID = 101
	s.created = offering
	return nil
}

func (s *stubOfferingService) GetAllOfferings(ctx context.Context) ([]*models.Offering, error) {
	return nil, nil
}

func (s *stubOfferingService) GetOfferingsByUserID(ctx context.Context, userID int64) ([]*models.Offering, error) {
	return nil, nil
}

func (s *stubOfferingService) UpdateOffering(ctx context.Context, id int64, req *dto.UpdateOfferingRequest) (*models.Offering, error) {
	return nil, nil
}

func (s *stubOfferingService) DeleteOffering(ctx context.Context, id int64) (bool, error) {
	return s.deleteFound, s.deleteErr
}

func (s *stubOfferingService) ClearUserOfferings(ctx context.Context, userID int64) (*models.ClearReport, error) {
	return s.report, s.clearErr
}

func newOfferingTestRouter(svc *stubOfferingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewOfferingController(svc)
	router.DELETE("/api/v1/offerings/clear", controller.ClearUserOfferings)
	router.DELETE("/api/v1/offerings/:id", controller.DeleteOffering)
	router.POST("/api/v1/offerings", controller.CreateOffering)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, target, body string) (*httptest.ResponseRecorder, dto.APIResponse) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestClearUserOfferings_ClearedResponse(t *testing.T) {
	svc := &stubOfferingService{report: &models.ClearReport{
		Outcome:        models.ClearOutcomeCleared,
		DeletedCount:   1,
		ProtectedCount: 2,
	}}
	router := newOfferingTestRouter(svc)

	w, resp := doRequest(t, router, http.MethodDelete, "/api/v1/offerings/clear?userId=7", "")
	require.Equal(t, http.StatusOK, w.Code)

	payload, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var clear dto.ClearDataResponse
	require.NoError(t, json.Unmarshal(payload, &clear))

	assert.Equal(t, models.ClearOutcomeCleared, clear.Outcome)
	assert.Equal(t, 1, clear.DeletedCount)
	assert.Equal(t, 2, clear.ProtectedCount)
	assert.Equal(t, "Successfully deleted 1 items. 2 subjects preserved (in saved schedules)", clear.Message)
}

func TestClearUserOfferings_NoDataResponse(t *testing.T) {
	svc := &stubOfferingService{report: &models.ClearReport{Outcome: models.ClearOutcomeNoData}}
	router := newOfferingTestRouter(svc)

	w, resp := doRequest(t, router, http.MethodDelete, "/api/v1/offerings/clear?userId=7", "")
	require.Equal(t, http.StatusOK, w.Code)

	payload, _ := json.Marshal(resp.Data)
	var clear dto.ClearDataResponse
	require.NoError(t, json.Unmarshal(payload, &clear))
	assert.Equal(t, "No data found for user ID 7", clear.Message)
}

func TestClearUserOfferings_AllProtectedResponse(t *testing.T) {
	svc := &stubOfferingService{report: &models.ClearReport{
		Outcome:        models.ClearOutcomeAllProtected,
		ProtectedCount: 3,
	}}
	router := newOfferingTestRouter(svc)

	w, resp := doRequest(t, router, http.MethodDelete, "/api/v1/offerings/clear?userId=7", "")
	require.Equal(t, http.StatusOK, w.Code)

	payload, _ := json.Marshal(resp.Data)
	var clear dto.ClearDataResponse
	require.NoError(t, json.Unmarshal(payload, &clear))
	assert.Equal(t, "No subjects to delete (all subjects are in saved schedules)", clear.Message)
	assert.Equal(t, 3, clear.ProtectedCount)
}

func TestClearUserOfferings_NoProtectedMessage(t *testing.T) {
	svc := &stubOfferingService{report: &models.ClearReport{
		Outcome:      models.ClearOutcomeCleared,
		DeletedCount: 4,
	}}
	router := newOfferingTestRouter(svc)

	w, resp := doRequest(t, router, http.MethodDelete, "/api/v1/offerings/clear?userId=7", "")
	require.Equal(t, http.StatusOK, w.Code)

	payload, _ := json.Marshal(resp.Data)
	var clear dto.ClearDataResponse
	require.NoError(t, json.Unmarshal(payload, &clear))
	assert.Equal(t, "Successfully deleted 4 items for user ID 7", clear.Message)
}

func TestClearUserOfferings_InvalidUserID(t *testing.T) {
	router := newOfferingTestRouter(&stubOfferingService{})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/offerings/clear?userId=abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/offerings/clear", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteOffering_MessageReflectsExistence(t *testing.T) {
	svc := &stubOfferingService{deleteFound: true}
	router := newOfferingTestRouter(svc)

	w, resp := doRequest(t, router, http.MethodDelete, "/api/v1/offerings/101", "")
	require.Equal(t, http.StatusOK, w.Code)

	payload, _ := json.Marshal(resp.Data)
	var result dto.SuccessResponse
	require.NoError(t, json.Unmarshal(payload, &result))
	assert.Equal(t, "Offering with ID 101 is successfully deleted!", result.Message)

	svc.deleteFound = false
	w, resp = doRequest(t, router, http.MethodDelete, "/api/v1/offerings/101", "")
	require.Equal(t, http.StatusOK, w.Code)
	payload, _ = json.Marshal(resp.Data)
	require.NoError(t, json.Unmarshal(payload, &result))
	assert.Equal(t, "Offering with ID 101 does not exist!", result.Message)
}

func TestCreateOffering_BadPayloadRejected(t *testing.T) {
	router := newOfferingTestRouter(&stubOfferingService{})

	// Missing required subject and userId.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/offerings", strings.NewReader(`{"room":"G304"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOffering_Created(t *testing.T) {
	svc := &stubOfferingService{}
	router := newOfferingTestRouter(svc)

	w, resp := doRequest(t, router, http.MethodPost, "/api/v1/offerings",
		`{"userId":7,"subject":"CS101","schedule":"MWF 09:00-10:30","totalSlots":40}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, resp.Data)
	require.NotNil(t, svc.created)
	assert.Equal(t, "CS101", svc.created.Subject)
	assert.Equal(t, int64(7), svc.created.UserID)
}
