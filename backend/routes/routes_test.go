package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contatonovatek-coder/Novatek-Aulas/backend/auth"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/config"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/payments"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/store"
)

type stubGateway struct {
	status string
}

func (g *stubGateway) CreatePreference(_ context.Context, req payments.PreferenceRequest) (*payments.Preference, error) {
	return &payments.Preference{ID: "pref-1", InitPoint: "https://mp.example/init"}, nil
}

func (g *stubGateway) PaymentStatus(_ context.Context, paymentID string) (*payments.PaymentInfo, error) {
	return &payments.PaymentInfo{ID: 1, Status: g.status}, nil
}

type testEnv struct {
	app     *fiber.App
	store   *store.Store
	session *auth.Session
	gateway *stubGateway
	cfg     *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		JWTSecret: "testsecret",
		JWTExpiry: 24 * time.Hour,
		DataKey:   "novatek-test",
	}

	backend, err := store.NewFileBackend(t.TempDir())
	require.NoError(t, err)
	st, err := store.Open(backend, cfg.DataKey)
	require.NoError(t, err)

	session := auth.NewSession(st, cfg)
	gateway := &stubGateway{status: payments.StatusApproved}
	processor := payments.NewProcessor(st, gateway, log.New(io.Discard, "", 0))

	app := fiber.New()
	SetupRoutes(app, st, session, processor, cfg)

	return &testEnv{app: app, store: st, session: session, gateway: gateway, cfg: cfg}
}

func (e *testEnv) request(t *testing.T, method, target, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := e.app.Test(req)
	require.NoError(t, err)

	var decoded map[string]interface{}
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, &decoded))
	}
	return resp, decoded
}

func (e *testEnv) loginAdmin(t *testing.T) string {
	t.Helper()

	resp, body := e.request(t, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    store.SeedAdminEmail,
		"password": store.SeedAdminPassword,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func (e *testEnv) registerStudent(t *testing.T) (string, int) {
	t.Helper()

	resp, body := e.request(t, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name":            "Ana Silva",
		"email":           "ana@example.com",
		"password":        "segredo123",
		"confirmPassword": "segredo123",
		"plan":            "junior",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	user := body["user"].(map[string]interface{})
	return token, int(user["id"].(float64))
}

func TestRegisterAndLoginFlow(t *testing.T) {
	env := newTestEnv(t)

	_, userID := env.registerStudent(t)
	assert.Equal(t, 2, userID)

	// Duplicate registration is rejected.
	resp, body := env.request(t, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name":            "Ana Silva",
		"email":           "ana@example.com",
		"password":        "segredo123",
		"confirmPassword": "segredo123",
		"plan":            "junior",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "duplicate_email", body["reason"])

	// A pending_payment user is told to pay, not logged in.
	resp, body = env.request(t, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "ana@example.com",
		"password": "segredo123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["redirectToPayment"])
	assert.Nil(t, body["token"])
}

func TestLoginFailures(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.request(t, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "ninguem@example.com",
		"password": "x",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "user_not_found", body["reason"])

	resp, body = env.request(t, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    store.SeedAdminEmail,
		"password": "senha-errada",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "wrong_password", body["reason"])
}

func TestProfileRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := env.request(t, http.MethodGet, "/api/user/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token := env.loginAdmin(t)
	resp, body := env.request(t, http.MethodGet, "/api/user/profile", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, store.SeedAdminEmail, user["email"])
	// The password hash never leaves the API.
	_, exposed := user["password"]
	assert.False(t, exposed)
}

func TestCoursesCatalogIsPublic(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.request(t, http.MethodGet, "/api/courses", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["courses"])

	resp, body = env.request(t, http.MethodGet, "/api/courses/1", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotNil(t, body["course"])
	assert.NotEmpty(t, body["lessons"])
	assert.NotNil(t, body["instructor"])

	resp, _ = env.request(t, http.MethodGet, "/api/courses/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = env.request(t, http.MethodGet, "/api/search?q=javascript", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["courses"])
}

func TestLessonContentRequiresActiveSubscription(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.registerStudent(t)

	// pending_payment student is blocked from lesson content.
	resp, _ := env.request(t, http.MethodGet, "/api/courses/1/lessons/1", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Admin passes regardless of plan.
	adminToken := env.loginAdmin(t)
	resp, body := env.request(t, http.MethodGet, "/api/courses/1/lessons/1", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotNil(t, body["lesson"])
}

func TestCheckoutAndCallbackActivatesSubscription(t *testing.T) {
	env := newTestEnv(t)
	token, userID := env.registerStudent(t)

	resp, body := env.request(t, http.MethodPost, "/api/payments/checkout", token, fiber.Map{"plan": "junior"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://mp.example/init", body["initPoint"])
	payment := body["payment"].(map[string]interface{})
	paymentID := int(payment["id"].(float64))

	ref := payments.FormatReference(userID, paymentID)
	resp, body = env.request(t, http.MethodGet, "/api/payments/callback?payment_id=1&external_reference="+ref, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "approved", body["status"])

	user := env.store.UserByID(userID)
	assert.Equal(t, "active", user.Status)
	require.NotNil(t, env.store.ActiveSubscriptionByUser(userID))

	// The session snapshot was re-synced after the external mutation.
	current := env.session.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, "active", current.Status)

	// Now the student can log in normally.
	resp, body = env.request(t, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "ana@example.com",
		"password": "segredo123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
}

func TestCallbackRejectedMarksFailure(t *testing.T) {
	env := newTestEnv(t)
	token, userID := env.registerStudent(t)
	env.gateway.status = "rejected"

	resp, body := env.request(t, http.MethodPost, "/api/payments/checkout", token, fiber.Map{"plan": "junior"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	payment := body["payment"].(map[string]interface{})
	paymentID := int(payment["id"].(float64))

	ref := payments.FormatReference(userID, paymentID)
	resp, body = env.request(t, http.MethodGet, "/api/payments/callback?payment_id=1&external_reference="+ref, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["success"])

	assert.Equal(t, "payment_failed", env.store.UserByID(userID).Status)
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	env := newTestEnv(t)
	studentToken, _ := env.registerStudent(t)

	resp, _ := env.request(t, http.MethodGet, "/api/admin/stats", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	adminToken := env.loginAdmin(t)
	resp, body := env.request(t, http.MethodGet, "/api/admin/stats", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotNil(t, body["stats"])
}

func TestAdminDeleteUserCascades(t *testing.T) {
	env := newTestEnv(t)
	_, userID := env.registerStudent(t)
	adminToken := env.loginAdmin(t)

	resp, _ := env.request(t, http.MethodDelete, "/api/admin/users/2", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, env.store.UserByID(userID))

	// Admins cannot delete themselves.
	resp, _ = env.request(t, http.MethodDelete, "/api/admin/users/1", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAdminCancelSubscription(t *testing.T) {
	env := newTestEnv(t)
	token, userID := env.registerStudent(t)

	resp, body := env.request(t, http.MethodPost, "/api/payments/checkout", token, fiber.Map{"plan": "junior"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	paymentID := int(body["payment"].(map[string]interface{})["id"].(float64))

	ref := payments.FormatReference(userID, paymentID)
	resp, _ = env.request(t, http.MethodGet, "/api/payments/callback?payment_id=1&external_reference="+ref, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, env.store.ActiveSubscriptionByUser(userID))

	adminToken := env.loginAdmin(t)
	resp, _ = env.request(t, http.MethodPost, "/api/admin/users/"+itoa(userID)+"/cancel-subscription", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, env.store.ActiveSubscriptionByUser(userID))
	assert.Equal(t, "inactive", env.store.UserByID(userID).Status)

	// Nothing left to cancel.
	resp, _ = env.request(t, http.MethodPost, "/api/admin/users/"+itoa(userID)+"/cancel-subscription", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminCourseAndLessonManagement(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.loginAdmin(t)

	resp, body := env.request(t, http.MethodPost, "/api/admin/courses", adminToken, fiber.Map{
		"title":       "Curso Novo",
		"description": "desc",
		"categoryId":  1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	course := body["course"].(map[string]interface{})
	courseID := int(course["id"].(float64))

	resp, body = env.request(t, http.MethodPost, "/api/admin/courses/"+itoa(courseID)+"/lessons", adminToken, fiber.Map{
		"title": "Aula Nova",
		"order": 1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	lesson := body["lesson"].(map[string]interface{})
	lessonID := int(lesson["id"].(float64))

	resp, _ = env.request(t, http.MethodPut, "/api/admin/lessons/"+itoa(lessonID), adminToken, fiber.Map{
		"title": "Aula Renomeada",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Aula Renomeada", env.store.LessonByID(lessonID).Title)

	resp, _ = env.request(t, http.MethodDelete, "/api/admin/courses/"+itoa(courseID), adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, env.store.CourseByID(courseID))
	assert.Nil(t, env.store.LessonByID(lessonID))
}

func TestCompleteLessonIssuesCertificate(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.loginAdmin(t)

	// Small course with a single lesson, completed by the admin.
	resp, body := env.request(t, http.MethodPost, "/api/admin/courses", adminToken, fiber.Map{"title": "Curso Curto"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	courseID := int(body["course"].(map[string]interface{})["id"].(float64))

	resp, body = env.request(t, http.MethodPost, "/api/admin/courses/"+itoa(courseID)+"/lessons", adminToken, fiber.Map{"title": "Única", "order": 1})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	lessonID := int(body["lesson"].(map[string]interface{})["id"].(float64))

	resp, body = env.request(t, http.MethodPost, "/api/courses/"+itoa(courseID)+"/lessons/"+itoa(lessonID)+"/complete", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	progress := body["progress"].(map[string]interface{})
	assert.Equal(t, 100.0, progress["progress"])
	assert.NotNil(t, body["certificate"])

	// Completing again keeps a single certificate.
	resp, _ = env.request(t, http.MethodPost, "/api/courses/"+itoa(courseID)+"/lessons/"+itoa(lessonID)+"/complete", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, env.store.CertificatesByUser(1), 1)
}

func TestNotificationsEndpoints(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.loginAdmin(t)

	// Login itself produced a notification.
	resp, body := env.request(t, http.MethodGet, "/api/notifications", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["notifications"])

	resp, _ = env.request(t, http.MethodPost, "/api/notifications/read-all", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = env.request(t, http.MethodGet, "/api/notifications/unread", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0.0, body["unread"])
}

func TestBroadcastReachesEveryUser(t *testing.T) {
	env := newTestEnv(t)
	_, userID := env.registerStudent(t)
	adminToken := env.loginAdmin(t)

	resp, body := env.request(t, http.MethodPost, "/api/admin/notifications/broadcast", adminToken, fiber.Map{
		"title":   "Manutenção",
		"message": "A plataforma ficará indisponível no domingo.",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2.0, body["sent"])

	notifications := env.store.NotificationsByUser(userID)
	require.NotEmpty(t, notifications)
	assert.Equal(t, "Manutenção", notifications[0].Title)
}

func TestPlansEndpoint(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.request(t, http.MethodGet, "/api/plans", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	plans := body["plans"].([]interface{})
	assert.Len(t, plans, 3)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
