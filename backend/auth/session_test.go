package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contatonovatek-coder/Novatek-Aulas/backend/config"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/models"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/store"
)

func newTestSession(t *testing.T) (*Session, *store.Store) {
	t.Helper()

	backend, err := store.NewFileBackend(t.TempDir())
	require.NoError(t, err)
	st, err := store.Open(backend, "novatek-test")
	require.NoError(t, err)

	cfg := &config.Config{DataKey: "novatek-test"}
	return NewSession(st, cfg), st
}

func registerTestUser(t *testing.T, s *Session) *models.User {
	t.Helper()

	result, err := s.Register(RegisterInput{
		Name:            "Ana Silva",
		Email:           "ana@example.com",
		Password:        "segredo123",
		ConfirmPassword: "segredo123",
		Plan:            "junior",
	})
	require.NoError(t, err)
	require.True(t, result.Success)
	return result.User
}

func TestLoginAdminSeed(t *testing.T) {
	s, st := newTestSession(t)

	result, err := s.Login(store.SeedAdminEmail, store.SeedAdminPassword)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, s.IsAuthenticated())
	assert.True(t, s.IsAdmin())

	// Login stamps lastLogin and records the activity.
	admin := st.UserByEmail(store.SeedAdminEmail)
	assert.WithinDuration(t, time.Now(), admin.LastLogin, time.Minute)
	activities := st.RecentActivities()
	require.NotEmpty(t, activities)
	assert.Equal(t, "user_login", activities[0].Type)
}

func TestLoginUnknownEmail(t *testing.T) {
	s, _ := newTestSession(t)

	result, err := s.Login("ninguem@example.com", "qualquer")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, ReasonNotFound, result.Reason)
	assert.Equal(t, "Usuário não encontrado", result.Message)
	assert.False(t, s.IsAuthenticated())
}

func TestLoginWrongPassword(t *testing.T) {
	s, st := newTestSession(t)

	before := st.UserByEmail(store.SeedAdminEmail).LastLogin

	result, err := s.Login(store.SeedAdminEmail, "senha-errada")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, ReasonWrongPassword, result.Reason)
	assert.Equal(t, "Senha incorreta", result.Message)

	// A failed attempt must not touch the account.
	after := st.UserByEmail(store.SeedAdminEmail).LastLogin
	assert.Equal(t, before, after)
	assert.False(t, s.IsAuthenticated())
}

func TestLoginPendingPaymentRedirects(t *testing.T) {
	s, st := newTestSession(t)
	user := registerTestUser(t, s)
	require.NoError(t, s.Logout())
	before := st.UserByID(user.ID).LastLogin

	result, err := s.Login("ana@example.com", "segredo123")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.True(t, result.RedirectToPayment)
	require.NotNil(t, result.User)
	assert.Equal(t, user.ID, result.User.ID)

	// No authenticated transition, no lastLogin stamp.
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, before, st.UserByID(user.ID).LastLogin)
}

func TestRegisterValidations(t *testing.T) {
	s, st := newTestSession(t)

	cases := []struct {
		name   string
		input  RegisterInput
		reason string
	}{
		{"missing fields", RegisterInput{Email: "a@b.com", Password: "x", ConfirmPassword: "x"}, ReasonMissingFields},
		{"password mismatch", RegisterInput{Name: "A", Email: "a@b.com", Password: "segredo123", ConfirmPassword: "outra123", Plan: "junior"}, ReasonPasswordMatch},
		{"password too short", RegisterInput{Name: "A", Email: "a@b.com", Password: "abc", ConfirmPassword: "abc", Plan: "junior"}, ReasonPasswordLength},
		{"duplicate email", RegisterInput{Name: "A", Email: store.SeedAdminEmail, Password: "segredo123", ConfirmPassword: "segredo123", Plan: "junior"}, ReasonDuplicateEmail},
		{"no plan", RegisterInput{Name: "A", Email: "a@b.com", Password: "segredo123", ConfirmPassword: "segredo123"}, ReasonNoPlan},
		{"unknown plan", RegisterInput{Name: "A", Email: "a@b.com", Password: "segredo123", ConfirmPassword: "segredo123", Plan: "diamante"}, ReasonUnknownPlan},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := s.Register(tc.input)
			require.NoError(t, err)
			assert.False(t, result.Success)
			assert.Equal(t, tc.reason, result.Reason)
		})
	}

	// No user row was written by any rejected attempt.
	assert.Nil(t, st.UserByEmail("a@b.com"))
}

func TestRegisterCreatesPendingStudent(t *testing.T) {
	s, st := newTestSession(t)

	result, err := s.Register(RegisterInput{
		Name:            "Ana Silva",
		Email:           "ana@example.com",
		Password:        "segredo123",
		ConfirmPassword: "segredo123",
		Plan:            "pleno",
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.RedirectToPayment)

	user := result.User
	require.NotNil(t, user)
	assert.Equal(t, 2, user.ID) // admin seed holds 1
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.Equal(t, models.StatusPendingPayment, user.Status)
	assert.NotEqual(t, "segredo123", user.PasswordHash)

	// Session is live and the signup plan remembered for checkout.
	assert.True(t, s.IsAuthenticated())
	assert.False(t, s.HasActiveSubscription())
	assert.Equal(t, "pleno", s.SelectedPlan())
	assert.NotNil(t, st.UserByEmail("ana@example.com"))
}

func TestSessionSurvivesRestart(t *testing.T) {
	backend, err := store.NewFileBackend(t.TempDir())
	require.NoError(t, err)
	st, err := store.Open(backend, "novatek-test")
	require.NoError(t, err)
	cfg := &config.Config{DataKey: "novatek-test"}

	s := NewSession(st, cfg)
	_, err = s.Login(store.SeedAdminEmail, store.SeedAdminPassword)
	require.NoError(t, err)

	restarted := NewSession(st, cfg)
	require.NoError(t, restarted.Resume())
	current := restarted.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, store.SeedAdminEmail, current.Email)
}

func TestLogoutClearsSnapshotAndPlan(t *testing.T) {
	s, st := newTestSession(t)
	registerTestUser(t, s)

	require.NoError(t, s.Logout())
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.SelectedPlan())

	activities := st.RecentActivities()
	require.NotEmpty(t, activities)
	assert.Equal(t, "user_logout", activities[0].Type)
}

func TestUpdateProfileRefreshesSnapshot(t *testing.T) {
	s, st := newTestSession(t)
	user := registerTestUser(t, s)

	name := "Ana Souza"
	updated, err := s.UpdateProfile(models.UserUpdate{Name: &name})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "Ana Souza", s.CurrentUser().Name)
	assert.Equal(t, "Ana Souza", st.UserByID(user.ID).Name)
}

func TestSyncRefreshesOnlyCurrentUser(t *testing.T) {
	s, st := newTestSession(t)
	user := registerTestUser(t, s)

	active := models.StatusActive
	_, err := st.UpdateUser(user.ID, models.UserUpdate{Status: &active})
	require.NoError(t, err)

	// The snapshot is still the stale pending copy until Sync runs.
	assert.Equal(t, models.StatusPendingPayment, s.CurrentUser().Status)
	require.NoError(t, s.Sync(user.ID))
	assert.Equal(t, models.StatusActive, s.CurrentUser().Status)

	// Syncing someone else is a no-op.
	require.NoError(t, s.Sync(9999))
	assert.Equal(t, user.ID, s.CurrentUser().ID)
}
