// Package auth implements the session manager: credential checks against the
// store, the single current-user snapshot persisted to durable storage, and
// the derived access predicates.
package auth

import (
	"encoding/json"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/contatonovatek-coder/Novatek-Aulas/backend/config"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/models"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/store"
)

// Failure reasons reported by Login and Register.
const (
	ReasonNotFound       = "user_not_found"
	ReasonWrongPassword  = "wrong_password"
	ReasonMissingFields  = "missing_fields"
	ReasonPasswordMatch  = "password_mismatch"
	ReasonPasswordLength = "password_too_short"
	ReasonDuplicateEmail = "duplicate_email"
	ReasonNoPlan         = "plan_not_selected"
	ReasonUnknownPlan    = "plan_unknown"
)

// MinPasswordLength is enforced at registration.
const MinPasswordLength = 6

// Session tracks the currently authenticated user. The snapshot is a copy of
// the store's record, persisted under its own storage key so it survives a
// restart; every mutation of the current user must go through refresh so the
// copy never drifts from the store.
type Session struct {
	mu      sync.Mutex
	store   *store.Store
	backend store.Backend
	userKey string
	planKey string
	current *models.User
}

func NewSession(st *store.Store, cfg *config.Config) *Session {
	return &Session{
		store:   st,
		backend: st.Backend(),
		userKey: cfg.SessionKey(),
		planKey: cfg.SelectedPlanKey(),
	}
}

// Result is the outcome of a login or registration attempt. Validation and
// credential failures land here, never as errors; the error return of the
// session methods is reserved for storage faults.
type Result struct {
	Success           bool         `json:"success"`
	RedirectToPayment bool         `json:"redirectToPayment,omitempty"`
	User              *models.User `json:"user,omitempty"`
	Reason            string       `json:"-"`
	Message           string       `json:"message,omitempty"`
}

// Resume reloads the persisted snapshot, if any. Called once at startup.
func (s *Session) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok, err := s.backend.Get(s.userKey)
	if err != nil || !ok {
		return err
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		// Unreadable snapshot: treat as anonymous.
		return s.backend.Delete(s.userKey)
	}
	s.current = &user
	return nil
}

// Login validates the credentials. A user in pending_payment status gets a
// redirect-to-payment outcome without an authenticated transition, so the
// dashboard stays locked until the payment completes.
func (s *Session) Login(email, password string) (Result, error) {
	user := s.store.UserByEmail(email)
	if user == nil {
		return Result{Reason: ReasonNotFound, Message: "Usuário não encontrado"}, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Result{Reason: ReasonWrongPassword, Message: "Senha incorreta"}, nil
	}

	if user.Status == models.StatusPendingPayment {
		return Result{
			RedirectToPayment: true,
			User:              user,
			Message:           "Complete seu pagamento para acessar a plataforma",
		}, nil
	}

	now := time.Now()
	updated, err := s.store.UpdateUser(user.ID, models.UserUpdate{LastLogin: &now})
	if err != nil {
		return Result{}, err
	}

	if err := s.refresh(updated); err != nil {
		return Result{}, err
	}

	if _, err := s.store.AddNotification(updated.ID, "Login realizado", "Bem-vindo de volta à NOVATEK DEV!", "info"); err != nil {
		return Result{}, err
	}
	if err := s.store.AddActivity("user_login", "Usuário logado: "+updated.Name); err != nil {
		return Result{}, err
	}

	return Result{Success: true, User: updated}, nil
}

// RegisterInput is the registration form payload.
type RegisterInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Plan            string `json:"plan"`
}

// Register validates the form, creates a pending_payment student and
// authenticates it. The selected plan is remembered for the payment step and
// the caller is told to redirect there.
func (s *Session) Register(input RegisterInput) (Result, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" || input.ConfirmPassword == "" {
		return Result{Reason: ReasonMissingFields, Message: "Preencha todos os campos"}, nil
	}
	if input.Password != input.ConfirmPassword {
		return Result{Reason: ReasonPasswordMatch, Message: "As senhas não coincidem"}, nil
	}
	if len(input.Password) < MinPasswordLength {
		return Result{Reason: ReasonPasswordLength, Message: "A senha deve ter pelo menos 6 caracteres"}, nil
	}
	if s.store.UserByEmail(input.Email) != nil {
		return Result{Reason: ReasonDuplicateEmail, Message: "Este e-mail já está cadastrado"}, nil
	}
	if input.Plan == "" {
		return Result{Reason: ReasonNoPlan, Message: "Selecione um plano"}, nil
	}
	if config.PlanByID(input.Plan) == nil {
		return Result{Reason: ReasonUnknownPlan, Message: "Plano inválido"}, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return Result{}, err
	}

	user, err := s.store.CreateUser(input.Name, input.Email, string(hash), input.Plan)
	if err != nil {
		return Result{}, err
	}

	if err := s.refresh(user); err != nil {
		return Result{}, err
	}
	if err := s.backend.Set(s.planKey, []byte(input.Plan)); err != nil {
		return Result{}, err
	}

	return Result{
		Success:           true,
		RedirectToPayment: true,
		User:              user,
		Message:           "Cadastro realizado com sucesso! Complete seu pagamento.",
	}, nil
}

// Logout clears the session pointer and the signup plan entry.
func (s *Session) Logout() error {
	s.mu.Lock()
	current := s.current
	s.current = nil
	s.mu.Unlock()

	if current != nil {
		if err := s.store.AddActivity("user_logout", "Usuário deslogado: "+current.Name); err != nil {
			return err
		}
	}

	if err := s.backend.Delete(s.userKey); err != nil {
		return err
	}
	return s.backend.Delete(s.planKey)
}

// UpdateProfile mutates the current user through the store and refreshes the
// snapshot from the store's canonical copy. Returns nil without error when
// anonymous.
func (s *Session) UpdateProfile(updates models.UserUpdate) (*models.User, error) {
	s.mu.Lock()
	current := s.current
	s.mu.Unlock()

	if current == nil {
		return nil, nil
	}

	updated, err := s.store.UpdateUser(current.ID, updates)
	if err != nil || updated == nil {
		return nil, err
	}

	if err := s.refresh(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Sync re-reads the store's canonical copy of the given user into the
// snapshot when that user is the one currently authenticated. Mutation paths
// outside the session (the payment processor) call this so the displayed
// user never goes stale.
func (s *Session) Sync(userID int) error {
	s.mu.Lock()
	current := s.current
	s.mu.Unlock()

	if current == nil || current.ID != userID {
		return nil
	}

	user := s.store.UserByID(userID)
	if user == nil {
		return nil
	}
	return s.refresh(user)
}

// refresh is the single path that replaces the snapshot, both in memory and
// in durable storage.
func (s *Session) refresh(user *models.User) error {
	s.mu.Lock()
	s.current = user
	s.mu.Unlock()

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.backend.Set(s.userKey, data)
}

// CurrentUser returns the snapshot of the authenticated user, or nil.
func (s *Session) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// SelectedPlan returns the plan remembered during signup, or "".
func (s *Session) SelectedPlan() string {
	data, ok, err := s.backend.Get(s.planKey)
	if err != nil || !ok {
		return ""
	}
	return string(data)
}

func (s *Session) IsAuthenticated() bool {
	return s.CurrentUser() != nil
}

func (s *Session) IsAdmin() bool {
	u := s.CurrentUser()
	return u != nil && u.Role == models.RoleAdmin
}

func (s *Session) HasActiveSubscription() bool {
	u := s.CurrentUser()
	return u != nil && u.Status == models.StatusActive
}
