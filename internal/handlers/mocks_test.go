package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"bookkeeper/internal/ledger"
	"bookkeeper/internal/logger"
	"bookkeeper/internal/middleware"
	"bookkeeper/internal/models"
	"bookkeeper/internal/pagination"
	"bookkeeper/internal/services"
	"bookkeeper/internal/validator"
)

const (
	testUserID = "0190a8f0-0000-7000-8000-000000000001"
	testRowID  = "0190a8f0-0000-7000-8000-0000000000aa"
)

// --- mock services ---

type mockAuthService struct {
	registerFn func(email, password string, companyName *string) (*services.AuthResult, error)
	loginFn    func(email, password string) (*services.AuthResult, error)
}

func (m *mockAuthService) Register(email, password string, companyName *string) (*services.AuthResult, error) {
	if m.registerFn != nil {
		return m.registerFn(email, password, companyName)
	}
	return &services.AuthResult{Token: "token", User: &models.User{Email: email}}, nil
}

func (m *mockAuthService) Login(email, password string) (*services.AuthResult, error) {
	if m.loginFn != nil {
		return m.loginFn(email, password)
	}
	return &services.AuthResult{Token: "token", User: &models.User{Email: email}}, nil
}

type mockSettingsService struct {
	getSettingsFn    func(userID string) (*models.Settings, error)
	updateSettingsFn func(userID string, patch services.SettingsPatch) (*models.Settings, error)
}

func (m *mockSettingsService) GetSettings(userID string) (*models.Settings, error) {
	if m.getSettingsFn != nil {
		return m.getSettingsFn(userID)
	}
	return models.DefaultSettings(userID), nil
}

func (m *mockSettingsService) UpdateSettings(userID string, patch services.SettingsPatch) (*models.Settings, error) {
	if m.updateSettingsFn != nil {
		return m.updateSettingsFn(userID, patch)
	}
	return models.DefaultSettings(userID), nil
}

type mockTransactionService struct {
	listTransactionsFn  func(userID string, page pagination.PageRequest) ([]models.Transaction, int64, error)
	createTransactionFn func(userID string, input services.TransactionInput) (*models.Transaction, error)
	getTransactionFn    func(userID, id string) (*models.Transaction, error)
	updateTransactionFn func(userID, id string, patch services.TransactionPatch) (*models.Transaction, error)
	deleteTransactionFn func(userID, id string) error
}

func (m *mockTransactionService) ListTransactions(userID string, page pagination.PageRequest) ([]models.Transaction, int64, error) {
	if m.listTransactionsFn != nil {
		return m.listTransactionsFn(userID, page)
	}
	return []models.Transaction{}, 0, nil
}

func (m *mockTransactionService) CreateTransaction(userID string, input services.TransactionInput) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(userID, input)
	}
	return &models.Transaction{UserID: userID}, nil
}

func (m *mockTransactionService) GetTransaction(userID, id string) (*models.Transaction, error) {
	if m.getTransactionFn != nil {
		return m.getTransactionFn(userID, id)
	}
	return &models.Transaction{Base: models.Base{ID: id}, UserID: userID}, nil
}

func (m *mockTransactionService) UpdateTransaction(userID, id string, patch services.TransactionPatch) (*models.Transaction, error) {
	if m.updateTransactionFn != nil {
		return m.updateTransactionFn(userID, id, patch)
	}
	return &models.Transaction{Base: models.Base{ID: id}, UserID: userID}, nil
}

func (m *mockTransactionService) DeleteTransaction(userID, id string) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(userID, id)
	}
	return nil
}

type mockDebtService struct {
	listDebtsFn     func(userID string, filter services.DebtFilter, page pagination.PageRequest) ([]models.Debt, int64, error)
	listDebtLinesFn func(userID string, filter services.DebtFilter, page pagination.PageRequest) ([]ledger.DebtLine, int64, error)
	createDebtFn    func(userID string, input services.DebtInput) (*models.Debt, error)
	getDebtFn       func(userID, id string) (*models.Debt, error)
	updateDebtFn    func(userID, id string, patch services.DebtPatch) (*models.Debt, error)
	deleteDebtFn    func(userID, id string) error
	getBalancesFn   func(userID string) ([]ledger.EmployeeBalance, error)
}

func (m *mockDebtService) ListDebts(userID string, filter services.DebtFilter, page pagination.PageRequest) ([]models.Debt, int64, error) {
	if m.listDebtsFn != nil {
		return m.listDebtsFn(userID, filter, page)
	}
	return []models.Debt{}, 0, nil
}

func (m *mockDebtService) ListDebtLines(userID string, filter services.DebtFilter, page pagination.PageRequest) ([]ledger.DebtLine, int64, error) {
	if m.listDebtLinesFn != nil {
		return m.listDebtLinesFn(userID, filter, page)
	}
	return []ledger.DebtLine{}, 0, nil
}

func (m *mockDebtService) CreateDebt(userID string, input services.DebtInput) (*models.Debt, error) {
	if m.createDebtFn != nil {
		return m.createDebtFn(userID, input)
	}
	return &models.Debt{UserID: userID}, nil
}

func (m *mockDebtService) GetDebt(userID, id string) (*models.Debt, error) {
	if m.getDebtFn != nil {
		return m.getDebtFn(userID, id)
	}
	return &models.Debt{Base: models.Base{ID: id}, UserID: userID}, nil
}

func (m *mockDebtService) UpdateDebt(userID, id string, patch services.DebtPatch) (*models.Debt, error) {
	if m.updateDebtFn != nil {
		return m.updateDebtFn(userID, id, patch)
	}
	return &models.Debt{Base: models.Base{ID: id}, UserID: userID}, nil
}

func (m *mockDebtService) DeleteDebt(userID, id string) error {
	if m.deleteDebtFn != nil {
		return m.deleteDebtFn(userID, id)
	}
	return nil
}

func (m *mockDebtService) GetBalances(userID string) ([]ledger.EmployeeBalance, error) {
	if m.getBalancesFn != nil {
		return m.getBalancesFn(userID)
	}
	return []ledger.EmployeeBalance{}, nil
}

type mockAuditService struct {
	calls []services.AuditEntry
}

func (m *mockAuditService) Record(entry services.AuditEntry) {
	m.calls = append(m.calls, entry)
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
	logger.Init("test")
}

// newTestRouter returns an engine with the error middleware installed, the
// way the server wires it.
func newTestRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}

func injectUserID(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, uid)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var result []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	if result["error"] != code {
		t.Errorf("expected error code %q, got %v", code, result["error"])
	}
}
