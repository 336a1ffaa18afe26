package payments

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/aangaziz1996/elanet-sub000/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

const customerUUID = "123e4567-e89b-12d3-a456-426614174000"
const paymentUUID = "423e4567-e89b-12d3-a456-426614174000"

func expectCustomerByID(mock sqlmock.Sqlmock, status string) {
	mock.ExpectQuery(`SELECT (.+) FROM "customers" WHERE id = (.+) ORDER BY (.+) LIMIT (.+)`).
		WillReturnRows(mock.NewRows([]string{"id", "customer_id", "name", "email", "billing_day", "status"}).
			AddRow(customerUUID, "ELN-0001", "Budi Santoso", "", 15, status))
}

func TestRecordPayment_ConfirmedCoveringTodayActivatesCustomer(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectCustomerByID(mock, "NEW")

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "payments" (.+) RETURNING (.+)`).
		WillReturnRows(mock.NewRows([]string{"seq", "id"}).AddRow(1, paymentUUID))
	mock.ExpectExec(`UPDATE "customers" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/customers/:id/payments", RecordPayment)

	now := time.Now().UTC()
	paymentData := map[string]interface{}{
		"paymentDate": now.Format("2006-01-02"),
		"amount":      200000,
		"periodStart": now.AddDate(0, 0, -5).Format("2006-01-02"),
		"periodEnd":   now.AddDate(0, 0, 25).Format("2006-01-02"),
		"method":      "CASH",
		"status":      "CONFIRMED",
	}
	jsonData, _ := json.Marshal(paymentData)

	req, _ := http.NewRequest(http.MethodPost, "/customers/"+customerUUID+"/payments", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Payment recorded successfully", respBody["message"])
	assert.NoError(t, mock.ExpectationsWereMet(), "payment insert and customer activation should share one transaction")
}

func TestRecordPayment_ActiveCustomerNotTouched(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectCustomerByID(mock, "ACTIVE")

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "payments" (.+) RETURNING (.+)`).
		WillReturnRows(mock.NewRows([]string{"seq", "id"}).AddRow(1, paymentUUID))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/customers/:id/payments", RecordPayment)

	now := time.Now().UTC()
	paymentData := map[string]interface{}{
		"paymentDate": now.Format("2006-01-02"),
		"amount":      200000,
		"periodStart": now.AddDate(0, 0, -5).Format("2006-01-02"),
		"periodEnd":   now.AddDate(0, 0, 25).Format("2006-01-02"),
		"status":      "CONFIRMED",
	}
	jsonData, _ := json.Marshal(paymentData)

	req, _ := http.NewRequest(http.MethodPost, "/customers/"+customerUUID+"/payments", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordPayment_PeriodEndBeforeStart(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectCustomerByID(mock, "ACTIVE")

	r := testutils.SetupTestRouter()
	r.POST("/customers/:id/payments", RecordPayment)

	paymentData := map[string]interface{}{
		"paymentDate": "2023-06-15",
		"amount":      200000,
		"periodStart": "2023-06-15",
		"periodEnd":   "2023-05-14",
	}
	jsonData, _ := json.Marshal(paymentData)

	req, _ := http.NewRequest(http.MethodPost, "/customers/"+customerUUID+"/payments", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Contains(t, respBody["error"], "period end cannot be before the period start")
}

func TestRecordPayment_NegativeAmount(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectCustomerByID(mock, "ACTIVE")

	r := testutils.SetupTestRouter()
	r.POST("/customers/:id/payments", RecordPayment)

	paymentData := map[string]interface{}{
		"paymentDate": "2023-06-15",
		"amount":      -5000,
	}
	jsonData, _ := json.Marshal(paymentData)

	req, _ := http.NewRequest(http.MethodPost, "/customers/"+customerUUID+"/payments", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestRecordPayment_DerivesPeriodWhenOmitted(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "customers" WHERE id = (.+) ORDER BY (.+) LIMIT (.+)`).
		WillReturnRows(mock.NewRows([]string{"id", "customer_id", "name", "email", "join_date", "billing_day", "status"}).
			AddRow(customerUUID, "ELN-0001", "Budi Santoso", "", time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC), 15, "NEW"))

	// No payment history: the period anchors on the join date
	mock.ExpectQuery(`SELECT (.+) FROM "payments" WHERE customer_id = (.+)`).
		WillReturnRows(mock.NewRows([]string{"id", "customer_id", "status"}))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "payments" (.+) RETURNING (.+)`).
		WillReturnRows(mock.NewRows([]string{"seq", "id"}).AddRow(1, paymentUUID))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/customers/:id/payments", RecordPayment)

	paymentData := map[string]interface{}{
		"paymentDate": "2023-01-16",
		"amount":      200000,
		"status":      "REJECTED",
	}
	jsonData, _ := json.Marshal(paymentData)

	req, _ := http.NewRequest(http.MethodPost, "/customers/"+customerUUID+"/payments", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllPayments_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM "payments" ORDER BY seq desc`).
		WillReturnRows(mock.NewRows([]string{"id", "customer_id", "seq", "amount", "method", "status", "payment_date"}).
			AddRow(paymentUUID, customerUUID, 2, 200000, "TRANSFER", "PENDING", now).
			AddRow("523e4567-e89b-12d3-a456-426614174000", customerUUID, 1, 200000, "CASH", "CONFIRMED", now))

	r := testutils.SetupTestRouter()
	r.GET("/payments", GetAllPayments)

	req, _ := http.NewRequest(http.MethodGet, "/payments", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string][]map[string]interface{}
	err := json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.NoError(t, err)

	payments := respBody["payments"]
	assert.Equal(t, 2, len(payments))

	if len(payments) >= 2 {
		assert.Equal(t, "PENDING", payments[0]["status"])
		assert.Equal(t, "CONFIRMED", payments[1]["status"])
	}
}

func TestUpdatePaymentStatus_ConfirmActivatesSuspendedCustomer(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT (.+) FROM "payments" WHERE id = (.+) ORDER BY (.+) LIMIT (.+)`).
		WillReturnRows(mock.NewRows([]string{"id", "customer_id", "amount", "period_start", "period_end", "status"}).
			AddRow(paymentUUID, customerUUID, 200000, now.AddDate(0, 0, -5), now.AddDate(0, 0, 25), "PENDING"))

	expectCustomerByID(mock, "SUSPENDED")

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "payments" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`UPDATE "customers" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.PUT("/payments/:id/status", UpdatePaymentStatus)

	statusData := map[string]string{"status": "CONFIRMED"}
	jsonData, _ := json.Marshal(statusData)

	req, _ := http.NewRequest(http.MethodPut, "/payments/"+paymentUUID+"/status", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet(), "confirmation and activation should share one transaction")
}

func TestUpdatePaymentStatus_RejectDoesNotTouchCustomer(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT (.+) FROM "payments" WHERE id = (.+) ORDER BY (.+) LIMIT (.+)`).
		WillReturnRows(mock.NewRows([]string{"id", "customer_id", "amount", "period_start", "period_end", "status"}).
			AddRow(paymentUUID, customerUUID, 200000, now.AddDate(0, 0, -5), now.AddDate(0, 0, 25), "PENDING"))

	expectCustomerByID(mock, "SUSPENDED")

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "payments" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.PUT("/payments/:id/status", UpdatePaymentStatus)

	statusData := map[string]string{"status": "REJECTED"}
	jsonData, _ := json.Marshal(statusData)

	req, _ := http.NewRequest(http.MethodPut, "/payments/"+paymentUUID+"/status", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePaymentStatus_AlreadyReviewed(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT (.+) FROM "payments" WHERE id = (.+) ORDER BY (.+) LIMIT (.+)`).
		WillReturnRows(mock.NewRows([]string{"id", "customer_id", "amount", "period_start", "period_end", "status"}).
			AddRow(paymentUUID, customerUUID, 200000, now.AddDate(0, 0, -35), now.AddDate(0, 0, -5), "CONFIRMED"))

	r := testutils.SetupTestRouter()
	r.PUT("/payments/:id/status", UpdatePaymentStatus)

	statusData := map[string]string{"status": "REJECTED"}
	jsonData, _ := json.Marshal(statusData)

	req, _ := http.NewRequest(http.MethodPut, "/payments/"+paymentUUID+"/status", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "This payment has already been reviewed", respBody["error"])
}

func TestUpdatePaymentStatus_BackToPendingRefused(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT (.+) FROM "payments" WHERE id = (.+) ORDER BY (.+) LIMIT (.+)`).
		WillReturnRows(mock.NewRows([]string{"id", "customer_id", "amount", "period_start", "period_end", "status"}).
			AddRow(paymentUUID, customerUUID, 200000, now.AddDate(0, 0, -5), now.AddDate(0, 0, 25), "PENDING"))

	r := testutils.SetupTestRouter()
	r.PUT("/payments/:id/status", UpdatePaymentStatus)

	statusData := map[string]string{"status": "PENDING"}
	jsonData, _ := json.Marshal(statusData)

	req, _ := http.NewRequest(http.MethodPut, "/payments/"+paymentUUID+"/status", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestUpdatePaymentStatus_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "payments" WHERE id = (.+) ORDER BY (.+) LIMIT (.+)`).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.PUT("/payments/:id/status", UpdatePaymentStatus)

	statusData := map[string]string{"status": "CONFIRMED"}
	jsonData, _ := json.Marshal(statusData)

	req, _ := http.NewRequest(http.MethodPut, "/payments/"+paymentUUID+"/status", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
