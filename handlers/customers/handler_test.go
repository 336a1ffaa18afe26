package customers

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

func validCustomerInput() map[string]interface{} {
	return map[string]interface{}{
		"customerId":  "ELN-0001",
		"name":        "Budi Santoso",
		"address":     "Jl. Merdeka No. 12, Sleman",
		"phone":       "081234567890",
		"packageName": "Paket 20 Mbps",
		"joinDate":    "2023-01-15",
		"billingDay":  15,
	}
}

func TestCreateCustomer_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "customers" WHERE customer_id = (.+) ORDER BY (.+) LIMIT (.+)`).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "customers" (.+) RETURNING (.+)`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("123e4567-e89b-12d3-a456-426614174000"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/customers", CreateCustomer)

	jsonData, _ := json.Marshal(validCustomerInput())

	req, _ := http.NewRequest(http.MethodPost, "/customers", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Customer created successfully", respBody["message"])
	assert.NotEmpty(t, respBody["id"])
}

func TestCreateCustomer_BillingDayOutOfRange(t *testing.T) {
	testCases := []struct {
		name       string
		billingDay int
	}{
		{"Zero", 0},
		{"TwentyNine", 29},
		{"Negative", -3},
		{"ThirtyOne", 31},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := testutils.SetupTestRouter()
			r.POST("/customers", CreateCustomer)

			input := validCustomerInput()
			input["billingDay"] = tc.billingDay
			jsonData, _ := json.Marshal(input)

			req, _ := http.NewRequest(http.MethodPost, "/customers", bytes.NewBuffer(jsonData))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()

			r.ServeHTTP(resp, req)

			assert.Equal(t, http.StatusBadRequest, resp.Code)
		})
	}
}

func TestCreateCustomer_InvalidJoinDate(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/customers", CreateCustomer)

	input := validCustomerInput()
	input["joinDate"] = "15-01-2023"
	jsonData, _ := json.Marshal(input)

	req, _ := http.NewRequest(http.MethodPost, "/customers", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Contains(t, respBody["error"], "Invalid join date")
}

func TestCreateCustomer_InvalidPhone(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/customers", CreateCustomer)

	input := validCustomerInput()
	input["phone"] = "12345"
	jsonData, _ := json.Marshal(input)

	req, _ := http.NewRequest(http.MethodPost, "/customers", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCreateCustomer_DuplicateCustomerID(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "customers" WHERE customer_id = (.+) ORDER BY (.+) LIMIT (.+)`).
		WillReturnRows(mock.NewRows([]string{"id", "customer_id"}).
			AddRow("123e4567-e89b-12d3-a456-426614174000", "ELN-0001"))

	r := testutils.SetupTestRouter()
	r.POST("/customers", CreateCustomer)

	jsonData, _ := json.Marshal(validCustomerInput())

	req, _ := http.NewRequest(http.MethodPost, "/customers", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestGetAllCustomers_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	joinDate := time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM "customers" ORDER BY customer_id asc`).
		WillReturnRows(mock.NewRows([]string{"id", "customer_id", "name", "package_name", "join_date", "billing_day", "status"}).
			AddRow("123e4567-e89b-12d3-a456-426614174000", "ELN-0001", "Budi Santoso", "Paket 20 Mbps", joinDate, 15, "ACTIVE").
			AddRow("223e4567-e89b-12d3-a456-426614174000", "ELN-0002", "Siti Aminah", "100 Mbps", joinDate, 10, "NEW"))

	mock.ExpectQuery(`SELECT (.+) FROM "payments" WHERE customer_id = (.+)`).
		WillReturnRows(mock.NewRows([]string{"id", "customer_id", "status"}))
	mock.ExpectQuery(`SELECT (.+) FROM "payments" WHERE customer_id = (.+)`).
		WillReturnRows(mock.NewRows([]string{"id", "customer_id", "status"}))

	r := testutils.SetupTestRouter()
	r.GET("/customers", GetAllCustomers)

	req, _ := http.NewRequest(http.MethodGet, "/customers", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string][]map[string]interface{}
	err := json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.NoError(t, err)

	customers := respBody["customers"]
	assert.Equal(t, 2, len(customers), "there should be 2 customers in the response")

	if len(customers) >= 2 {
		assert.Equal(t, "ELN-0001", customers[0]["customerId"])
		assert.NotEmpty(t, customers[0]["nextDueDate"])
		// No payment history: both owe their package price
		assert.Equal(t, float64(200000), customers[0]["dueAmount"])
		assert.Equal(t, float64(350000), customers[1]["dueAmount"])
	}
}

func TestGetCustomerByID_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "customers" WHERE id = (.+) ORDER BY (.+) LIMIT (.+)`).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.GET("/customers/:id", GetCustomerByID)

	req, _ := http.NewRequest(http.MethodGet, "/customers/123e4567-e89b-12d3-a456-426614174000", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Customer not found", respBody["error"])
}

func TestGetCustomerByID_MalformedID(t *testing.T) {
	_, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.GET("/customers/:id", GetCustomerByID)

	req, _ := http.NewRequest(http.MethodGet, "/customers/not-a-uuid", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Invalid customer ID", respBody["error"])
}

func TestUpdateCustomer_InvalidBillingDay(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "customers" WHERE id = (.+) ORDER BY (.+) LIMIT (.+)`).
		WillReturnRows(mock.NewRows([]string{"id", "customer_id", "billing_day", "status"}).
			AddRow("123e4567-e89b-12d3-a456-426614174000", "ELN-0001", 15, "ACTIVE"))

	r := testutils.SetupTestRouter()
	r.PUT("/customers/:id", UpdateCustomer)

	updateData := map[string]interface{}{
		"billingDay": 30,
	}
	jsonData, _ := json.Marshal(updateData)

	req, _ := http.NewRequest(http.MethodPut, "/customers/123e4567-e89b-12d3-a456-426614174000", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestUpdateCustomer_InvalidStatus(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "customers" WHERE id = (.+) ORDER BY (.+) LIMIT (.+)`).
		WillReturnRows(mock.NewRows([]string{"id", "customer_id", "billing_day", "status"}).
			AddRow("123e4567-e89b-12d3-a456-426614174000", "ELN-0001", 15, "ACTIVE"))

	r := testutils.SetupTestRouter()
	r.PUT("/customers/:id", UpdateCustomer)

	updateData := map[string]interface{}{
		"status": "FROZEN",
	}
	jsonData, _ := json.Marshal(updateData)

	req, _ := http.NewRequest(http.MethodPut, "/customers/123e4567-e89b-12d3-a456-426614174000", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestUpdateCustomer_StatusChangeSuccess(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "customers" WHERE id = (.+) ORDER BY (.+) LIMIT (.+)`).
		WillReturnRows(mock.NewRows([]string{"id", "customer_id", "billing_day", "status"}).
			AddRow("123e4567-e89b-12d3-a456-426614174000", "ELN-0001", 15, "ACTIVE"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "customers" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.PUT("/customers/:id", UpdateCustomer)

	// An admin can move the status freely, including back to SUSPENDED
	updateData := map[string]interface{}{
		"status": "SUSPENDED",
	}
	jsonData, _ := json.Marshal(updateData)

	req, _ := http.NewRequest(http.MethodPut, "/customers/123e4567-e89b-12d3-a456-426614174000", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCustomer_MarksTerminated(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "customers" WHERE id = (.+) ORDER BY (.+) LIMIT (.+)`).
		WillReturnRows(mock.NewRows([]string{"id", "customer_id", "billing_day", "status"}).
			AddRow("123e4567-e89b-12d3-a456-426614174000", "ELN-0001", 15, "ACTIVE"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "customers" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.DELETE("/customers/:id", DeleteCustomer)

	req, _ := http.NewRequest(http.MethodDelete, "/customers/123e4567-e89b-12d3-a456-426614174000", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Customer terminated successfully", respBody["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
