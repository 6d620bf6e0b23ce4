package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medvault/internal/logger"
)

func TestNewApp_EndToEnd(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	reg := prometheus.NewRegistry()
	app, err := newApp(db, logger.Discard(), reg)
	require.NoError(t, err)

	t.Run("empty doctor listing is 404", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM doctors ORDER BY").
			WillReturnRows(sqlmock.NewRows([]string{"doctor_id", "first_name", "last_name", "dob", "gender", "email", "phone", "address", "qualification", "specialization"}))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/doctors", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "No doctors found", body["message"])
		assert.Equal(t, false, body["success"])
		assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	})

	t.Run("register patient", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectQuery("SELECT (.+) FROM patients WHERE email = ?").
			WithArgs("noor@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"patient_id"}))
		mock.ExpectQuery("INSERT INTO patients").
			WillReturnRows(sqlmock.NewRows([]string{"patient_id", "first_name", "last_name", "dob", "gender", "address", "email", "phone"}).
				AddRow(id.String(), "Noor", "Haddad", "1990-01-15", "F", "", "noor@example.com", ""))

		req := httptest.NewRequest(http.MethodPost, "/api/patient/register",
			strings.NewReader(`{"firstName":"Noor","lastName":"Haddad","gender":"F","dob":"1990-01-15","email":"noor@example.com"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, id.String(), body["id"])
		assert.Equal(t, "1990-01-15", body["dob"])
	})

	t.Run("status recorded after error translation", func(t *testing.T) {
		assert.Equal(t, float64(1), counterValue(t, reg, "GET", "/api/doctors", "404"))
		assert.Equal(t, float64(1), counterValue(t, reg, "POST", "/api/patient/register", "201"))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

// counterValue reads one http_requests_total series from reg.
func counterValue(t *testing.T, reg *prometheus.Registry, method, path, status string) float64 {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() != "http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["method"] == method && labels["path"] == path && labels["status"] == status {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}
