package snapshot

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newHandlerApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	store, mock := newMockStore(t)
	app := fiber.New()
	NewHandler(store, zap.NewNop()).RegisterRoutes(app)
	return app, mock
}

func TestHandleListRuns(t *testing.T) {
	app, mock := newHandlerApp(t)

	mock.ExpectQuery("SELECT \\* FROM `runs`").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "created_at", "regions", "technologies", "total_energy_pj"}).
			AddRow("run-1", time.Now(), 1, 4, 16.0))

	resp, err := app.Test(httptest.NewRequest("GET", "/snapshots/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Runs []struct {
			ID string `json:"id"`
		} `json:"runs"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Runs, 1)
	assert.Equal(t, "run-1", body.Runs[0].ID)
}

func TestHandleGetRun_NotFound(t *testing.T) {
	app, mock := newHandlerApp(t)

	mock.ExpectQuery("SELECT \\* FROM `runs` WHERE id = ?").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "created_at", "regions", "technologies", "total_energy_pj"}))

	resp, err := app.Test(httptest.NewRequest("GET", "/snapshots/missing", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
