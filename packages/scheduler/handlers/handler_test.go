package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"scheduler/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Team{},
		&models.Match{},
		&models.Appointment{},
		&models.Proposition{},
	)
	require.NoError(t, err)

	return db
}

// fakeAuth stands in for the JWT middleware and injects the context keys it
// would normally set.
func fakeAuth(userID uint, roles []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("user_roles", roles)
		c.Next()
	}
}

func setupRouter(db *gorm.DB, userID uint, roles []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	auth := fakeAuth(userID, roles)

	teamHandler := NewTeamHandler(db)
	r.GET("/teams", teamHandler.GetAllTeams)
	r.GET("/teams/:id", teamHandler.GetTeam)
	r.POST("/teams", auth, teamHandler.CreateTeam)
	r.PUT("/teams/:id", auth, teamHandler.UpdateTeam)

	matchHandler := NewMatchHandler(db)
	r.GET("/matches/:id", matchHandler.GetMatch)
	r.POST("/matches", auth, matchHandler.CreateMatch)

	appointmentHandler := NewAppointmentHandler(db)
	r.GET("/appointments", appointmentHandler.GetAllAppointments)
	r.PATCH("/appointments/:id", auth, appointmentHandler.RescheduleAppointment)

	propositionHandler := NewPropositionHandler(db)
	r.POST("/propositions", auth, propositionHandler.CreateProposition)
	r.GET("/propositions/mine", auth, propositionHandler.GetMyPropositions)
	r.PUT("/propositions/:id", auth, propositionHandler.UpdateProposition)
	r.DELETE("/propositions/:id", auth, propositionHandler.DeleteProposition)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateTeamEndpoint(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db, 1, []string{"user"})

	w := doJSON(t, r, http.MethodPost, "/teams", gin.H{"name": "Hawks", "skill": 8})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var team models.Team
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &team))
	assert.Equal(t, "Hawks", team.Name)
	require.NotNil(t, team.Skill)
	assert.Equal(t, 8, *team.Skill)
}

func TestCreateTeamEndpointRejectsBadSkill(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db, 1, []string{"user"})

	w := doJSON(t, r, http.MethodPost, "/teams", gin.H{"name": "Hawks", "skill": 11})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTeamEndpointNotFound(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db, 1, []string{"user"})

	w := doJSON(t, r, http.MethodGet, "/teams/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/teams/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateMatchEndpointReturnsAppointment(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db, 1, []string{"user"})

	w := doJSON(t, r, http.MethodPost, "/matches", gin.H{
		"title":              "Finals",
		"default_match_date": time.Now().AddDate(0, 0, 28).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var match models.Match
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &match))
	require.NotNil(t, match.Appointment)
	assert.Nil(t, match.Appointment.MatchDate)
}

func TestCreateMatchEndpointUnknownOpponent(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db, 1, []string{"user"})

	w := doJSON(t, r, http.MethodPost, "/matches", gin.H{
		"title":              "Finals",
		"opponent_id":        999,
		"default_match_date": time.Now().Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRescheduleAppointmentEndpoint(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db, 1, []string{"user"})

	w := doJSON(t, r, http.MethodPost, "/matches", gin.H{
		"title":              "Finals",
		"default_match_date": time.Now().Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var match models.Match
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &match))
	require.NotNil(t, match.Appointment)

	slot := time.Date(2026, time.September, 12, 18, 30, 0, 0, time.UTC)
	w = doJSON(t, r, http.MethodPatch,
		"/appointments/"+itoa(match.Appointment.ID),
		gin.H{"match_date": slot.Format(time.RFC3339)})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var appointment models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &appointment))
	require.NotNil(t, appointment.MatchDate)
	assert.True(t, appointment.MatchDate.Equal(slot))
}

func TestPropositionEndpointOwnership(t *testing.T) {
	db := setupTestDB(t)

	owner := setupRouter(db, 1, []string{"user"})
	stranger := setupRouter(db, 2, []string{"user"})
	admin := setupRouter(db, 3, []string{"user", "admin"})

	w := doJSON(t, owner, http.MethodPost, "/propositions", gin.H{
		"date":       "2026-09-12",
		"start_time": "13:00:00",
		"end_time":   "15:00:00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var proposition models.Proposition
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &proposition))

	path := "/propositions/" + itoa(proposition.ID)

	w = doJSON(t, stranger, http.MethodPut, path, gin.H{"end_time": "16:00:00"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, admin, http.MethodPut, path, gin.H{"end_time": "16:00:00"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, stranger, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, owner, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreatePropositionEndpointRejectsInvalidRange(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db, 1, []string{"user"})

	w := doJSON(t, r, http.MethodPost, "/propositions", gin.H{
		"date":       "2026-09-12",
		"start_time": "14:00:00",
		"end_time":   "13:00:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMyPropositionsEndpoint(t *testing.T) {
	db := setupTestDB(t)

	first := setupRouter(db, 1, []string{"user"})
	second := setupRouter(db, 2, []string{"user"})

	for _, r := range []*gin.Engine{first, first, second} {
		w := doJSON(t, r, http.MethodPost, "/propositions", gin.H{
			"date":       "2026-09-12",
			"start_time": "13:00:00",
			"end_time":   "15:00:00",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, first, http.MethodGet, "/propositions/mine", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var page models.PaginatedPropositionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, int64(2), page.Total)
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
