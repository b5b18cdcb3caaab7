package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"scheduler/cron"
	"scheduler/handlers"
	"scheduler/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const defaultRetentionDays = 90

type Module struct {
	TeamHandler        *handlers.TeamHandler
	TeamService        *services.TeamService
	MatchHandler       *handlers.MatchHandler
	MatchService       *services.MatchService
	AppointmentHandler *handlers.AppointmentHandler
	AppointmentService *services.AppointmentService
	PropositionHandler *handlers.PropositionHandler
	PropositionService *services.PropositionService
	Scheduler          *cron.Scheduler
	db                 *gorm.DB
}

func NewModule(db *gorm.DB) *Module {
	teamService := services.NewTeamService(db)
	matchService := services.NewMatchService(db)
	appointmentService := services.NewAppointmentService(db)
	propositionService := services.NewPropositionService(db)

	scheduler := cron.NewScheduler(propositionService, retentionWindow())

	return &Module{
		TeamHandler:        handlers.NewTeamHandler(db),
		TeamService:        teamService,
		MatchHandler:       handlers.NewMatchHandler(db),
		MatchService:       matchService,
		AppointmentHandler: handlers.NewAppointmentHandler(db),
		AppointmentService: appointmentService,
		PropositionHandler: handlers.NewPropositionHandler(db),
		PropositionService: propositionService,
		Scheduler:          scheduler,
		db:                 db,
	}
}

// SetupRoutes registers the scheduler routes. The auth module owns the
// middleware; it is passed in so this module stays decoupled from it.
func (m *Module) SetupRoutes(r *gin.Engine, requireAuth gin.HandlerFunc, requireAdmin gin.HandlerFunc) {
	teams := r.Group("/teams")
	{
		teams.GET("", m.TeamHandler.GetAllTeams)
		teams.GET("/:id", m.TeamHandler.GetTeam)
		teams.POST("", requireAuth, m.TeamHandler.CreateTeam)
		teams.PUT("/:id", requireAuth, m.TeamHandler.UpdateTeam)
		teams.DELETE("/:id", requireAuth, requireAdmin, m.TeamHandler.DeleteTeam)
	}

	matches := r.Group("/matches")
	{
		matches.GET("", m.MatchHandler.GetAllMatches)
		matches.GET("/:id", m.MatchHandler.GetMatch)
		matches.POST("", requireAuth, m.MatchHandler.CreateMatch)
		matches.PUT("/:id", requireAuth, m.MatchHandler.UpdateMatch)
		matches.DELETE("/:id", requireAuth, requireAdmin, m.MatchHandler.DeleteMatch)
	}

	appointments := r.Group("/appointments")
	{
		appointments.GET("", m.AppointmentHandler.GetAllAppointments)
		appointments.GET("/:id", m.AppointmentHandler.GetAppointment)
		appointments.PATCH("/:id", requireAuth, m.AppointmentHandler.RescheduleAppointment)
	}

	propositions := r.Group("/propositions")
	propositions.Use(requireAuth)
	{
		propositions.GET("", m.PropositionHandler.GetAllPropositions)
		propositions.GET("/mine", m.PropositionHandler.GetMyPropositions)
		propositions.POST("", m.PropositionHandler.CreateProposition)
		propositions.PUT("/:id", m.PropositionHandler.UpdateProposition)
		propositions.DELETE("/:id", m.PropositionHandler.DeleteProposition)
	}
}

// StartRetention starts the cron job purging stale propositions
func (m *Module) StartRetention() error {
	log.Println("Starting scheduler module retention job...")
	return m.Scheduler.Start()
}

// StopRetention stops the cron scheduler
func (m *Module) StopRetention() {
	log.Println("Stopping scheduler module retention job...")
	m.Scheduler.Stop()
}

func retentionWindow() time.Duration {
	days := defaultRetentionDays
	if value := os.Getenv("PROPOSITION_RETENTION_DAYS"); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			days = parsed
		}
	}
	return time.Duration(days) * 24 * time.Hour
}
