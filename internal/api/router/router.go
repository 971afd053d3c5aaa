package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"brixia-rugby/backend/config"
	"brixia-rugby/backend/internal/api/handler"
	"brixia-rugby/backend/internal/api/middleware"
	"brixia-rugby/backend/internal/model"
	"brixia-rugby/backend/pkg/jwt"
	"brixia-rugby/backend/pkg/redis"
)

// Pinger reports database health for /health.
type Pinger interface {
	Ping() error
}

// Setup builds the gin engine. rdb may be nil when Redis is disabled.
func Setup(
	cfg *config.Config,
	h *handler.Handler,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	db Pinger,
	logger *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	r.GET("/health", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// admin and coach plan the season; staff read and keep medical records
	writers := middleware.RoleAuth(model.RoleAdmin, model.RoleCoach)
	adminOnly := middleware.RoleAuth(model.RoleAdmin)
	throttle := middleware.RateLimit(rdb, cfg.Club.RateLimit.Requests, cfg.Club.RateLimit.Window, logger)

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", throttle, h.Auth.Login)
			auth.POST("/refresh", throttle, h.Auth.RefreshToken)
		}

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb, logger))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			users := authorized.Group("/users", adminOnly)
			{
				users.GET("", h.User.ListUsers)
				users.POST("", h.User.CreateUser)
				users.POST("/import", h.User.ImportUsers)
				users.GET("/:id", h.User.GetUser)
				users.PUT("/:id", h.User.UpdateUser)
				users.DELETE("/:id", h.User.DeleteUser)
				users.PUT("/:id/role", h.User.AssignRole)
				users.POST("/:id/reset-password", h.User.ResetPassword)
			}

			categories := authorized.Group("/categories")
			{
				categories.GET("", h.Category.ListCategories)
				categories.GET("/:id", h.Category.GetCategory)
				categories.POST("", adminOnly, h.Category.CreateCategory)
				categories.PUT("/:id", adminOnly, h.Category.UpdateCategory)
				categories.DELETE("/:id", adminOnly, h.Category.DeleteCategory)

				categories.GET("/:id/training-locations", h.TrainingLocation.ListByCategory)
				categories.POST("/:id/training-locations", writers, h.TrainingLocation.Create)
			}

			trainingLocations := authorized.Group("/training-locations", writers)
			{
				trainingLocations.PUT("/:id", h.TrainingLocation.Update)
				trainingLocations.DELETE("/:id", h.TrainingLocation.Delete)
			}

			players := authorized.Group("/players")
			{
				players.GET("", h.Player.ListPlayers)
				players.GET("/:id", h.Player.GetPlayer)
				players.POST("", writers, h.Player.CreatePlayer)
				players.PUT("/:id", writers, h.Player.UpdatePlayer)
				players.DELETE("/:id", writers, h.Player.DeletePlayer)
				players.GET("/:id/attendance-summary", h.Attendance.PlayerSummary)
				players.GET("/:id/injuries", h.Injury.ListByPlayer)
			}

			staff := authorized.Group("/staff")
			{
				staff.GET("", h.Staff.ListStaff)
				staff.GET("/:id", h.Staff.GetStaff)
				staff.POST("", adminOnly, h.Staff.CreateStaff)
				staff.PUT("/:id", adminOnly, h.Staff.UpdateStaff)
				staff.DELETE("/:id", adminOnly, h.Staff.DeleteStaff)
			}

			sessions := authorized.Group("/sessions")
			{
				sessions.GET("", h.Session.ListSessions)
				sessions.POST("", writers, h.Session.CreateSession)
				sessions.POST("/generate", writers, h.Session.Generate)
				sessions.GET("/:id", h.Session.GetSession)
				sessions.PUT("/:id", writers, h.Session.UpdateSession)
				sessions.DELETE("/:id", writers, h.Session.DeleteSession)
				sessions.GET("/:id/attendance", h.Attendance.ListBySession)
				sessions.PUT("/:id/attendance", h.Attendance.Record)
			}

			authorized.GET("/attendance", h.Attendance.List)

			events := authorized.Group("/events")
			{
				events.GET("", h.Event.ListEvents)
				events.POST("", writers, h.Event.CreateEvent)
				events.POST("/import", writers, h.Event.ImportEvents)
				events.GET("/:id", h.Event.GetEvent)
				events.PUT("/:id", writers, h.Event.UpdateEvent)
				events.DELETE("/:id", writers, h.Event.DeleteEvent)
			}

			injuries := authorized.Group("/injuries")
			{
				injuries.GET("", h.Injury.ListInjuries)
				injuries.POST("", h.Injury.CreateInjury)
				injuries.GET("/:id", h.Injury.GetInjury)
				injuries.PUT("/:id", h.Injury.UpdateInjury)
				injuries.PUT("/:id/return", h.Injury.MarkReturned)
				injuries.DELETE("/:id", writers, h.Injury.DeleteInjury)
			}

			// author-or-admin is enforced by the service
			notes := authorized.Group("/notes")
			{
				notes.GET("", h.Note.ListNotes)
				notes.POST("", h.Note.CreateNote)
				notes.GET("/:id", h.Note.GetNote)
				notes.PUT("/:id", h.Note.UpdateNote)
				notes.DELETE("/:id", h.Note.DeleteNote)
			}

			export := authorized.Group("/export")
			{
				export.GET("/attendance.csv", h.Export.AttendanceCSV)
				export.GET("/roster.xlsx", h.Export.RosterXLSX)
				export.GET("/calendar.ics", h.Export.CalendarICS)
			}
		}
	}

	return r
}
