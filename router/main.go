package router

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/edumanage-api/database"
	"github.com/sahilchouksey/edumanage-api/handlers"
	attendance_handlers "github.com/sahilchouksey/edumanage-api/handlers/attendance"
	auth_handlers "github.com/sahilchouksey/edumanage-api/handlers/auth"
	course_handlers "github.com/sahilchouksey/edumanage-api/handlers/course"
	dashboard_handlers "github.com/sahilchouksey/edumanage-api/handlers/dashboard"
	event_handlers "github.com/sahilchouksey/edumanage-api/handlers/event"
	exam_handlers "github.com/sahilchouksey/edumanage-api/handlers/exam"
	fees_handlers "github.com/sahilchouksey/edumanage-api/handlers/fees"
	marks_handlers "github.com/sahilchouksey/edumanage-api/handlers/marks"
	salary_handlers "github.com/sahilchouksey/edumanage-api/handlers/salary"
	student_handlers "github.com/sahilchouksey/edumanage-api/handlers/student"
	timetable_handlers "github.com/sahilchouksey/edumanage-api/handlers/timetable"
	"github.com/sahilchouksey/edumanage-api/services"
	"github.com/sahilchouksey/edumanage-api/services/storage"
	"github.com/sahilchouksey/edumanage-api/utils/auth"
	"github.com/sahilchouksey/edumanage-api/utils/cache"
	"github.com/sahilchouksey/edumanage-api/utils/middleware"
	"github.com/sahilchouksey/edumanage-api/utils/policy"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, store database.Storage) {
	// Get JWT secret from environment
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := os.Getenv("JWT_ISSUER")
	if jwtIssuer == "" {
		jwtIssuer = "edumanage-api"
	}

	// Initialize JWT manager with config
	jwtConfig := auth.JWTConfig{
		Secret:        jwtSecret,
		Expiry:        24 * time.Hour,     // Access token expires in 24 hours
		RefreshExpiry: 7 * 24 * time.Hour, // Refresh token expires in 7 days
		Issuer:        jwtIssuer,
	}
	jwtManager := auth.NewJWTManager(jwtConfig)

	// Get DB instance (type assert from interface)
	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	// Initialize Redis cache for brute force protection and dashboard caching
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	redisCache, err := cache.NewRedisCache(redisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Brute force protection and dashboard caching will be disabled.", err)
		redisCache = nil
	}

	// Initialize brute force protection
	var bruteForceProtection *middleware.BruteForceProtection
	if redisCache != nil {
		bruteForceProtection = middleware.NewBruteForceProtection(redisCache)
	}

	// Initialize Spaces client for event images (optional)
	var spacesClient *storage.SpacesClient
	if os.Getenv("SPACES_ACCESS_KEY") != "" {
		spacesClient, err = storage.NewSpacesClient(storage.SpacesConfig{
			AccessKey: os.Getenv("SPACES_ACCESS_KEY"),
			SecretKey: os.Getenv("SPACES_SECRET_KEY"),
			Bucket:    os.Getenv("SPACES_BUCKET"),
			Region:    os.Getenv("SPACES_REGION"),
			Endpoint:  os.Getenv("SPACES_ENDPOINT"),
			CDNURL:    os.Getenv("SPACES_CDN_URL"),
		})
		if err != nil {
			log.Printf("Warning: Failed to initialize Spaces client: %v. Event image uploads will be disabled.", err)
			spacesClient = nil
		}
	}

	// Initialize auth middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, db)

	// Initialize handlers
	authHandler := auth_handlers.NewAuthHandler(db, jwtManager, bruteForceProtection)
	studentHandler := student_handlers.NewStudentHandler(db)
	courseHandler := course_handlers.NewCourseHandler(db)
	attendanceHandler := attendance_handlers.NewAttendanceHandler(db)
	examHandler := exam_handlers.NewExamHandler(db)
	marksHandler := marks_handlers.NewMarksHandler(db)
	feesHandler := fees_handlers.NewFeesHandler(db)
	salaryHandler := salary_handlers.NewSalaryHandler(db)
	timetableHandler := timetable_handlers.NewTimetableHandler(db)
	eventHandler := event_handlers.NewEventHandler(db, spacesClient)

	dashboardService := services.NewDashboardService(db, redisCache)
	dashboardHandler := dashboard_handlers.NewDashboardHandler(db, dashboardService)

	// Apply security middleware
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://localhost:3001"
	}

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    allowedOrigins,
		RateLimitRequests: 100,             // 100 requests
		RateLimitWindow:   1 * time.Minute, // per minute
	})

	// Health check endpoint (public)
	app.Get("/ping", handlers.Ping(store))

	// API v1 group
	api := app.Group("/api/v1")

	// Auth routes (public)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)

	// Login with brute force protection
	if bruteForceProtection != nil {
		authGroup.Post("/login", bruteForceProtection.CheckAndRecordAttempt(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}

	authGroup.Post("/refresh", authHandler.RefreshToken)

	// Profile routes (protected)
	profileGroup := api.Group("/profile", authMiddleware.Required())
	profileGroup.Get("/", authHandler.GetProfile)
	profileGroup.Put("/", authHandler.UpdateProfile)

	// Everything below requires authentication; per-route policy gates
	// decide which roles get through.
	requirePerm := authMiddleware.RequirePermission

	// Students routes
	students := api.Group("/students", authMiddleware.Required())
	students.Get("/", requirePerm(policy.EntityStudent, policy.OpRead), studentHandler.GetStudents)
	students.Get("/:id", requirePerm(policy.EntityStudent, policy.OpRead), studentHandler.GetStudent)
	students.Post("/", requirePerm(policy.EntityStudent, policy.OpCreate), studentHandler.CreateStudent)
	students.Put("/:id", requirePerm(policy.EntityStudent, policy.OpUpdate), studentHandler.UpdateStudent)
	students.Delete("/:id", requirePerm(policy.EntityStudent, policy.OpDelete), studentHandler.DeleteStudent)

	// Courses routes
	courses := api.Group("/courses", authMiddleware.Required())
	courses.Get("/", requirePerm(policy.EntityCourse, policy.OpRead), courseHandler.GetCourses)
	courses.Get("/:id", requirePerm(policy.EntityCourse, policy.OpRead), courseHandler.GetCourse)
	courses.Post("/", requirePerm(policy.EntityCourse, policy.OpCreate), courseHandler.CreateCourse)
	courses.Put("/:id", requirePerm(policy.EntityCourse, policy.OpUpdate), courseHandler.UpdateCourse)
	courses.Delete("/:id", requirePerm(policy.EntityCourse, policy.OpDelete), courseHandler.DeleteCourse)

	// Attendance routes. The per-student read is open to any authenticated
	// caller; the handler enforces that students only see their own.
	attendance := api.Group("/attendance", authMiddleware.Required())
	attendance.Get("/", requirePerm(policy.EntityAttendance, policy.OpRead), attendanceHandler.GetAttendance)
	attendance.Get("/student/:studentId", attendanceHandler.GetStudentAttendance)
	attendance.Post("/", requirePerm(policy.EntityAttendance, policy.OpCreate), attendanceHandler.MarkAttendance)
	attendance.Put("/:id", requirePerm(policy.EntityAttendance, policy.OpUpdate), attendanceHandler.UpdateAttendance)
	attendance.Delete("/:id", requirePerm(policy.EntityAttendance, policy.OpDelete), attendanceHandler.DeleteAttendance)

	// Exams routes
	exams := api.Group("/exams", authMiddleware.Required())
	exams.Get("/", requirePerm(policy.EntityExam, policy.OpRead), examHandler.GetExams)
	exams.Get("/:id", requirePerm(policy.EntityExam, policy.OpRead), examHandler.GetExam)
	exams.Post("/", requirePerm(policy.EntityExam, policy.OpCreate), examHandler.CreateExam)
	exams.Put("/:id", requirePerm(policy.EntityExam, policy.OpUpdate), examHandler.UpdateExam)
	exams.Delete("/:id", requirePerm(policy.EntityExam, policy.OpDelete), examHandler.DeleteExam)

	// Marks routes
	marks := api.Group("/marks", authMiddleware.Required())
	marks.Get("/", requirePerm(policy.EntityMarks, policy.OpRead), marksHandler.GetMarks)
	marks.Get("/student/:studentId", marksHandler.GetStudentMarks)
	marks.Post("/", requirePerm(policy.EntityMarks, policy.OpCreate), marksHandler.EnterMarks)
	marks.Put("/:id", requirePerm(policy.EntityMarks, policy.OpUpdate), marksHandler.UpdateMarks)
	marks.Delete("/:id", requirePerm(policy.EntityMarks, policy.OpDelete), marksHandler.DeleteMarks)

	// Fees routes
	fees := api.Group("/fees", authMiddleware.Required())
	fees.Get("/", requirePerm(policy.EntityFees, policy.OpRead), feesHandler.GetFees)
	fees.Get("/student/:studentId", feesHandler.GetStudentFees)
	fees.Post("/", requirePerm(policy.EntityFees, policy.OpCreate), feesHandler.CreateFees)
	fees.Put("/:id", requirePerm(policy.EntityFees, policy.OpUpdate), feesHandler.UpdateFees)
	fees.Delete("/:id", requirePerm(policy.EntityFees, policy.OpDelete), feesHandler.DeleteFees)

	// Salary routes
	salary := api.Group("/salary", authMiddleware.Required())
	salary.Get("/", requirePerm(policy.EntitySalary, policy.OpRead), salaryHandler.GetSalaries)
	salary.Get("/teacher/:teacherId", salaryHandler.GetTeacherSalary)
	salary.Get("/summary/all", requirePerm(policy.EntitySalary, policy.OpRead), salaryHandler.GetSalaryOverview)
	salary.Post("/", requirePerm(policy.EntitySalary, policy.OpCreate), salaryHandler.CreateSalary)
	salary.Put("/:id", requirePerm(policy.EntitySalary, policy.OpUpdate), salaryHandler.UpdateSalary)
	salary.Delete("/:id", requirePerm(policy.EntitySalary, policy.OpDelete), salaryHandler.DeleteSalary)

	// Timetable routes
	timetable := api.Group("/timetable", authMiddleware.Required())
	timetable.Get("/", requirePerm(policy.EntityTimetable, policy.OpRead), timetableHandler.GetTimetable)
	timetable.Get("/availability", requirePerm(policy.EntityTimetable, policy.OpRead), timetableHandler.CheckAvailability)
	timetable.Get("/:id", requirePerm(policy.EntityTimetable, policy.OpRead), timetableHandler.GetTimetableEntry)
	timetable.Post("/", requirePerm(policy.EntityTimetable, policy.OpCreate), timetableHandler.CreateTimetableEntry)
	timetable.Put("/:id", requirePerm(policy.EntityTimetable, policy.OpUpdate), timetableHandler.UpdateTimetableEntry)
	timetable.Delete("/:id", requirePerm(policy.EntityTimetable, policy.OpDelete), timetableHandler.DeleteTimetableEntry)

	// Events routes
	events := api.Group("/events", authMiddleware.Required())
	events.Get("/", requirePerm(policy.EntityEvent, policy.OpRead), eventHandler.GetEvents)
	events.Get("/:id", requirePerm(policy.EntityEvent, policy.OpRead), eventHandler.GetEvent)
	events.Post("/", requirePerm(policy.EntityEvent, policy.OpCreate), eventHandler.CreateEvent)
	events.Post("/:id/image", requirePerm(policy.EntityEvent, policy.OpUpdate), eventHandler.UploadEventImage)
	events.Put("/:id", requirePerm(policy.EntityEvent, policy.OpUpdate), eventHandler.UpdateEvent)
	events.Delete("/:id", requirePerm(policy.EntityEvent, policy.OpDelete), eventHandler.DeleteEvent)

	// Dashboard routes. Scope checks live in the handlers.
	dashboardGroup := api.Group("/dashboard", authMiddleware.Required())
	dashboardGroup.Get("/student/:id", dashboardHandler.GetStudentDashboard)
	dashboardGroup.Get("/admin", dashboardHandler.GetAdminDashboard)
}
