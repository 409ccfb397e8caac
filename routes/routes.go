package routes

import (
	"net/http"
	"time"

	"tutoria/handlers"
	"tutoria/middleware"
	"tutoria/models"
	"tutoria/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers parent and staff sign-in endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/parents/register", hb.Auth.RegisterParentHandler)
		api.POST("/parents/signin", hb.Auth.SignInParentHandler)
		api.POST("/parents/signout", middleware.ParentAuthMiddleware(), hb.Auth.SignOutParentHandler)

		api.POST("/staff/signin", hb.Auth.SignInStaffHandler)
		api.POST("/staff/signout", middleware.StaffAuthMiddleware(), hb.Auth.SignOutStaffHandler)
	}
}

// RegisterBranchRoutes registers branch and classroom management endpoints.
// Reads are open to any staff; writes are admin only.
func RegisterBranchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/branches")
	{
		api.GET("", middleware.StaffAuthMiddleware(), hb.Branches.ListBranchesHandler)
		api.GET("/:id", middleware.StaffAuthMiddleware(), hb.Branches.GetBranchHandler)

		admin := api.Group("")
		admin.Use(middleware.StaffAuthMiddleware(models.RoleAdmin))
		admin.POST("", hb.Branches.CreateBranchHandler)
		admin.PUT("/:id", hb.Branches.UpdateBranchHandler)
		admin.DELETE("/:id", hb.Branches.DeleteBranchHandler)
		admin.POST("/:id/classrooms", hb.Branches.AddClassroomHandler)
		admin.DELETE("/:id/classrooms/:roomId", hb.Branches.RemoveClassroomHandler)
	}
}

// RegisterStaffRoutes registers staff account management endpoints.
func RegisterStaffRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/staff")
	{
		api.Use(middleware.StaffAuthMiddleware(models.RoleAdmin))
		api.POST("", hb.Staff.CreateStaffHandler)
		api.GET("", hb.Staff.ListStaffHandler)
		api.GET("/:id", hb.Staff.GetStaffHandler)
		api.PUT("/:id", hb.Staff.UpdateStaffHandler)
		api.DELETE("/:id", hb.Staff.DeleteStaffHandler)
	}

	// The tutor dropdown is needed by front-desk staff too.
	r.GET("/api/tutors", middleware.StaffAuthMiddleware(), hb.Staff.ListTutorsHandler)
}

// RegisterStudentRoutes registers parent-scoped student record endpoints.
func RegisterStudentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/students")
	{
		api.Use(middleware.ParentAuthMiddleware())
		api.POST("", hb.Students.CreateStudentHandler)
		api.GET("", hb.Students.ListStudentsHandler)
		api.GET("/:id", hb.Students.GetStudentHandler)
		api.PUT("/:id", hb.Students.UpdateStudentHandler)
		api.DELETE("/:id", hb.Students.DeleteStudentHandler)
	}
}

// RegisterClassRoutes registers class management and tutor assignment
// endpoints, including the conflict preview used by the assignment dialog.
func RegisterClassRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/classes")
	{
		api.GET("", middleware.StaffAuthMiddleware(), hb.Classes.ListClassesHandler)
		api.GET("/:id", middleware.StaffAuthMiddleware(), hb.Classes.GetClassHandler)
		api.GET("/:id/roster", middleware.StaffAuthMiddleware(), hb.Enrollments.ListClassRosterHandler)

		managed := api.Group("")
		managed.Use(middleware.StaffAuthMiddleware(models.RoleAdmin, models.RoleStaff))
		managed.POST("", hb.Classes.CreateClassHandler)
		managed.PUT("/:id", hb.Classes.UpdateClassHandler)
		managed.DELETE("/:id", hb.Classes.DeleteClassHandler)

		managed.POST("/:id/assignment/preview", hb.Classes.PreviewAssignmentHandler)
		managed.PUT("/:id/assignment", hb.Classes.ReassignTutorHandler)
		managed.DELETE("/:id/assignment", hb.Classes.UnassignTutorHandler)
	}
}

// RegisterEnrollmentRoutes registers enrollment endpoints.
func RegisterEnrollmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/enrollments")
	{
		api.Use(middleware.ParentAuthMiddleware())
		api.POST("", hb.Enrollments.EnrollHandler)
		api.GET("", hb.Enrollments.ListMyEnrollmentsHandler)
		api.DELETE("/:id", hb.Enrollments.WithdrawHandler)
	}
}

// RegisterPaymentRoutes registers fee payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.POST("/cash", middleware.StaffAuthMiddleware(models.RoleAdmin, models.RoleStaff), hb.Payments.RecordCashPaymentHandler)

		parents := api.Group("")
		parents.Use(middleware.ParentAuthMiddleware())
		parents.POST("/intent", hb.Payments.CreatePaymentIntentHandler)
		parents.POST("/:id/confirm", hb.Payments.ConfirmPaymentHandler)
		parents.GET("", hb.Payments.ListPaymentHistoryHandler)
	}
}

// RegisterNoticeRoutes registers the in-app notice feed.
func RegisterNoticeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/notices", middleware.AuthMiddleware(), hb.Notices.ListNoticesHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterAuthRoutes(r, hb)
	RegisterBranchRoutes(r, hb)
	RegisterStaffRoutes(r, hb)
	RegisterStudentRoutes(r, hb)
	RegisterClassRoutes(r, hb)
	RegisterEnrollmentRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterNoticeRoutes(r, hb)
	RegisterHealthRoute(r)
}
