// File: tutoria/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tutoria/config"
	"tutoria/cron"
	"tutoria/database"
	branchRepoPkg "tutoria/database/repository/branch"
	classRepoPkg "tutoria/database/repository/class"
	enrollmentRepoPkg "tutoria/database/repository/enrollment"
	noticeRepoPkg "tutoria/database/repository/notice"
	parentRepoPkg "tutoria/database/repository/parent"
	paymentRepoPkg "tutoria/database/repository/payment"
	staffRepoPkg "tutoria/database/repository/staff"
	studentRepoPkg "tutoria/database/repository/student"
	"tutoria/handlers"
	"tutoria/routes"
	"tutoria/services/branch"
	"tutoria/services/class"
	"tutoria/services/enrollment"
	"tutoria/services/notification"
	"tutoria/services/parent"
	"tutoria/services/payment"
	"tutoria/services/scheduling"
	"tutoria/services/staff"
	"tutoria/services/student"
	"tutoria/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	branchRepo := branchRepoPkg.NewMongoBranchRepo()
	classRepo := classRepoPkg.NewMongoClassRepo()
	enrollmentRepo := enrollmentRepoPkg.NewMongoEnrollmentRepo()
	noticeRepo := noticeRepoPkg.NewMongoNoticeRepo()
	parentRepo := parentRepoPkg.NewMongoParentRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()
	staffRepo := staffRepoPkg.NewMongoStaffRepo()
	studentRepo := studentRepoPkg.NewMongoStudentRepo()

	// services.
	notifier := notification.NewNotificationService()
	previewer := scheduling.NewConflictPreviewer(classRepo)

	branchService := &branch.DefaultBranchService{Repo: branchRepo}
	staffService := &staff.DefaultStaffService{Repo: staffRepo}
	parentService := &parent.DefaultParentService{Repo: parentRepo}
	studentService := &student.DefaultStudentService{Repo: studentRepo}
	classService := &class.DefaultClassService{
		Repo:       classRepo,
		StaffRepo:  staffRepo,
		BranchRepo: branchRepo,
		Previewer:  previewer,
		Notifier:   notifier,
	}
	enrollmentService := &enrollment.DefaultEnrollmentService{
		Repo:        enrollmentRepo,
		ClassRepo:   classRepo,
		StudentRepo: studentRepo,
	}
	paymentService := &payment.DefaultPaymentService{
		Repo:           paymentRepo,
		EnrollmentRepo: enrollmentRepo,
		ClassRepo:      classRepo,
		Notifier:       notifier,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:        &handlers.AuthHandler{ParentService: parentService, StaffService: staffService},
		Branches:    &handlers.BranchHandler{BranchService: branchService},
		Staff:       &handlers.StaffHandler{StaffService: staffService},
		Students:    &handlers.StudentHandler{StudentService: studentService},
		Classes:     &handlers.ClassHandler{ClassService: classService},
		Enrollments: &handlers.EnrollmentHandler{EnrollmentService: enrollmentService},
		Payments:    &handlers.PaymentHandler{PaymentService: paymentService},
		Notices:     &handlers.NoticeHandler{Notices: noticeRepo},
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the notice worker that delivers queued notifications.
	go cron.InitNoticeWorker(noticeRepo)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
