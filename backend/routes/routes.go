package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/contatonovatek-coder/Novatek-Aulas/backend/auth"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/config"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/controllers"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/middleware"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/payments"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/store"
)

func SetupRoutes(app *fiber.App, st *store.Store, session *auth.Session, processor *payments.Processor, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(session, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)
	app.Post("/api/auth/logout", authController.Logout)
	app.Get("/api/auth/me", authController.Me)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(st, cfg)
	adminMiddleware := middleware.AdminMiddleware()
	subscriberMiddleware := middleware.SubscriberMiddleware()

	// User routes
	userController := controllers.NewUserController(st, session, cfg)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)
	app.Put("/api/user/profile", authMiddleware, userController.UpdateProfile)
	app.Put("/api/user/preferences", authMiddleware, userController.UpdatePreferences)

	// Courses routes. The catalog is public; lesson content requires an
	// active subscription.
	coursesController := controllers.NewCoursesController(st, cfg)
	app.Get("/api/courses", coursesController.GetCourses)
	app.Get("/api/courses/featured", coursesController.GetFeaturedCourses)
	app.Get("/api/courses/:id", coursesController.GetCourseDetails)
	app.Get("/api/courses/:id/lessons/:lessonId", authMiddleware, subscriberMiddleware, coursesController.GetLesson)
	app.Get("/api/categories", coursesController.GetCategories)
	app.Get("/api/search", coursesController.Search)

	// Progress routes
	progressController := controllers.NewProgressController(st, cfg)
	app.Post("/api/courses/:id/lessons/:lessonId/complete", authMiddleware, subscriberMiddleware, progressController.CompleteLesson)
	app.Get("/api/courses/:id/progress", authMiddleware, progressController.GetCourseProgress)
	app.Get("/api/progress", authMiddleware, progressController.GetProgress)
	app.Get("/api/certificates", authMiddleware, progressController.GetCertificates)

	// Notification routes
	notificationsController := controllers.NewNotificationsController(st, cfg)
	app.Get("/api/notifications", authMiddleware, notificationsController.GetNotifications)
	app.Get("/api/notifications/unread", authMiddleware, notificationsController.GetUnreadCount)
	app.Post("/api/notifications/read-all", authMiddleware, notificationsController.MarkAllRead)

	// Payment routes. The callback is hit by the gateway redirect, so it
	// carries no token.
	paymentController := controllers.NewPaymentController(st, session, processor, cfg)
	app.Get("/api/plans", paymentController.GetPlans)
	app.Post("/api/payments/checkout", authMiddleware, paymentController.Checkout)
	app.Get("/api/payments/callback", paymentController.Callback)
	app.Get("/api/payments/history", authMiddleware, paymentController.GetPaymentHistory)

	// Admin routes
	adminController := controllers.NewAdminController(st, cfg)
	admin := app.Group("/api/admin", authMiddleware, adminMiddleware)
	admin.Get("/stats", adminController.GetStats)
	admin.Get("/activities", adminController.GetActivities)
	admin.Get("/users", adminController.GetUsers)
	admin.Get("/users/:id", adminController.GetUser)
	admin.Delete("/users/:id", adminController.DeleteUser)
	admin.Post("/users/:id/cancel-subscription", adminController.CancelSubscription)
	admin.Post("/courses", adminController.CreateCourse)
	admin.Delete("/courses/:id", adminController.DeleteCourse)
	admin.Post("/courses/:id/lessons", adminController.CreateLesson)
	admin.Put("/lessons/:lessonId", adminController.UpdateLesson)
	admin.Delete("/lessons/:lessonId", adminController.DeleteLesson)
	admin.Post("/notifications/broadcast", adminController.Broadcast)
}
