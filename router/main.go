package router

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/globaledge/consult-api/config"
	"github.com/globaledge/consult-api/database"
	auth_handlers "github.com/globaledge/consult-api/handlers/auth"
	blog_handlers "github.com/globaledge/consult-api/handlers/blog"
	category_handlers "github.com/globaledge/consult-api/handlers/category"
	college_handlers "github.com/globaledge/consult-api/handlers/college"
	country_handlers "github.com/globaledge/consult-api/handlers/country"
	enquiry_handlers "github.com/globaledge/consult-api/handlers/enquiry"
	exam_handlers "github.com/globaledge/consult-api/handlers/exam"
	"github.com/globaledge/consult-api/utils/auth"
	"github.com/globaledge/consult-api/utils/cache"
	"github.com/globaledge/consult-api/utils/middleware"
	"github.com/globaledge/consult-api/utils/response"
)

func SetupRoutes(app *fiber.App, store database.Storage, redisCache *cache.RedisCache) {
	getEnv, err := config.Get()
	if err != nil {
		log.Fatal("Failed to load configuration")
	}
	if getEnv.JWT_SECRET == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := getEnv.JWT_ISSUER
	if jwtIssuer == "" {
		jwtIssuer = "consult-api"
	}

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret: getEnv.JWT_SECRET,
		Expiry: 24 * time.Hour,
		Issuer: jwtIssuer,
	})

	// Get DB instance (type assert from interface)
	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	authHandler := auth_handlers.NewAuthHandler(db, jwtManager)
	collegeHandler := college_handlers.NewCollegeHandler(db, redisCache)
	examHandler := exam_handlers.NewExamHandler(db, redisCache)
	categoryHandler := category_handlers.NewCategoryHandler(db, redisCache)
	countryHandler := country_handlers.NewCountryHandler(db, redisCache)
	blogHandler := blog_handlers.NewBlogHandler(db, redisCache)
	enquiryHandler := enquiry_handlers.NewEnquiryHandler(db)

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := store.HealthCheck(); err != nil {
			return response.Error(c, fiber.StatusServiceUnavailable, "Database unavailable")
		}
		return response.SuccessWithMessage(c, "OK", nil)
	})

	app.Get("/metrics", middleware.MetricsHandler())

	api := app.Group("/api")

	// Site identity consumed by the public pages
	api.Get("/site", func(c *fiber.Ctx) error {
		return response.Success(c, config.Site())
	})

	// Auth
	api.Post("/auth/login", authHandler.Login)

	// Public read routes
	api.Get("/colleges", collegeHandler.ListColleges)
	api.Get("/colleges/:slug", collegeHandler.GetCollege)
	api.Get("/colleges/:slug/related", collegeHandler.GetRelatedColleges)

	api.Get("/exams", examHandler.ListExams)
	api.Get("/exams/:slug", examHandler.GetExam)

	api.Get("/categories", categoryHandler.ListCategories)
	api.Get("/categories/:slug", categoryHandler.GetCategory)

	api.Get("/countries", countryHandler.ListCountries)
	api.Get("/countries/:slug", countryHandler.GetCountry)

	api.Get("/blogs", blogHandler.ListBlogs)
	api.Get("/blogs/:slug", blogHandler.GetBlog)

	// Public enquiry intake
	api.Post("/enquiries", enquiryHandler.CreateEnquiry)

	// Admin console routes
	admin := api.Group("/admin", middleware.RequireAdmin(jwtManager))

	admin.Post("/colleges", collegeHandler.CreateCollege)
	admin.Put("/colleges/:id", collegeHandler.UpdateCollege)
	admin.Delete("/colleges/:id", collegeHandler.DeleteCollege)

	admin.Post("/exams", examHandler.CreateExam)
	admin.Put("/exams/:id", examHandler.UpdateExam)
	admin.Delete("/exams/:id", examHandler.DeleteExam)

	admin.Post("/categories", categoryHandler.CreateCategory)
	admin.Put("/categories/:id", categoryHandler.UpdateCategory)
	admin.Delete("/categories/:id", categoryHandler.DeleteCategory)

	admin.Post("/countries", countryHandler.CreateCountry)
	admin.Put("/countries/:id", countryHandler.UpdateCountry)
	admin.Delete("/countries/:id", countryHandler.DeleteCountry)

	admin.Post("/blogs", blogHandler.CreateBlog)
	admin.Put("/blogs/:id", blogHandler.UpdateBlog)
	admin.Delete("/blogs/:id", blogHandler.DeleteBlog)

	// Enquiries are created by the public form only; admins triage
	admin.Get("/enquiries", enquiryHandler.ListEnquiries)
	admin.Get("/enquiries/:id", enquiryHandler.GetEnquiry)
	admin.Put("/enquiries/:id", enquiryHandler.UpdateEnquiry)
	admin.Delete("/enquiries/:id", enquiryHandler.DeleteEnquiry)
}
