package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"resumeforge/internal/config"
	"resumeforge/internal/handlers"
	"resumeforge/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	pdfParser := services.NewPDFParserService()
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI. A missing key is not fatal: upload routes still
	// work, generation routes report the client as unavailable.
	if cfg.Gemini.APIKey == "" {
		log.Println("⚠️  GEMINI_API_KEY not set. Generation endpoints will return errors until it is configured.")
	}
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize Handlers
	uploadHandler := handlers.NewUploadHandler(storageService, pdfParser, cfg.Storage.MaxFileSize)
	rewriteHandler := handlers.NewRewriteHandler(storageService, pdfParser, geminiService, cfg.Gemini.Model, cfg.Storage.MaxFileSize)
	coverLetterHandler := handlers.NewCoverLetterHandler(geminiService, cfg.Gemini.Model)
	skillGapHandler := handlers.NewSkillGapHandler(geminiService, cfg.Gemini.Model)
	atsHandler := handlers.NewATSHandler(geminiService, cfg.Gemini.Model)
	chatHandler := handlers.NewChatHandler(geminiService, cfg.Gemini.Model)
	pagesHandler := handlers.NewPagesHandler()
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		AppName:      "AI Resume Toolkit API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		Views:        engine,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Pages
	app.Get("/", pagesHandler.HandleHome)
	app.Get("/ats-checker", pagesHandler.HandleATSChecker)
	app.Get("/resume-generator", pagesHandler.HandleResumeGenerator)
	app.Get("/cover-letter", pagesHandler.HandleCoverLetter)
	app.Get("/skill-gap", pagesHandler.HandleSkillGap)

	// API endpoints
	app.Post("/rewrite_resume", rewriteHandler.HandleRewriteResume)
	app.Post("/upload_resume_for_ats", uploadHandler.HandleUploadForATS)
	app.Post("/upload_resume_for_cover_letter", uploadHandler.HandleUploadForCoverLetter)
	app.Post("/upload_resume_for_skill_gap", uploadHandler.HandleUploadForSkillGap)
	app.Post("/generate_cover_letter", coverLetterHandler.HandleGenerateCoverLetter)
	app.Post("/analyze_skill_gap", skillGapHandler.HandleAnalyzeSkillGap)
	app.Post("/get_ats_score", atsHandler.HandleGetATSScore)
	app.Post("/chat", chatHandler.HandleChat)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
