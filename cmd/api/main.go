package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-torteria-api/internal/handler"
	"go-torteria-api/internal/middleware"
	"go-torteria-api/internal/model"
	"go-torteria-api/internal/repository"
	"go-torteria-api/internal/service"
	"go-torteria-api/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	// Auto migrate (use a dedicated migration tool for bigger deployments)
	db.AutoMigrate(&model.Ingredient{}, &model.Product{}, &model.ComboItem{}, &model.User{})

	// 3. Seed default admin and the menu catalog
	seedAdminAndCatalog(db)

	// 4. Dependency Injection (Wiring Layers)
	ingredientRepo := repository.NewIngredientRepo(db)
	productRepo := repository.NewProductRepo(db)
	userRepo := repository.NewUserRepo(db)

	invService := service.NewInventoryService(ingredientRepo)
	catalogService := service.NewCatalogService(productRepo)
	availService := service.NewAvailabilityService(ingredientRepo)
	authService := service.NewAuthService(userRepo)

	invHandler := handler.NewInventoryHandler(invService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	availHandler := handler.NewAvailabilityHandler(availService, catalogService)
	authHandler := handler.NewAuthHandler(authService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Torteria Storefront API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	// Auth Routes (No authentication required)
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/validate-token", authHandler.ValidateToken)

	// Storefront catalog (customers browse unauthenticated)
	api.Get("/products", catalogHandler.GetProducts)
	api.Get("/products/:slug", catalogHandler.GetProduct)
	api.Get("/combos", catalogHandler.GetCombos)

	// Availability resolution (advisory verdicts for the catalog view)
	api.Get("/availability", availHandler.ResolveMany)
	api.Get("/availability/:itemId", availHandler.ResolveOne)
	api.Get("/combos/:slug/availability", availHandler.ResolveCombo)

	// ============ PROTECTED ROUTES ============
	// Admin panel routes require authentication
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Ingredient inventory management
	protected.Get("/ingredients", invHandler.GetIngredients)
	protected.Get("/ingredients/low-stock", invHandler.GetLowStockIngredients)
	protected.Get("/ingredients/search", invHandler.SearchIngredients)
	protected.Post("/ingredients", invHandler.CreateIngredient)
	protected.Put("/ingredients/:id", invHandler.UpdateIngredient)
	protected.Put("/ingredients/:id/stock", invHandler.SetStock)
	protected.Delete("/ingredients/:id", invHandler.DeleteIngredient)

	// Catalog management
	protected.Post("/products", catalogHandler.CreateProduct)
	protected.Put("/products/:id", catalogHandler.UpdateProduct)
	protected.Put("/products/:id/availability", catalogHandler.ToggleAvailability)
	protected.Delete("/products/:id", catalogHandler.DeleteProduct)

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdminAndCatalog creates the default admin user and the menu catalog on
// first boot. Ingredients are deliberately not seeded: until the admin
// registers stock the resolver operates in fail-open mode.
func seedAdminAndCatalog(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)
	productRepo := repository.NewProductRepo(db)

	// 1. Default admin user
	if _, err := userRepo.FindByEmail("admin@example.com"); err != nil {
		admin := &model.User{
			Email:    "admin@example.com",
			FullName: "Administrador",
			IsActive: true,
		}
		admin.CreatedBy = "system"
		admin.UpdatedBy = "system"

		if err := admin.SetPassword("admin123"); err != nil {
			log.Printf("Warning: Failed to hash admin password: %v", err)
			return
		}

		if err := userRepo.Create(admin); err != nil {
			log.Printf("Warning: Failed to create admin user: %v", err)
		} else {
			log.Println("✅ Admin user created: admin@example.com / admin123")
		}
	}

	// 2. Menu products
	for _, p := range defaultProducts() {
		if existing, err := productRepo.FindBySlug(p.Slug); err == nil && existing != nil {
			continue
		}
		p.CreatedBy = "system"
		p.UpdatedBy = "system"
		if err := productRepo.Create(&p); err != nil {
			log.Printf("Warning: Failed to seed product %s: %v", p.Slug, err)
		}
	}
	log.Println("✅ Catalog seeded")
}

func defaultProducts() []model.Product {
	return []model.Product{
		// Tortas
		{Slug: "torta-1", Name: "Torta de Carne Ahumada", Description: "Deliciosa torta con carne ahumada, aguacate, jitomate y cebolla", BasePrice: 85, Category: model.CategoryTorta, IsAvailable: true},
		{Slug: "torta-2", Name: "Torta Chichimeca", Description: "Torta tradicional con carne de res, nopales y salsa verde", BasePrice: 75, Category: model.CategoryTorta, IsAvailable: true},
		{Slug: "torta-3", Name: "Torta de Chistorra", Description: "Sabrosa torta con chorizo español, pimientos y cebolla", BasePrice: 70, Category: model.CategoryTorta, IsAvailable: true},
		{Slug: "torta-4", Name: "Torta de Jamón", Description: "Clásica torta de jamón con queso, jitomate y mayonesa", BasePrice: 65, Category: model.CategoryTorta, IsAvailable: true},

		// Aguas frescas
		{Slug: "agua-1", Name: "Agua de Horchata", Description: "Refrescante agua de horchata con canela", BasePrice: 25, Category: model.CategoryAgua, IsAvailable: true},
		{Slug: "agua-2", Name: "Agua de Jamaica", Description: "Agua natural de jamaica sin azúcar", BasePrice: 20, Category: model.CategoryAgua, IsAvailable: true},
		{Slug: "agua-3", Name: "Agua de Tamarindo", Description: "Dulce agua de tamarindo con chile piquín", BasePrice: 22, Category: model.CategoryAgua, IsAvailable: true},

		// Papas
		{Slug: "papas-1", Name: "Papas Fritas Naturales", Description: "Papas fritas crujientes con sal de mar", BasePrice: 35, Category: model.CategoryPapas, IsAvailable: true},
		{Slug: "papas-2", Name: "Papas Gajo", Description: "Papas en gajos con especias y hierbas", BasePrice: 40, Category: model.CategoryPapas, IsAvailable: true},

		// Combos
		{Slug: "combo-1", Name: "Combo de Amigas", Description: "¡Perfecto para compartir con tus mejores amigas!", BasePrice: 150, Category: model.CategoryCombo, IsAvailable: true, ComboItems: []model.ComboItem{
			{ProductSlug: "torta-4", Quantity: 2, Position: 0},
			{ProductSlug: "papas-1", Quantity: 1, Position: 1},
			{ProductSlug: "agua-1", Quantity: 2, Position: 2},
		}},
		{Slug: "combo-2", Name: "Combo Estudiante", Description: "El básico que nunca falla para el presupuesto universitario", BasePrice: 80, Category: model.CategoryCombo, IsAvailable: true, ComboItems: []model.ComboItem{
			// "A elegir" on the menu; seeded with the default picks
			{ProductSlug: "torta-4", Quantity: 1, Position: 0},
			{ProductSlug: "agua-1", Quantity: 1, Position: 1},
		}},
		{Slug: "combo-3", Name: "Combo Entre Clases", Description: "Rápido y barato para no llegar tarde a la siguiente materia", BasePrice: 65, Category: model.CategoryCombo, IsAvailable: true, ComboItems: []model.ComboItem{
			{ProductSlug: "torta-4", Quantity: 1, Position: 0},
			{ProductSlug: "agua-2", Quantity: 1, Position: 1},
		}},
		{Slug: "combo-4", Name: "Combo Nocturno", Description: "Para esas noches de estudio intenso y hambre extrema", BasePrice: 110, Category: model.CategoryCombo, IsAvailable: true, ComboItems: []model.ComboItem{
			{ProductSlug: "torta-2", Quantity: 1, Position: 0},
			{ProductSlug: "papas-2", Quantity: 1, Position: 1},
			{ProductSlug: "agua-3", Quantity: 1, Position: 2},
		}},
	}
}
