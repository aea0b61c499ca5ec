package main

import (
	"context"
	"net/http"

	_ "access-compass-api/docs"
	"access-compass-api/internal/config"
	"access-compass-api/internal/handler"
	"access-compass-api/internal/repository"
	"access-compass-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Access Compass API
// @version 1.0
// @description Location accessibility directory: places tagged with
// @description accessibility features and categories, classified into levels.
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	if config.GinMode != "" {
		gin.SetMode(config.GinMode)
	}

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)
	if err := repo.InitSchema(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("cannot initialize schema")
	}

	locationService := service.NewLocationService(repo)
	featureService := service.NewFeatureService(repo)
	categoryService := service.NewCategoryService(repo)
	levelService := service.NewLevelService(repo)
	feedbackService := service.NewFeedbackService(repo)

	locationHandler := handler.NewLocationHandler(locationService)
	featureHandler := handler.NewFeatureHandler(featureService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	levelHandler := handler.NewLevelHandler(levelService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)

	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger(log.Logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/locations", locationHandler.List)
	r.POST("/locations", locationHandler.Create)
	r.GET("/locations/:id", locationHandler.Get)
	r.PUT("/locations/:id", locationHandler.Update)
	r.PATCH("/locations/:id", locationHandler.Update)
	r.DELETE("/locations/:id", locationHandler.Delete)
	r.POST("/locations/:id/add_feature", locationHandler.AddFeature)
	r.POST("/locations/:id/remove_feature", locationHandler.RemoveFeature)
	r.GET("/locations/:id/reviews", feedbackHandler.ListReviews)
	r.POST("/locations/:id/reviews", feedbackHandler.CreateReview)
	r.GET("/locations/:id/propositions", feedbackHandler.ListPropositions)
	r.POST("/locations/:id/propositions", feedbackHandler.CreateProposition)

	r.GET("/features", featureHandler.List)
	r.POST("/features", featureHandler.Create)
	r.GET("/features/:id", featureHandler.Get)
	r.PUT("/features/:id", featureHandler.Update)
	r.DELETE("/features/:id", featureHandler.Delete)

	r.GET("/categories", categoryHandler.List)
	r.POST("/categories", categoryHandler.Create)
	r.GET("/categories/:id", categoryHandler.Get)
	r.PUT("/categories/:id", categoryHandler.Update)
	r.DELETE("/categories/:id", categoryHandler.Delete)

	r.GET("/accessibility_levels", levelHandler.List)
	r.GET("/accessibility_levels/:id", levelHandler.Get)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// The browser frontend is served from another origin.
	corsWrapper := cors.New(cors.Options{
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	log.Info().Str("address", config.ServerAddress).Msg("starting server")
	if err := http.ListenAndServe(config.ServerAddress, corsWrapper.Handler(r)); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
