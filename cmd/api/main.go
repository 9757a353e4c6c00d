package main

import (
	appcontext "github.com/SeakMengs/CardProof/internal/app_context"
	"github.com/SeakMengs/CardProof/internal/config"
	"github.com/SeakMengs/CardProof/internal/controller"
	"github.com/SeakMengs/CardProof/internal/env"
	"github.com/SeakMengs/CardProof/internal/icc"
	"github.com/SeakMengs/CardProof/internal/middleware"
	ratelimiter "github.com/SeakMengs/CardProof/internal/rate_limiter"
	"github.com/SeakMengs/CardProof/internal/renderer"
	"github.com/SeakMengs/CardProof/internal/route"
	"github.com/SeakMengs/CardProof/internal/util"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	logger.Debugf("Configuration: %+v \n", cfg)

	iccStore, err := icc.NewStore(cfg.ICC.ProfileDir, logger)
	if err != nil {
		logger.Panic(err)
	}

	docRaptor := renderer.NewDocRaptor(cfg.DocRaptor, logger)
	if cfg.DocRaptor.API_KEY == "" {
		logger.Warn("No DocRaptor API key configured, requests must supply api_key")
	}

	// Custom validation
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("strNotEmpty", util.StrNotEmpty); err != nil {
			return
		}
	}

	rateLimiter := ratelimiter.NewRateLimiter(cfg.RateLimiter, logger)
	app := appcontext.Application{
		Config:   &cfg,
		Logger:   logger,
		Renderer: docRaptor,
		ICC:      iccStore,
	}

	_middleware := middleware.NewMiddleware(&app, rateLimiter)

	if cfg.ENV == "production" {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.MaxMultipartMemory = cfg.Upload.MaxUploadSizeMB << 20

	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept"}
	r.Use(cors.New(corsConfig))
	r.Use(_middleware.RateLimiterMiddleware)

	_controller := controller.NewController(&app)

	r.GET("/", _controller.Index.Index)

	rApi := r.Group("/api")

	route.V1_Cards(rApi, _controller.Card)
	route.V1_ICCProfiles(rApi, _controller.ICC)

	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panicf("Error running server: %v \n", err)
	}
}
