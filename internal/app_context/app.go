package appcontext

import (
	"github.com/SeakMengs/CardProof/internal/config"
	"github.com/SeakMengs/CardProof/internal/icc"
	"github.com/SeakMengs/CardProof/internal/renderer"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Renderer submits generated markup to the external PDF rendering service.
	Renderer renderer.Client

	// ICC provides access to the stored ICC color profiles.
	ICC *icc.Store
}
