//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"bguard/internal"
	"bguard/internal/controllers"
	"bguard/internal/providers"
	"bguard/internal/services"
	"bguard/internal/store"
	"bguard/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,
		providers.NewNotifierProvider,

		store.NewZstdCompressor,
		store.NewFileStore,
		ProvideStoreStats,

		services.NewFingerprintService,
		services.NewLossDetector,
		services.NewReminderService,
		services.NewGuardService,

		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
