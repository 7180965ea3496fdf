package internal

import (
	"net/http"

	"bguard/internal/controllers"
	"bguard/internal/providers"
	"bguard/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/check", http.HandlerFunc(apiController.Check))
	routers.Get("/state", http.HandlerFunc(apiController.GetState))
	routers.Get("/fingerprint", http.HandlerFunc(apiController.GetFingerprint))
	routers.Post("/fingerprint/save", http.HandlerFunc(apiController.SaveFingerprint))
	routers.Post("/loss/start-fresh", http.HandlerFunc(apiController.StartFresh))
	routers.Post("/loss/restore", http.HandlerFunc(apiController.RestoreBackup))
	routers.Post("/reminder/dismiss", http.HandlerFunc(apiController.DismissReminder))
	routers.Post("/reminder/backup", http.HandlerFunc(apiController.BackupNow))
	routers.Get("/store", http.HandlerFunc(apiController.GetStoreKey))
	routers.Put("/store/set", http.HandlerFunc(apiController.PutStoreKey))
	routers.Post("/store/delete", http.HandlerFunc(apiController.DeleteStoreKey))
	return routers
}
