package routes

import (
	"github.com/MohammadaminAlbooyeh/diet-diary/controllers"
	"github.com/MohammadaminAlbooyeh/diet-diary/metrics"
	"github.com/MohammadaminAlbooyeh/diet-diary/middlewares"
	"github.com/MohammadaminAlbooyeh/diet-diary/services"

	"github.com/gin-gonic/gin"
)

type Deps struct {
	Entries *services.EntryService
	Foods   *services.FoodService
	RT      *services.RealtimeHub
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.RedirectTrailingSlash = false
	r.Use(middlewares.Recovery(), middlewares.RequestLogger(), metrics.Middleware())

	entryCtl := controllers.NewEntryController(d.Entries)
	foodCtl := controllers.NewFoodController(d.Foods)

	r.GET("/", controllers.Welcome)
	r.GET("/api/health", controllers.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	for _, p := range []string{"/food-suggestions", "/food-suggestions/"} {
		r.GET(p, foodCtl.Suggestions)
	}

	for _, p := range []string{"/entries", "/entries/"} {
		r.POST(p, entryCtl.Create)
		r.GET(p, entryCtl.List)
	}
	entries := r.Group("/entries")
	{
		entries.GET("/summary", entryCtl.Summary)
		entries.GET("/:id", entryCtl.Get)
		entries.DELETE("/:id", entryCtl.Delete)
	}

	if d.RT != nil {
		rtCtl := controllers.NewRealtimeController(d.RT)
		r.GET("/ws/entries", rtCtl.EntriesWS)
	}

	return r
}
