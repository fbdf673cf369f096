// Package api exposes the router as a single serverless handler.
package api

import (
	"net/http"
	"sync"

	"local-market/models"
	"local-market/routes"

	"github.com/gin-gonic/gin"
)

var (
	initOnce sync.Once
	router   *gin.Engine
)

func setup() {
	gin.SetMode(gin.ReleaseMode)
	models.InitDB()
	models.InitRedis()

	router = gin.New()
	router.Use(gin.Recovery())
	routes.SetupRoutes(router)
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initOnce.Do(setup)
	router.ServeHTTP(w, r)
}
