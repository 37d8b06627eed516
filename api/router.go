// Package api provides the REST API for the protein tracker
//
// @title Protein Tracker API
// @version 1.0
// @description Daily protein intake tracking API
// @host localhost:8000
// @BasePath /
// @schemes http
package api

import (
	"errors"
	"io"
	"net/http"
	"os"

	"proteintrack/backend/data"
	"proteintrack/backend/messaging"
	"proteintrack/backend/service"
	"proteintrack/backend/settings"
	"proteintrack/backend/types"

	"proteintrack/backend/api/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type (
	Router struct {
		engine         *gin.Engine
		trackerService *service.TrackerService
	}
)

func NewRouter(store data.Store, cfg settings.Config) *Router {
	return &Router{
		engine:         gin.Default(),
		trackerService: service.NewTrackerService(store, cfg),
	}
}

// Engine exposes the underlying gin engine, used by the tests to serve
// requests without binding a port.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) SetupAndRunApiServer(port string) {
	r.Setup(port)

	println("Running API server on port " + port)
	r.engine.Run(":" + port)
}

// Setup registers middleware and routes without starting the listener.
func (r *Router) Setup(port string) {
	if envHost := os.Getenv("HOST_URL"); envHost != "" {
		docs.SwaggerInfo.Host = envHost
	} else {
		docs.SwaggerInfo.Host = "localhost:" + port
	}

	// All origins, methods and headers are allowed on purpose; the API
	// has no auth surface to protect.
	config := cors.DefaultConfig()
	config.AllowOriginFunc = func(origin string) bool { return true }
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"*"}
	config.AllowCredentials = true
	r.engine.Use(cors.New(config))

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/", r.getRoot)
	r.engine.GET("/test", r.testDatabase)

	api := r.engine.Group("/api")
	{
		api.POST("/items", r.createItem)
		api.GET("/items", r.getAllItems)
		api.POST("/consumptions", r.createConsumption)
		api.GET("/consumptions", r.getConsumptionsByDate)
		api.GET("/sse", setupSSE)
	}
}

// @Summary API liveness message
// @Description Report that the API is running
// @Tags status
// @Produce json
// @Success 200 {object} gin.H
// @Router / [get]
func (r *Router) getRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Protein Tracker API is running"})
}

// @Summary Storage diagnostic
// @Description Describe storage connectivity and configuration status
// @Tags status
// @Produce json
// @Success 200 {object} types.DatabaseStatus
// @Router /test [get]
func (r *Router) testDatabase(c *gin.Context) {
	c.JSON(http.StatusOK, r.trackerService.DatabaseStatus(c.Request.Context()))
}

// @Summary Create a food item
// @Description Create a new food item. The name must be unique.
// @Tags items
// @Accept json
// @Produce json
// @Param item body types.ItemRequest true "Item to create"
// @Success 200 {object} types.Item
// @Failure 400 {object} gin.H
// @Failure 500 {object} gin.H
// @Router /api/items [post]
func (r *Router) createItem(c *gin.Context) {
	var request types.ItemRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	item, err := r.trackerService.CreateItem(c.Request.Context(), request)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.Is(err, service.ErrItemExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

// @Summary Get all food items
// @Description Get a list of all food items in insertion order
// @Tags items
// @Produce json
// @Success 200 {array} types.Item
// @Failure 500 {object} gin.H
// @Router /api/items [get]
func (r *Router) getAllItems(c *gin.Context) {
	items, err := r.trackerService.GetAllItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve items"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// @Summary Log a consumption
// @Description Record a quantity of an item consumed on a date. Item fields and the protein total are snapshotted into the stored entry.
// @Tags consumptions
// @Accept json
// @Produce json
// @Param consumption body types.ConsumptionRequest true "Consumption to log"
// @Success 200 {object} types.ConsumptionEntry
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Failure 500 {object} gin.H
// @Router /api/consumptions [post]
func (r *Router) createConsumption(c *gin.Context) {
	var request types.ConsumptionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	entry, err := r.trackerService.LogConsumption(c.Request.Context(), request)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.Is(err, data.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		case errors.Is(err, data.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log consumption"})
		}
		return
	}

	c.JSON(http.StatusOK, entry)
}

// @Summary Get consumptions by date
// @Description Get all consumption entries for a date plus the daily protein total
// @Tags consumptions
// @Produce json
// @Param date query string true "Date in YYYY-MM-DD format"
// @Success 200 {object} types.DailyConsumptionResponse
// @Failure 400 {object} gin.H
// @Failure 500 {object} gin.H
// @Router /api/consumptions [get]
func (r *Router) getConsumptionsByDate(c *gin.Context) {
	date := c.Query("date")

	day, err := r.trackerService.GetConsumptionsByDate(c.Request.Context(), date)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve consumptions"})
		}
		return
	}

	c.JSON(http.StatusOK, day)
}

// @Summary Subscribe to change notifications
// @Description Server-sent events stream announcing item and consumption writes
// @Tags status
// @Produce text/event-stream
// @Success 200
// @Router /api/sse [get]
func setupSSE(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	clientChan := make(chan string, 10)
	messaging.AddSSEClient(clientChan)

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-clientChan:
			if !ok {
				return false
			}
			c.SSEvent("message", msg)
			return true
		case <-c.Request.Context().Done():
			messaging.RemoveSSEClient(clientChan)
			return false
		}
	})
}
