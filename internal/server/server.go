package server

import (
	"net/http"
	"time"

	"github.com/cloud-ru/mcp-realestate-go/internal/tools"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter создает HTTP-роутер поверх реестра инструментов
func NewRouter(registry map[string]tools.ToolHandler, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log))

	router.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/tools", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"tools": tools.Names(registry)})
	})
	router.POST("/tools/:name", callTool(registry, log))

	return router
}

func callTool(registry map[string]tools.ToolHandler, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		handler, ok := registry[name]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown tool: " + name})
			return
		}

		var params map[string]interface{}
		if err := c.ShouldBindJSON(&params); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body: " + err.Error()})
			return
		}

		result, err := handler(c.Request.Context(), params)
		if err != nil {
			log.Warn("tool call failed", zap.String("tool", name), zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"result": result})
	}
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
