package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const version = "1.0.0"

func (app *application) routes() http.Handler {
	if app.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	// simple logger middleware that uses zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "duration", time.Since(start))
	})

	r.Use(app.CORSMiddleware())
	if app.Config.Limiter.Enabled {
		r.Use(app.RateLimitMiddleware())
	}

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Interview Helper Agent API", "version": version})
	})
	r.GET("/health", app.healthCheck)

	v1 := r.Group("/api/v1")
	{
		// question routes
		v1.POST("/questions/generate", app.Handler.GenerateQuestions)
		v1.GET("/questions", app.Handler.ListQuestions)
		v1.GET("/questions/job-titles", app.Handler.ListJobTitles)
		v1.POST("/questions", app.Handler.CreateQuestion)
		v1.GET("/questions/:id", app.Handler.GetQuestion)
		v1.PATCH("/questions/:id", app.Handler.UpdateQuestion)
		v1.DELETE("/questions/:id", app.Handler.DeleteQuestion)

		// question set routes
		v1.POST("/question-sets", app.Handler.CreateQuestionSet)
		v1.GET("/question-sets", app.Handler.ListQuestionSets)
		v1.GET("/question-sets/:id", app.Handler.GetQuestionSet)
		v1.DELETE("/question-sets/:id", app.Handler.DeleteQuestionSet)

		// rating and stats routes
		v1.POST("/ratings", app.Handler.RateQuestion)
		v1.GET("/stats", app.Handler.GetStats)
	}

	return r
}

func (app *application) healthCheck(c *gin.Context) {
	var one int
	if err := app.DB.QueryRow(c.Request.Context(), "SELECT 1").Scan(&one); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "unhealthy", "database": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": "connected"})
}
