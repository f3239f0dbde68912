package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"loanflow.backend/internal/interfaces/http/handlers"
	"loanflow.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	documentHandler     *handlers.DocumentHandler
	disbursementHandler *handlers.DisbursementHandler
	amortizationHandler *handlers.AmortizationHandler
	exportHandler       *handlers.ExportHandler
	letterHandler       *handlers.LetterHandler
	authMiddleware      gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/logout", d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
		}

		// Document routes (any authenticated user)
		documents := v1.Group("/documents")
		documents.Use(d.authMiddleware)
		{
			documents.POST("", d.documentHandler.Upload)
			documents.GET("", d.documentHandler.List)
			documents.GET("/status", d.documentHandler.Status)
			documents.POST("/submit", d.documentHandler.Submit)
			documents.GET("/submissions", d.documentHandler.Submissions)
			documents.GET("/:id/view", d.documentHandler.View)
			documents.DELETE("/:id", d.documentHandler.Delete)
		}

		// EMI calculator routes (public)
		emi := v1.Group("/emi")
		{
			emi.GET("", d.amortizationHandler.ComputeEMI)
			emi.GET("/preview", d.amortizationHandler.Preview)
			emi.GET("/schedule", d.amortizationHandler.Schedule)
		}

		// Disbursement tracker routes (back-office only)
		disbursements := v1.Group("/disbursements")
		disbursements.Use(d.authMiddleware, middleware.RequireBackOffice())
		{
			disbursements.POST("", d.disbursementHandler.CreateCase)
			disbursements.GET("", d.disbursementHandler.ListPending)
			disbursements.GET("/completed", d.disbursementHandler.ListCompleted)
			disbursements.GET("/:leadId", d.disbursementHandler.GetCase)
			disbursements.PATCH("/:leadId/flags", d.disbursementHandler.ToggleFlag)
			disbursements.PUT("/:leadId/pending-docs", d.disbursementHandler.SetPendingDocs)
			disbursements.PATCH("/:leadId/schedule", d.disbursementHandler.SetScheduleField)
			disbursements.PATCH("/:leadId/appointment-time", d.disbursementHandler.SetAppointmentTime)
			disbursements.PATCH("/:leadId/monetary", d.disbursementHandler.SetMonetaryField)
			disbursements.POST("/:leadId/finalize", d.disbursementHandler.Finalize)
		}

		// Export routes (back-office only)
		exports := v1.Group("/exports")
		exports.Use(d.authMiddleware, middleware.RequireBackOffice())
		{
			exports.GET("/emi-schedule", d.exportHandler.EMISchedule)
			exports.GET("/completed", d.exportHandler.CompletedReport)
		}

		// Sanction letter routes (back-office only)
		letterRoutes := v1.Group("/letters")
		letterRoutes.Use(d.authMiddleware, middleware.RequireBackOffice())
		{
			letterRoutes.GET("/sanction/:leadId", d.letterHandler.SanctionLetter)
		}
	}
}
