package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	StartDraft(c *ginext.Context)
	GetDraft(c *ginext.Context)
	UpdateDraft(c *ginext.Context)
	AdvanceDraft(c *ginext.Context)
	RetreatDraft(c *ginext.Context)
	QuoteDraft(c *ginext.Context)
	CancelDraft(c *ginext.Context)
	CommitBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	GetCurrentBooking(c *ginext.Context)
	RetrySync(c *ginext.Context)
	ResumeSync(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Wizard drafts
		api.POST("/drafts", h.StartDraft)
		api.GET("/drafts/:event_id", h.GetDraft)
		api.PUT("/drafts/:event_id", h.UpdateDraft)
		api.POST("/drafts/:event_id/advance", h.AdvanceDraft)
		api.POST("/drafts/:event_id/retreat", h.RetreatDraft)
		api.GET("/drafts/:event_id/quote", h.QuoteDraft)
		api.DELETE("/drafts/:event_id", h.CancelDraft)
		api.POST("/drafts/:event_id/commit", h.CommitBooking)

		// Committed bookings
		api.GET("/bookings/current", h.GetCurrentBooking)
		api.GET("/bookings/:reference", h.GetBooking)
		api.POST("/bookings/:reference/sync", h.RetrySync)
		api.POST("/bookings/sync/resume", h.ResumeSync)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
