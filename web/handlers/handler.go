package handlers

import (
	"github.com/gin-gonic/gin"

	"pontualhq.com/pontual/engine"
	"pontualhq.com/pontual/store"
)

type Endpoint struct {
	store *store.Store
	rec   *engine.Recomputer
}

func Register(r *gin.RouterGroup, st *store.Store, rec *engine.Recomputer) {
	ep := &Endpoint{store: st, rec: rec}

	r.POST("/balances/recompute", ep.RecomputeDay)
	r.POST("/balances/recompute-period", ep.RecomputePeriod)

	r.GET("/employees", ep.ListEmployees)
	r.GET("/employees/:id/balances", ep.ListBalances)
	r.GET("/employees/:id/balances/export", ep.ExportBalances)
	r.GET("/employees/:id/timebank", ep.GetTimeBank)
	r.GET("/employees/:id/anomalies", ep.ListAnomalies)

	r.PUT("/events/:id/annotation", ep.AnnotateEvent)
	r.POST("/events/import", ep.ImportEvents)
}
