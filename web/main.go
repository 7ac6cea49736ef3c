package main

import (
	"context"
	"encoding/base64"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"pontualhq.com/pontual/core"
	"pontualhq.com/pontual/engine"
	"pontualhq.com/pontual/infrastructure/devops"
	"pontualhq.com/pontual/store"
	"pontualhq.com/pontual/web/handlers"
	"pontualhq.com/pontual/web/middlewares"
)

func main() {
	ctx := context.Background()

	dsn := os.Getenv("DSN")
	if dsn == "" {
		entry, err := devops.LoadDBConfig(ctx)
		if err != nil {
			log.Fatal("no DSN and no database config: ", err)
		}
		dsn = entry.DSN()
	}

	dm, err := core.New(dsn, 10)
	if err != nil {
		log.Fatal(err)
	}
	defer dm.Close()

	db, err := dm.GetDB(ctx)
	if err != nil {
		log.Fatal(err)
	}

	st := store.New(db)
	rec := engine.NewRecomputer(st, st, st, st)

	base64Secret := os.Getenv("PONTUAL_SIGNING_SECRET")
	jwtSecret, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		log.Fatal("Failed to decode JWT secret:", err)
	}

	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	protected := r.Group("/api/v1.0")
	protected.Use(middlewares.Authentication(jwtSecret))
	{
		handlers.Register(protected, st, rec)
	}

	r.Run("0.0.0.0:8090")
}
