package config

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// InitApp builds the HTTP engine, the websocket hub and the scheduler.
func InitApp(cfg *Config, middleware ...gin.HandlerFunc) (*gin.Engine, *melody.Melody, *cron.Cron, error) {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware...)

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization", "X-Request-ID")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))

	if err := router.SetTrustedProxies(nil); err != nil {
		return nil, nil, nil, err
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, nil, err
	}

	m := melody.New()
	c := cron.New(cron.WithLocation(loc))

	return router, m, c, nil
}
