package httpserver

import (
	"realtime-client/internal/middleware"
)

const Api = "/api/v1"

func (srv *HTTPServer) mapHandlers(pageOrigin string) {
	mw := middleware.New(srv.logger, srv.discord)
	srv.gin.Use(mw.Recovery(), mw.Logger())
	if pageOrigin != "" {
		srv.gin.Use(mw.CORS(middleware.DefaultCORSConfig(pageOrigin)))
	}

	srv.gin.GET("/health", srv.healthCheck)

	api := srv.gin.Group(Api)
	api.GET("/page", srv.page)
	api.GET("/channels", srv.channels)
	api.POST("/projects/:id", srv.addProject)
	api.DELETE("/projects/:id", srv.removeProject)
	api.POST("/notifications/:element_id/dismiss", srv.dismiss)
}
