package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, s *Server) {
	api := r.Group("/api")
	{
		api.GET("/health", s.health)
		api.POST("/generate", s.generate)
		api.GET("/qr", s.qr)
	}
}
