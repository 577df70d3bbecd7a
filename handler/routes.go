package handler

import (
	"github.com/labstack/echo/v4"
)

// Register mounts every route on e.
func (h *Handler) Register(e *echo.Echo) {
	// Frontend
	e.GET("/", h.GetPosts)
	e.GET("/group/:slug/", h.GetGroupPosts)
	e.GET("/groups/", h.GetGroups)
	e.GET("/profile/:username/", h.GetProfile)
	e.GET("/posts/:id/", h.GetByID)
	e.GET("/create/", h.GetNewPostForm)
	e.GET("/posts/:id/edit/", h.GetEditPostForm)
	e.GET("/auth/signup/", h.GetNewUserForm)
	e.GET("/auth/login/", h.GetLoginForm)

	// Backend
	e.POST("/create/", h.NewPost)
	e.POST("/posts/:id/edit/", h.EditPost)
	e.POST("/auth/signup/", h.NewUser)
	e.POST("/auth/login/", h.Login)
	e.GET("/auth/logout/", h.Logout)

	admin := e.Group("/admin", h.requireAdmin)
	admin.GET("/groups/", h.GetGroupAdmin)
	admin.POST("/groups/", h.NewGroup)
	admin.POST("/groups/:slug/delete", h.DeleteGroup)
}
