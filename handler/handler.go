package handler

import (
	"yatube/config"
	"yatube/posts"
	"yatube/store"
)

type Handler struct {
	Posts  *posts.Service
	Store  *store.Store
	Config config.Config
}
