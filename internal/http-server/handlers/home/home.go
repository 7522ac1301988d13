package home

import (
	"net/http"

	"github.com/go-chi/render"
)

const Page = "<h1>Home<h1>"

func New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.HTML(w, r, Page)
	}
}
