package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/markboenigk/regintel/regintel/controllers"
)

func AuthRoutes(ctrl *controllers.AuthController) chi.Router {
	r := chi.NewRouter()

	r.Get("/me", handleJSON(func(r *http.Request) (any, int, error) {
		return ctrl.Me(), http.StatusOK, nil
	}))

	r.Get("/login", handleJSON(func(r *http.Request) (any, int, error) {
		return ctrl.Login(), http.StatusOK, nil
	}))

	return r
}
