// Package httpapi exposes the quiz and explanation services over HTTP.
package httpapi

import (
	"github.com/sandrikkk/quiz/internal/explain"
	"github.com/sandrikkk/quiz/internal/quiz"
)

type API struct {
	service *quiz.Service
	explain *explain.Service
}

func NewAPI(service *quiz.Service, explainService *explain.Service) *API {
	return &API{
		service: service,
		explain: explainService,
	}
}
