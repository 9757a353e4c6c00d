package controller

import (
	appcontext "github.com/SeakMengs/CardProof/internal/app_context"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index *IndexController
	Card  *CardController
	ICC   *ICCController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	return &Controller{
		Index: &IndexController{baseController: bc},
		Card:  &CardController{baseController: bc},
		ICC:   &ICCController{baseController: bc},
	}
}
