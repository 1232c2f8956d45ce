package order

import (
	"github.com/pythonccino/goccino/internal/order/inbound"
	"github.com/pythonccino/goccino/internal/order/outbound/file"
	"github.com/pythonccino/goccino/internal/order/usecase"
	"github.com/pythonccino/goccino/internal/pkg/clock"
	"github.com/pythonccino/goccino/internal/pkg/config"
	"github.com/pythonccino/goccino/internal/pkg/goroutine"
	"github.com/pythonccino/goccino/internal/pkg/instrument"
	"github.com/pythonccino/goccino/internal/pkg/mail"
	"github.com/pythonccino/goccino/internal/pkg/router"
	"github.com/pythonccino/goccino/internal/pkg/uid"
	"github.com/pythonccino/goccino/internal/pkg/validator"
)

type Dependency struct {
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Mail       mail.Mail                  `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	store := file.NewStore(file.Paths{
		FoodMenu:   dep.Config.GetString("data.food_menu"),
		BookMenu:   dep.Config.GetString("data.book_menu"),
		FoodOrders: dep.Config.GetString("data.orders_food"),
		BookOrders: dep.Config.GetString("data.orders_book"),
	}, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoFile:   store,
		Validator:  dep.Validator,
		Config:     dep.Config,
		Clock:      dep.Clock,
		UUID:       dep.UUID,
		UID:        dep.UID,
		Mail:       dep.Mail,
		Instrument: dep.Instrument,
		Goroutine:  dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
