package catalog

import (
	"github.com/pythonccino/goccino/internal/catalog/inbound"
	"github.com/pythonccino/goccino/internal/catalog/outbound/file"
	"github.com/pythonccino/goccino/internal/catalog/usecase"
	"github.com/pythonccino/goccino/internal/pkg/config"
	"github.com/pythonccino/goccino/internal/pkg/instrument"
	"github.com/pythonccino/goccino/internal/pkg/router"
	"github.com/pythonccino/goccino/internal/pkg/validator"
)

type Dependency struct {
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	store := file.NewStore(
		dep.Config.GetString("data.food_menu"),
		dep.Config.GetString("data.book_menu"),
		dep.Instrument,
	)

	uc := usecase.New(usecase.Dependency{
		RepoFile:   store,
		Validator:  dep.Validator,
		Config:     dep.Config,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
