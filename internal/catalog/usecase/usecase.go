package usecase

import (
	"context"

	"github.com/pythonccino/goccino/internal/catalog/entity"
	"github.com/pythonccino/goccino/internal/pkg/config"
	"github.com/pythonccino/goccino/internal/pkg/instrument"
	"github.com/pythonccino/goccino/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoFile interface {
	ListFood(ctx context.Context) ([]entity.FoodItem, error)
	ListBooks(ctx context.Context) ([]entity.BookItem, error)
	UpsertFood(ctx context.Context, item entity.FoodItem) error
	UpsertBook(ctx context.Context, item entity.BookItem) error
	DeleteFood(ctx context.Context, name string) error
	DeleteBook(ctx context.Context, title string) error
}

type Usecase struct {
	repoFile  repoFile
	validator validator.Validator
	cfg       config.Config
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoFile   repoFile
	Validator  validator.Validator
	Config     config.Config
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoFile:  dep.RepoFile,
		validator: dep.Validator,
		cfg:       dep.Config,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("catalog.usecase").Start(ctx, name)
}
