package usecase

import (
	"context"
	"fmt"
	libHTML "html"
	"strings"

	"github.com/pythonccino/goccino/internal/order/entity"
	"github.com/pythonccino/goccino/internal/pkg/clock"
	"github.com/pythonccino/goccino/internal/pkg/config"
	"github.com/pythonccino/goccino/internal/pkg/goroutine"
	"github.com/pythonccino/goccino/internal/pkg/instrument"
	"github.com/pythonccino/goccino/internal/pkg/mail"
	"github.com/pythonccino/goccino/internal/pkg/uid"
	"github.com/pythonccino/goccino/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

// noDescription fills in for menu lookups that come back empty.
const noDescription = "No description available"

type repoFile interface {
	LookupFood(ctx context.Context, name string) (*entity.MenuFood, error)
	LookupBook(ctx context.Context, title string) (*entity.MenuBook, error)

	AppendFoodOrder(ctx context.Context, customer string, rec entity.OrderRecord) error
	AppendBookOrder(ctx context.Context, customer string, rec entity.OrderRecord) error

	ListFoodOrders(ctx context.Context) ([]entity.CustomerOrders, error)
	ListBookOrders(ctx context.Context) ([]entity.CustomerOrders, error)
}

type Usecase struct {
	repoFile  repoFile
	validator validator.Validator
	cfg       config.Config
	clock     clock.Clocker
	uuid      uid.StringID
	uid       uid.NumberID
	mail      mail.Mail
	ins       instrument.Instrumentation
	goroutine *goroutine.Manager
}

type Dependency struct {
	RepoFile   repoFile
	Validator  validator.Validator
	Config     config.Config
	Clock      clock.Clocker
	UUID       uid.StringID
	UID        uid.NumberID
	Mail       mail.Mail
	Instrument instrument.Instrumentation
	Goroutine  *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoFile:  dep.RepoFile,
		validator: dep.Validator,
		cfg:       dep.Config,
		clock:     dep.Clock,
		uuid:      dep.UUID,
		uid:       dep.UID,
		mail:      dep.Mail,
		ins:       dep.Instrument,
		goroutine: dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("order.usecase").Start(ctx, name)
}

// OrderItemInput is one requested line before menu resolution.
type OrderItemInput struct {
	Item     string `validate:"required"`
	Quantity int    `validate:"gt=0"`
}

// PlaceOrderOutput is what the customer gets back after placing an order.
type PlaceOrderOutput struct {
	OrderNumber string
	Lines       []entity.OrderLine
	TotalAmount float64
}

func (s *Usecase) newRecord(lines []entity.OrderLine) entity.OrderRecord {
	total := 0.0
	for _, l := range lines {
		total += l.Amount
	}

	return entity.OrderRecord{
		ID:          s.uid.Generate(),
		OrderNumber: s.uuid.Generate(),
		PlacedAt:    s.clock.Now(),
		Lines:       lines,
		TotalAmount: total,
	}
}

// sendConfirmation mails an order summary without blocking the request.
func (s *Usecase) sendConfirmation(ctx context.Context, email, customer string, rec entity.OrderRecord) {
	var text strings.Builder
	var html strings.Builder

	fmt.Fprintf(&text, "Hi %s,\n\nThank you for your order at Pythonccino.\n\nOrder %s:\n", customer, rec.OrderNumber)
	fmt.Fprintf(&html, "<p>Hi %s,</p><p>Thank you for your order at Pythonccino.</p><p>Order %s:</p><ul>",
		libHTML.EscapeString(customer), rec.OrderNumber)

	for _, l := range rec.Lines {
		fmt.Fprintf(&text, "  %d x %s - \u00a3%.2f\n", l.Quantity, l.Item, l.Amount)
		fmt.Fprintf(&html, "<li>%d x %s - \u00a3%.2f</li>", l.Quantity, libHTML.EscapeString(l.Item), l.Amount)
	}

	fmt.Fprintf(&text, "\nTotal: \u00a3%.2f\n", rec.TotalAmount)
	fmt.Fprintf(&html, "</ul><p>Total: <strong>\u00a3%.2f</strong></p>", rec.TotalAmount)

	msg := mail.Message{
		To:       []string{email},
		Subject:  "Your Pythonccino order " + rec.OrderNumber,
		TextBody: text.String(),
		HTMLBody: html.String(),
	}

	// Detached so the send is not aborted when the request context is
	// canceled after the handler returns. Correlation values carry over.
	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		return s.mail.Send(ctx, msg)
	})
}
