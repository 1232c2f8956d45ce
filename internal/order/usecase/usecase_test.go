package usecase_test

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pythonccino/goccino/internal/order/entity"
	"github.com/pythonccino/goccino/internal/order/outbound/file"
	"github.com/pythonccino/goccino/internal/order/usecase"
	"github.com/pythonccino/goccino/internal/pkg/clock"
	"github.com/pythonccino/goccino/internal/pkg/config"
	"github.com/pythonccino/goccino/internal/pkg/goroutine"
	"github.com/pythonccino/goccino/internal/pkg/instrument"
	"github.com/pythonccino/goccino/internal/pkg/jsonfile"
	"github.com/pythonccino/goccino/internal/pkg/mail"
	"github.com/pythonccino/goccino/internal/pkg/uid"
	"github.com/pythonccino/goccino/internal/pkg/validator"
)

type fakeMail struct {
	mu   sync.Mutex
	sent []mail.Message
}

func (f *fakeMail) Close() error { return nil }

func (f *fakeMail) Send(_ context.Context, msg mail.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeMail) messages() []mail.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]mail.Message(nil), f.sent...)
}

type fixture struct {
	uc        *usecase.Usecase
	paths     file.Paths
	mail      *fakeMail
	goroutine *goroutine.Manager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dir := t.TempDir()
	paths := file.Paths{
		FoodMenu:   filepath.Join(dir, "food_menu.json"),
		BookMenu:   filepath.Join(dir, "book_menu.json"),
		FoodOrders: filepath.Join(dir, "orders_food.json"),
		BookOrders: filepath.Join(dir, "orders_book.json"),
	}

	menu := []entity.MenuFood{
		{Name: "Cappuccino", Description: "Espresso with steamed milk", Price: 3.20},
		{Name: "Croissant", Description: "Butter croissant", Price: 2.10},
	}
	if err := jsonfile.Write(paths.FoodMenu, menu); err != nil {
		t.Fatalf("seed menu failed: %v", err)
	}
	shelf := []entity.MenuBook{
		{Title: "The Pragmatic Programmer", YearPublished: 1999, Price: 28.00},
	}
	if err := jsonfile.Write(paths.BookMenu, shelf); err != nil {
		t.Fatalf("seed shelf failed: %v", err)
	}

	cfg, err := config.NewViperFromBytes("yaml", []byte("app:\n  name: goccino\n"))
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("validator failed: %v", err)
	}

	snowflake, err := uid.NewSnowflake(1)
	if err != nil {
		t.Fatalf("snowflake failed: %v", err)
	}

	fm := &fakeMail{}
	gm := goroutine.NewManager(4)
	ins := instrument.NewNoop()

	uc := usecase.New(usecase.Dependency{
		RepoFile:   file.NewStore(paths, ins),
		Validator:  v10,
		Config:     cfg,
		Clock:      &clock.Fixed{At: time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)},
		UUID:       uid.NewUUID(),
		UID:        snowflake,
		Mail:       fm,
		Instrument: ins,
		Goroutine:  gm,
	})

	return &fixture{uc: uc, paths: paths, mail: fm, goroutine: gm}
}

func TestPlaceFoodOrderTotals(t *testing.T) {
	// Arrange
	fx := newFixture(t)

	// Act
	out, err := fx.uc.PlaceFoodOrder(context.Background(), usecase.PlaceFoodOrderInput{
		Name: "alice",
		Items: []usecase.OrderItemInput{
			{Item: "Cappuccino", Quantity: 2},
			{Item: "Croissant", Quantity: 1},
		},
	})

	// Assert
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if out.OrderNumber == "" {
		t.Fatalf("expected an order number")
	}
	if len(out.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(out.Lines))
	}
	if out.Lines[0].UnitPrice != 3.20 || out.Lines[0].Amount != 6.40 {
		t.Fatalf("unexpected first line: %+v", out.Lines[0])
	}
	if want := 6.40 + 2.10; out.TotalAmount != want {
		t.Fatalf("expected total %.2f, got %.2f", want, out.TotalAmount)
	}
}

func TestPlaceFoodOrderUnknownItem(t *testing.T) {
	// Arrange
	fx := newFixture(t)

	// Act: the item is not on the menu but the order is still taken.
	out, err := fx.uc.PlaceFoodOrder(context.Background(), usecase.PlaceFoodOrderInput{
		Name:  "bob",
		Items: []usecase.OrderItemInput{{Item: "Unicorn Latte", Quantity: 3}},
	})

	// Assert
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	line := out.Lines[0]
	if line.Description != "No description available" {
		t.Fatalf("expected placeholder description, got %q", line.Description)
	}
	if line.UnitPrice != 0 || line.Amount != 0 || out.TotalAmount != 0 {
		t.Fatalf("expected a zero-priced line, got %+v", line)
	}
}

func TestPlaceFoodOrderAppendsToLog(t *testing.T) {
	// Arrange
	fx := newFixture(t)
	ctx := context.Background()
	in := usecase.PlaceFoodOrderInput{
		Name:  "alice",
		Items: []usecase.OrderItemInput{{Item: "Cappuccino", Quantity: 1}},
	}

	// Act
	if _, err := fx.uc.PlaceFoodOrder(ctx, in); err != nil {
		t.Fatalf("first order failed: %v", err)
	}
	if _, err := fx.uc.PlaceFoodOrder(ctx, in); err != nil {
		t.Fatalf("second order failed: %v", err)
	}
	groups, err := fx.uc.FoodOrders(ctx)

	// Assert
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected 1 customer group, got %d", len(groups))
	}
	if len(groups[0].Orders) != 2 {
		t.Fatalf("expected 2 orders for alice, got %d", len(groups[0].Orders))
	}
	if groups[0].Orders[0].OrderNumber == groups[0].Orders[1].OrderNumber {
		t.Fatalf("expected distinct order numbers")
	}
}

func TestPlaceFoodOrderSendsConfirmation(t *testing.T) {
	// Arrange
	fx := newFixture(t)

	// Act
	out, err := fx.uc.PlaceFoodOrder(context.Background(), usecase.PlaceFoodOrderInput{
		Name:              "alice",
		Email:             "alice@example.com",
		EmailConfirmation: true,
		Items:             []usecase.OrderItemInput{{Item: "Cappuccino", Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if err := fx.goroutine.Wait(); err != nil {
		t.Fatalf("mail goroutine failed: %v", err)
	}

	// Assert
	msgs := fx.mail.messages()
	if len(msgs) != 1 {
		t.Fatalf("expected one confirmation mail, got %d", len(msgs))
	}
	msg := msgs[0]
	if msg.To[0] != "alice@example.com" {
		t.Fatalf("unexpected recipient: %v", msg.To)
	}
	if !strings.Contains(msg.Subject, out.OrderNumber) {
		t.Fatalf("expected the order number in the subject, got %q", msg.Subject)
	}
	if !strings.Contains(msg.TextBody, "£6.40") {
		t.Fatalf("expected the total in the body, got %q", msg.TextBody)
	}
}

func TestConfirmationSentAfterRequestCanceled(t *testing.T) {
	// Arrange
	fx := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())

	// Act: the request context is canceled the moment the handler returns,
	// the way net/http does. The confirmation must still go out.
	_, err := fx.uc.PlaceFoodOrder(ctx, usecase.PlaceFoodOrderInput{
		Name:              "alice",
		Email:             "alice@example.com",
		EmailConfirmation: true,
		Items:             []usecase.OrderItemInput{{Item: "Cappuccino", Quantity: 1}},
	})
	cancel()

	// Assert
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if err := fx.goroutine.Wait(); err != nil {
		t.Fatalf("mail goroutine failed: %v", err)
	}
	if got := fx.mail.messages(); len(got) != 1 {
		t.Fatalf("expected one confirmation mail, got %d", len(got))
	}
}

func TestConfirmationEscapesHTMLBody(t *testing.T) {
	// Arrange
	fx := newFixture(t)

	// Act
	_, err := fx.uc.PlaceFoodOrder(context.Background(), usecase.PlaceFoodOrderInput{
		Name:              "B<b>ob",
		Email:             "bob@example.com",
		EmailConfirmation: true,
		Items:             []usecase.OrderItemInput{{Item: "<script>latte</script>", Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if err := fx.goroutine.Wait(); err != nil {
		t.Fatalf("mail goroutine failed: %v", err)
	}

	// Assert
	msgs := fx.mail.messages()
	if len(msgs) != 1 {
		t.Fatalf("expected one mail, got %d", len(msgs))
	}
	body := msgs[0].HTMLBody
	if strings.Contains(body, "B<b>ob") || strings.Contains(body, "<script>") {
		t.Fatalf("expected customer input escaped in the html body: %q", body)
	}
	if !strings.Contains(body, "B&lt;b&gt;ob") || !strings.Contains(body, "&lt;script&gt;latte&lt;/script&gt;") {
		t.Fatalf("expected escaped customer input in the html body: %q", body)
	}
}

func TestPlaceFoodOrderNoConfirmationWithoutOptIn(t *testing.T) {
	// Arrange
	fx := newFixture(t)

	// Act: an email address alone does not opt in to confirmation mail.
	_, err := fx.uc.PlaceFoodOrder(context.Background(), usecase.PlaceFoodOrderInput{
		Name:  "alice",
		Email: "alice@example.com",
		Items: []usecase.OrderItemInput{{Item: "Cappuccino", Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if err := fx.goroutine.Wait(); err != nil {
		t.Fatalf("wait failed: %v", err)
	}

	// Assert
	if got := fx.mail.messages(); len(got) != 0 {
		t.Fatalf("expected no mail, got %d", len(got))
	}
}

func TestPlaceBookOrder(t *testing.T) {
	// Arrange
	fx := newFixture(t)

	// Act
	out, err := fx.uc.PlaceBookOrder(context.Background(), usecase.PlaceBookOrderInput{
		Name:  "carol",
		Items: []usecase.OrderItemInput{{Item: "The Pragmatic Programmer", Quantity: 1}},
	})

	// Assert
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if out.TotalAmount != 28.00 {
		t.Fatalf("expected total 28.00, got %.2f", out.TotalAmount)
	}
	groups, err := fx.uc.BookOrders(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(groups) != 1 || groups[0].Name != "carol" {
		t.Fatalf("unexpected book log: %+v", groups)
	}
}

func TestPlaceFoodOrderRejectsEmptyItems(t *testing.T) {
	// Arrange
	fx := newFixture(t)

	// Act
	_, err := fx.uc.PlaceFoodOrder(context.Background(), usecase.PlaceFoodOrderInput{
		Name:  "alice",
		Items: nil,
	})

	// Assert
	if err == nil {
		t.Fatalf("expected a validation error")
	}
}
