// Package session drives the interactive text protocol: role selection, the
// customer shopping loop and the manager menu. It turns lines read from the
// user into calls on the catalog, carts and orders and prints the results.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/fairyhunter13/catalog-cart-simulator/internal/cart"
	"github.com/fairyhunter13/catalog-cart-simulator/internal/model"
	"github.com/fairyhunter13/catalog-cart-simulator/internal/obs"
	"github.com/fairyhunter13/catalog-cart-simulator/internal/store"
)

// errInputClosed ends the session when the input runs out.
var errInputClosed = errors.New("input closed")

// Role is the user role picked at startup.
type Role int

const (
	Customer Role = 1
	Manager  Role = 2
)

// Session is one interactive run against a catalog.
type Session struct {
	cat        *store.Catalog
	basic      *cart.Cart
	electronic *cart.Cart

	in     *bufio.Scanner
	out    io.Writer
	places int
}

// Option customises a Session.
type Option func(*Session)

// WithPricePlaces fixes the decimals printed for prices; negative prints the
// shortest form.
func WithPricePlaces(n int) Option {
	return func(s *Session) { s.places = n }
}

// New creates a session reading answers from in and writing to out.
func New(cat *store.Catalog, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		cat:        cat,
		basic:      cart.New(model.Basic),
		electronic: cart.New(model.Electronic),
		in:         bufio.NewScanner(in),
		out:        out,
		places:     -1,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Cart returns the session's cart for variant v.
func (s *Session) Cart(v model.Variant) *cart.Cart {
	if v == model.Electronic {
		return s.electronic
	}
	return s.basic
}

// Run plays one session to completion. Invalid top-level choices and the end
// of input finish the session normally; only I/O failures are returned.
func (s *Session) Run(ctx context.Context) error {
	err := s.run(ctx)
	if errors.Is(err, errInputClosed) {
		obs.Logger.Debug("session_input_closed")
		return nil
	}
	return err
}

func (s *Session) run(ctx context.Context) error {
	s.printf("Choose your role:\n1. Customer\n2. Manager\nChoose: ")
	choice, err := s.readChoice()
	if err != nil {
		return err
	}
	s.printf("=================\n")

	switch Role(choice) {
	case Customer:
		obs.Logger.Debug("session_role", zap.String("role", "customer"))
		return s.customer(ctx)
	case Manager:
		obs.Logger.Debug("session_role", zap.String("role", "manager"))
		return s.manager()
	default:
		s.invalid()
		return nil
	}
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *Session) println(line string) {
	_, _ = io.WriteString(s.out, line+"\n")
}

func (s *Session) invalid() {
	s.println("Invalid")
}

// readLine returns the next input line with surrounding space removed.
func (s *Session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", errors.Wrap(err, "read input")
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(s.in.Text()), nil
}
