package portal

import (
	"context"
	"errors"
	"sync"

	"github.com/crm-portal/crm_portal/internal/customer"
)

// LoginState tracks the credential submission machine.
type LoginState int

const (
	LoginIdle LoginState = iota
	LoginSubmitting
	Authenticated
	LoginFailed
)

// SearchState tracks the customer lookup machine.
type SearchState int

const (
	SearchIdle SearchState = iota
	Searching
	Found
	NotFound
	SearchError
)

var (
	// ErrLoginInFlight rejects a duplicate submission while a login is
	// outstanding, the way a disabled submit button would.
	ErrLoginInFlight = errors.New("portal: login already in progress")
	// ErrNotAuthenticated rejects a lookup before login has settled.
	ErrNotAuthenticated = errors.New("portal: not authenticated")
	// ErrSuperseded marks a search resolution that arrived after a newer
	// search had already started; its outcome was discarded.
	ErrSuperseded = errors.New("portal: search superseded")
)

const genericFailureMessage = "Unable to retrieve customer information"

// Snapshot is a point-in-time copy of the controller state for rendering.
type Snapshot struct {
	Login    LoginState
	Search   SearchState
	Username string
	Customer customer.Info
	Message  string
}

// Controller is the client-side session state machine. One instance holds a
// single logical session; all transitions are serialized by its mutex while
// network calls run outside the lock.
type Controller struct {
	api   API
	store Store

	mu       sync.Mutex
	login    LoginState
	search   SearchState
	username string
	token    string
	result   customer.Info
	message  string
	seq      uint64
}

// NewController builds a controller and restores any session the store holds,
// so an authenticated session survives a process restart.
func NewController(api API, store Store) *Controller {
	c := &Controller{api: api, store: store}
	if session, ok := store.Get(); ok {
		c.login = Authenticated
		c.token = session.Token
		c.username = session.Username
	}
	return c
}

// Login submits credentials and settles to Authenticated or LoginFailed. A
// second call while one is outstanding returns ErrLoginInFlight.
func (c *Controller) Login(ctx context.Context, username, password string) error {
	c.mu.Lock()
	if c.login == LoginSubmitting {
		c.mu.Unlock()
		return ErrLoginInFlight
	}
	c.login = LoginSubmitting
	c.message = ""
	c.mu.Unlock()

	reply, err := c.api.Login(ctx, username, password)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.login = LoginFailed
		c.message = err.Error()
		return err
	}

	c.login = Authenticated
	c.token = reply.Token
	c.username = username
	if serr := c.store.Set(Session{Token: reply.Token, Username: username}); serr != nil {
		return serr
	}
	return nil
}

// Search looks up a customer record. Each call supersedes any earlier one
// still in flight: the later call wins regardless of which response lands
// first, so a slow stale response never overwrites a newer result.
func (c *Controller) Search(ctx context.Context, customerID string) error {
	c.mu.Lock()
	if c.login != Authenticated {
		c.mu.Unlock()
		return ErrNotAuthenticated
	}
	c.seq++
	mine := c.seq
	c.search = Searching
	c.result = customer.Info{}
	c.message = ""
	token := c.token
	c.mu.Unlock()

	info, err := c.api.GetCustomer(ctx, customerID, token)

	c.mu.Lock()
	defer c.mu.Unlock()

	if mine != c.seq {
		return ErrSuperseded
	}

	switch {
	case err == nil:
		c.search = Found
		c.result = info
	case errors.Is(err, ErrNotFound):
		c.search = NotFound
		c.message = "Customer not found"
	case errors.Is(err, ErrUnauthorized):
		c.search = SearchError
		c.message = "Invalid token"
	default:
		c.search = SearchError
		c.message = genericFailureMessage
	}
	return err
}

// Logout clears the persisted session and returns both machines to their
// unauthenticated idle states. Any in-flight search is invalidated.
func (c *Controller) Logout() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.login = LoginIdle
	c.search = SearchIdle
	c.username = ""
	c.token = ""
	c.result = customer.Info{}
	c.message = ""
	c.seq++
	return c.store.Clear()
}

// Snapshot returns a copy of the current state for rendering.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Login:    c.login,
		Search:   c.search,
		Username: c.username,
		Customer: c.result,
		Message:  c.message,
	}
}
