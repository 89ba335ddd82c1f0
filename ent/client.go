// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/infinitelife/pulse/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/infinitelife/pulse/ent/responseevent"
	"github.com/infinitelife/pulse/ent/sessionstate"
	"github.com/infinitelife/pulse/ent/summaryrequestevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ResponseEvent is the client for interacting with the ResponseEvent builders.
	ResponseEvent *ResponseEventClient
	// SessionState is the client for interacting with the SessionState builders.
	SessionState *SessionStateClient
	// SummaryRequestEvent is the client for interacting with the SummaryRequestEvent builders.
	SummaryRequestEvent *SummaryRequestEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ResponseEvent = NewResponseEventClient(c.config)
	c.SessionState = NewSessionStateClient(c.config)
	c.SummaryRequestEvent = NewSummaryRequestEventClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		ResponseEvent:       NewResponseEventClient(cfg),
		SessionState:        NewSessionStateClient(cfg),
		SummaryRequestEvent: NewSummaryRequestEventClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		ResponseEvent:       NewResponseEventClient(cfg),
		SessionState:        NewSessionStateClient(cfg),
		SummaryRequestEvent: NewSummaryRequestEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ResponseEvent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.ResponseEvent.Use(hooks...)
	c.SessionState.Use(hooks...)
	c.SummaryRequestEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ResponseEvent.Intercept(interceptors...)
	c.SessionState.Intercept(interceptors...)
	c.SummaryRequestEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ResponseEventMutation:
		return c.ResponseEvent.mutate(ctx, m)
	case *SessionStateMutation:
		return c.SessionState.mutate(ctx, m)
	case *SummaryRequestEventMutation:
		return c.SummaryRequestEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ResponseEventClient is a client for the ResponseEvent schema.
type ResponseEventClient struct {
	config
}

// NewResponseEventClient returns a client for the ResponseEvent from the given config.
func NewResponseEventClient(c config) *ResponseEventClient {
	return &ResponseEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `responseevent.Hooks(f(g(h())))`.
func (c *ResponseEventClient) Use(hooks ...Hook) {
	c.hooks.ResponseEvent = append(c.hooks.ResponseEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `responseevent.Intercept(f(g(h())))`.
func (c *ResponseEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ResponseEvent = append(c.inters.ResponseEvent, interceptors...)
}

// Create returns a builder for creating a ResponseEvent entity.
func (c *ResponseEventClient) Create() *ResponseEventCreate {
	mutation := newResponseEventMutation(c.config, OpCreate)
	return &ResponseEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ResponseEvent entities.
func (c *ResponseEventClient) CreateBulk(builders ...*ResponseEventCreate) *ResponseEventCreateBulk {
	return &ResponseEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResponseEventClient) MapCreateBulk(slice any, setFunc func(*ResponseEventCreate, int)) *ResponseEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResponseEventCreateBulk{err: fmt.Errorf("calling to ResponseEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResponseEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResponseEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ResponseEvent.
func (c *ResponseEventClient) Update() *ResponseEventUpdate {
	mutation := newResponseEventMutation(c.config, OpUpdate)
	return &ResponseEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResponseEventClient) UpdateOne(_m *ResponseEvent) *ResponseEventUpdateOne {
	mutation := newResponseEventMutation(c.config, OpUpdateOne, withResponseEvent(_m))
	return &ResponseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResponseEventClient) UpdateOneID(id int) *ResponseEventUpdateOne {
	mutation := newResponseEventMutation(c.config, OpUpdateOne, withResponseEventID(id))
	return &ResponseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ResponseEvent.
func (c *ResponseEventClient) Delete() *ResponseEventDelete {
	mutation := newResponseEventMutation(c.config, OpDelete)
	return &ResponseEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResponseEventClient) DeleteOne(_m *ResponseEvent) *ResponseEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResponseEventClient) DeleteOneID(id int) *ResponseEventDeleteOne {
	builder := c.Delete().Where(responseevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResponseEventDeleteOne{builder}
}

// Query returns a query builder for ResponseEvent.
func (c *ResponseEventClient) Query() *ResponseEventQuery {
	return &ResponseEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResponseEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ResponseEvent entity by its id.
func (c *ResponseEventClient) Get(ctx context.Context, id int) (*ResponseEvent, error) {
	return c.Query().Where(responseevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResponseEventClient) GetX(ctx context.Context, id int) *ResponseEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ResponseEventClient) Hooks() []Hook {
	return c.hooks.ResponseEvent
}

// Interceptors returns the client interceptors.
func (c *ResponseEventClient) Interceptors() []Interceptor {
	return c.inters.ResponseEvent
}

func (c *ResponseEventClient) mutate(ctx context.Context, m *ResponseEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResponseEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResponseEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResponseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResponseEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ResponseEvent mutation op: %q", m.Op())
	}
}

// SessionStateClient is a client for the SessionState schema.
type SessionStateClient struct {
	config
}

// NewSessionStateClient returns a client for the SessionState from the given config.
func NewSessionStateClient(c config) *SessionStateClient {
	return &SessionStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionstate.Hooks(f(g(h())))`.
func (c *SessionStateClient) Use(hooks ...Hook) {
	c.hooks.SessionState = append(c.hooks.SessionState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionstate.Intercept(f(g(h())))`.
func (c *SessionStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionState = append(c.inters.SessionState, interceptors...)
}

// Create returns a builder for creating a SessionState entity.
func (c *SessionStateClient) Create() *SessionStateCreate {
	mutation := newSessionStateMutation(c.config, OpCreate)
	return &SessionStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionState entities.
func (c *SessionStateClient) CreateBulk(builders ...*SessionStateCreate) *SessionStateCreateBulk {
	return &SessionStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionStateClient) MapCreateBulk(slice any, setFunc func(*SessionStateCreate, int)) *SessionStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionStateCreateBulk{err: fmt.Errorf("calling to SessionStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionState.
func (c *SessionStateClient) Update() *SessionStateUpdate {
	mutation := newSessionStateMutation(c.config, OpUpdate)
	return &SessionStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionStateClient) UpdateOne(_m *SessionState) *SessionStateUpdateOne {
	mutation := newSessionStateMutation(c.config, OpUpdateOne, withSessionState(_m))
	return &SessionStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionStateClient) UpdateOneID(id int) *SessionStateUpdateOne {
	mutation := newSessionStateMutation(c.config, OpUpdateOne, withSessionStateID(id))
	return &SessionStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionState.
func (c *SessionStateClient) Delete() *SessionStateDelete {
	mutation := newSessionStateMutation(c.config, OpDelete)
	return &SessionStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionStateClient) DeleteOne(_m *SessionState) *SessionStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionStateClient) DeleteOneID(id int) *SessionStateDeleteOne {
	builder := c.Delete().Where(sessionstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionStateDeleteOne{builder}
}

// Query returns a query builder for SessionState.
func (c *SessionStateClient) Query() *SessionStateQuery {
	return &SessionStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionState},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionState entity by its id.
func (c *SessionStateClient) Get(ctx context.Context, id int) (*SessionState, error) {
	return c.Query().Where(sessionstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionStateClient) GetX(ctx context.Context, id int) *SessionState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionStateClient) Hooks() []Hook {
	return c.hooks.SessionState
}

// Interceptors returns the client interceptors.
func (c *SessionStateClient) Interceptors() []Interceptor {
	return c.inters.SessionState
}

func (c *SessionStateClient) mutate(ctx context.Context, m *SessionStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionState mutation op: %q", m.Op())
	}
}

// SummaryRequestEventClient is a client for the SummaryRequestEvent schema.
type SummaryRequestEventClient struct {
	config
}

// NewSummaryRequestEventClient returns a client for the SummaryRequestEvent from the given config.
func NewSummaryRequestEventClient(c config) *SummaryRequestEventClient {
	return &SummaryRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `summaryrequestevent.Hooks(f(g(h())))`.
func (c *SummaryRequestEventClient) Use(hooks ...Hook) {
	c.hooks.SummaryRequestEvent = append(c.hooks.SummaryRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `summaryrequestevent.Intercept(f(g(h())))`.
func (c *SummaryRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SummaryRequestEvent = append(c.inters.SummaryRequestEvent, interceptors...)
}

// Create returns a builder for creating a SummaryRequestEvent entity.
func (c *SummaryRequestEventClient) Create() *SummaryRequestEventCreate {
	mutation := newSummaryRequestEventMutation(c.config, OpCreate)
	return &SummaryRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SummaryRequestEvent entities.
func (c *SummaryRequestEventClient) CreateBulk(builders ...*SummaryRequestEventCreate) *SummaryRequestEventCreateBulk {
	return &SummaryRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SummaryRequestEventClient) MapCreateBulk(slice any, setFunc func(*SummaryRequestEventCreate, int)) *SummaryRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SummaryRequestEventCreateBulk{err: fmt.Errorf("calling to SummaryRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SummaryRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SummaryRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SummaryRequestEvent.
func (c *SummaryRequestEventClient) Update() *SummaryRequestEventUpdate {
	mutation := newSummaryRequestEventMutation(c.config, OpUpdate)
	return &SummaryRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SummaryRequestEventClient) UpdateOne(_m *SummaryRequestEvent) *SummaryRequestEventUpdateOne {
	mutation := newSummaryRequestEventMutation(c.config, OpUpdateOne, withSummaryRequestEvent(_m))
	return &SummaryRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SummaryRequestEventClient) UpdateOneID(id int) *SummaryRequestEventUpdateOne {
	mutation := newSummaryRequestEventMutation(c.config, OpUpdateOne, withSummaryRequestEventID(id))
	return &SummaryRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SummaryRequestEvent.
func (c *SummaryRequestEventClient) Delete() *SummaryRequestEventDelete {
	mutation := newSummaryRequestEventMutation(c.config, OpDelete)
	return &SummaryRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SummaryRequestEventClient) DeleteOne(_m *SummaryRequestEvent) *SummaryRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SummaryRequestEventClient) DeleteOneID(id int) *SummaryRequestEventDeleteOne {
	builder := c.Delete().Where(summaryrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SummaryRequestEventDeleteOne{builder}
}

// Query returns a query builder for SummaryRequestEvent.
func (c *SummaryRequestEventClient) Query() *SummaryRequestEventQuery {
	return &SummaryRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSummaryRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SummaryRequestEvent entity by its id.
func (c *SummaryRequestEventClient) Get(ctx context.Context, id int) (*SummaryRequestEvent, error) {
	return c.Query().Where(summaryrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SummaryRequestEventClient) GetX(ctx context.Context, id int) *SummaryRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SummaryRequestEventClient) Hooks() []Hook {
	return c.hooks.SummaryRequestEvent
}

// Interceptors returns the client interceptors.
func (c *SummaryRequestEventClient) Interceptors() []Interceptor {
	return c.inters.SummaryRequestEvent
}

func (c *SummaryRequestEventClient) mutate(ctx context.Context, m *SummaryRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SummaryRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SummaryRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SummaryRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SummaryRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SummaryRequestEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ResponseEvent, SessionState, SummaryRequestEvent []ent.Hook
	}
	inters struct {
		ResponseEvent, SessionState, SummaryRequestEvent []ent.Interceptor
	}
)
