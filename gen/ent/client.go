// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/smartjects/importer/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/smartjects/importer/gen/ent/audience"
	"github.com/smartjects/importer/gen/ent/businessfunction"
	"github.com/smartjects/importer/gen/ent/industry"
	"github.com/smartjects/importer/gen/ent/item"
	"github.com/smartjects/importer/gen/ent/team"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Audience is the client for interacting with the Audience builders.
	Audience *AudienceClient
	// BusinessFunction is the client for interacting with the BusinessFunction builders.
	BusinessFunction *BusinessFunctionClient
	// Industry is the client for interacting with the Industry builders.
	Industry *IndustryClient
	// Item is the client for interacting with the Item builders.
	Item *ItemClient
	// Team is the client for interacting with the Team builders.
	Team *TeamClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Audience = NewAudienceClient(c.config)
	c.BusinessFunction = NewBusinessFunctionClient(c.config)
	c.Industry = NewIndustryClient(c.config)
	c.Item = NewItemClient(c.config)
	c.Team = NewTeamClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		Audience:         NewAudienceClient(cfg),
		BusinessFunction: NewBusinessFunctionClient(cfg),
		Industry:         NewIndustryClient(cfg),
		Item:             NewItemClient(cfg),
		Team:             NewTeamClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		Audience:         NewAudienceClient(cfg),
		BusinessFunction: NewBusinessFunctionClient(cfg),
		Industry:         NewIndustryClient(cfg),
		Item:             NewItemClient(cfg),
		Team:             NewTeamClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Audience.
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
	c.Audience.Use(hooks...)
	c.BusinessFunction.Use(hooks...)
	c.Industry.Use(hooks...)
	c.Item.Use(hooks...)
	c.Team.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Audience.Intercept(interceptors...)
	c.BusinessFunction.Intercept(interceptors...)
	c.Industry.Intercept(interceptors...)
	c.Item.Intercept(interceptors...)
	c.Team.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AudienceMutation:
		return c.Audience.mutate(ctx, m)
	case *BusinessFunctionMutation:
		return c.BusinessFunction.mutate(ctx, m)
	case *IndustryMutation:
		return c.Industry.mutate(ctx, m)
	case *ItemMutation:
		return c.Item.mutate(ctx, m)
	case *TeamMutation:
		return c.Team.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AudienceClient is a client for the Audience schema.
type AudienceClient struct {
	config
}

// NewAudienceClient returns a client for the Audience from the given config.
func NewAudienceClient(c config) *AudienceClient {
	return &AudienceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `audience.Hooks(f(g(h())))`.
func (c *AudienceClient) Use(hooks ...Hook) {
	c.hooks.Audience = append(c.hooks.Audience, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `audience.Intercept(f(g(h())))`.
func (c *AudienceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Audience = append(c.inters.Audience, interceptors...)
}

// Create returns a builder for creating a Audience entity.
func (c *AudienceClient) Create() *AudienceCreate {
	mutation := newAudienceMutation(c.config, OpCreate)
	return &AudienceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Audience entities.
func (c *AudienceClient) CreateBulk(builders ...*AudienceCreate) *AudienceCreateBulk {
	return &AudienceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AudienceClient) MapCreateBulk(slice any, setFunc func(*AudienceCreate, int)) *AudienceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AudienceCreateBulk{err: fmt.Errorf("calling to AudienceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AudienceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AudienceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Audience.
func (c *AudienceClient) Update() *AudienceUpdate {
	mutation := newAudienceMutation(c.config, OpUpdate)
	return &AudienceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AudienceClient) UpdateOne(_m *Audience) *AudienceUpdateOne {
	mutation := newAudienceMutation(c.config, OpUpdateOne, withAudience(_m))
	return &AudienceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AudienceClient) UpdateOneID(id uuid.UUID) *AudienceUpdateOne {
	mutation := newAudienceMutation(c.config, OpUpdateOne, withAudienceID(id))
	return &AudienceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Audience.
func (c *AudienceClient) Delete() *AudienceDelete {
	mutation := newAudienceMutation(c.config, OpDelete)
	return &AudienceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AudienceClient) DeleteOne(_m *Audience) *AudienceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AudienceClient) DeleteOneID(id uuid.UUID) *AudienceDeleteOne {
	builder := c.Delete().Where(audience.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AudienceDeleteOne{builder}
}

// Query returns a query builder for Audience.
func (c *AudienceClient) Query() *AudienceQuery {
	return &AudienceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAudience},
		inters: c.Interceptors(),
	}
}

// Get returns a Audience entity by its id.
func (c *AudienceClient) Get(ctx context.Context, id uuid.UUID) (*Audience, error) {
	return c.Query().Where(audience.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AudienceClient) GetX(ctx context.Context, id uuid.UUID) *Audience {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryItems queries the items edge of a Audience.
func (c *AudienceClient) QueryItems(_m *Audience) *ItemQuery {
	query := (&ItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(audience.Table, audience.FieldID, id),
			sqlgraph.To(item.Table, item.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, audience.ItemsTable, audience.ItemsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AudienceClient) Hooks() []Hook {
	return c.hooks.Audience
}

// Interceptors returns the client interceptors.
func (c *AudienceClient) Interceptors() []Interceptor {
	return c.inters.Audience
}

func (c *AudienceClient) mutate(ctx context.Context, m *AudienceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AudienceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AudienceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AudienceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AudienceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Audience mutation op: %q", m.Op())
	}
}

// BusinessFunctionClient is a client for the BusinessFunction schema.
type BusinessFunctionClient struct {
	config
}

// NewBusinessFunctionClient returns a client for the BusinessFunction from the given config.
func NewBusinessFunctionClient(c config) *BusinessFunctionClient {
	return &BusinessFunctionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `businessfunction.Hooks(f(g(h())))`.
func (c *BusinessFunctionClient) Use(hooks ...Hook) {
	c.hooks.BusinessFunction = append(c.hooks.BusinessFunction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `businessfunction.Intercept(f(g(h())))`.
func (c *BusinessFunctionClient) Intercept(interceptors ...Interceptor) {
	c.inters.BusinessFunction = append(c.inters.BusinessFunction, interceptors...)
}

// Create returns a builder for creating a BusinessFunction entity.
func (c *BusinessFunctionClient) Create() *BusinessFunctionCreate {
	mutation := newBusinessFunctionMutation(c.config, OpCreate)
	return &BusinessFunctionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BusinessFunction entities.
func (c *BusinessFunctionClient) CreateBulk(builders ...*BusinessFunctionCreate) *BusinessFunctionCreateBulk {
	return &BusinessFunctionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BusinessFunctionClient) MapCreateBulk(slice any, setFunc func(*BusinessFunctionCreate, int)) *BusinessFunctionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BusinessFunctionCreateBulk{err: fmt.Errorf("calling to BusinessFunctionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BusinessFunctionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BusinessFunctionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BusinessFunction.
func (c *BusinessFunctionClient) Update() *BusinessFunctionUpdate {
	mutation := newBusinessFunctionMutation(c.config, OpUpdate)
	return &BusinessFunctionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BusinessFunctionClient) UpdateOne(_m *BusinessFunction) *BusinessFunctionUpdateOne {
	mutation := newBusinessFunctionMutation(c.config, OpUpdateOne, withBusinessFunction(_m))
	return &BusinessFunctionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BusinessFunctionClient) UpdateOneID(id uuid.UUID) *BusinessFunctionUpdateOne {
	mutation := newBusinessFunctionMutation(c.config, OpUpdateOne, withBusinessFunctionID(id))
	return &BusinessFunctionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BusinessFunction.
func (c *BusinessFunctionClient) Delete() *BusinessFunctionDelete {
	mutation := newBusinessFunctionMutation(c.config, OpDelete)
	return &BusinessFunctionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BusinessFunctionClient) DeleteOne(_m *BusinessFunction) *BusinessFunctionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BusinessFunctionClient) DeleteOneID(id uuid.UUID) *BusinessFunctionDeleteOne {
	builder := c.Delete().Where(businessfunction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BusinessFunctionDeleteOne{builder}
}

// Query returns a query builder for BusinessFunction.
func (c *BusinessFunctionClient) Query() *BusinessFunctionQuery {
	return &BusinessFunctionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBusinessFunction},
		inters: c.Interceptors(),
	}
}

// Get returns a BusinessFunction entity by its id.
func (c *BusinessFunctionClient) Get(ctx context.Context, id uuid.UUID) (*BusinessFunction, error) {
	return c.Query().Where(businessfunction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BusinessFunctionClient) GetX(ctx context.Context, id uuid.UUID) *BusinessFunction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryItems queries the items edge of a BusinessFunction.
func (c *BusinessFunctionClient) QueryItems(_m *BusinessFunction) *ItemQuery {
	query := (&ItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(businessfunction.Table, businessfunction.FieldID, id),
			sqlgraph.To(item.Table, item.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, businessfunction.ItemsTable, businessfunction.ItemsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BusinessFunctionClient) Hooks() []Hook {
	return c.hooks.BusinessFunction
}

// Interceptors returns the client interceptors.
func (c *BusinessFunctionClient) Interceptors() []Interceptor {
	return c.inters.BusinessFunction
}

func (c *BusinessFunctionClient) mutate(ctx context.Context, m *BusinessFunctionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BusinessFunctionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BusinessFunctionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BusinessFunctionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BusinessFunctionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BusinessFunction mutation op: %q", m.Op())
	}
}

// IndustryClient is a client for the Industry schema.
type IndustryClient struct {
	config
}

// NewIndustryClient returns a client for the Industry from the given config.
func NewIndustryClient(c config) *IndustryClient {
	return &IndustryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `industry.Hooks(f(g(h())))`.
func (c *IndustryClient) Use(hooks ...Hook) {
	c.hooks.Industry = append(c.hooks.Industry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `industry.Intercept(f(g(h())))`.
func (c *IndustryClient) Intercept(interceptors ...Interceptor) {
	c.inters.Industry = append(c.inters.Industry, interceptors...)
}

// Create returns a builder for creating a Industry entity.
func (c *IndustryClient) Create() *IndustryCreate {
	mutation := newIndustryMutation(c.config, OpCreate)
	return &IndustryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Industry entities.
func (c *IndustryClient) CreateBulk(builders ...*IndustryCreate) *IndustryCreateBulk {
	return &IndustryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IndustryClient) MapCreateBulk(slice any, setFunc func(*IndustryCreate, int)) *IndustryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IndustryCreateBulk{err: fmt.Errorf("calling to IndustryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IndustryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IndustryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Industry.
func (c *IndustryClient) Update() *IndustryUpdate {
	mutation := newIndustryMutation(c.config, OpUpdate)
	return &IndustryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IndustryClient) UpdateOne(_m *Industry) *IndustryUpdateOne {
	mutation := newIndustryMutation(c.config, OpUpdateOne, withIndustry(_m))
	return &IndustryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IndustryClient) UpdateOneID(id uuid.UUID) *IndustryUpdateOne {
	mutation := newIndustryMutation(c.config, OpUpdateOne, withIndustryID(id))
	return &IndustryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Industry.
func (c *IndustryClient) Delete() *IndustryDelete {
	mutation := newIndustryMutation(c.config, OpDelete)
	return &IndustryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IndustryClient) DeleteOne(_m *Industry) *IndustryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IndustryClient) DeleteOneID(id uuid.UUID) *IndustryDeleteOne {
	builder := c.Delete().Where(industry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IndustryDeleteOne{builder}
}

// Query returns a query builder for Industry.
func (c *IndustryClient) Query() *IndustryQuery {
	return &IndustryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIndustry},
		inters: c.Interceptors(),
	}
}

// Get returns a Industry entity by its id.
func (c *IndustryClient) Get(ctx context.Context, id uuid.UUID) (*Industry, error) {
	return c.Query().Where(industry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IndustryClient) GetX(ctx context.Context, id uuid.UUID) *Industry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryItems queries the items edge of a Industry.
func (c *IndustryClient) QueryItems(_m *Industry) *ItemQuery {
	query := (&ItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(industry.Table, industry.FieldID, id),
			sqlgraph.To(item.Table, item.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, industry.ItemsTable, industry.ItemsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *IndustryClient) Hooks() []Hook {
	return c.hooks.Industry
}

// Interceptors returns the client interceptors.
func (c *IndustryClient) Interceptors() []Interceptor {
	return c.inters.Industry
}

func (c *IndustryClient) mutate(ctx context.Context, m *IndustryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IndustryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IndustryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IndustryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IndustryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Industry mutation op: %q", m.Op())
	}
}

// ItemClient is a client for the Item schema.
type ItemClient struct {
	config
}

// NewItemClient returns a client for the Item from the given config.
func NewItemClient(c config) *ItemClient {
	return &ItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `item.Hooks(f(g(h())))`.
func (c *ItemClient) Use(hooks ...Hook) {
	c.hooks.Item = append(c.hooks.Item, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `item.Intercept(f(g(h())))`.
func (c *ItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.Item = append(c.inters.Item, interceptors...)
}

// Create returns a builder for creating a Item entity.
func (c *ItemClient) Create() *ItemCreate {
	mutation := newItemMutation(c.config, OpCreate)
	return &ItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Item entities.
func (c *ItemClient) CreateBulk(builders ...*ItemCreate) *ItemCreateBulk {
	return &ItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ItemClient) MapCreateBulk(slice any, setFunc func(*ItemCreate, int)) *ItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ItemCreateBulk{err: fmt.Errorf("calling to ItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Item.
func (c *ItemClient) Update() *ItemUpdate {
	mutation := newItemMutation(c.config, OpUpdate)
	return &ItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ItemClient) UpdateOne(_m *Item) *ItemUpdateOne {
	mutation := newItemMutation(c.config, OpUpdateOne, withItem(_m))
	return &ItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ItemClient) UpdateOneID(id uuid.UUID) *ItemUpdateOne {
	mutation := newItemMutation(c.config, OpUpdateOne, withItemID(id))
	return &ItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Item.
func (c *ItemClient) Delete() *ItemDelete {
	mutation := newItemMutation(c.config, OpDelete)
	return &ItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ItemClient) DeleteOne(_m *Item) *ItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ItemClient) DeleteOneID(id uuid.UUID) *ItemDeleteOne {
	builder := c.Delete().Where(item.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ItemDeleteOne{builder}
}

// Query returns a query builder for Item.
func (c *ItemClient) Query() *ItemQuery {
	return &ItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeItem},
		inters: c.Interceptors(),
	}
}

// Get returns a Item entity by its id.
func (c *ItemClient) Get(ctx context.Context, id uuid.UUID) (*Item, error) {
	return c.Query().Where(item.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ItemClient) GetX(ctx context.Context, id uuid.UUID) *Item {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryIndustries queries the industries edge of a Item.
func (c *ItemClient) QueryIndustries(_m *Item) *IndustryQuery {
	query := (&IndustryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(item.Table, item.FieldID, id),
			sqlgraph.To(industry.Table, industry.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, item.IndustriesTable, item.IndustriesPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAudiences queries the audiences edge of a Item.
func (c *ItemClient) QueryAudiences(_m *Item) *AudienceQuery {
	query := (&AudienceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(item.Table, item.FieldID, id),
			sqlgraph.To(audience.Table, audience.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, item.AudiencesTable, item.AudiencesPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFunctions queries the functions edge of a Item.
func (c *ItemClient) QueryFunctions(_m *Item) *BusinessFunctionQuery {
	query := (&BusinessFunctionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(item.Table, item.FieldID, id),
			sqlgraph.To(businessfunction.Table, businessfunction.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, item.FunctionsTable, item.FunctionsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTeams queries the teams edge of a Item.
func (c *ItemClient) QueryTeams(_m *Item) *TeamQuery {
	query := (&TeamClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(item.Table, item.FieldID, id),
			sqlgraph.To(team.Table, team.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, item.TeamsTable, item.TeamsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ItemClient) Hooks() []Hook {
	return c.hooks.Item
}

// Interceptors returns the client interceptors.
func (c *ItemClient) Interceptors() []Interceptor {
	return c.inters.Item
}

func (c *ItemClient) mutate(ctx context.Context, m *ItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Item mutation op: %q", m.Op())
	}
}

// TeamClient is a client for the Team schema.
type TeamClient struct {
	config
}

// NewTeamClient returns a client for the Team from the given config.
func NewTeamClient(c config) *TeamClient {
	return &TeamClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `team.Hooks(f(g(h())))`.
func (c *TeamClient) Use(hooks ...Hook) {
	c.hooks.Team = append(c.hooks.Team, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `team.Intercept(f(g(h())))`.
func (c *TeamClient) Intercept(interceptors ...Interceptor) {
	c.inters.Team = append(c.inters.Team, interceptors...)
}

// Create returns a builder for creating a Team entity.
func (c *TeamClient) Create() *TeamCreate {
	mutation := newTeamMutation(c.config, OpCreate)
	return &TeamCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Team entities.
func (c *TeamClient) CreateBulk(builders ...*TeamCreate) *TeamCreateBulk {
	return &TeamCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TeamClient) MapCreateBulk(slice any, setFunc func(*TeamCreate, int)) *TeamCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TeamCreateBulk{err: fmt.Errorf("calling to TeamClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TeamCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TeamCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Team.
func (c *TeamClient) Update() *TeamUpdate {
	mutation := newTeamMutation(c.config, OpUpdate)
	return &TeamUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TeamClient) UpdateOne(_m *Team) *TeamUpdateOne {
	mutation := newTeamMutation(c.config, OpUpdateOne, withTeam(_m))
	return &TeamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TeamClient) UpdateOneID(id uuid.UUID) *TeamUpdateOne {
	mutation := newTeamMutation(c.config, OpUpdateOne, withTeamID(id))
	return &TeamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Team.
func (c *TeamClient) Delete() *TeamDelete {
	mutation := newTeamMutation(c.config, OpDelete)
	return &TeamDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TeamClient) DeleteOne(_m *Team) *TeamDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TeamClient) DeleteOneID(id uuid.UUID) *TeamDeleteOne {
	builder := c.Delete().Where(team.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TeamDeleteOne{builder}
}

// Query returns a query builder for Team.
func (c *TeamClient) Query() *TeamQuery {
	return &TeamQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTeam},
		inters: c.Interceptors(),
	}
}

// Get returns a Team entity by its id.
func (c *TeamClient) Get(ctx context.Context, id uuid.UUID) (*Team, error) {
	return c.Query().Where(team.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TeamClient) GetX(ctx context.Context, id uuid.UUID) *Team {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryItems queries the items edge of a Team.
func (c *TeamClient) QueryItems(_m *Team) *ItemQuery {
	query := (&ItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(team.Table, team.FieldID, id),
			sqlgraph.To(item.Table, item.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, team.ItemsTable, team.ItemsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TeamClient) Hooks() []Hook {
	return c.hooks.Team
}

// Interceptors returns the client interceptors.
func (c *TeamClient) Interceptors() []Interceptor {
	return c.inters.Team
}

func (c *TeamClient) mutate(ctx context.Context, m *TeamMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TeamCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TeamUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TeamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TeamDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Team mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Audience, BusinessFunction, Industry, Item, Team []ent.Hook
	}
	inters struct {
		Audience, BusinessFunction, Industry, Item, Team []ent.Interceptor
	}
)
