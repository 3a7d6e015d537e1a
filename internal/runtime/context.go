// Package runtime provides application runtime context for Shiftbook.
package runtime

import (
	"os"

	"github.com/rostrahealth/shiftbook/internal/output"
	"github.com/rostrahealth/shiftbook/internal/schedule"
	"github.com/rostrahealth/shiftbook/internal/storage"
)

// Context holds the application runtime context.
type Context struct {
	Store     storage.Store
	Service   *schedule.Service
	Query     *schedule.Query
	Formatter *output.Formatter

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	Backend      storage.Backend
	DBPath       string
	InMemory     bool
	FilterPolicy schedule.FilterPolicy
	Format       output.Format
	ColorMode    output.ColorMode
	Debug        bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		Backend:      storage.BackendDocument,
		DBPath:       "",
		InMemory:     false,
		FilterPolicy: schedule.PolicySafe,
		Format:       output.FormatCLI,
		ColorMode:    output.ColorAuto,
		Debug:        false,
	}
}

// New creates a new runtime context.
func New(opts Options) (*Context, error) {
	// Check for environment variable overrides
	if envBackend := os.Getenv("SHIFTBOOK_BACKEND"); envBackend != "" {
		opts.Backend = storage.Backend(envBackend)
	}
	if envPath := os.Getenv("SHIFTBOOK_DATABASE"); envPath != "" {
		if envPath == ":memory:" {
			opts.InMemory = true
		} else {
			opts.DBPath = envPath
		}
	}
	if envPolicy := os.Getenv("SHIFTBOOK_FILTER_POLICY"); envPolicy != "" {
		opts.FilterPolicy = schedule.FilterPolicy(envPolicy)
	}

	if opts.DBPath == "" && !opts.InMemory {
		switch opts.Backend {
		case storage.BackendSQLite:
			opts.DBPath = storage.DefaultSQLitePath()
		default:
			opts.DBPath = storage.DefaultPath()
		}
	}

	store, err := storage.Open(storage.Options{
		Backend:  opts.Backend,
		Path:     opts.DBPath,
		InMemory: opts.InMemory,
	})
	if err != nil {
		return nil, err
	}

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		Store:     store,
		Service:   schedule.NewService(store),
		Query:     schedule.NewQuery(store, opts.FilterPolicy),
		Formatter: formatter,
		Debug:     opts.Debug,
	}, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.Store != nil {
		return c.Store.Close()
	}
	return nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// Debugf prints debug output if debug mode is enabled.
func (c *Context) Debugf(format string, args ...interface{}) {
	if c.Debug {
		c.Formatter.Printf("[DEBUG] "+format+"\n", args...)
	}
}
