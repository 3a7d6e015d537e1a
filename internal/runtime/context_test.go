package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rostrahealth/shiftbook/internal/output"
	"github.com/rostrahealth/shiftbook/internal/schedule"
	"github.com/rostrahealth/shiftbook/internal/storage"
)

func TestNewInMemory(t *testing.T) {
	opts := DefaultOptions()
	opts.InMemory = true

	ctx, err := New(opts)
	require.NoError(t, err)
	defer ctx.Close()

	assert.NotNil(t, ctx.Store)
	assert.NotNil(t, ctx.Service)
	assert.NotNil(t, ctx.Query)
	assert.Equal(t, schedule.PolicySafe, ctx.Query.Policy())
}

func TestEnvDatabaseOverride(t *testing.T) {
	t.Setenv("SHIFTBOOK_DATABASE", ":memory:")

	ctx, err := New(DefaultOptions())
	require.NoError(t, err)
	defer ctx.Close()

	assert.NotNil(t, ctx.Store)
}

func TestEnvFilterPolicyOverride(t *testing.T) {
	t.Setenv("SHIFTBOOK_DATABASE", ":memory:")
	t.Setenv("SHIFTBOOK_FILTER_POLICY", string(schedule.PolicyStrict))

	ctx, err := New(DefaultOptions())
	require.NoError(t, err)
	defer ctx.Close()

	assert.Equal(t, schedule.PolicyStrict, ctx.Query.Policy())
}

func TestEnvBackendOverride(t *testing.T) {
	t.Setenv("SHIFTBOOK_DATABASE", ":memory:")
	t.Setenv("SHIFTBOOK_BACKEND", string(storage.BackendSQLite))

	ctx, err := New(DefaultOptions())
	require.NoError(t, err)
	defer ctx.Close()

	assert.NotNil(t, ctx.Store)
}

func TestIsJSON(t *testing.T) {
	opts := DefaultOptions()
	opts.InMemory = true
	opts.Format = output.FormatJSON

	ctx, err := New(opts)
	require.NoError(t, err)
	defer ctx.Close()

	assert.True(t, ctx.IsJSON())
}
