package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemory_SetGet(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()

	_, ok := c.Get(ctx, "tasas")
	assert.False(t, ok)

	c.Set(ctx, "tasas", `[{"nombre":"estandar"}]`, time.Minute)
	val, ok := c.Get(ctx, "tasas")
	assert.True(t, ok)
	assert.Equal(t, `[{"nombre":"estandar"}]`, val)
}

func TestMemory_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()

	c.Set(ctx, "dashboard", "resumen", time.Nanosecond)
	time.Sleep(5 * time.Millisecond)

	_, ok := c.Get(ctx, "dashboard")
	assert.False(t, ok)
}

func TestMemory_ZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()

	c.Set(ctx, "clave", "valor", 0)
	val, ok := c.Get(ctx, "clave")
	assert.True(t, ok)
	assert.Equal(t, "valor", val)
}

func TestMemory_Delete(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()

	c.Set(ctx, "clave", "valor", time.Minute)
	c.Delete(ctx, "clave")

	_, ok := c.Get(ctx, "clave")
	assert.False(t, ok)
}
