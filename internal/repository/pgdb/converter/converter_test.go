package converter

import (
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSessionConverter(t *testing.T) {
	conv := &SessionConverterImpl{}
	updated := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	model := conv.ToModel(&domain.Session{ID: "s1", LoggedIn: true, UpdatedAt: updated}, time.Hour)
	assert.Equal(t, "s1", model.ID)
	assert.True(t, model.LoggedIn)
	assert.Equal(t, updated.Add(time.Hour), model.ExpiresAt)

	entity := conv.ToEntity(model)
	assert.Equal(t, "s1", entity.ID)
	assert.True(t, entity.LoggedIn)
	assert.Equal(t, updated, entity.UpdatedAt)

	assert.Nil(t, conv.ToModel(nil, time.Hour))
	assert.Nil(t, conv.ToEntity(nil))
}

func TestSessionConverter_ZeroUpdatedAt(t *testing.T) {
	model := (&SessionConverterImpl{}).ToModel(&domain.Session{ID: "s1"}, time.Minute)
	assert.False(t, model.UpdatedAt.IsZero())
	assert.Equal(t, time.Minute, model.ExpiresAt.Sub(model.UpdatedAt))
}
