package queries_test

import (
	"testing"

	"greenspace/internal/core/application/usecases/queries"
	"greenspace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetServiceOrderQuery_Valid(t *testing.T) {
	query, err := queries.NewGetServiceOrderQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetServiceOrderQuery_InvalidOrderID(t *testing.T) {
	var empty kernel.UUID
	_, err := queries.NewGetServiceOrderQuery(empty)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetServiceOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetServiceOrderQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetServiceOrderQueryIsNotConstructed)
}
