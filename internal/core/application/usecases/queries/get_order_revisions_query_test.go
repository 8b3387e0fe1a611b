package queries_test

import (
	"testing"

	"greenspace/internal/core/application/usecases/queries"
	"greenspace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderRevisionsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrderRevisionsQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetOrderRevisionsQuery_InvalidOrderID(t *testing.T) {
	var empty kernel.UUID
	_, err := queries.NewGetOrderRevisionsQuery(empty)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetOrderRevisionsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderRevisionsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderRevisionsQueryIsNotConstructed)
}
