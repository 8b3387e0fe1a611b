// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"greenspace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure data consistency across aggregate
// boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// WorkTaskRepoFactory provides access to the work task repository within
	// a transaction.
	WorkTaskRepoFactory interface {
		WorkTaskRepository() ports.WorkTaskRepository
	}

	// RevisionRepoFactory provides access to the revision repository within
	// a transaction.
	RevisionRepoFactory interface {
		RevisionRepository() ports.RevisionRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderRevisionUoW manages transactions spanning an order and its
	// revision history. Used by the sketch and design submission flows so a
	// new revision record and the order's status move commit together.
	OrderRevisionUoW interface {
		TxManager
		OrderRepoFactory
		RevisionRepoFactory
	}

	// OrderRevisionUoWFactory creates new order+revision unit of work
	// instances.
	OrderRevisionUoWFactory interface {
		Create() OrderRevisionUoW
	}

	// OrderTaskUoW manages transactions spanning an order and its field
	// work task. A task status change and the coupled order status change
	// are one transaction: both rows commit or neither does.
	OrderTaskUoW interface {
		TxManager
		OrderRepoFactory
		WorkTaskRepoFactory
	}

	// OrderTaskUoWFactory creates new order+task unit of work instances.
	OrderTaskUoWFactory interface {
		Create() OrderTaskUoW
	}

	// RevisionUoW manages transactions for revision-only operations.
	RevisionUoW interface {
		TxManager
		RevisionRepoFactory
	}

	// RevisionUoWFactory creates new revision unit of work instances.
	RevisionUoWFactory interface {
		Create() RevisionUoW
	}
)
