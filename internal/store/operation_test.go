package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/excuse-api/internal/mocks"
	"github.com/phrazzld/excuse-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetExcuse(t *testing.T) {
	op, err := store.NewGetExcuse("  Want to grab dinner tonight?  ")
	require.NoError(t, err)
	assert.Equal(t, "Want to grab dinner tonight?", op.Request())

	for _, blank := range []string{"", "   ", "\n"} {
		op, err := store.NewGetExcuse(blank)
		assert.ErrorIs(t, err, store.ErrInvalidRequest)
		assert.Nil(t, op, "a blank request never produces an operation")
	}
}

func TestGetExcuse_Execute(t *testing.T) {
	repo := &mocks.MockExcuseRepository{Excuse: "I'm blocked by a dependency chain issue."}
	op, err := store.NewGetExcuse(" Help me move? ")
	require.NoError(t, err)

	excuse, err := repo.Execute(context.Background(), op)

	require.NoError(t, err)
	assert.Equal(t, "I'm blocked by a dependency chain issue.", excuse)
	assert.Equal(t, 1, repo.FetchCount())
	assert.Equal(t, "Help me move?", repo.LastRequest())
}

func TestGetExcuse_PropagatesRepositoryErrors(t *testing.T) {
	genErr := store.NewGenerationError("agent", "failed to generate excuse", errors.New("boom"))
	repo := &mocks.MockExcuseRepository{Err: genErr}
	op, err := store.NewGetExcuse("valid")
	require.NoError(t, err)

	_, err = op.Execute(context.Background(), repo)

	assert.Same(t, genErr, err)
}

func TestGetExcuse_SingleUse(t *testing.T) {
	repo := &mocks.MockExcuseRepository{Excuse: "busy"}
	op, err := store.NewGetExcuse("valid")
	require.NoError(t, err)

	_, err = op.Execute(context.Background(), repo)
	require.NoError(t, err)

	excuse, err := op.Execute(context.Background(), repo)
	assert.ErrorIs(t, err, store.ErrOperationConsumed)
	assert.Empty(t, excuse)
	assert.Equal(t, 1, repo.FetchCount(), "the second run never reaches the repository")
}

func TestGetVague(t *testing.T) {
	repo := &mocks.MockExcuseRepository{Excuse: "Technical fog."}
	op := store.NewGetVague()

	excuse, err := repo.Execute(context.Background(), op)
	require.NoError(t, err)
	assert.Equal(t, "Technical fog.", excuse)
	assert.Equal(t, store.VagueRequest, repo.LastRequest())

	_, err = repo.Execute(context.Background(), op)
	assert.ErrorIs(t, err, store.ErrOperationConsumed)
}
