package debt

import (
	"context"
	"testing"

	"pegvault/core"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSub(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.Nil(t, s.Add(ctx, "alice", uint256.NewInt(1000)))
	require.Nil(t, s.Sub(ctx, "alice", uint256.NewInt(300)))

	balance, err := s.Balance(ctx, "alice")
	require.Nil(t, err)
	assert.Equal(t, uint64(700), balance.Uint64())

	balance, err = s.Balance(ctx, "bob")
	require.Nil(t, err)
	assert.True(t, balance.IsZero())
}

func TestSubUnderflow(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.Nil(t, s.Add(ctx, "alice", uint256.NewInt(10)))
	assert.Equal(t, core.ErrInsufficientBalance, s.Sub(ctx, "alice", uint256.NewInt(11)))

	balance, _ := s.Balance(ctx, "alice")
	assert.Equal(t, uint64(10), balance.Uint64())
}
