package exchange

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"guild-swap/pkg/chain"
	"guild-swap/pkg/wallet"
)

func TestClassify(t *testing.T) {
	rejected := classify("op", fmt.Errorf("sign: %w", wallet.ErrRejected))
	assert.Equal(t, KindUserRejected, rejected.Kind)
	assert.ErrorIs(t, rejected, wallet.ErrRejected)

	onChain := classify("op", chain.ErrReverted)
	assert.Equal(t, KindOnChain, onChain.Kind)
	assert.Equal(t, "op: transaction reverted", onChain.Error())

	v := validationError("inner", "bad %s", "input")
	assert.Same(t, v, classify("outer", fmt.Errorf("wrapped: %w", v)))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
	assert.Equal(t, KindValidation, KindOf(fmt.Errorf("x: %w", validationError("op", "y"))))
	assert.Equal(t, "user_rejected", KindUserRejected.String())
}
