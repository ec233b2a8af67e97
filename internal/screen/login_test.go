package screen

import (
	"context"
	"errors"
	"testing"

	ierr "go-firestore-inventory/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginStateTransitions(t *testing.T) {
	gateway := &fakeGateway{}
	login := NewLogin(gateway)

	var states []State
	login.OnLoginState = func(s State) { states = append(states, s) }

	login.Login(context.Background(), "user@example.com", "123456")

	require.Len(t, states, 2)
	assert.Equal(t, PhaseLoading, states[0].Phase)
	assert.Equal(t, PhaseSuccess, states[1].Phase)
	assert.True(t, login.IsLoggedIn())
}

func TestLoginFailure(t *testing.T) {
	gateway := &fakeGateway{loginErr: errors.New("wrong password")}
	login := NewLogin(gateway)

	var states []State
	login.OnLoginState = func(s State) { states = append(states, s) }

	login.Login(context.Background(), "user@example.com", "123456")

	require.Len(t, states, 2)
	assert.Equal(t, PhaseLoading, states[0].Phase)
	assert.Equal(t, PhaseError, states[1].Phase)
	assert.Equal(t, MsgLoginFailed, states[1].Message)
	assert.False(t, login.IsLoggedIn())
}

func TestRegisterStateTransitions(t *testing.T) {
	gateway := &fakeGateway{}
	login := NewLogin(gateway)

	var states []State
	login.OnRegisterState = func(s State) { states = append(states, s) }

	login.Register(context.Background(), "new@example.com", "654321")

	require.Len(t, states, 2)
	assert.Equal(t, PhaseLoading, states[0].Phase)
	assert.Equal(t, PhaseSuccess, states[1].Phase)

	gateway.registerErr = ierr.RemoteFailure
	states = states[:0]
	login.Register(context.Background(), "taken@example.com", "654321")

	require.Len(t, states, 2)
	assert.Equal(t, MsgRegisterFailed, states[1].Message)
}

func TestLoginFormValidation(t *testing.T) {
	login := NewLogin(&fakeGateway{})

	var valid bool
	var passwordErr string
	login.OnFormValid = func(v bool) { valid = v }
	login.OnPasswordError = func(msg string) { passwordErr = msg }

	login.ValidateForm("user@example.com", "123456")
	assert.True(t, valid)
	assert.Empty(t, passwordErr)

	login.ValidateForm("user@example.com", "12345")
	assert.False(t, valid)
	assert.Equal(t, "minimum 6 digits", passwordErr)

	login.ValidateForm("user@example.com", "abcdef")
	assert.False(t, valid)
	assert.Equal(t, "digits only", passwordErr)

	login.ValidateForm("user@example.com", "")
	assert.False(t, valid)
	assert.Empty(t, passwordErr, "empty password shows no message")
}
