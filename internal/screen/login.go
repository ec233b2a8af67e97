package screen

import (
	"context"

	"go-firestore-inventory/internal/auth"
	"go-firestore-inventory/internal/validation"
)

// Login drives the combined login/register screen. Login and Register are
// independent one-shot state machines sharing the same form.
type Login struct {
	auth auth.Gateway

	OnLoginState    func(State)
	OnRegisterState func(State)
	OnFormValid     func(bool)
	OnPasswordError func(string)
}

func NewLogin(gateway auth.Gateway) *Login {
	return &Login{auth: gateway}
}

func (l *Login) Login(ctx context.Context, email, password string) {
	l.emitLogin(Loading())

	if err := l.auth.Login(ctx, email, password); err != nil {
		l.emitLogin(Failed(MsgLoginFailed))
		return
	}
	l.emitLogin(Success())
}

func (l *Login) Register(ctx context.Context, email, password string) {
	l.emitRegister(Loading())

	if err := l.auth.Register(ctx, email, password); err != nil {
		l.emitRegister(Failed(MsgRegisterFailed))
		return
	}
	l.emitRegister(Success())
}

// ValidateForm re-evaluates the form on every keystroke.
func (l *Login) ValidateForm(email, password string) {
	if l.OnPasswordError != nil {
		l.OnPasswordError(validation.PasswordError(password))
	}
	if l.OnFormValid != nil {
		l.OnFormValid(validation.LoginFormValid(email, password))
	}
}

func (l *Login) IsLoggedIn() bool {
	return l.auth.IsLoggedIn()
}

func (l *Login) emitLogin(s State) {
	if l.OnLoginState != nil {
		l.OnLoginState(s)
	}
}

func (l *Login) emitRegister(s State) {
	if l.OnRegisterState != nil {
		l.OnRegisterState(s)
	}
}
