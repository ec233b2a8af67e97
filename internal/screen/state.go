// Package screen holds the presentation state machines behind each surface
// of the app: login/register, the live product list, and the add, detail and
// edit forms. Screens expose callback observers and mutate their state from
// a single goroutine; transitions are linear
// (Idle/Success/Error -> Loading -> Success|Error).
package screen

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

// State is the closed set of per-screen UI states. Message is only set for
// PhaseError.
type State struct {
	Phase   Phase
	Message string
}

func Idle() State    { return State{Phase: PhaseIdle} }
func Loading() State { return State{Phase: PhaseLoading} }
func Success() State { return State{Phase: PhaseSuccess} }

func Failed(msg string) State { return State{Phase: PhaseError, Message: msg} }

// Fixed, non-localized user-facing failure messages. One per action; every
// remote failure of that action collapses onto it.
const (
	MsgLoginFailed      = "login failed"
	MsgRegisterFailed   = "registration failed"
	MsgNotAuthenticated = "user not authenticated"
	MsgSaveFailed       = "could not save product"
	MsgUpdateFailed     = "could not update product"
	MsgDeleteFailed     = "could not delete product"
	MsgLoadFailed       = "could not load products"
)
