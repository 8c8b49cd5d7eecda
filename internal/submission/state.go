package submission

import (
	"fmt"

	"github.com/MikhailRaia/url-shortener-client/internal/model"
)

// Kind tags the variant held by a State.
type Kind int

const (
	KindIdle Kind = iota
	KindSuccess
	KindFailure
)

func (k Kind) String() string {
	switch k {
	case KindIdle:
		return "idle"
	case KindSuccess:
		return "success"
	case KindFailure:
		return "failure"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// State is the display state of a controller: Idle, Success(url) or
// Failure(message). A State never holds a result and an error together.
type State struct {
	kind  Kind
	value string
}

// Idle is the state before any submission has settled.
func Idle() State {
	return State{kind: KindIdle}
}

// Success holds the composed short URL.
func Success(shortURL string) State {
	return State{kind: KindSuccess, value: shortURL}
}

// Failure holds the message shown to the user.
func Failure(message string) State {
	return State{kind: KindFailure, value: message}
}

func (s State) Kind() Kind {
	return s.kind
}

// Result returns the short URL when the state is Success.
func (s State) Result() (string, bool) {
	if s.kind != KindSuccess {
		return "", false
	}
	return s.value, true
}

// ErrorMessage returns the failure text when the state is Failure.
func (s State) ErrorMessage() (string, bool) {
	if s.kind != KindFailure {
		return "", false
	}
	return s.value, true
}

// View projects the state onto the result and error display slots.
func (s State) View() model.DisplayView {
	switch s.kind {
	case KindSuccess:
		return model.DisplayView{Result: s.value}
	case KindFailure:
		return model.DisplayView{Error: s.value}
	default:
		return model.DisplayView{}
	}
}

func (s State) String() string {
	if s.kind == KindIdle {
		return s.kind.String()
	}
	return fmt.Sprintf("%s(%s)", s.kind, s.value)
}
