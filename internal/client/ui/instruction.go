// Package ui holds the client's screen logic. Each handler takes validated
// input and returns an Instruction: what to show and where to go next.
// Handlers never print; the CLI decides how to present the result.
package ui

import "github.com/dmitrijs2005/atsscan/internal/client/nav"

type Kind int

const (
	KindContent Kind = iota
	KindInfo
	KindSuccess
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindInfo:
		return "info"
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	default:
		return "content"
	}
}

// Instruction is a rendered body plus an optional navigation target.
// An empty Navigate means stay on the current view.
type Instruction struct {
	Body     string
	Navigate nav.View
	Kind     Kind
}

func (i Instruction) IsError() bool { return i.Kind == KindError }
