package domain

import "fmt"

// Status is the lifecycle state of an article.
type Status string

const (
	StatusPending     Status = "pending"
	StatusTranslating Status = "translating"
	StatusTranslated  Status = "translated"
	StatusGenerating  Status = "generating"
	StatusReady       Status = "ready"
	StatusPublished   Status = "published"
	StatusPosted      Status = "posted"
	StatusSkipped     Status = "skipped"
	StatusError       Status = "error"
)

var statuses = []Status{
	StatusPending,
	StatusTranslating,
	StatusTranslated,
	StatusGenerating,
	StatusReady,
	StatusPublished,
	StatusPosted,
	StatusSkipped,
	StatusError,
}

func Statuses() []Status {
	out := make([]Status, len(statuses))
	copy(out, statuses)
	return out
}

func ParseStatus(s string) (Status, error) {
	for _, st := range statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrValidation, s)
}

// InProgress reports whether an automated stage currently owns the article.
func (s Status) InProgress() bool {
	return s == StatusTranslating || s == StatusGenerating
}

// Public reports whether the article is visible on the public site.
func (s Status) Public() bool {
	return s == StatusPublished || s == StatusPosted
}

// UnpublishedStatuses backs the default admin listing: everything that still
// needs operator attention.
func UnpublishedStatuses() []Status {
	return []Status{
		StatusPending,
		StatusTranslating,
		StatusTranslated,
		StatusGenerating,
		StatusReady,
		StatusError,
	}
}

// Action is an operation that moves an article between states.
type Action string

const (
	ActionTranslate Action = "translate"
	ActionGenerate  Action = "generate"
	ActionProcess   Action = "process"
	ActionPublish   Action = "publish"
	ActionPost      Action = "post"
	ActionUnpublish Action = "unpublish"
	ActionSkip      Action = "skip"
	ActionFail      Action = "fail"
)

// Transition describes one row of the lifecycle table. Via is the
// in-progress state held while the action's side effects run; it is empty
// for actions that flip the status directly.
type Transition struct {
	From []Status
	Via  Status
	To   Status
}

var transitions = map[Action]Transition{
	ActionTranslate: {
		From: []Status{StatusPending, StatusTranslated, StatusError},
		Via:  StatusTranslating,
		To:   StatusTranslated,
	},
	ActionGenerate: {
		From: []Status{StatusTranslated, StatusReady, StatusError},
		Via:  StatusGenerating,
		To:   StatusReady,
	},
	ActionProcess: {
		From: []Status{StatusPending, StatusTranslated, StatusReady, StatusPublished, StatusPosted, StatusError},
		Via:  StatusGenerating,
		To:   StatusReady,
	},
	ActionPublish: {
		From: []Status{StatusReady, StatusPublished},
		To:   StatusPublished,
	},
	ActionPost: {
		From: []Status{StatusReady, StatusPublished},
		To:   StatusPosted,
	},
	ActionUnpublish: {
		From: []Status{StatusPublished, StatusPosted},
		To:   StatusTranslated,
	},
	ActionSkip: {
		From: []Status{StatusPending, StatusTranslated, StatusReady},
		To:   StatusSkipped,
	},
	ActionFail: {
		From: []Status{StatusTranslating, StatusGenerating},
		To:   StatusError,
	},
}

func Actions() []Action {
	return []Action{
		ActionTranslate,
		ActionGenerate,
		ActionProcess,
		ActionPublish,
		ActionPost,
		ActionUnpublish,
		ActionSkip,
		ActionFail,
	}
}

// TransitionFor returns the table row for an action.
func TransitionFor(a Action) (Transition, bool) {
	t, ok := transitions[a]
	return t, ok
}

// From lists the states an action may start from.
func (a Action) From() []Status {
	t := transitions[a]
	out := make([]Status, len(t.From))
	copy(out, t.From)
	return out
}

// Target is the state the action leaves the article in when it succeeds.
func (a Action) Target() Status {
	return transitions[a].To
}

// Holding is the state the article sits in while the action runs.
// Falls back to Target for direct transitions.
func (a Action) Holding() Status {
	t := transitions[a]
	if t.Via != "" {
		return t.Via
	}
	return t.To
}

func (a Action) Allows(from Status) bool {
	t, ok := transitions[a]
	if !ok {
		return false
	}
	for _, s := range t.From {
		if s == from {
			return true
		}
	}
	return false
}

// Check returns ErrInvalidTransition when the action cannot start from the
// given state.
func (a Action) Check(from Status) error {
	if !a.Allows(from) {
		return &TransitionError{Action: a, From: from}
	}
	return nil
}

type TransitionError struct {
	Action Action
	From   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s article in status %q", e.Action, e.From)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
