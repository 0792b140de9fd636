// Package wizard provides the interactive huh forms of adtax: the
// generator selection and the variable edit dialog.
package wizard

import "errors"

// Sentinel errors for wizard operations.
var (
	// ErrCancelled indicates the user aborted a form.
	ErrCancelled = errors.New("wizard: cancelled by user")

	// ErrNoQuestions indicates the question list is empty.
	ErrNoQuestions = errors.New("wizard: no questions provided")
)

// QuestionType represents how a question is answered.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeMultiSelect picks zero or more options.
	QuestionTypeMultiSelect
	// QuestionTypeInput is a free text question.
	QuestionTypeInput
)

// Option is one selectable answer.
type Option struct {
	Label string
	Value string
}

// Question defines a single wizard question. ID is the selection key the
// answer is stored under.
type Question struct {
	ID          string
	Type        QuestionType
	Title       string
	Description string
	Options     []Option
	// AllowOther lets the user type a value not in Options.
	AllowOther bool
	// Optional questions may be skipped with no answer.
	Optional bool
}

// Brand colors shared by the wizard theme.
const (
	ColorPrimary   = "#DA7756"
	ColorSecondary = "#A78BFA"
	ColorSuccess   = "#10B981"
	ColorError     = "#EF4444"
	ColorText      = "#F3F4F6"
	ColorMuted     = "#9CA3AF"
	ColorBorder    = "#4B5563"
)

// otherValue marks the "Other" choice of a select with AllowOther.
const otherValue = "\x00other"

// skipValue marks the "Skip" choice of an optional select.
const skipValue = "\x00skip"
