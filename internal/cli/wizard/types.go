// Package wizard provides the interactive huh-based form behind
// "rulecat init".
package wizard

import "errors"

// WizardResult holds the user's answers from the init wizard.
type WizardResult struct {
	SourceDir  string // Fragment directory relative to the project root
	OutputPath string // Output file relative to the project root
	Order      string // Order strategy: prefix, natural, manifest
	Separator  string // Separator preset value, see separatorValues
}

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
)

// Question defines a single wizard question.
type Question struct {
	ID          string                   // Unique identifier
	Type        QuestionType             // Select or Input
	Title       string                   // Question title
	Description string                   // Additional description
	Options     []Option                 // Options for select questions
	Default     string                   // Default value
	Required    bool                     // Whether the field is required
	Condition   func(*WizardResult) bool // Condition for showing this question
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
	// ErrRequired is returned by input validation for an empty required answer.
	ErrRequired = errors.New("this field is required")
)
