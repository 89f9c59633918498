package wizard

import (
	"github.com/grampay/rulecat/internal/config"
	"github.com/grampay/rulecat/internal/fragment"
)

// separatorValues maps separator preset ids to the literal separator.
var separatorValues = map[string]string{
	"none":       "",
	"newline":    "\n",
	"blank_line": "\n\n",
}

// DefaultQuestions returns the init questions, pre-filled from cfg.
func DefaultQuestions(cfg *config.Config) []Question {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	order := string(cfg.Concat.Order)
	if order == "" {
		order = string(fragment.StrategyPrefix)
	}

	return []Question{
		{
			ID:          "source_dir",
			Type:        QuestionTypeInput,
			Title:       "Fragment directory",
			Description: "Directory with numbered fragments such as 1-intro.md, relative to the project root.",
			Default:     cfg.Concat.SourceDir,
			Required:    true,
		},
		{
			ID:          "output_path",
			Type:        QuestionTypeInput,
			Title:       "Output file",
			Description: "File the merged fragments are written to.",
			Default:     cfg.Concat.OutputPath,
			Required:    true,
		},
		{
			ID:          "order",
			Type:        QuestionTypeSelect,
			Title:       "Merge order",
			Description: "How fragments are sequenced.",
			// Default option first; see buildSelectField.
			Options: orderOptions(order),
			Default: order,
		},
		{
			ID:          "separator",
			Type:        QuestionTypeSelect,
			Title:       "Separator between fragments",
			Description: "Inserted between consecutive fragments.",
			Options: []Option{
				{Label: "None", Value: "none", Desc: "plain join"},
				{Label: "Newline", Value: "newline"},
				{Label: "Blank line", Value: "blank_line"},
			},
			Default: "none",
		},
	}
}

func orderOptions(first string) []Option {
	all := []Option{
		{Label: "Prefix", Value: string(fragment.StrategyPrefix), Desc: "numeric filename prefix"},
		{Label: "Natural", Value: string(fragment.StrategyNatural), Desc: "prefix, ties in natural name order"},
		{Label: "Manifest", Value: string(fragment.StrategyManifest), Desc: "explicit fragments.yaml"},
	}
	for i, o := range all {
		if o.Value == first && i > 0 {
			all[0], all[i] = all[i], all[0]
			break
		}
	}
	return all
}

// Apply copies the answers in result onto cfg. Empty answers keep the
// existing values.
func Apply(result *WizardResult, cfg *config.Config) {
	if result == nil || cfg == nil {
		return
	}
	if result.SourceDir != "" {
		cfg.Concat.SourceDir = result.SourceDir
	}
	if result.OutputPath != "" {
		cfg.Concat.OutputPath = result.OutputPath
	}
	if result.Order != "" {
		cfg.Concat.Order = fragment.Strategy(result.Order)
	}
	if sep, ok := separatorValues[result.Separator]; ok {
		cfg.Concat.Separator = sep
	}
}
