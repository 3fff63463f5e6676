package widgets

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-formfields/pkg/field"
)

type choiceView struct {
	ID       string `json:"id"`
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// DefaultRegistry constructs a registry pre-populated with the built-in
// widget kinds.
func DefaultRegistry() *Registry {
	registry := NewRegistry()

	registry.MustRegister(Descriptor{Kind: KindTextField, Build: inputBuilder("text")})
	registry.MustRegister(Descriptor{Kind: KindFormControl, Build: inputBuilder("text")})
	registry.MustRegister(Descriptor{Kind: KindTextArea, Build: textAreaBuilder})
	registry.MustRegister(Descriptor{Kind: KindCheckbox, Build: checkboxBuilder})
	registry.MustRegister(Descriptor{Kind: KindSwitch, Build: switchBuilder})
	registry.MustRegister(Descriptor{Kind: KindRadio, Build: radioBuilder})
	registry.MustRegister(Descriptor{Kind: KindSelect, Build: selectBuilder})
	registry.MustRegister(Descriptor{Kind: KindFile, Build: fileBuilder})
	registry.MustRegister(Descriptor{Kind: KindDate, Build: dateBuilder})
	registry.MustRegister(Descriptor{Kind: KindFieldErrors, Bare: true})
	registry.MustRegister(Descriptor{Kind: KindFormButton, Bare: true})
	registry.MustRegister(Descriptor{Kind: KindBaseForm, Bare: true})

	return registry
}

func inputBuilder(defaultType string) Builder {
	return func(w Widget, _ field.State, _ Translate) (map[string]any, error) {
		inputType := strings.TrimSpace(w.Type)
		if inputType == "" {
			inputType = defaultType
		}
		return map[string]any{"type": inputType}, nil
	}
}

func textAreaBuilder(w Widget, _ field.State, _ Translate) (map[string]any, error) {
	rows := w.Rows
	if rows <= 0 {
		rows = 3
	}
	return map[string]any{"rows": rows}, nil
}

func checkboxBuilder(w Widget, _ field.State, _ Translate) (map[string]any, error) {
	return map[string]any{"checked": truthy(w.Value)}, nil
}

func switchBuilder(w Widget, _ field.State, tr Translate) (map[string]any, error) {
	on, err := tr(MsgSwitchOn)
	if err != nil {
		return nil, err
	}
	off, err := tr(MsgSwitchOff)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"checked":  truthy(w.Value),
		"on_text":  on,
		"off_text": off,
	}, nil
}

func radioBuilder(w Widget, state field.State, _ Translate) (map[string]any, error) {
	return map[string]any{"choices": choiceViews(w, state.ID)}, nil
}

func selectBuilder(w Widget, _ field.State, tr Translate) (map[string]any, error) {
	view := map[string]any{
		"choices":  choiceViews(w, ""),
		"multiple": w.Multiple,
	}
	if !w.Multiple {
		prompt := w.Placeholder
		if prompt == "" {
			translated, err := tr(MsgSelectPrompt)
			if err != nil {
				return nil, err
			}
			prompt = translated
		}
		view["prompt"] = prompt
	}
	return view, nil
}

func fileBuilder(w Widget, _ field.State, tr Translate) (map[string]any, error) {
	browse, err := tr(MsgFileBrowse)
	if err != nil {
		return nil, err
	}
	noFile, err := tr(MsgFileNoFile)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"accept":       strings.TrimSpace(w.Accept),
		"multiple":     w.Multiple,
		"browse_text":  browse,
		"no_file_text": noFile,
		// file inputs never echo a value back
		"value":     "",
		"has_value": false,
	}, nil
}

func dateBuilder(w Widget, _ field.State, tr Translate) (map[string]any, error) {
	hint, err := tr(MsgDateFormatHint)
	if err != nil {
		return nil, err
	}
	view := map[string]any{"format_hint": hint}
	if w.Placeholder == "" {
		view["placeholder"] = hint
	}
	return view, nil
}

func choiceViews(w Widget, idPrefix string) []choiceView {
	selected := valueSet(w.Value)
	out := make([]choiceView, 0, len(w.Choices))
	for idx, choice := range w.Choices {
		label := choice.Label
		if label == "" {
			label = choice.Value
		}
		view := choiceView{
			Value: choice.Value,
			Label: label,
		}
		if _, ok := selected[choice.Value]; ok {
			view.Selected = true
		}
		if idPrefix != "" {
			suffix := field.KebabCase(choice.Value)
			if suffix == "" {
				suffix = strconv.Itoa(idx)
			}
			view.ID = idPrefix + "-" + suffix
		}
		out = append(out, view)
	}
	return out
}
