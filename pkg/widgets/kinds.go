package widgets

// Kind names a widget.
type Kind string

// Built-in widget kinds.
const (
	KindTextField   Kind = "text-field"
	KindTextArea    Kind = "text-area"
	KindCheckbox    Kind = "checkbox-field"
	KindRadio       Kind = "radio-field"
	KindSelect      Kind = "select-field"
	KindSwitch      Kind = "switch-field"
	KindFile        Kind = "file-field"
	KindDate        Kind = "date-field"
	KindFormControl Kind = "form-control"
	KindFieldErrors Kind = "field-errors"
	KindFormButton  Kind = "form-button"
	KindBaseForm    Kind = "base-form"
)

// Message keys looked up in the i18n catalog.
const (
	MsgFileBrowse       = "file.browse"
	MsgFileNoFile       = "file.no_file"
	MsgSelectPrompt     = "select.placeholder"
	MsgSwitchOn         = "switch.on"
	MsgSwitchOff        = "switch.off"
	MsgDateFormatHint   = "date.format_hint"
	MsgFormSubmit       = "form.submit"
	MsgFormErrorHeading = "form.errors_heading"
)

const templatePrefix = "templates/"

func templateName(kind Kind) string {
	return templatePrefix + string(kind) + ".tmpl"
}
