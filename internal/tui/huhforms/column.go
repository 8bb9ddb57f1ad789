package huhforms

import "charm.land/huh/v2"

// CreateColumnForm creates a huh form for adding or renaming a stage column.
// The form contains a single input field for the column title.
// No confirmation field is used - the form saves on completion.
func CreateColumnForm(
	title *string,
	isEdit bool,
) *huh.Form {
	label := "New Stage Name"
	if isEdit {
		label = "Rename Stage"
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title(label).
			Placeholder("Enter stage name...").
			Value(title),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}
