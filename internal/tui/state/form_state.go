package state

import "charm.land/huh/v2"

// FormState holds the active huh forms and the draft values they edit.
// Draft fields are plain strings so the forms can bind to them directly;
// parsing happens on submit.
type FormState struct {
	CardForm   *huh.Form
	ColumnForm *huh.Form

	// Card draft fields
	Client      string
	OrderNumber string
	ProductName string
	Price       string
	Prepayment  string
	Deadline    string
	Priority    string
	Confirm     bool

	// Column draft fields
	ColumnTitle string

	// EditingCardID is the card being edited, 0 when creating
	EditingCardID int
	// EditingColumnID is the column being renamed, 0 when creating
	EditingColumnID int
	// TargetColumnID is the column a new card will be added to
	TargetColumnID int
}

// NewFormState creates an empty FormState.
func NewFormState() *FormState {
	return &FormState{}
}

// ResetCard clears the card form and its draft values.
func (s *FormState) ResetCard() {
	s.CardForm = nil
	s.Client = ""
	s.OrderNumber = ""
	s.ProductName = ""
	s.Price = ""
	s.Prepayment = ""
	s.Deadline = ""
	s.Priority = ""
	s.Confirm = false
	s.EditingCardID = 0
	s.TargetColumnID = 0
}

// ResetColumn clears the column form and its draft values.
func (s *FormState) ResetColumn() {
	s.ColumnForm = nil
	s.ColumnTitle = ""
	s.EditingColumnID = 0
}
