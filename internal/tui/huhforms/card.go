// Package huhforms builds the huh forms used by the board's modal dialogs.
package huhforms

import "charm.land/huh/v2"

// CreateCardForm creates a huh form for adding/editing an order card.
// The form uses pointers to update draft values in place; parsing of
// price, prepayment and deadline happens on submit.
func CreateCardForm(
	client *string,
	orderNumber *string,
	productName *string,
	price *string,
	prepayment *string,
	deadline *string,
	priority *string,
	confirm *bool,
) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("client").
			Title("Client").
			Placeholder("Client name...").
			Value(client),
		huh.NewInput().
			Key("order_number").
			Title("Order №").
			Placeholder("e.g. 2024-117").
			Value(orderNumber),
		huh.NewInput().
			Key("product_name").
			Title("Product").
			Placeholder("e.g. Kitchen cabinet").
			Value(productName),
		huh.NewInput().
			Key("price").
			Title("Price ₽").
			Placeholder("0").
			Value(price),
		huh.NewInput().
			Key("prepayment").
			Title("Prepayment ₽").
			Placeholder("0").
			Value(prepayment),
		huh.NewInput().
			Key("deadline").
			Title("Deadline (YYYY-MM-DD)").
			Placeholder("2026-01-31").
			Value(deadline),
		huh.NewSelect[string]().
			Key("priority").
			Title("Priority").
			Options(
				huh.NewOption("Urgent", "urgent"),
				huh.NewOption("High", "high"),
				huh.NewOption("Normal", "normal"),
				huh.NewOption("Low", "low"),
			).
			Value(priority),
		huh.NewConfirm().
			Key("confirm").
			Title("Save this order?").
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
}
