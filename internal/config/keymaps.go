package config

// KeyMappings holds the keyboard bindings for the board.
type KeyMappings struct {
	Quit         string `yaml:"quit"`
	Help         string `yaml:"help"`
	Refresh      string `yaml:"refresh"`
	ToggleView   string `yaml:"toggle_view"`
	ScrollLeft   string `yaml:"scroll_left"`
	ScrollRight  string `yaml:"scroll_right"`
	MoveLeft     string `yaml:"move_left"`
	MoveRight    string `yaml:"move_right"`
	MoveUp       string `yaml:"move_up"`
	MoveDown     string `yaml:"move_down"`
	PickUp       string `yaml:"pick_up"`
	AddCard      string `yaml:"add_card"`
	EditCard     string `yaml:"edit_card"`
	DeleteCard   string `yaml:"delete_card"`
	AddColumn    string `yaml:"add_column"`
	RenameColumn string `yaml:"rename_column"`
	DeleteColumn string `yaml:"delete_column"`
}

// DefaultKeyMappings returns the built-in bindings.
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		Quit:         "q",
		Help:         "?",
		Refresh:      "r",
		ToggleView:   "v",
		ScrollLeft:   "H",
		ScrollRight:  "L",
		MoveLeft:     "h",
		MoveRight:    "l",
		MoveUp:       "k",
		MoveDown:     "j",
		PickUp:       "enter",
		AddCard:      "a",
		EditCard:     "e",
		DeleteCard:   "d",
		AddColumn:    "A",
		RenameColumn: "R",
		DeleteColumn: "D",
	}
}

// applyDefaults fills empty bindings from the defaults so a partial
// key_mappings section never produces dead keys.
func (k *KeyMappings) applyDefaults() {
	def := DefaultKeyMappings()
	if k.Quit == "" {
		k.Quit = def.Quit
	}
	if k.Help == "" {
		k.Help = def.Help
	}
	if k.Refresh == "" {
		k.Refresh = def.Refresh
	}
	if k.ToggleView == "" {
		k.ToggleView = def.ToggleView
	}
	if k.ScrollLeft == "" {
		k.ScrollLeft = def.ScrollLeft
	}
	if k.ScrollRight == "" {
		k.ScrollRight = def.ScrollRight
	}
	if k.MoveLeft == "" {
		k.MoveLeft = def.MoveLeft
	}
	if k.MoveRight == "" {
		k.MoveRight = def.MoveRight
	}
	if k.MoveUp == "" {
		k.MoveUp = def.MoveUp
	}
	if k.MoveDown == "" {
		k.MoveDown = def.MoveDown
	}
	if k.PickUp == "" {
		k.PickUp = def.PickUp
	}
	if k.AddCard == "" {
		k.AddCard = def.AddCard
	}
	if k.EditCard == "" {
		k.EditCard = def.EditCard
	}
	if k.DeleteCard == "" {
		k.DeleteCard = def.DeleteCard
	}
	if k.AddColumn == "" {
		k.AddColumn = def.AddColumn
	}
	if k.RenameColumn == "" {
		k.RenameColumn = def.RenameColumn
	}
	if k.DeleteColumn == "" {
		k.DeleteColumn = def.DeleteColumn
	}
}
