package mutate

import (
	"math/rand"
	"strings"
	"time"

	"marlow-cli/internal/model"
	"marlow-cli/internal/schedule"
	"marlow-cli/internal/store"
)

// ClientParams carries the create-intent fields. Everything except Name is
// optional and defaulted.
type ClientParams struct {
	Name        string
	OnboardDate string
	Socials     model.Socials
	Color       string
	Status      model.ClientStatus
}

// CreateClient validates and appends a new client, making it the active
// client. Callers are responsible for saving the db.
func CreateClient(db *store.DB, s store.Store, p ClientParams) (*model.Client, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ValidationError{Field: "name", Reason: "must not be empty"}
	}

	onboard := strings.TrimSpace(p.OnboardDate)
	if onboard == "" {
		onboard = schedule.Today()
	} else if !schedule.ValidDate(onboard) {
		return nil, ValidationError{Field: "onboard date", Reason: "expected YYYY-MM-DD"}
	}

	color := p.Color
	if color == "" {
		color = model.Palette[rand.Intn(len(model.Palette))]
	} else if !model.ValidColor(color) {
		return nil, ValidationError{Field: "color", Reason: "not in the palette"}
	}

	status := p.Status
	if status == "" {
		status = model.ClientStatusScheduling
	}

	c := model.Client{
		ID:          s.NextID(db, "client"),
		Name:        name,
		OnboardDate: onboard,
		Socials:     p.Socials,
		Color:       color,
		Status:      status,
		Todos:       []model.Todo{},
		CreatedAt:   time.Now().UTC(),
	}
	db.Clients = append(db.Clients, c)
	db.ActiveClientID = c.ID
	return &db.Clients[len(db.Clients)-1], nil
}

// ClientPatch replaces only the fields that are set; nil fields are left
// untouched. ID and CreatedAt are never patchable.
type ClientPatch struct {
	Name        *string
	OnboardDate *string
	Socials     *model.Socials
	Color       *string
	Status      *model.ClientStatus
}

func UpdateClient(db *store.DB, id string, patch ClientPatch) error {
	c, ok := db.FindClient(id)
	if !ok {
		return NotFoundError{Kind: "client", ID: id}
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return ValidationError{Field: "name", Reason: "must not be empty"}
		}
		c.Name = name
	}
	if patch.OnboardDate != nil {
		if !schedule.ValidDate(*patch.OnboardDate) {
			return ValidationError{Field: "onboard date", Reason: "expected YYYY-MM-DD"}
		}
		c.OnboardDate = *patch.OnboardDate
	}
	if patch.Socials != nil {
		c.Socials = *patch.Socials
	}
	if patch.Color != nil {
		if !model.ValidColor(*patch.Color) {
			return ValidationError{Field: "color", Reason: "not in the palette"}
		}
		c.Color = *patch.Color
	}
	if patch.Status != nil {
		if _, ok := model.ParseClientStatus(string(*patch.Status)); !ok {
			return ValidationError{Field: "status", Reason: "expected scheduling|filming"}
		}
		c.Status = *patch.Status
	}
	return nil
}

// DeleteClient removes the client and cascades to every event referencing
// it, then re-heals the active-client selection. Returns the number of
// cascaded events.
func DeleteClient(db *store.DB, id string) (int, error) {
	if _, ok := db.FindClient(id); !ok {
		return 0, NotFoundError{Kind: "client", ID: id}
	}

	clients := db.Clients[:0]
	for _, c := range db.Clients {
		if c.ID != id {
			clients = append(clients, c)
		}
	}
	db.Clients = clients

	removed := 0
	events := db.Events[:0]
	for _, ev := range db.Events {
		if ev.ClientID == id {
			removed++
			continue
		}
		events = append(events, ev)
	}
	db.Events = events

	store.Repair(db)
	return removed, nil
}

func SetActiveClient(db *store.DB, id string) error {
	if _, ok := db.FindClient(id); !ok {
		return NotFoundError{Kind: "client", ID: id}
	}
	db.ActiveClientID = id
	return nil
}

func AddTodo(db *store.DB, s store.Store, clientID, text string) (*model.Todo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ValidationError{Field: "todo", Reason: "must not be empty"}
	}
	c, ok := db.FindClient(clientID)
	if !ok {
		return nil, NotFoundError{Kind: "client", ID: clientID}
	}
	c.Todos = append(c.Todos, model.Todo{ID: s.NextID(db, "todo"), Text: text})
	return &c.Todos[len(c.Todos)-1], nil
}

func RemoveTodo(db *store.DB, clientID, todoID string) error {
	c, ok := db.FindClient(clientID)
	if !ok {
		return NotFoundError{Kind: "client", ID: clientID}
	}
	for i := range c.Todos {
		if c.Todos[i].ID == todoID {
			c.Todos = append(c.Todos[:i], c.Todos[i+1:]...)
			return nil
		}
	}
	return NotFoundError{Kind: "todo", ID: todoID}
}

// SetLogo stores the data-URI logo scalar; an empty string clears it.
func SetLogo(db *store.DB, dataURI string) {
	db.Logo = strings.TrimSpace(dataURI)
}
