package mutate

import (
	"strings"

	"marlow-cli/internal/model"
	"marlow-cli/internal/schedule"
	"marlow-cli/internal/store"
)

// EventSpec is the create intent for one entry or a multi-day run. With
// Multi set and EndDate >= Date, one independent event is created per
// calendar day in the closed interval; otherwise exactly one at Date.
type EventSpec struct {
	ClientID string
	Type     model.EntryType
	Title    string
	Date     string
	EndDate  string
	Multi    bool
	AllDay   bool
	Time     string
	Phase    model.Phase
}

// CreateEvents expands the date range and appends the resulting events. Each
// created event shares all fields except ID and Date. Editing one of them
// later never touches its siblings.
func CreateEvents(db *store.DB, s store.Store, spec EventSpec) ([]model.Event, error) {
	title := strings.TrimSpace(spec.Title)
	if title == "" {
		return nil, ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if spec.ClientID != "" {
		if _, ok := db.FindClient(spec.ClientID); !ok {
			return nil, NotFoundError{Kind: "client", ID: spec.ClientID}
		}
	}

	typ := spec.Type
	if typ == "" {
		typ = model.EntryTypeTask
	} else if _, ok := model.ParseEntryType(string(typ)); !ok {
		return nil, ValidationError{Field: "type", Reason: "expected task|event|item"}
	}

	phase := spec.Phase
	if phase == "" {
		phase = model.PhaseScripting
	} else if _, ok := model.ParsePhase(string(phase)); !ok {
		return nil, ValidationError{Field: "phase", Reason: "expected scripting|filming"}
	}

	date := strings.TrimSpace(spec.Date)
	if date == "" {
		date = schedule.Today()
	}
	dates, err := schedule.Expand(date, strings.TrimSpace(spec.EndDate), spec.Multi)
	if err != nil {
		return nil, ValidationError{Field: "date", Reason: err.Error()}
	}

	created := make([]model.Event, 0, len(dates))
	for _, d := range dates {
		created = append(created, model.Event{
			ID:       s.NextID(db, "evt"),
			ClientID: spec.ClientID,
			Type:     typ,
			Title:    title,
			Date:     d,
			AllDay:   spec.AllDay,
			Time:     spec.Time,
			Phase:    phase,
		})
	}
	db.Events = append(db.Events, created...)
	return created, nil
}

// EventPatch replaces only the fields that are set. ID is never patchable,
// and a patch updates a single record: multi-day runs are never re-expanded.
type EventPatch struct {
	ClientID *string
	Type     *model.EntryType
	Title    *string
	Date     *string
	AllDay   *bool
	Time     *string
	Phase    *model.Phase
}

func UpdateEvent(db *store.DB, id string, patch EventPatch) error {
	ev, ok := db.FindEvent(id)
	if !ok {
		return NotFoundError{Kind: "event", ID: id}
	}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return ValidationError{Field: "title", Reason: "must not be empty"}
		}
		ev.Title = title
	}
	if patch.Date != nil {
		if !schedule.ValidDate(*patch.Date) {
			return ValidationError{Field: "date", Reason: "expected YYYY-MM-DD"}
		}
		ev.Date = *patch.Date
	}
	if patch.ClientID != nil {
		if *patch.ClientID != "" {
			if _, ok := db.FindClient(*patch.ClientID); !ok {
				return NotFoundError{Kind: "client", ID: *patch.ClientID}
			}
		}
		ev.ClientID = *patch.ClientID
	}
	if patch.Type != nil {
		if _, ok := model.ParseEntryType(string(*patch.Type)); !ok {
			return ValidationError{Field: "type", Reason: "expected task|event|item"}
		}
		ev.Type = *patch.Type
	}
	if patch.AllDay != nil {
		ev.AllDay = *patch.AllDay
	}
	if patch.Time != nil {
		ev.Time = *patch.Time
	}
	if patch.Phase != nil {
		if _, ok := model.ParsePhase(string(*patch.Phase)); !ok {
			return ValidationError{Field: "phase", Reason: "expected scripting|filming"}
		}
		ev.Phase = *patch.Phase
	}
	return nil
}

func DeleteEvent(db *store.DB, id string) error {
	for i := range db.Events {
		if db.Events[i].ID == id {
			db.Events = append(db.Events[:i], db.Events[i+1:]...)
			return nil
		}
	}
	return NotFoundError{Kind: "event", ID: id}
}
