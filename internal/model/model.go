package model

import "time"

type ClientStatus string

const (
	ClientStatusScheduling ClientStatus = "scheduling"
	ClientStatusFilming    ClientStatus = "filming"
)

type Phase string

const (
	PhaseScripting Phase = "scripting"
	PhaseFilming   Phase = "filming"
)

type EntryType string

const (
	EntryTypeTask  EntryType = "task"
	EntryTypeEvent EntryType = "event"
	EntryTypeItem  EntryType = "item"
)

// Palette is the fixed set of client accent colors. Colors need not be
// unique across clients.
var Palette = []string{
	"#22c55e", "#3b82f6", "#eab308", "#ef4444",
	"#a855f7", "#14b8a6", "#f97316", "#8b5cf6",
}

// NeutralColor is used when an event references a deleted client.
const NeutralColor = "#999999"

// UnknownClientName is the display fallback for dangling client references.
const UnknownClientName = "Unknown"

// Socials holds per-channel handles or URLs. All fields are optional free text.
type Socials struct {
	Instagram string `json:"instagram,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	Other     string `json:"other,omitempty"`
}

type Todo struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type Client struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	OnboardDate string       `json:"onboardDate"` // YYYY-MM-DD
	Socials     Socials      `json:"socials"`
	Color       string       `json:"color"`
	Status      ClientStatus `json:"status"`
	Todos       []Todo       `json:"todos"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// Event is a single scheduled entry occupying exactly one calendar day.
// Multi-day input is expanded at creation time into independent Events,
// one per covered day; there is no spanning record.
type Event struct {
	ID       string    `json:"id"`
	ClientID string    `json:"clientId"`
	Type     EntryType `json:"type"`
	Title    string    `json:"title"`
	Date     string    `json:"date"` // YYYY-MM-DD
	AllDay   bool      `json:"allDay"`
	Time     string    `json:"time,omitempty"` // HH:MM; ignored when AllDay
	Phase    Phase     `json:"phase"`
}

func ParseClientStatus(s string) (ClientStatus, bool) {
	switch ClientStatus(s) {
	case ClientStatusScheduling, ClientStatusFilming:
		return ClientStatus(s), true
	}
	return "", false
}

func ParsePhase(s string) (Phase, bool) {
	switch Phase(s) {
	case PhaseScripting, PhaseFilming:
		return Phase(s), true
	}
	return "", false
}

func ParseEntryType(s string) (EntryType, bool) {
	switch EntryType(s) {
	case EntryTypeTask, EntryTypeEvent, EntryTypeItem:
		return EntryType(s), true
	}
	return "", false
}

// ValidColor reports whether c is one of the palette colors.
func ValidColor(c string) bool {
	for _, p := range Palette {
		if p == c {
			return true
		}
	}
	return false
}
