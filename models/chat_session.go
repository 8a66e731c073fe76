package models

import "time"

// ChatState is a node of the WhatsApp booking dialogue.
type ChatState string

const (
	StateGreeting      ChatState = "GREETING"
	StateChooseIntent  ChatState = "CHOOSE_INTENT"
	StateFAQ           ChatState = "FAQ"
	StateTravelDate    ChatState = "TRAVEL_DATE"
	StatePeopleCount   ChatState = "PEOPLE_COUNT"
	StateBudget        ChatState = "BUDGET"
	StateCity          ChatState = "CITY"
	StateShowPackage   ChatState = "SHOW_PACKAGE"
	StatePackageSelect ChatState = "PACKAGE_SELECT"
	StateFallback      ChatState = "FALLBACK"
)

// PartyCount is the guest breakdown collected by the chatbot.
type PartyCount struct {
	Adults  int `bson:"adults" json:"adults"`
	Kids    int `bson:"kids" json:"kids"`
	Infants int `bson:"infants" json:"infants"`
}

// PackageOption is a package offered to a guest in the numbered list.
type PackageOption struct {
	ID       string  `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Currency string  `bson:"currency,omitempty" json:"currency,omitempty"`
}

// ChatData is everything the dialogue has collected so far.
type ChatData struct {
	TravelDate string          `bson:"travel_date,omitempty" json:"travel_date,omitempty"`
	People     *PartyCount     `bson:"people,omitempty" json:"people,omitempty"`
	Budget     int             `bson:"budget,omitempty" json:"budget,omitempty"`
	City       string          `bson:"city,omitempty" json:"city,omitempty"`
	Packages   []PackageOption `bson:"packages,omitempty" json:"packages,omitempty"`
	Selected   *PackageOption  `bson:"selected,omitempty" json:"selected,omitempty"`
}

// ChatSession is the per-phone conversation record. Phone is the identity key.
type ChatSession struct {
	Phone     string    `bson:"phone" json:"phone"`
	State     ChatState `bson:"state" json:"state"`
	Data      ChatData  `bson:"data" json:"data"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
