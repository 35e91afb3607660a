// Package sample declares a notification record whose enums are generated
// by garnish-enum from enums.yaml.
package sample

//go:generate go run ../../cmd/garnish-enum enums.yaml

import "github.com/zoobzio/garnish"

// Notification exercises the generated enums alongside the other units.
type Notification struct {
	ID       garnish.Hex                `json:"id" yaml:"id" msgpack:"id" bson:"id" garnish:"hex"`
	Priority Priority                   `json:"priority" yaml:"priority" msgpack:"priority" bson:"priority" garnish:"enum"`
	Channels garnish.CommaList[Channel] `json:"channels" yaml:"channels" msgpack:"channels" bson:"channels" garnish:"commalist"`
	SentAt   garnish.Timestamp          `json:"sent_at" yaml:"sent_at" msgpack:"sent_at" bson:"sent_at" garnish:"timestamp"`
	Subject  garnish.Nullable[string]   `json:"subject,omitzero" yaml:"subject,omitempty" msgpack:"subject,omitempty" bson:"subject,omitempty" garnish:"nullable"`
}
