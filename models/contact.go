// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Personality and bio enumerations accepted by the contact schema. An empty
// string means "not set".
const (
	Introversion = "introversion"
	Extroversion = "extroversion"
	Ambiversion  = "ambiversion"

	Intuiting = "intuiting"
	Sensing   = "sensing"

	Thinking = "thinking"
	Feeling  = "feeling"

	Planing    = "planing"
	Perceiving = "perceiving"

	TDPCreator  = "creator"
	TDPRefiner  = "refiner"
	TDPAdvancer = "advancer"
	TDPExecutor = "executor"
	TDPFlexor   = "flexor"
)

// Contact is the typed view of a contact record exchanged with the GraphQL
// API. String and []string fields listed in the contact field set (name,
// address, emails, phones, ...) travel as cipher envelopes on the wire and
// are decrypted before they reach callers.
type Contact struct {
	ID      string `json:"_id,omitempty"`
	OwnerID string `json:"ownerId,omitempty"`

	// Name card
	Emails      []string `json:"emails,omitempty"`
	Phones      []string `json:"phones,omitempty"`
	Name        string   `json:"name,omitempty"`
	AvatarURL   string   `json:"avatarUrl,omitempty"`
	Address     string   `json:"address,omitempty"`
	BornAt      string   `json:"bornAt,omitempty"`
	BornAddress string   `json:"bornAddress,omitempty"`
	Gender      string   `json:"gender,omitempty"`

	// How do we meet?
	KnownAt     string `json:"knownAt,omitempty"`
	KnownSource string `json:"knownSource,omitempty"`

	// Personalities
	ExtraversionIntroversion string `json:"extraversionIntroversion,omitempty"`
	IntuitingSensing         string `json:"intuitingSensing,omitempty"`
	ThinkingFeeling          string `json:"thinkingFeeling,omitempty"`
	PlaningPerceiving        string `json:"planingPerceiving,omitempty"`
	TDP                      string `json:"tdp,omitempty"`
	InboundTrust             int    `json:"inboundTrust,omitempty"`
	OutboundTrust            int    `json:"outboundTrust,omitempty"`

	// Bio
	Blurb     string `json:"blurb,omitempty"`
	WorkingOn string `json:"workingOn,omitempty"`
	Desire    string `json:"desire,omitempty"`

	// Experiences
	Title      string       `json:"title,omitempty"`
	Experience []Experience `json:"experience,omitempty"`
	Education  []Experience `json:"education,omitempty"`

	// Social
	LinkedIn string `json:"linkedin,omitempty"`
	Facebook string `json:"facebook,omitempty"`
	WeChat   string `json:"wechat,omitempty"`
	GitHub   string `json:"github,omitempty"`

	// Hmacs holds the search tokens computed from plaintext discriminators
	// before encryption. Never encrypted.
	Hmacs map[string]string `json:"hmacs,omitempty"`

	// Meta
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Experience is a single work or education entry of a contact.
type Experience struct {
	Title string `json:"title"`
	Name  string `json:"name"`
}

// ListContactsQuery holds the paging window for the contacts operation.
type ListContactsQuery struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
