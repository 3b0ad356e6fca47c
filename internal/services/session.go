package services

import (
	"agroconnect/internal/domain"
	"agroconnect/internal/repos"
)

// Session is what every service call needs to know about the caller: the
// browser profile, that profile's keys, and the resolved identity (nil when
// signed out).
type Session struct {
	ProfileID string
	KV        repos.KV
	Identity  *domain.Identity
}

func NewSession(store repos.Store, profileID string, id *domain.Identity) Session {
	return Session{ProfileID: profileID, KV: repos.Scope(store, profileID), Identity: id}
}

func (s Session) SignedIn() bool { return s.Identity != nil && s.Identity.ID != "" }

func (s Session) UserID() string {
	if s.Identity == nil {
		return ""
	}
	return s.Identity.ID
}
