package models

import (
	"errors"
	"fmt"
	"time"
)

// TimeCapsule is a message visible to its sender until Deadline and to its
// receivers once Deadline has passed.
type TimeCapsule struct {
	ID             string    `json:"id"`
	SenderID       string    `json:"senderId"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
	Deadline       time.Time `json:"deadline"`
	ReceiverIDs    []string  `json:"receiverIds"`
	ReceiverEmails []string  `json:"receiverEmails"`
	ReceiverPhones []string  `json:"receiverPhones"`
}

// IsOpen reports whether the deadline is not after now.
func (c TimeCapsule) IsOpen(now time.Time) bool {
	return !c.Deadline.After(now)
}

// HasReceiver reports whether userID is listed among the receivers.
func (c TimeCapsule) HasReceiver(userID string) bool {
	for _, id := range c.ReceiverIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// CapsuleTab selects one partition of the capsule screen.
// ErrUnknownCapsuleTab is returned by [ParseCapsuleTab].
var ErrUnknownCapsuleTab = errors.New("unknown capsule tab")

type CapsuleTab string

const (
	CapsuleTabScheduled CapsuleTab = "scheduled"
	CapsuleTabSent      CapsuleTab = "sent"
	CapsuleTabReceived  CapsuleTab = "received"
)

// ParseCapsuleTab converts s into a [CapsuleTab]. An empty string selects
// [CapsuleTabScheduled].
func ParseCapsuleTab(s string) (CapsuleTab, error) {
	switch CapsuleTab(s) {
	case "":
		return CapsuleTabScheduled, nil
	case CapsuleTabScheduled, CapsuleTabSent, CapsuleTabReceived:
		return CapsuleTab(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCapsuleTab, s)
}
