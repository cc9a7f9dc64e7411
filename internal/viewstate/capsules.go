package viewstate

import (
	"cmp"
	"encoding/json"
	"slices"
	"time"

	"github.com/MKhiriev/go-time-diary/models"
)

// CapsuleState is the time capsule screen. Capsules are partitioned by
// comparing their deadline to Now: a capsule is scheduled for its sender
// until the deadline passes, after which it is sent for the sender and
// received for every receiver.
type CapsuleState struct {
	Capsules      map[string]models.TimeCapsule `json:"capsules"`
	Users         map[string]models.User        `json:"users"`
	CurrentUserID string                        `json:"currentUserId"`
	ActiveTab     models.CapsuleTab             `json:"activeTab"`
	DialogVisible bool                          `json:"dialogVisible"`
	Now           time.Time                     `json:"now"`
}

func (s CapsuleState) Scheduled() []models.TimeCapsule {
	return s.filter(func(c models.TimeCapsule) bool {
		return c.SenderID == s.CurrentUserID && !c.IsOpen(s.Now)
	})
}

func (s CapsuleState) Sent() []models.TimeCapsule {
	return s.filter(func(c models.TimeCapsule) bool {
		return c.SenderID == s.CurrentUserID && c.IsOpen(s.Now)
	})
}

func (s CapsuleState) Received() []models.TimeCapsule {
	return s.filter(func(c models.TimeCapsule) bool {
		return c.HasReceiver(s.CurrentUserID) && c.IsOpen(s.Now)
	})
}

// Visible returns the capsules of the active tab.
func (s CapsuleState) Visible() []models.TimeCapsule {
	switch s.ActiveTab {
	case models.CapsuleTabSent:
		return s.Sent()
	case models.CapsuleTabReceived:
		return s.Received()
	default:
		return s.Scheduled()
	}
}

// filter returns matching capsules ordered by deadline, then id.
func (s CapsuleState) filter(keep func(models.TimeCapsule) bool) []models.TimeCapsule {
	out := make([]models.TimeCapsule, 0)
	for _, c := range s.Capsules {
		if keep(c) {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b models.TimeCapsule) int {
		if c := a.Deadline.Compare(b.Deadline); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

func (s CapsuleState) MarshalJSON() ([]byte, error) {
	type plain CapsuleState
	return json.Marshal(struct {
		plain
		Visible []models.TimeCapsule `json:"visible"`
	}{plain(s), s.Visible()})
}
