package models

import "time"

// Listing is the cheapest listing found in one market scope.
type Listing struct {
	Price   int `json:"price"`
	WorldID int `json:"world_id,omitempty"`
	// WorldName is set for known worlds.
	WorldName string `json:"world_name,omitempty"`
}

// Tier groups the cheapest listings per market scope for one quality.
type Tier struct {
	World      *Listing `json:"world,omitempty"`
	DataCenter *Listing `json:"data_center,omitempty"`
	Region     *Listing `json:"region,omitempty"`
}

// Lowest returns the narrowest-scope listing available.
func (t Tier) Lowest() *Listing {
	switch {
	case t.World != nil:
		return t.World
	case t.DataCenter != nil:
		return t.DataCenter
	default:
		return t.Region
	}
}

// Empty reports whether the tier carries no listing at all.
func (t Tier) Empty() bool {
	return t.World == nil && t.DataCenter == nil && t.Region == nil
}

// Price is a market price snapshot for an item.
type Price struct {
	// World is the market world the snapshot was taken for.
	World string `json:"world"`
	// NQ and HQ hold normal and high quality listings.
	NQ Tier `json:"nq"`
	HQ Tier `json:"hq"`
	// OldestUpload is the oldest market board upload that contributed.
	OldestUpload time.Time `json:"oldest_upload,omitempty"`
	// FetchedAt is when the snapshot was retrieved.
	FetchedAt time.Time `json:"fetched_at"`
}

// Clone returns a deep copy of the price.
func (p Price) Clone() Price {
	out := p
	out.NQ = p.NQ.clone()
	out.HQ = p.HQ.clone()
	return out
}

// Age returns how long ago the price was fetched.
func (p Price) Age(now time.Time) time.Duration {
	return now.Sub(p.FetchedAt)
}

func (t Tier) clone() Tier {
	return Tier{
		World:      cloneListing(t.World),
		DataCenter: cloneListing(t.DataCenter),
		Region:     cloneListing(t.Region),
	}
}

func cloneListing(l *Listing) *Listing {
	if l == nil {
		return nil
	}
	c := *l
	return &c
}
