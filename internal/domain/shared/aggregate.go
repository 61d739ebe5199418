package shared

// AggregateRoot is the base interface for all aggregate roots
type AggregateRoot interface {
	Entity
	GetVersion() int
	IncrementVersion()
}

// BaseAggregateRoot provides common fields for aggregate roots
type BaseAggregateRoot struct {
	BaseEntity
	Version int `gorm:"not null;default:1"`
}

// GetVersion returns the aggregate version for optimistic locking
func (a *BaseAggregateRoot) GetVersion() int {
	return a.Version
}

// IncrementVersion increments the version number
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
}

// NewBaseAggregateRoot creates a new base aggregate root
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}

// OwnedAggregateRoot extends BaseAggregateRoot with per-user ownership.
// User IDs come from the external identity service and are opaque strings,
// not UUIDs minted by this service.
type OwnedAggregateRoot struct {
	BaseAggregateRoot
	UserID string `gorm:"type:varchar(64);not null;index"`
}

// NewOwnedAggregateRoot creates a new user-owned aggregate root
func NewOwnedAggregateRoot(userID string) OwnedAggregateRoot {
	return OwnedAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		UserID:            userID,
	}
}

// GetUserID returns the owning user ID
func (o *OwnedAggregateRoot) GetUserID() string {
	return o.UserID
}
