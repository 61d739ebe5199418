package identity

// User is the account profile held by the external identity service. It is
// never persisted locally; other aggregates reference it through its ID.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
