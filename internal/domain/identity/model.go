package identity

// Role mirrors the account service's role taxonomy. Only game-management
// checks care about it here.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleIT        Role = "it"
	RoleEditor    Role = "editor"
	RoleAuthor    Role = "author"
	RoleModerator Role = "moderator"
	RoleVIP       Role = "vip"
	RoleUser      Role = "user"
)

// User is a registered account, owned by the account service and read-only
// here; enough shape to render a leaderboard row.
type User struct {
	ID       string
	Username string
	Avatar   string
	Role     Role
}

// CanManageGame reports whether the role may administer the prediction game.
func (u User) CanManageGame() bool {
	switch u.Role {
	case RoleAdmin, RoleIT, RoleEditor, RoleAuthor, RoleModerator:
		return true
	default:
		return false
	}
}
