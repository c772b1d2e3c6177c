package user

type User struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   []byte `json:"-"`
	Bio        string `json:"bio"`
	AvatarURL  string `json:"avatarUrl"`
	Language   string `json:"language"`
	Reputation int64  `json:"reputation"`
}
