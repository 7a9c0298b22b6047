package model

type User struct {
	ID       string `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Password string `db:"password" json:"-"`
	Name     string `db:"name" json:"name"`
	Role     string `db:"role" json:"role"`
	Avatar   string `db:"avatar" json:"avatar"`
}
