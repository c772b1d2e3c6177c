package user

import (
	"database/sql"
	"errors"

	"codequest/pkg/errs"

	"github.com/go-sql-driver/mysql"
)

const userColumns = "`id`, `username`, `email`, `password`, `bio`, `avatar_url`, `language`, `reputation`"

// ER_DUP_ENTRY
const duplicateEntryErrCode = 1062

type UserRepoSQL struct {
	db *sql.DB
}

func NewUserRepoSQL(db *sql.DB) *UserRepoSQL {
	return &UserRepoSQL{db: db}
}

func scanUser(r *sql.Row) (*User, error) {
	u := User{}
	err := r.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.Bio, &u.AvatarURL, &u.Language, &u.Reputation)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (repo *UserRepoSQL) GetByID(id int64) (*User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE id = ?"
	return scanUser(repo.db.QueryRow(query, id))
}

func (repo *UserRepoSQL) GetByUsername(username string) (*User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE username = ?"
	return scanUser(repo.db.QueryRow(query, username))
}

func (repo *UserRepoSQL) Add(user *User) (int64, error) {
	query := "INSERT INTO users (`username`, `email`, `password`, `bio`, `avatar_url`, `language`) VALUES (?, ?, ?, ?, ?, ?)"
	r, err := repo.db.Exec(query, user.Username, user.Email, user.Password, user.Bio, user.AvatarURL, user.Language)
	if err != nil {
		return 0, err
	}

	lastID, err := r.LastInsertId()
	if err != nil {
		return 0, err
	}

	return lastID, nil
}

// UpdateProfile does not inspect the affected-rows count: MySQL
// reports zero for a no-change update, which is not an error here.
func (repo *UserRepoSQL) UpdateProfile(id int64, bio, avatarURL string) error {
	query := "UPDATE users SET `bio` = ?, `avatar_url` = ? WHERE id = ?"
	_, err := repo.db.Exec(query, bio, avatarURL, id)
	return err
}

func (repo *UserRepoSQL) SetLanguage(id int64, language string) error {
	query := "UPDATE users SET `language` = ? WHERE id = ?"
	_, err := repo.db.Exec(query, language, id)
	return err
}

func (repo *UserRepoSQL) FriendIDs(id int64) ([]int64, error) {
	query := "SELECT `friend_id` FROM friends WHERE user_id = ?"
	rows, err := repo.db.Query(query, id)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	result := []int64{}
	for rows.Next() {
		var friendID int64
		err = rows.Scan(&friendID)
		if err != nil {
			return nil, err
		}

		result = append(result, friendID)
	}

	return result, rows.Err()
}

func (repo *UserRepoSQL) FriendCount(id int64) (int64, error) {
	query := "SELECT COUNT(*) FROM friends WHERE user_id = ?"
	var count int64
	err := repo.db.QueryRow(query, id).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// AddFriend inserts both directions of the edge in one transaction, so
// a crash or a concurrent call never leaves a one-way friendship.
func (repo *UserRepoSQL) AddFriend(userID, friendID int64) error {
	tx, err := repo.db.Begin()
	if err != nil {
		return err
	}

	defer tx.Rollback()

	var targetID int64
	err = tx.QueryRow("SELECT `id` FROM users WHERE id = ?", friendID).Scan(&targetID)
	if err == sql.ErrNoRows {
		return errs.ErrNotFound
	}
	if err != nil {
		return err
	}

	var existing int64
	err = tx.QueryRow("SELECT COUNT(*) FROM friends WHERE user_id = ? AND friend_id = ?", userID, friendID).Scan(&existing)
	if err != nil {
		return err
	}

	if existing > 0 {
		return errs.ErrAlreadyFriends
	}

	_, err = tx.Exec("INSERT INTO friends (`user_id`, `friend_id`) VALUES (?, ?), (?, ?)",
		userID, friendID, friendID, userID)
	if err != nil {
		// a concurrent AddFriend for the same pair slipped past the
		// count check and hit the composite primary key first
		mysqlErr := &mysql.MySQLError{}
		if errors.As(err, &mysqlErr) && mysqlErr.Number == duplicateEntryErrCode {
			return errs.ErrAlreadyFriends
		}

		return err
	}

	return tx.Commit()
}
