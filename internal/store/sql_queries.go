package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-limerick-locker/models"
)

// userColumns lists every persisted column of the users table in the order
// repository scans expect them.
var userColumns = []string{
	"username",
	"password",
	"firstname",
	"lastname",
	"email",
	"address",
	"limerick_filename",
	"limerick_wordcount",
}

// createUserQuery builds the INSERT for a freshly registered user. Only the
// credentials are set; profile and upload columns keep their defaults.
func (db *DB) createUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(user.TableName()).
		Columns("username", "password").
		Values(user.Username, user.Password).
		ToSql()
}

// findUserByUsernameQuery builds the point lookup for a single user row.
func (db *DB) findUserByUsernameQuery(username string) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}

// updateDetailsQuery builds the UPDATE that overwrites the four profile
// fields of the row matching user.Username.
func (db *DB) updateDetailsQuery(user models.User) (string, []any, error) {
	return db.builder.
		Update(user.TableName()).
		SetMap(sq.Eq{
			"firstname": user.Firstname,
			"lastname":  user.Lastname,
			"email":     user.Email,
			"address":   user.Address,
		}).
		Where(sq.Eq{"username": user.Username}).
		ToSql()
}

// updateLimerickQuery builds the UPDATE that overwrites the uploaded-file
// metadata of the row matching username.
func (db *DB) updateLimerickQuery(username, filename string, wordcount int) (string, []any, error) {
	return db.builder.
		Update(models.User{}.TableName()).
		SetMap(sq.Eq{
			"limerick_filename":  filename,
			"limerick_wordcount": wordcount,
		}).
		Where(sq.Eq{"username": username}).
		ToSql()
}
