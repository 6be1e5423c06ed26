package models

// User represents an account entity used for authentication and profile
// display. The username is the unique identifier and is immutable after
// registration.
//
// Password is stored and compared as plain text. This mirrors the behaviour
// of the legacy application and is a known weakness, kept deliberately until
// a credential-hardening pass is scheduled.
type User struct {
	// Username is the unique user identifier used during authentication
	// and as the key for all persistence operations.
	Username string `json:"username"`

	// Password is the opaque credential string compared verbatim at login.
	Password string `json:"-"`

	// Firstname, Lastname, Email and Address are optional free-text profile
	// fields, empty until the user submits the details form.
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Address   string `json:"address"`

	// LimerickFilename is the name of the user's uploaded limerick file in
	// the file store ("<username>_Limerick.txt"), or empty when nothing has
	// been uploaded yet.
	LimerickFilename string `json:"limerick_filename"`

	// LimerickWordcount is the number of whitespace-separated words in the
	// uploaded file. Recomputed from the file contents on every upload;
	// meaningful only when LimerickFilename is set.
	LimerickWordcount int `json:"limerick_wordcount"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasLimerick reports whether the user has an uploaded limerick on record.
func (u User) HasLimerick() bool {
	return u.LimerickFilename != ""
}
