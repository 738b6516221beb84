package domain

// APIError is an error whose message is a machine-readable code from the
// closed catalog below. Clients branch on the code directly, so the exact
// strings are part of the wire contract and must never change.
type APIError struct {
	code string
}

func (e *APIError) Error() string { return e.code }

func apiErr(code string) *APIError { return &APIError{code: code} }

// Auth gate.
var (
	ErrTokenNotProvided = apiErr("token_not_provided")
	ErrInvalidToken     = apiErr("invalid_token")
)

// User.
var (
	ErrEmailNotString         = apiErr("email_not_string")
	ErrPasswordNotString      = apiErr("password_not_string")
	ErrFirstNameNotString     = apiErr("firstname_not_string")
	ErrLastNameNotString      = apiErr("lastname_not_string")
	ErrAgeNotNumber           = apiErr("age_not_number")
	ErrInvalidEmail           = apiErr("invalid_email")
	ErrInvalidPassword        = apiErr("invalid_password")
	ErrInvalidFirstName       = apiErr("invalid_firstname")
	ErrInvalidLastName        = apiErr("invalid_lastname")
	ErrInvalidAge             = apiErr("invalid_age")
	ErrUserExists             = apiErr("user_exists")
	ErrInvalidPasswordOrEmail = apiErr("invalid_password_or_email")
	ErrCannotCreateUser       = apiErr("cannot_create_user")
)

// Author.
var (
	ErrNameNotString          = apiErr("name_not_string")
	ErrSurnameNotString       = apiErr("surname_not_string")
	ErrNationalityNotString   = apiErr("nationality_not_string")
	ErrBiographyNotString     = apiErr("biography_not_string")
	ErrPageNotNumber          = apiErr("page_not_number")
	ErrLimitNotNumber         = apiErr("limit_not_number")
	ErrInvalidNameLength      = apiErr("invalid_name_length")
	ErrInvalidSurnameLength   = apiErr("invalid_surname_length")
	ErrInvalidBiographyLength = apiErr("invalid_biography_length")
	ErrOnlyLatinName          = apiErr("only_latin_chars_for_name")
	ErrOnlyLatinSurname       = apiErr("only_latin_chars_for_surname")
	ErrOnlyLatinBiography     = apiErr("only_latin_chars_for_biography")
	ErrInvalidNationality     = apiErr("invalid_nationality")
	ErrInvalidAuthorID        = apiErr("invalid_author_id")
	ErrInvalidAuthorReplacing = apiErr("invalid_author_replacing")
	ErrAuthorNotFound         = apiErr("author_not_found")
	ErrCannotCreateAuthor     = apiErr("cannot_create_author")
	ErrCannotReplaceAuthor    = apiErr("cannot_replace_author")
	ErrCannotRemoveAuthor     = apiErr("cannot_remove_author")
)

// Book.
var (
	ErrTitleNotString       = apiErr("title_not_string")
	ErrDescriptionNotString = apiErr("description_not_string")
	ErrCategoryNotString    = apiErr("category_not_string")
	ErrPagesNotNumber       = apiErr("number_of_pages_not_number")
	ErrAuthorIDNotString    = apiErr("author_id_not_string")
	ErrMinPagesNotNumber    = apiErr("min_number_of_pages_not_number")
	ErrMaxPagesNotNumber    = apiErr("max_number_of_pages_not_number")
	ErrInvalidTitleLength   = apiErr("invalid_title_length")
	ErrInvalidDescLength    = apiErr("invalid_description_length")
	ErrInvalidNumberOfPages = apiErr("invalid_number_of_pages")
	ErrInvalidCategory      = apiErr("invalid_category")
	ErrInvalidBookID        = apiErr("invalid_book_id")
	ErrInvalidBookReplacing = apiErr("invalid_book_replacing")
	ErrInvalidAuthorsIDs    = apiErr("invalid_authors_ids")
	ErrOnlyLatinTitle       = apiErr("only_latin_chars_for_title")
	ErrOnlyLatinDescription = apiErr("only_latin_chars_for_description")
	ErrBookNotFound         = apiErr("book_not_found")
	ErrCannotCreateBook     = apiErr("cannot_create_book")
	ErrCannotReplaceBook    = apiErr("cannot_replace_book")
	ErrCannotRemoveBook     = apiErr("cannot_remove_book")
)

// Shared.
var (
	ErrInvalidUser           = apiErr("invalid_user")
	ErrMongoConnectionFailed = apiErr("mongo_connection_failed")
)
