package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// manager fails because a manager with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoManagerWasFound is returned when a query expected to match at
	// least one manager record produces an empty result set.
	ErrNoManagerWasFound = errors.New("no manager was found")

	// ErrPropertyNotFound is returned when a query or update targets a
	// property that does not exist in the database.
	ErrPropertyNotFound = errors.New("property was not found")

	// ErrClientNotFound is returned when a query or update targets a client
	// that does not exist in the database.
	ErrClientNotFound = errors.New("client was not found")

	// ErrSlugAlreadyExists is returned when an INSERT or UPDATE of a client
	// collides with an existing portfolio slug.
	ErrSlugAlreadyExists = errors.New("slug already exists")

	// ErrAlreadyAssigned is returned when a property is assigned to a client
	// that already has it in their portfolio.
	ErrAlreadyAssigned = errors.New("property is already assigned to this client")

	// ErrAssignmentNotFound is returned when an unassign or visibility update
	// targets a (client, property) pair with no assignment row.
	ErrAssignmentNotFound = errors.New("assignment was not found")

	// ErrAlreadyShared is returned when a client is shared with a manager who
	// already has access to it.
	ErrAlreadyShared = errors.New("client is already shared with this manager")

	// ErrShareNotFound is returned when a share revocation targets a share
	// row that does not exist.
	ErrShareNotFound = errors.New("client share was not found")

	// ErrQuoteNotFound is returned when a query or update targets a quote
	// that does not exist in the database.
	ErrQuoteNotFound = errors.New("quote was not found")

	// ErrQuoteNumberAlreadyExists is returned when an INSERT collides with an
	// existing quote number.
	ErrQuoteNumberAlreadyExists = errors.New("quote number already exists")

	// ErrInvoiceNotFound is returned when a query or update targets an
	// invoice that does not exist in the database.
	ErrInvoiceNotFound = errors.New("invoice was not found")

	// ErrInvoiceNumberAlreadyExists is returned when an INSERT collides with
	// an existing invoice number.
	ErrInvoiceNumberAlreadyExists = errors.New("invoice number already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrPreparingStatement is returned when a SQL statement cannot be
	// prepared (e.g. syntax error or connection issue).
	ErrPreparingStatement = errors.New("failed to prepare statement")

	// ErrExecutingStatement is returned when executing a prepared DML
	// statement (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
