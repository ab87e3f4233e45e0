package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/mvoronin/estate-keeper/models"
)

// psql is the package-wide squirrel statement builder configured for
// PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	managerColumns = `manager_id, email, name, phone, password_hash, created_at`

	createManager = `INSERT INTO property_managers (email, name, phone, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + managerColumns + `;`

	findManagerByEmail = `SELECT ` + managerColumns + `
    FROM property_managers
    WHERE email = $1;`

	getManager = `SELECT ` + managerColumns + `
    FROM property_managers
    WHERE manager_id = $1;`
)

const (
	propertyColumns = `property_id, listing_url, address, bedrooms, bathrooms, area, images, description,
		scraped_at, created_at, updated_at,
		show_monthly_rent, custom_monthly_rent,
		show_nightly_rate, custom_nightly_rate,
		show_purchase_price, custom_purchase_price,
		show_bedrooms, show_bathrooms, show_area, show_address, show_images,
		label_bedrooms, label_bathrooms, label_area,
		label_monthly_rent, label_nightly_rate, label_purchase_price,
		custom_notes`

	createProperty = `INSERT INTO properties (
			listing_url, address, bedrooms, bathrooms, area, images, description, scraped_at,
			show_monthly_rent, custom_monthly_rent,
			show_nightly_rate, custom_nightly_rate,
			show_purchase_price, custom_purchase_price,
			show_bedrooms, show_bathrooms, show_area, show_address, show_images,
			label_bedrooms, label_bathrooms, label_area,
			label_monthly_rent, label_nightly_rate, label_purchase_price,
			custom_notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
		RETURNING ` + propertyColumns + `;`

	getProperty = `SELECT ` + propertyColumns + `
		FROM properties
		WHERE property_id = $1;`

	listProperties = `SELECT ` + propertyColumns + `
		FROM properties
		ORDER BY created_at DESC;`

	updateProperty = `UPDATE properties
		SET listing_url = $1, address = $2, bedrooms = $3, bathrooms = $4, area = $5,
			images = $6, description = $7,
			show_monthly_rent = $8, custom_monthly_rent = $9,
			show_nightly_rate = $10, custom_nightly_rate = $11,
			show_purchase_price = $12, custom_purchase_price = $13,
			updated_at = NOW()
		WHERE property_id = $14
		RETURNING ` + propertyColumns + `;`

	deleteProperty = `DELETE FROM properties
		WHERE property_id = $1;`
)

const (
	clientColumns = `client_id, manager_id, name, email, phone, status, slug, last_accessed, created_at, updated_at`

	createClient = `INSERT INTO clients (manager_id, name, email, phone, status, slug)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + clientColumns + `;`

	getClient = `SELECT ` + clientColumns + `
		FROM clients
		WHERE client_id = $1;`

	getClientBySlug = `SELECT ` + clientColumns + `
		FROM clients
		WHERE slug = $1;`

	// listClientsWithDetails returns clients the manager owns plus clients
	// shared with them, each with the count of assigned properties.
	listClientsWithDetails = `SELECT c.client_id, c.manager_id, c.name, c.email, c.phone, c.status, c.slug,
			c.last_accessed, c.created_at, c.updated_at,
			COUNT(a.property_id) AS property_count
		FROM clients c
		LEFT JOIN client_property_assignments a ON a.client_id = c.client_id
		WHERE c.manager_id = $1
			OR c.client_id IN (SELECT client_id FROM client_shares WHERE shared_with_manager_id = $1)
		GROUP BY c.client_id
		ORDER BY c.created_at DESC;`

	updateClient = `UPDATE clients
		SET name = $1, email = $2, phone = $3, status = $4, slug = $5, updated_at = NOW()
		WHERE client_id = $6
		RETURNING ` + clientColumns + `;`

	deleteClient = `DELETE FROM clients
		WHERE client_id = $1;`

	touchClientLastAccessed = `UPDATE clients
		SET last_accessed = NOW()
		WHERE client_id = $1;`
)

const (
	// assignProperty appends the property to the end of the client's
	// portfolio in a single statement: the next position is derived from
	// the current maximum inside the INSERT itself. The visibility triple
	// is supplied by the caller.
	assignProperty = `INSERT INTO client_property_assignments
			(client_id, property_id, position,
			 show_monthly_rent_to_client, show_nightly_rate_to_client, show_purchase_price_to_client)
		SELECT $1, $2, COALESCE(MAX(position), -1) + 1, $3, $4, $5
		FROM client_property_assignments
		WHERE client_id = $1
		RETURNING client_id, property_id, position,
			show_monthly_rent_to_client, show_nightly_rate_to_client, show_purchase_price_to_client,
			created_at;`

	unassignProperty = `DELETE FROM client_property_assignments
		WHERE client_id = $1 AND property_id = $2;`

	updateAssignmentVisibility = `UPDATE client_property_assignments
		SET show_monthly_rent_to_client = $3,
			show_nightly_rate_to_client = $4,
			show_purchase_price_to_client = $5
		WHERE client_id = $1 AND property_id = $2;`

	// listAssignedProperties coalesces legacy NULL visibility columns to
	// TRUE at the read boundary so callers always see a concrete triple.
	// Rows without a position (legacy data) sort after positioned rows.
	listAssignedProperties = `SELECT p.property_id, p.listing_url, p.address, p.bedrooms, p.bathrooms, p.area,
			p.images, p.description, p.scraped_at, p.created_at, p.updated_at,
			p.show_monthly_rent, p.custom_monthly_rent,
			p.show_nightly_rate, p.custom_nightly_rate,
			p.show_purchase_price, p.custom_purchase_price,
			p.show_bedrooms, p.show_bathrooms, p.show_area, p.show_address, p.show_images,
			p.label_bedrooms, p.label_bathrooms, p.label_area,
			p.label_monthly_rent, p.label_nightly_rate, p.label_purchase_price,
			p.custom_notes,
			COALESCE(a.position, -1),
			COALESCE(a.show_monthly_rent_to_client, TRUE),
			COALESCE(a.show_nightly_rate_to_client, TRUE),
			COALESCE(a.show_purchase_price_to_client, TRUE)
		FROM client_property_assignments a
		JOIN properties p ON p.property_id = a.property_id
		WHERE a.client_id = $1
		ORDER BY a.position ASC NULLS LAST, a.created_at ASC;`

	nextAssignmentPosition = `SELECT COALESCE(MAX(position), -1) + 1
		FROM client_property_assignments
		WHERE client_id = $1;`

	// listClientSlugsForProperty is the reverse lookup used for cache
	// invalidation: every public portfolio that renders this property.
	listClientSlugsForProperty = `SELECT c.slug
		FROM client_property_assignments a
		JOIN clients c ON c.client_id = a.client_id
		WHERE a.property_id = $1;`

	bulkUnassignProperties = `DELETE FROM client_property_assignments
		WHERE client_id = $1 AND property_id = ANY($2);`

	persistAssignmentPosition = `UPDATE client_property_assignments
		SET position = $3
		WHERE client_id = $1 AND property_id = $2;`
)

const (
	shareColumns = `share_id, client_id, shared_with_manager_id, shared_by_manager_id, created_at`

	createShare = `INSERT INTO client_shares (client_id, shared_with_manager_id, shared_by_manager_id)
		VALUES ($1, $2, $3)
		RETURNING ` + shareColumns + `;`

	deleteShare = `DELETE FROM client_shares
		WHERE client_id = $1 AND shared_with_manager_id = $2;`

	listSharesForClient = `SELECT ` + shareColumns + `
		FROM client_shares
		WHERE client_id = $1
		ORDER BY created_at ASC;`

	listClientIDsSharedWith = `SELECT client_id
		FROM client_shares
		WHERE shared_with_manager_id = $1;`
)

const (
	quoteColumns = `quote_id, quote_number, manager_id, client_name, client_email, status,
		subtotal, tax_rate, tax_amount, total, valid_until, created_at, updated_at`

	createQuote = `INSERT INTO quotes
			(quote_number, manager_id, client_name, client_email, status, subtotal, tax_rate, tax_amount, total, valid_until)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + quoteColumns + `;`

	getQuote = `SELECT ` + quoteColumns + `
		FROM quotes
		WHERE quote_id = $1;`

	getQuoteByNumber = `SELECT ` + quoteColumns + `
		FROM quotes
		WHERE quote_number = $1;`

	listQuotes = `SELECT ` + quoteColumns + `
		FROM quotes
		WHERE manager_id = $1
		ORDER BY created_at DESC;`

	updateQuote = `UPDATE quotes
		SET client_name = $1, client_email = $2, subtotal = $3, tax_rate = $4,
			tax_amount = $5, total = $6, valid_until = $7, updated_at = NOW()
		WHERE quote_id = $8
		RETURNING ` + quoteColumns + `;`

	updateQuoteStatus = `UPDATE quotes
		SET status = $2, updated_at = NOW()
		WHERE quote_id = $1;`

	deleteQuote = `DELETE FROM quotes
		WHERE quote_id = $1;`

	insertQuoteItem = `INSERT INTO quote_service_items (quote_id, name, description, price, images, position)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING item_id;`

	getQuoteItems = `SELECT item_id, quote_id, name, description, price, images, position
		FROM quote_service_items
		WHERE quote_id = $1
		ORDER BY position ASC;`

	deleteQuoteItems = `DELETE FROM quote_service_items
		WHERE quote_id = $1;`
)

const (
	invoiceColumns = `invoice_id, invoice_number, manager_id, client_name, client_email, status,
		subtotal, tax_rate, tax_amount, total, due_date, created_at, updated_at`

	createInvoice = `INSERT INTO invoices
			(invoice_number, manager_id, client_name, client_email, status, subtotal, tax_rate, tax_amount, total, due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + invoiceColumns + `;`

	getInvoice = `SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE invoice_id = $1;`

	getInvoiceByNumber = `SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE invoice_number = $1;`

	listInvoices = `SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE manager_id = $1
		ORDER BY created_at DESC;`

	updateInvoice = `UPDATE invoices
		SET client_name = $1, client_email = $2, subtotal = $3, tax_rate = $4,
			tax_amount = $5, total = $6, due_date = $7, updated_at = NOW()
		WHERE invoice_id = $8
		RETURNING ` + invoiceColumns + `;`

	updateInvoiceStatus = `UPDATE invoices
		SET status = $2, updated_at = NOW()
		WHERE invoice_id = $1;`

	deleteInvoice = `DELETE FROM invoices
		WHERE invoice_id = $1;`

	insertInvoiceItem = `INSERT INTO invoice_line_items (invoice_id, description, quantity, unit_price, total, position)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING item_id;`

	getInvoiceItems = `SELECT item_id, invoice_id, description, quantity, unit_price, total, position
		FROM invoice_line_items
		WHERE invoice_id = $1
		ORDER BY position ASC;`

	deleteInvoiceItems = `DELETE FROM invoice_line_items
		WHERE invoice_id = $1;`
)

// buildBulkAssignQuery builds a single multi-row INSERT that appends every
// given property to the client's portfolio starting at basePosition. Every
// row carries the same caller-chosen visibility triple. Conflicting rows
// (already-assigned properties) are skipped via ON CONFLICT DO NOTHING, so
// RowsAffected reflects the number of new assignments only.
func buildBulkAssignQuery(clientID string, propertyIDs []string, basePosition int, pricing models.PricingVisibility) (string, []any, error) {
	builder := psql.Insert("client_property_assignments").
		Columns("client_id", "property_id", "position",
			"show_monthly_rent_to_client", "show_nightly_rate_to_client", "show_purchase_price_to_client")

	for idx, propertyID := range propertyIDs {
		builder = builder.Values(clientID, propertyID, basePosition+idx,
			pricing.ShowMonthlyRent, pricing.ShowNightlyRate, pricing.ShowPurchasePrice)
	}

	query, args, err := builder.
		Suffix("ON CONFLICT (client_id, property_id) DO NOTHING").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildPropertyDisplayUpdateQuery builds a partial UPDATE of the display
// customization columns. Nil pointers in update are left untouched.
//
// The second return value is the number of SET clauses generated (excluding
// the mandatory updated_at bump); callers can treat zero as a no-op.
func buildPropertyDisplayUpdateQuery(propertyID string, update models.PropertyDisplayUpdate) (string, []any, int, error) {
	builder := psql.Update("properties")
	setCount := 0

	boolFields := []struct {
		column string
		value  *bool
	}{
		{"show_bedrooms", update.ShowBedrooms},
		{"show_bathrooms", update.ShowBathrooms},
		{"show_area", update.ShowArea},
		{"show_address", update.ShowAddress},
		{"show_images", update.ShowImages},
	}
	for _, f := range boolFields {
		if f.value != nil {
			builder = builder.Set(f.column, *f.value)
			setCount++
		}
	}

	stringFields := []struct {
		column string
		value  *string
	}{
		{"label_bedrooms", update.LabelBedrooms},
		{"label_bathrooms", update.LabelBathrooms},
		{"label_area", update.LabelArea},
		{"label_monthly_rent", update.LabelMonthlyRent},
		{"label_nightly_rate", update.LabelNightlyRate},
		{"label_purchase_price", update.LabelPurchasePrice},
		{"custom_notes", update.CustomNotes},
	}
	for _, f := range stringFields {
		if f.value != nil {
			builder = builder.Set(f.column, *f.value)
			setCount++
		}
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"property_id": propertyID}).
		ToSql()
	if err != nil {
		return "", nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, setCount, nil
}
