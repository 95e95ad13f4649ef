package models

import "database/sql"

// Country is a row of the countries table.
type Country struct {
	Code      string         `db:"code"`
	Name      string         `db:"name"`
	Region    string         `db:"region"`
	Subregion sql.NullString `db:"subregion"`
	SortOrder int            `db:"sort_order"`
}
