package reftype

import "fmt"

// The user_types and task_types tables share one column layout, so the
// queries are built once per repository from the table name.
type queries struct {
	selectAll    string
	selectByName string
	selectByUUID string
	selectByKey  string
	insert       string
	update       string
	delete       string
	toggleActive string
	toggleDelete string
}

const (
	TableUserTypes = "user_types"
	TableTaskTypes = "task_types"

	columns = "uuid, name, description, active, deleted"
)

func buildQueries(table string) queries {
	return queries{
		selectAll: fmt.Sprintf(
			`SELECT %s FROM %s ORDER BY name`, columns, table),
		selectByName: fmt.Sprintf(
			`SELECT %s FROM %s WHERE name ILIKE '%%' || $1 || '%%' AND deleted = false ORDER BY name`, columns, table),
		selectByUUID: fmt.Sprintf(
			`SELECT %s FROM %s WHERE uuid = $1`, columns, table),
		selectByKey: fmt.Sprintf(
			`SELECT %s FROM %s WHERE lower(name) = lower($1)`, columns, table),
		insert: fmt.Sprintf(
			`INSERT INTO %s (name, description) VALUES ($1, $2) RETURNING %s`, table, columns),
		update: fmt.Sprintf(
			`UPDATE %s SET name = $1, description = $2, updated_at = now() WHERE uuid = $3 RETURNING %s`, table, columns),
		delete: fmt.Sprintf(
			`DELETE FROM %s WHERE uuid = $1`, table),
		toggleActive: fmt.Sprintf(
			`UPDATE %s SET active = NOT active, updated_at = now() WHERE uuid = $1 RETURNING %s`, table, columns),
		toggleDelete: fmt.Sprintf(
			`UPDATE %s SET deleted = NOT deleted, updated_at = now() WHERE uuid = $1 RETURNING %s`, table, columns),
	}
}
