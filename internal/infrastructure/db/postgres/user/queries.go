package user

const (
	SelectUsers = `
		SELECT uuid, first_name, middle_name, last_name, email, password_hash, birth_date, phone, active, deleted
		FROM users
		ORDER BY first_name, last_name
	`
	SelectUsersByName = `
		SELECT uuid, first_name, middle_name, last_name, email, password_hash, birth_date, phone, active, deleted
		FROM users
		WHERE first_name ILIKE '%' || $1 || '%' AND deleted = false
		ORDER BY first_name, last_name
	`
	SelectUserByUUID = `
		SELECT uuid, first_name, middle_name, last_name, email, password_hash, birth_date, phone, active, deleted
		FROM users
		WHERE uuid = $1
	`
	SelectUserByEmailKey = `
		SELECT uuid, first_name, middle_name, last_name, email, password_hash, birth_date, phone, active, deleted
		FROM users
		WHERE lower(email) = lower($1)
	`
	SelectUserByEmail = `
		SELECT uuid, first_name, middle_name, last_name, email, password_hash, birth_date, phone, active, deleted
		FROM users
		WHERE email = $1
	`
	InsertUser = `
		INSERT INTO users (first_name, middle_name, last_name, email, password_hash, birth_date, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING uuid, first_name, middle_name, last_name, email, password_hash, birth_date, phone, active, deleted
	`
	UpdateUserByUUID = `
		UPDATE users
		SET first_name = $1,
		    middle_name = $2,
		    last_name = $3,
		    email = $4,
		    password_hash = $5,
		    birth_date = $6,
		    phone = $7,
		    updated_at = now()
		WHERE uuid = $8
		RETURNING uuid, first_name, middle_name, last_name, email, password_hash, birth_date, phone, active, deleted
	`
	DeleteUserByUUID = `DELETE FROM users WHERE uuid = $1`
	ToggleUserActive = `
		UPDATE users
		SET active = NOT active, updated_at = now()
		WHERE uuid = $1
		RETURNING uuid, first_name, middle_name, last_name, email, password_hash, birth_date, phone, active, deleted
	`
	ToggleUserDeleted = `
		UPDATE users
		SET deleted = NOT deleted, updated_at = now()
		WHERE uuid = $1
		RETURNING uuid, first_name, middle_name, last_name, email, password_hash, birth_date, phone, active, deleted
	`
)
