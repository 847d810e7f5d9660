package store

const (
	createUser = `INSERT INTO users (org_id, email, name, role, password_hash)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, org_id, email, name, role, password_hash, created_at;`

	findUserByEmail = `SELECT id, org_id, email, name, role, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, org_id, email, name, role, password_hash, created_at
    FROM users
    WHERE id = $1;`
)
