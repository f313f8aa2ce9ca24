package store

const (
	createUser = `INSERT INTO users (id, email, password)
    VALUES ($1, $2, $3)
    RETURNING id, email, password, created_at, updated_at;`

	findUserByEmail = `SELECT id, email, password, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, email, password, created_at, updated_at
    FROM users
    WHERE id = $1;`

	updateUserPassword = `UPDATE users
    SET password = $1, updated_at = NOW()
    WHERE id = $2;`

	returningTodo = `RETURNING id, name, description, status, user_id, created_at, updated_at`
)

// todoColumns lists the columns every todo query selects or returns,
// in the order scanTodo expects them.
var todoColumns = []string{"id", "name", "description", "status", "user_id", "created_at", "updated_at"}
