package repositories

import (
	"context"
	"time"

	"local-market/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, name, email, COALESCE(phone,''), COALESCE(avatar_url,''),
	is_business_user, login_method, created_at, updated_at`

func (r *UserRepository) scan(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.AvatarURL,
		&u.IsBusinessUser, &u.LoginMethod, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*models.User, error) {
	return r.scan(r.db.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id))
}

func (r *UserRepository) Update(ctx context.Context, id int, req *models.UpdateUserRequest) (*models.User, error) {
	return r.scan(r.db.QueryRow(ctx,
		`UPDATE users SET
		 name = COALESCE($1, name),
		 phone = COALESCE($2, phone),
		 avatar_url = COALESCE($3, avatar_url),
		 updated_at = $4
		 WHERE id = $5
		 RETURNING `+userColumns,
		req.Name, req.Phone, req.AvatarURL, time.Now(), id))
}

func (r *UserRepository) SavePushToken(ctx context.Context, userID int, token string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		"UPDATE users SET push_token = $1, updated_at = $2 WHERE id = $3",
		token, time.Now(), userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
