package store

import (
	"context"
	"errors"
	"fmt"

	"peoplebook/internal/database"
	"peoplebook/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound 查無此使用者
var ErrNotFound = errors.New("user not found")

// ErrEmailTaken Email 已被註冊（資料庫唯一性約束）
var ErrEmailTaken = errors.New("email already registered")

const userColumns = `id, name, email, password_hash, is_admin, is_public, image_url, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.IsAdmin,
		&u.IsPublic,
		&u.ImageURL,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func mapWriteErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%s: %w", op, ErrEmailTaken)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE id = $1`,
		userID,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE email = $1`,
		email,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, is_admin, is_public)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.IsAdmin,
		u.IsPublic,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, mapWriteErr("CreateUser", err)
	}
	return u, nil
}

// UpdateUserProfile 只更新允許的欄位（name、email），回傳更新後的完整紀錄
func UpdateUserProfile(ctx context.Context, db database.DB, userID int, name, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`UPDATE users SET name = $1, email = $2, updated_at = now()
		 WHERE id = $3
		 RETURNING `+userColumns,
		name,
		email,
		userID,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, mapWriteErr("UpdateUserProfile", err)
	}
	return u, nil
}

// UpdateUserVisibility 單一欄位更新，重複設定同值為 no-op
func UpdateUserVisibility(ctx context.Context, db database.DB, userID int, isPublic bool) (*model.User, error) {
	row := db.QueryRow(ctx,
		`UPDATE users SET is_public = $1, updated_at = now()
		 WHERE id = $2
		 RETURNING `+userColumns,
		isPublic,
		userID,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("UpdateUserVisibility: %w", err)
	}
	return u, nil
}

func UpdateUserImageURL(ctx context.Context, db database.DB, userID int, imageURL string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`UPDATE users SET image_url = $1, updated_at = now()
		 WHERE id = $2
		 RETURNING `+userColumns,
		imageURL,
		userID,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("UpdateUserImageURL: %w", err)
	}
	return u, nil
}

func UpdateUserPassword(ctx context.Context, db database.DB, userID int, passwordHash string) error {
	_, err := db.Exec(ctx,
		`UPDATE users
		 SET password_hash = $1, updated_at = now()
		 WHERE id = $2`,
		passwordHash,
		userID,
	)
	if err != nil {
		return fmt.Errorf("UpdateUserPassword: %w", err)
	}
	return nil
}

func listUsers(ctx context.Context, db database.DB, query string, args ...any) ([]model.User, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u := model.User{}
		if err := rows.Scan(
			&u.ID,
			&u.Name,
			&u.Email,
			&u.PasswordHash,
			&u.IsAdmin,
			&u.IsPublic,
			&u.ImageURL,
			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

// ListUsers 回傳所有使用者（含非公開），僅供管理員清單使用
func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	users, err := listUsers(ctx, db,
		`SELECT `+userColumns+`
		 FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

// ListPublicUsers 只回傳 is_public = true 的使用者
func ListPublicUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	users, err := listUsers(ctx, db,
		`SELECT `+userColumns+`
		 FROM users WHERE is_public = TRUE ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListPublicUsers: %w", err)
	}
	return users, nil
}
