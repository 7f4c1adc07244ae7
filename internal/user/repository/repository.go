package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4/pgxpool"

	commoncrypto "userapi/internal/common/crypto"
	"userapi/internal/common/db"
	"userapi/internal/user/domain"
)

// Repository is the user store. Save assigns the id; FindByCredentials owns
// the password match policy and reports an unknown username and a wrong
// password as distinct errors.
type Repository interface {
	Save(ctx context.Context, user domain.User) (domain.User, error)
	FindByID(ctx context.Context, id domain.ID) (domain.User, error)
	FindByCredentials(ctx context.Context, username, password string) (domain.User, error)
}

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrPasswordMismatch      = errors.New("password mismatch")
	ErrUsernameAlreadyExists = errors.New("username already exists")
)

type PgRepository struct {
	pool        *pgxpool.Pool
	hasher      commoncrypto.PasswordHasher
	idGenerator commoncrypto.IDGenerator
}

func NewPgRepository(pool *pgxpool.Pool, hasher commoncrypto.PasswordHasher, idGenerator commoncrypto.IDGenerator) *PgRepository {
	return &PgRepository{
		pool:        pool,
		hasher:      hasher,
		idGenerator: idGenerator,
	}
}

func (r *PgRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	id, err := r.idGenerator.NewID()
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to generate user id: %w", err)
	}

	hash, err := r.hasher.Hash(user.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	saved := user
	saved.ID = domain.ID(id)
	saved.Password = hash

	start := time.Now()
	_, err = r.pool.Exec(
		ctx,
		`INSERT INTO users (id, username, password_hash, created_at) VALUES ($1, $2, $3, $4)`,
		string(saved.ID),
		saved.Username,
		saved.Password,
		saved.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			db.Observe("create user", start)
			return domain.User{}, ErrUsernameAlreadyExists
		}
	}
	if err := db.ExecError(err, "create user", start); err != nil {
		return domain.User{}, err
	}

	return saved, nil
}

func (r *PgRepository) FindByID(ctx context.Context, id domain.ID) (domain.User, error) {
	start := time.Now()
	row := r.pool.QueryRow(
		ctx,
		`SELECT id, username, password_hash, created_at FROM users WHERE id = $1`,
		string(id),
	)

	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.Password, &user.CreatedAt)
	if err := db.QueryError(err, ErrUserNotFound, "find user by id", start); err != nil {
		return domain.User{}, err
	}

	return user, nil
}

func (r *PgRepository) FindByCredentials(ctx context.Context, username, password string) (domain.User, error) {
	start := time.Now()
	row := r.pool.QueryRow(
		ctx,
		`SELECT id, username, password_hash, created_at FROM users WHERE username = $1`,
		username,
	)

	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.Password, &user.CreatedAt)
	if err := db.QueryError(err, ErrUserNotFound, "find user by username", start); err != nil {
		return domain.User{}, err
	}

	if err := r.hasher.Compare(user.Password, password); err != nil {
		return domain.User{}, ErrPasswordMismatch
	}

	return user, nil
}
