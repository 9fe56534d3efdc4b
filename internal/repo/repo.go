package repo

import (
	"context"
	"database/sql"
	"time"
)

type Profile struct {
	ID          int    `json:"id"`
	Login       string `json:"login"`
	Email       string `json:"email"`
	Description string `json:"description"`
}

// SavedPad is one sized pad persisted into a user's schedule: the inputs
// plus the adopted design figures, so the schedule table can be rebuilt
// without re-solving.
type SavedPad struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	DeadKN           float64   `json:"dead_kn"`
	LiveKN           float64   `json:"live_kn"`
	SurchargeDeadKPa float64   `json:"surcharge_dead_kpa"`
	SurchargeLiveKPa float64   `json:"surcharge_live_kpa"`
	WidthM           float64   `json:"width_m"`
	DepthM           float64   `json:"depth_m"`
	DesignLoadKN     float64   `json:"design_load_kn"`
	Utilisation      float64   `json:"utilisation"`
	VolumeM3         float64   `json:"volume_m3"`
	CreatedAt        time.Time `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	GetProfileByID(ctx context.Context, id int) (Profile, error)
	UpdateProfile(ctx context.Context, id int, login, description string) (Profile, error)

	SavePad(ctx context.Context, userID int, p SavedPad) (int, error)
	ListPads(ctx context.Context, userID int) ([]SavedPad, error)
	DeletePad(ctx context.Context, userID, padID int) error
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) GetProfileByID(ctx context.Context, id int) (Profile, error) {
	var p Profile
	query := "SELECT id, login, email, COALESCE(description, '') FROM users WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Login, &p.Email, &p.Description)
	return p, err
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, id int, login, description string) (Profile, error) {
	query := `UPDATE users SET login = COALESCE(NULLIF($2, ''), login), description = $3
		WHERE id = $1 RETURNING id, login, email, COALESCE(description, '')`
	var p Profile
	err := r.db.QueryRowContext(ctx, query, id, login, description).Scan(&p.ID, &p.Login, &p.Email, &p.Description)
	return p, err
}

func (r *PostgresRepository) SavePad(ctx context.Context, userID int, p SavedPad) (int, error) {
	query := `INSERT INTO pads
		(user_id, name, dead_kn, live_kn, surcharge_dead_kpa, surcharge_live_kpa,
		 width_m, depth_m, design_load_kn, utilisation, volume_m3)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	var id int
	err := r.db.QueryRowContext(ctx, query, userID, p.Name,
		p.DeadKN, p.LiveKN, p.SurchargeDeadKPa, p.SurchargeLiveKPa,
		p.WidthM, p.DepthM, p.DesignLoadKN, p.Utilisation, p.VolumeM3).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListPads(ctx context.Context, userID int) ([]SavedPad, error) {
	query := `SELECT id, name, dead_kn, live_kn, surcharge_dead_kpa, surcharge_live_kpa,
		width_m, depth_m, design_load_kn, utilisation, volume_m3, created_at
		FROM pads WHERE user_id=$1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pads []SavedPad
	for rows.Next() {
		var p SavedPad
		if err := rows.Scan(&p.ID, &p.Name, &p.DeadKN, &p.LiveKN,
			&p.SurchargeDeadKPa, &p.SurchargeLiveKPa,
			&p.WidthM, &p.DepthM, &p.DesignLoadKN, &p.Utilisation, &p.VolumeM3,
			&p.CreatedAt); err != nil {
			return nil, err
		}
		pads = append(pads, p)
	}
	return pads, rows.Err()
}

func (r *PostgresRepository) DeletePad(ctx context.Context, userID, padID int) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM pads WHERE id=$1 AND user_id=$2", padID, userID)
	return err
}
