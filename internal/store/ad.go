package store

import (
	"context"
	"fmt"

	"ad-board/internal/database"
	"ad-board/internal/model"
)

func GetAdByID(ctx context.Context, db database.DB, adID int) (*model.Ad, error) {
	row := db.QueryRow(ctx,
		`SELECT id, title, description, created_at, user_id
		 FROM ads WHERE id = $1`,
		adID,
	)
	a := &model.Ad{}
	if err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Description,
		&a.CreatedAt,
		&a.UserID,
	); err != nil {
		return nil, fmt.Errorf("GetAdByID: %w", translate(err))
	}
	return a, nil
}

func CreateAd(ctx context.Context, db database.DB, a *model.Ad) (*model.Ad, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO ads (title, description, user_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		a.Title,
		a.Description,
		a.UserID,
	)
	if err := row.Scan(&a.ID, &a.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateAd: %w", translate(err))
	}
	return a, nil
}

// UpdateAd applies a partial update; nil fields keep their stored value.
func UpdateAd(ctx context.Context, db database.DB, adID int, title, description *string) (*model.Ad, error) {
	row := db.QueryRow(ctx,
		`UPDATE ads
		 SET title = COALESCE($1, title), description = COALESCE($2, description)
		 WHERE id = $3
		 RETURNING id, title, description, created_at, user_id`,
		title,
		description,
		adID,
	)
	a := &model.Ad{}
	if err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Description,
		&a.CreatedAt,
		&a.UserID,
	); err != nil {
		return nil, fmt.Errorf("UpdateAd: %w", translate(err))
	}
	return a, nil
}

func DeleteAd(ctx context.Context, db database.DB, adID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM ads WHERE id = $1`,
		adID,
	)
	if err != nil {
		return fmt.Errorf("DeleteAd: %w", translate(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteAd: %w", ErrNotFound)
	}
	return nil
}
