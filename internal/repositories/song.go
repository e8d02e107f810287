package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/vtx/internal/models"
	"github.com/desertthunder/vtx/internal/shared"
)

// SongRepository implements models.Repository[*models.Song] for the local
// media library, with soft delete support and media-path lookups.
type SongRepository struct {
	db *sql.DB
}

// NewSongRepository creates a new SongRepository with the given database connection
func NewSongRepository(db *sql.DB) *SongRepository {
	return &SongRepository{db: db}
}

// Create inserts a new [models.Song] into the database with generated ID and sequence
func (r *SongRepository) Create(song *models.Song) error {
	sequence, err := NextSequence(r.db, "songs")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	song.SetID(id)
	song.SetSequence(sequence)

	if err := song.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO songs (id, sequence, title, media_path, lyric_path, duration, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		id,
		sequence,
		song.Title(),
		song.MediaPath(),
		song.LyricPath(),
		song.Duration(),
		song.CreatedAt(),
		song.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert song: %w", err)
	}

	return nil
}

// Get retrieves a song by ID, excluding soft-deleted songs
func (r *SongRepository) Get(id string) (*models.Song, error) {
	query := `
		SELECT id, sequence, title, media_path, lyric_path, duration, created_at, updated_at, deleted_at
		FROM songs
		WHERE id = ? AND deleted_at IS NULL
	`

	return scanSong(r.db.QueryRow(query, id))
}

// GetByMediaPath retrieves a song by its media file path
func (r *SongRepository) GetByMediaPath(mediaPath string) (*models.Song, error) {
	query := `
		SELECT id, sequence, title, media_path, lyric_path, duration, created_at, updated_at, deleted_at
		FROM songs
		WHERE media_path = ? AND deleted_at IS NULL
	`

	return scanSong(r.db.QueryRow(query, mediaPath))
}

// Update modifies an existing song in the database
func (r *SongRepository) Update(song *models.Song) error {
	if err := song.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	song.SetUpdatedAt(now)

	query := `
		UPDATE songs
		SET title = ?, media_path = ?, lyric_path = ?, duration = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query,
		song.Title(),
		song.MediaPath(),
		song.LyricPath(),
		song.Duration(),
		now,
		song.ID(),
	)
	if err != nil {
		return fmt.Errorf("failed to update song: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrSongNotFound, song.ID())
	}

	return nil
}

// SetLyricPath records the resolved lyric source for a song. Called when
// a completed processing task reports its produced artifact.
func (r *SongRepository) SetLyricPath(id, lyricPath string) error {
	query := `
		UPDATE songs
		SET lyric_path = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, lyricPath, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to set lyric path: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrSongNotFound, id)
	}

	return nil
}

// Delete soft-deletes a song by ID
func (r *SongRepository) Delete(id string) error {
	query := `
		UPDATE songs
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete song: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrSongNotFound, id)
	}

	return nil
}

// List retrieves all songs matching the given criteria, excluding soft-deleted songs
func (r *SongRepository) List(criteria map[string]any) ([]*models.Song, error) {
	query := `
		SELECT id, sequence, title, media_path, lyric_path, duration, created_at, updated_at, deleted_at
		FROM songs
		WHERE deleted_at IS NULL
	`

	args := []any{}

	if title, ok := criteria["title"].(string); ok && title != "" {
		query += " AND title LIKE ?"
		args = append(args, "%"+title+"%")
	}

	if hasLyrics, ok := criteria["has_lyrics"].(bool); ok && hasLyrics {
		query += " AND lyric_path != ''"
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query songs: %w", err)
	}
	defer rows.Close()

	var songs []*models.Song
	for rows.Next() {
		song, err := scanSongRow(rows)
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return songs, nil
}

// scanSong scans a single [sql.Row] into a [models.Song]
func scanSong(row *sql.Row) (*models.Song, error) {
	var (
		id        string
		sequence  int
		title     string
		mediaPath string
		lyricPath string
		duration  float64
		createdAt time.Time
		updatedAt time.Time
		deletedAt sql.NullTime
	)

	err := row.Scan(&id, &sequence, &title, &mediaPath, &lyricPath, &duration, &createdAt, &updatedAt, &deletedAt)
	if err == sql.ErrNoRows {
		return nil, shared.ErrSongNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan song: %w", err)
	}

	var deleted *time.Time
	if deletedAt.Valid {
		deleted = &deletedAt.Time
	}

	return models.RestoreSong(id, sequence, title, mediaPath, lyricPath, duration, createdAt, updatedAt, deleted), nil
}

// scanSongRow scans a row from [sql.Rows] into a [models.Song]
func scanSongRow(rows *sql.Rows) (*models.Song, error) {
	var (
		id        string
		sequence  int
		title     string
		mediaPath string
		lyricPath string
		duration  float64
		createdAt time.Time
		updatedAt time.Time
		deletedAt sql.NullTime
	)

	err := rows.Scan(&id, &sequence, &title, &mediaPath, &lyricPath, &duration, &createdAt, &updatedAt, &deletedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan song: %w", err)
	}

	var deleted *time.Time
	if deletedAt.Valid {
		deleted = &deletedAt.Time
	}

	return models.RestoreSong(id, sequence, title, mediaPath, lyricPath, duration, createdAt, updatedAt, deleted), nil
}
