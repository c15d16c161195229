package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/vfg2006/instagram-insights-api/infrastructure/database"
	"github.com/vfg2006/instagram-insights-api/internal/domain"
)

//go:generate mockgen -source=record.go -destination=mocks/record_mock.go -package=mocks

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

var recordColumns = []string{
	"id", "data_type", "fetched_at", "source_id",
	"username", "account_type", "media_count",
	"caption", "media_type", "media_url", "permalink", "thumbnail_url", "posted_at", "children",
	"media_id", "engagement", "impressions", "reach", "saved", "video_views",
	"user_id", "audience_gender_age", "audience_locale", "audience_country", "online_followers",
	"hashtag", "hashtag_id",
}

// RecordRepository persiste as linhas da tabela larga do Instagram.
// Registros só são inseridos; não há update nem delete.
type RecordRepository interface {
	Insert(ctx context.Context, records []*domain.StoredRecord) error
	GetByID(ctx context.Context, id string) (*domain.StoredRecord, error)
	List(ctx context.Context, filter domain.RecordFilter) ([]*domain.StoredRecord, error)
}

type recordRepository struct {
	conn  *database.Connection
	table string
}

func NewRecordRepository(conn *database.Connection, table string) RecordRepository {
	return &recordRepository{
		conn:  conn,
		table: table,
	}
}

// NormalizeLimit aplica o limite padrão e o teto de leitura
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	return min(limit, maxListLimit)
}

func (r *recordRepository) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(r.conn.Placeholder())
}

func (r *recordRepository) Insert(ctx context.Context, records []*domain.StoredRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := r.builder().Insert(r.table).Columns(recordColumns...)
	for _, rec := range records {
		query = query.Values(
			rec.ID, string(rec.DataType), rec.FetchedAt.UTC(), rec.SourceID,
			rec.Username, rec.AccountType, rec.MediaCount,
			rec.Caption, rec.MediaType, rec.MediaURL, rec.Permalink, rec.ThumbnailURL, rec.PostedAt, jsonValue(rec.Children),
			rec.MediaID, rec.Engagement, rec.Impressions, rec.Reach, rec.Saved, rec.VideoViews,
			rec.UserID, jsonValue(rec.AudienceGenderAge), jsonValue(rec.AudienceLocale), jsonValue(rec.AudienceCountry), jsonValue(rec.OnlineFollowers),
			rec.Hashtag, rec.HashtagID,
		)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, sqlQuery, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *recordRepository) GetByID(ctx context.Context, id string) (*domain.StoredRecord, error) {
	query, args, err := r.builder().
		Select(recordColumns...).
		From(r.table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	record, err := scanRecord(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("erro ao escanear registro: %w", err)
	}

	return record, nil
}

func (r *recordRepository) List(ctx context.Context, filter domain.RecordFilter) ([]*domain.StoredRecord, error) {
	builder := r.builder().
		Select(recordColumns...).
		From(r.table)

	if filter.DataType != "" {
		builder = builder.Where(squirrel.Eq{"data_type": string(filter.DataType)})
	}
	if filter.Username != "" {
		builder = builder.Where(squirrel.Eq{"username": filter.Username})
	}
	if filter.Hashtag != "" {
		builder = builder.Where(squirrel.Eq{"hashtag": filter.Hashtag})
	}
	if filter.Since != nil {
		builder = builder.Where(squirrel.GtOrEq{"fetched_at": filter.Since.UTC()})
	}
	if filter.Until != nil {
		builder = builder.Where(squirrel.LtOrEq{"fetched_at": filter.Until.UTC()})
	}

	query, args, err := builder.
		OrderBy("fetched_at DESC", "id").
		Limit(uint64(NormalizeLimit(filter.Limit))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.StoredRecord, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registros: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*domain.StoredRecord, error) {
	var (
		rec        domain.StoredRecord
		dataType   string
		fetchedAt  any
		mediaCount sql.NullInt64
		engagement sql.NullInt64
		impress    sql.NullInt64
		reach      sql.NullInt64
		saved      sql.NullInt64
		videoViews sql.NullInt64
		children   sql.NullString
		genderAge  sql.NullString
		locale     sql.NullString
		country    sql.NullString
		online     sql.NullString
		text       = make([]sql.NullString, 13)
	)

	err := row.Scan(
		&rec.ID, &dataType, &fetchedAt, &text[0],
		&text[1], &text[2], &mediaCount,
		&text[3], &text[4], &text[5], &text[6], &text[7], &text[8], &children,
		&text[9], &engagement, &impress, &reach, &saved, &videoViews,
		&text[10], &genderAge, &locale, &country, &online,
		&text[11], &text[12],
	)
	if err != nil {
		return nil, err
	}

	rec.DataType = domain.DataType(dataType)
	if rec.FetchedAt, err = toTime(fetchedAt); err != nil {
		return nil, err
	}

	rec.SourceID = nullString(text[0])
	rec.Username = nullString(text[1])
	rec.AccountType = nullString(text[2])
	rec.MediaCount = nullInt(mediaCount)
	rec.Caption = nullString(text[3])
	rec.MediaType = nullString(text[4])
	rec.MediaURL = nullString(text[5])
	rec.Permalink = nullString(text[6])
	rec.ThumbnailURL = nullString(text[7])
	rec.PostedAt = nullString(text[8])
	rec.Children = nullJSON(children)
	rec.MediaID = nullString(text[9])
	rec.Engagement = nullInt(engagement)
	rec.Impressions = nullInt(impress)
	rec.Reach = nullInt(reach)
	rec.Saved = nullInt(saved)
	rec.VideoViews = nullInt(videoViews)
	rec.UserID = nullString(text[10])
	rec.AudienceGenderAge = nullJSON(genderAge)
	rec.AudienceLocale = nullJSON(locale)
	rec.AudienceCountry = nullJSON(country)
	rec.OnlineFollowers = nullJSON(online)
	rec.Hashtag = nullString(text[11])
	rec.HashtagID = nullString(text[12])

	return &rec, nil
}

// jsonValue envia JSON como texto; nil vira NULL
func jsonValue(raw json.RawMessage) any {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return string(raw)
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullInt(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

func nullJSON(v sql.NullString) json.RawMessage {
	if !v.Valid || v.String == "" {
		return nil
	}
	return json.RawMessage(v.String)
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
}

// toTime lida com os formatos de timestamp dos drivers postgres e sqlite
func toTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), nil
	case string:
		return parseTime(t)
	case []byte:
		return parseTime(string(t))
	default:
		return time.Time{}, fmt.Errorf("unexpected fetched_at type %T", v)
	}
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unexpected fetched_at format %q", s)
}
